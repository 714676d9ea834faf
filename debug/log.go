package debug

import (
	"fmt"
	"os"

	"github.com/treepatch/go-treepatch/encode"
	"github.com/treepatch/go-treepatch/ir"
)

func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			args[i] = encode.MustString(x, encode.Compact(true))
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
