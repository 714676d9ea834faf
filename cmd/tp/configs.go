package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/treepatch/go-treepatch/encode"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Compact bool `cli:"name=c aliases=compact desc='compact output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.Compact(cfg.Compact),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) colorOut(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

type DiffConfig struct {
	*MainConfig

	Exclusions string `cli:"name=x aliases=exclusions desc='exclusion policy file'"`
	Report     bool   `cli:"name=report desc='print a human readable report instead of an export'"`

	Diff *cli.Command
}

type ApplyConfig struct {
	*MainConfig

	Exclusions string `cli:"name=x aliases=exclusions desc='exclusion policy file'"`
	Target     string `cli:"name=t aliases=target desc='fallback target tree for uncaptured additions'"`
	Verify     string `cli:"name=verify desc='verify the result against this target document'"`
	Quiet      bool   `cli:"name=q aliases=quiet desc='suppress per-record events'"`

	Apply *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}
