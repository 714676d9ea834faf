package parse_test

import (
	"errors"
	"testing"

	"github.com/treepatch/go-treepatch/encode"
	"github.com/treepatch/go-treepatch/ir"
	"github.com/treepatch/go-treepatch/parse"
)

func TestParseJSON(t *testing.T) {
	n, err := parse.ParseString(`{"b": 1, "a": [true, null, "x", 2.5]}`)
	if err != nil {
		t.Fatal(err)
	}
	if n.Type != ir.ObjectType {
		t.Fatalf("root is %s", n.Type)
	}
	// document order, not sorted
	if n.Fields[0] != "b" || n.Fields[1] != "a" {
		t.Errorf("fields = %v", n.Fields)
	}
	arr := ir.Get(n, "a")
	if arr.Type != ir.ArrayType || len(arr.Values) != 4 {
		t.Fatalf("a = %+v", arr)
	}
	wantTypes := []ir.Type{ir.BoolType, ir.NullType, ir.StringType, ir.NumberType}
	for i, want := range wantTypes {
		if arr.Values[i].Type != want {
			t.Errorf("a[%d] is %s, want %s", i, arr.Values[i].Type, want)
		}
	}
	if v := arr.Values[3]; v.Float64 == nil || *v.Float64 != 2.5 {
		t.Errorf("a[3] = %+v", v)
	}
}

func TestParseYAML(t *testing.T) {
	n, err := parse.ParseString(`
zeta: 1
alpha:
  - name: t1
    done: true
  - name: t2
anchor: &a {x: 1}
ref: *a
`)
	if err != nil {
		t.Fatal(err)
	}
	if n.Fields[0] != "zeta" || n.Fields[1] != "alpha" {
		t.Errorf("fields = %v", n.Fields)
	}
	alpha := ir.Get(n, "alpha")
	if len(alpha.Values) != 2 {
		t.Fatalf("alpha = %+v", alpha)
	}
	if got := ir.Get(alpha.Values[0], "name"); got == nil || got.String != "t1" {
		t.Errorf("alpha[0].name = %+v", got)
	}
	if !ir.Equal(ir.Get(n, "anchor"), ir.Get(n, "ref")) {
		t.Error("alias should resolve to the anchored value")
	}
}

func TestParseScalars(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{`null`, `null`},
		{`~`, `null`},
		{``, `null`},
		{`true`, `true`},
		{`yes`, `true`},
		{`42`, `42`},
		{`-7`, `-7`},
		{`0x10`, `0x10`}, // raw literal survives
		{`2.5`, `2.5`},
		{`hello`, `"hello"`},
		{`"42"`, `"42"`},
	}
	for _, test := range tests {
		n, err := parse.ParseString(test.in)
		if err != nil {
			t.Errorf("ParseString(%q): %v", test.in, err)
			continue
		}
		if got := encode.MustString(n, encode.Compact(true)); got != test.out {
			t.Errorf("ParseString(%q) encodes as %s, want %s", test.in, got, test.out)
		}
	}
}

func TestParseError(t *testing.T) {
	_, err := parse.ParseString("{\n  broken: [\n")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, parse.ErrParse) {
		t.Errorf("error %v is not ErrParse", err)
	}
}
