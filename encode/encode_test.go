package encode_test

import (
	"testing"

	"github.com/treepatch/go-treepatch/encode"
	"github.com/treepatch/go-treepatch/ir"
	"github.com/treepatch/go-treepatch/parse"
)

func mustParse(t *testing.T, doc string) *ir.Node {
	t.Helper()
	n, err := parse.ParseString(doc)
	if err != nil {
		t.Fatalf("parse %q: %v", doc, err)
	}
	return n
}

func TestEncodeCompact(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{`null`, `null`},
		{`true`, `true`},
		{`3`, `3`},
		{`"a\nb"`, `"a\nb"`},
		{`{}`, `{}`},
		{`[]`, `[]`},
		{`{"b": 1, "a": 2}`, `{"b":1,"a":2}`},
		{`[1, [2, {"x": null}]]`, `[1,[2,{"x":null}]]`},
	}
	for _, test := range tests {
		n := mustParse(t, test.in)
		if got := encode.MustString(n, encode.Compact(true)); got != test.out {
			t.Errorf("compact %s = %s, want %s", test.in, got, test.out)
		}
	}
}

func TestEncodeIndent(t *testing.T) {
	n := mustParse(t, `{"b": [1, 2], "a": {"x": true}}`)
	want := `{
  "b": [
    1,
    2
  ],
  "a": {
    "x": true
  }
}`
	if got := encode.MustString(n); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}

	want4 := `{
    "b": [
        1,
        2
    ],
    "a": {
        "x": true
    }
}`
	if got := encode.MustString(n, encode.Indent(4)); got != want4 {
		t.Errorf("indent 4 got:\n%s\nwant:\n%s", got, want4)
	}
}

func TestEncodeParseRoundTrip(t *testing.T) {
	docs := []string{
		`{"name": "x", "items": [1, 2.5, "three", null, true], "empty": {}}`,
		`[[], [[]], {"a": [{"b": 0}]}]`,
		`"just a string"`,
	}
	for _, doc := range docs {
		n := mustParse(t, doc)
		back := mustParse(t, encode.MustString(n))
		if !ir.Equal(n, back) {
			t.Errorf("round trip of %s gave %s", doc, encode.MustString(back, encode.Compact(true)))
		}
	}
}
