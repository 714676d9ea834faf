package ir_test

import (
	"errors"
	"testing"

	"github.com/treepatch/go-treepatch/encode"
	"github.com/treepatch/go-treepatch/ir"
	"github.com/treepatch/go-treepatch/keypath"
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

func mustPath(t *testing.T, p string) keypath.Path {
	t.Helper()
	kp, err := keypath.Parse(p)
	if err != nil {
		t.Fatalf("parse path %q: %v", p, err)
	}
	return kp
}

func TestGetPath(t *testing.T) {
	doc := mustParse(t, `{"a": {"b": [10, 20, {"c": true}]}, "n": null}`)
	tests := []struct {
		path string
		want string
		err  bool
	}{
		{path: "root", want: `{"a": {"b": [10, 20, {"c": true}]}, "n": null}`},
		{path: "root['a']['b'][1]", want: `20`},
		{path: "root['a']['b'][2]['c']", want: `true`},
		{path: "root['n']", want: `null`},
		{path: "root['missing']", err: true},
		{path: "root['a']['b'][3]", err: true},
		{path: "root['a']['b'][-1]", err: true},
		{path: "root['n']['x']", err: true},
		{path: "root['a']['b'][0]['x']", err: true},
	}
	for _, test := range tests {
		got, err := doc.GetPath(mustPath(t, test.path))
		if test.err {
			if err == nil {
				t.Errorf("GetPath(%s): expected error, got %s", test.path, encode.MustString(got, encode.Compact(true)))
			} else if !errors.Is(err, ir.ErrPathNotFound) {
				t.Errorf("GetPath(%s): error %v is not ErrPathNotFound", test.path, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("GetPath(%s): %v", test.path, err)
			continue
		}
		if !ir.Equal(got, mustParse(t, test.want)) {
			t.Errorf("GetPath(%s) = %s, want %s", test.path,
				encode.MustString(got, encode.Compact(true)), test.want)
		}
	}
}

func TestSetPath(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		path string
		val  string
		want string
		err  bool
	}{
		{
			name: "overwrite field",
			doc:  `{"a": 1}`,
			path: "root['a']",
			val:  `2`,
			want: `{"a": 2}`,
		},
		{
			name: "new field keeps order",
			doc:  `{"b": 1, "a": 2}`,
			path: "root['c']",
			val:  `3`,
			want: `{"b": 1, "a": 2, "c": 3}`,
		},
		{
			name: "overwrite index",
			doc:  `[1, 2, 3]`,
			path: "root[1]",
			val:  `9`,
			want: `[1, 9, 3]`,
		},
		{
			name: "extend array with nulls",
			doc:  `[1]`,
			path: "root[3]",
			val:  `4`,
			want: `[1, null, null, 4]`,
		},
		{
			name: "auto-create intermediate object",
			doc:  `{}`,
			path: "root['a']['b']",
			val:  `1`,
			want: `{"a": {"b": 1}}`,
		},
		{
			name: "extend intermediate array with objects",
			doc:  `{"a": []}`,
			path: "root['a'][1]['x']",
			val:  `true`,
			want: `{"a": [{}, {"x": true}]}`,
		},
		{
			name: "scalar mid-path",
			doc:  `{"a": 1}`,
			path: "root['a']['b']",
			val:  `2`,
			err:  true,
		},
		{
			name: "index into object",
			doc:  `{"a": {}}`,
			path: "root['a'][0]",
			val:  `1`,
			err:  true,
		},
		{
			name: "empty path",
			doc:  `{}`,
			path: "root",
			val:  `1`,
			err:  true,
		},
	}
	for _, test := range tests {
		doc := mustParse(t, test.doc)
		err := doc.SetPath(mustPath(t, test.path), mustParse(t, test.val))
		if test.err {
			if err == nil {
				t.Errorf("%s: expected error", test.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		if !ir.Equal(doc, mustParse(t, test.want)) {
			t.Errorf("%s: got %s, want %s", test.name,
				encode.MustString(doc, encode.Compact(true)), test.want)
		}
	}
}

func TestDeletePath(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		path string
		want string
		err  bool
	}{
		{
			name: "delete field",
			doc:  `{"a": 1, "b": 2}`,
			path: "root['a']",
			want: `{"b": 2}`,
		},
		{
			name: "absent field is a no-op",
			doc:  `{"a": 1}`,
			path: "root['c']",
			want: `{"a": 1}`,
		},
		{
			name: "delete index shifts tail",
			doc:  `[1, 2, 3]`,
			path: "root[1]",
			want: `[1, 3]`,
		},
		{
			name: "out-of-bounds index is a no-op",
			doc:  `[1]`,
			path: "root[5]",
			want: `[1]`,
		},
		{
			name: "missing ancestor",
			doc:  `{"a": 1}`,
			path: "root['x']['y']",
			err:  true,
		},
	}
	for _, test := range tests {
		doc := mustParse(t, test.doc)
		err := doc.DeletePath(mustPath(t, test.path))
		if test.err {
			if err == nil {
				t.Errorf("%s: expected error", test.name)
			} else if !errors.Is(err, ir.ErrPathNotFound) {
				t.Errorf("%s: error %v is not ErrPathNotFound", test.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		if !ir.Equal(doc, mustParse(t, test.want)) {
			t.Errorf("%s: got %s, want %s", test.name,
				encode.MustString(doc, encode.Compact(true)), test.want)
		}
	}
}
