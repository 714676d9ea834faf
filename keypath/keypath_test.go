package keypath

import (
	"errors"
	"testing"
)

type parseTest struct {
	In    string
	Steps Path
	Out   string // canonical form, defaults to In
	Err   bool
}

func TestParse(t *testing.T) {
	tests := []parseTest{
		{
			In:    "root",
			Steps: Path{},
		},
		{
			In:    "root['a']",
			Steps: Path{FieldStep("a")},
		},
		{
			In:    "root['tasks'][0]['name']",
			Steps: Path{FieldStep("tasks"), IndexStep(0), FieldStep("name")},
		},
		{
			In:    `root["a"][10]`,
			Steps: Path{FieldStep("a"), IndexStep(10)},
			Out:   "root['a'][10]",
		},
		{
			In:    "root[-1]",
			Steps: Path{IndexStep(-1)},
		},
		{
			In:    "root[42]",
			Steps: Path{IndexStep(42)},
		},
		{
			// unquoted field token
			In:    "root[name]",
			Steps: Path{FieldStep("name")},
			Out:   "root['name']",
		},
		{
			// numeric-looking quoted token stays a field
			In:    "root['0']",
			Steps: Path{FieldStep("0")},
		},
		{
			In:    `root['it\'s']`,
			Steps: Path{FieldStep("it's")},
		},
		{In: "['a']", Err: true},
		{In: "root['a'", Err: true},
		{In: "root[]", Err: true},
		{In: "root'a']", Err: true},
		{In: `root['a]`, Err: true},
	}
	for _, test := range tests {
		kp, err := Parse(test.In)
		if test.Err {
			if err == nil {
				t.Errorf("Parse(%q): expected error, got %v", test.In, kp)
			} else if !errors.Is(err, ErrMalformedPath) {
				t.Errorf("Parse(%q): error %v is not ErrMalformedPath", test.In, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): %v", test.In, err)
			continue
		}
		if !kp.Equal(test.Steps) {
			t.Errorf("Parse(%q) = %v, want %v", test.In, kp, test.Steps)
		}
		want := test.Out
		if want == "" {
			want = test.In
		}
		if got := kp.String(); got != want {
			t.Errorf("Parse(%q).String() = %q, want %q", test.In, got, want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	paths := []Path{
		{},
		{FieldStep("a")},
		{FieldStep("a"), IndexStep(0), FieldStep("b")},
		{IndexStep(3), IndexStep(0)},
		{FieldStep("with'quote"), FieldStep("and space")},
		{FieldStep("42")},
	}
	for _, kp := range paths {
		back, err := Parse(kp.String())
		if err != nil {
			t.Errorf("Parse(%q): %v", kp.String(), err)
			continue
		}
		if !back.Equal(kp) {
			t.Errorf("round trip of %q gave %v", kp.String(), back)
		}
	}
}

func TestHasPrefix(t *testing.T) {
	tests := []struct {
		p, prefix string
		want      bool
	}{
		{"root['a'][0]", "root['a']", true},
		{"root['a']", "root['a']", true},
		{"root['a']", "root", true},
		{"root['a2']", "root['a']", false},
		{"root['a']", "root['a'][0]", false},
		{"root[0]['x']", "root[0]", true},
		{"root['0']", "root[0]", false},
	}
	for _, test := range tests {
		p, err := Parse(test.p)
		if err != nil {
			t.Fatal(err)
		}
		prefix, err := Parse(test.prefix)
		if err != nil {
			t.Fatal(err)
		}
		if got := p.HasPrefix(prefix); got != test.want {
			t.Errorf("HasPrefix(%q, %q) = %v, want %v", test.p, test.prefix, got, test.want)
		}
	}
}
