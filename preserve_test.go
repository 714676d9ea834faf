package treepatch

import (
	"testing"

	"github.com/treepatch/go-treepatch/encode"
	"github.com/treepatch/go-treepatch/ir"
	"github.com/treepatch/go-treepatch/parse"
)

func TestPreserveFields(t *testing.T) {
	tests := []struct {
		name      string
		recon     string
		base      string
		preserved []string
		want      string
	}{
		{
			name:  "base key order wins",
			recon: `{"c": 3, "a": 1, "b": 2}`,
			base:  `{"a": 0, "b": 0, "c": 0}`,
			want:  `{"a": 1, "b": 2, "c": 3}`,
		},
		{
			name:  "new keys append in reconstruction order",
			recon: `{"n2": 2, "a": 1, "n1": 1}`,
			base:  `{"a": 0}`,
			want:  `{"a": 1, "n2": 2, "n1": 1}`,
		},
		{
			name:  "removed keys stay removed",
			recon: `{"b": 2}`,
			base:  `{"a": 1, "b": 2}`,
			want:  `{"b": 2}`,
		},
		{
			name:      "preserved key comes back after removal",
			recon:     `{"b": 2}`,
			base:      `{"id": "x", "b": 2}`,
			preserved: []string{"id"},
			want:      `{"id": "x", "b": 2}`,
		},
		{
			name:      "preserved key overrides a changed value",
			recon:     `{"id": "changed", "b": 2}`,
			base:      `{"id": "orig", "b": 1}`,
			preserved: []string{"id"},
			want:      `{"id": "orig", "b": 2}`,
		},
		{
			name:      "preservation applies at every depth",
			recon:     `{"tasks": [{"id": 9, "n": "new"}]}`,
			base:      `{"tasks": [{"id": 1, "n": "old"}]}`,
			preserved: []string{"id"},
			want:      `{"tasks": [{"id": 1, "n": "new"}]}`,
		},
		{
			name:  "array tails carry through",
			recon: `[{"b": 2, "a": 1}, "new"]`,
			base:  `[{"a": 0, "b": 0}]`,
			want:  `[{"a": 1, "b": 2}, "new"]`,
		},
		{
			name:  "type change stops the walk",
			recon: `{"a": [1, 2]}`,
			base:  `{"a": {"x": 1}}`,
			want:  `{"a": [1, 2]}`,
		},
		{
			name:  "scalars pass through",
			recon: `42`,
			base:  `7`,
			want:  `42`,
		},
	}
	for _, test := range tests {
		recon, err := parse.ParseString(test.recon)
		if err != nil {
			t.Fatal(err)
		}
		base, err := parse.ParseString(test.base)
		if err != nil {
			t.Fatal(err)
		}
		want, err := parse.ParseString(test.want)
		if err != nil {
			t.Fatal(err)
		}
		got := preserveFields(recon, base, test.preserved)
		if !ir.Equal(got, want) {
			t.Errorf("%s: got %s, want %s", test.name,
				encode.MustString(got, encode.Compact(true)), test.want)
		}
	}
}
