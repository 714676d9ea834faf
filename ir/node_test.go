package ir_test

import (
	"testing"

	"github.com/treepatch/go-treepatch/ir"
)

func TestCloneIsDeep(t *testing.T) {
	orig := mustParse(t, `{"a": {"b": [1, 2]}, "s": "x"}`)
	clone := orig.Clone()
	if !ir.Equal(orig, clone) {
		t.Fatal("clone differs from original")
	}
	arr := ir.Get(ir.Get(clone, "a"), "b")
	arr.Values[0] = ir.FromInt(99)
	clone.SetField("s", ir.FromString("changed"))
	if !ir.Equal(orig, mustParse(t, `{"a": {"b": [1, 2]}, "s": "x"}`)) {
		t.Error("mutating the clone reached the original")
	}
}

func TestSetFieldReplacesInPlace(t *testing.T) {
	n := mustParse(t, `{"a": 1, "b": 2}`)
	n.SetField("a", ir.FromInt(10))
	if n.Fields[0] != "a" || n.Fields[1] != "b" {
		t.Errorf("fields = %v", n.Fields)
	}
	if v := ir.Get(n, "a"); v.Int64 == nil || *v.Int64 != 10 {
		t.Errorf("a = %+v", v)
	}
}

func TestDeleteField(t *testing.T) {
	n := mustParse(t, `{"a": 1, "b": 2, "c": 3}`)
	n.DeleteField("b")
	if len(n.Fields) != 2 || n.Fields[0] != "a" || n.Fields[1] != "c" {
		t.Errorf("fields = %v", n.Fields)
	}
	n.DeleteField("missing")
	if len(n.Fields) != 2 {
		t.Errorf("fields = %v", n.Fields)
	}
}

func TestDeleteIndex(t *testing.T) {
	n := mustParse(t, `[1, 2, 3]`)
	n.DeleteIndex(1)
	if !ir.Equal(n, mustParse(t, `[1, 3]`)) {
		t.Errorf("values = %v", n.Values)
	}
	n.DeleteIndex(7)
	if len(n.Values) != 2 {
		t.Errorf("out-of-bounds delete changed the array: %v", n.Values)
	}
}
