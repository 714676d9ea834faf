package ir

import (
	"fmt"

	"github.com/treepatch/go-treepatch/keypath"
)

// GetPath resolves a step sequence against the tree and returns the
// node it addresses. The returned node is shared with the tree, not a
// copy. Missing fields, out-of-bounds indices, and non-containers
// mid-path all yield ErrPathNotFound.
func (y *Node) GetPath(p keypath.Path) (*Node, error) {
	res := y
	for _, step := range p {
		switch {
		case step.Field != nil:
			if res.Type != ObjectType {
				return nil, fmt.Errorf("%w: field %q of %s", ErrPathNotFound, *step.Field, res.Type)
			}
			next := Get(res, *step.Field)
			if next == nil {
				return nil, fmt.Errorf("%w: no field %q", ErrPathNotFound, *step.Field)
			}
			res = next
		case step.Index != nil:
			if res.Type != ArrayType {
				return nil, fmt.Errorf("%w: index %d of %s", ErrPathNotFound, *step.Index, res.Type)
			}
			index := *step.Index
			if index < 0 || index >= len(res.Values) {
				return nil, fmt.Errorf("%w: index %d (len %d)", ErrPathNotFound, index, len(res.Values))
			}
			res = res.Values[index]
		}
	}
	return res, nil
}

// SetPath writes v at the location addressed by p, auto-creating
// object fields and auto-extending arrays along the way. Intermediate
// gaps are filled with empty objects, final-step array gaps with
// nulls. A non-container mid-path yields ErrPathNotFound; the empty
// path is not assignable.
func (y *Node) SetPath(p keypath.Path, v *Node) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty path is not assignable", ErrPathNotFound)
	}
	parent, last := p.Parent()
	cur := y
	for _, step := range parent {
		switch {
		case step.Field != nil:
			if cur.Type != ObjectType {
				return fmt.Errorf("%w: field %q of %s", ErrPathNotFound, *step.Field, cur.Type)
			}
			next := Get(cur, *step.Field)
			if next == nil {
				next = NewObject()
				cur.SetField(*step.Field, next)
			}
			cur = next
		case step.Index != nil:
			if cur.Type != ArrayType {
				return fmt.Errorf("%w: index %d of %s", ErrPathNotFound, *step.Index, cur.Type)
			}
			for len(cur.Values) <= *step.Index {
				cur.Values = append(cur.Values, NewObject())
			}
			cur = cur.Values[*step.Index]
		}
	}
	switch {
	case last.Field != nil:
		if cur.Type != ObjectType {
			return fmt.Errorf("%w: field %q of %s", ErrPathNotFound, *last.Field, cur.Type)
		}
		cur.SetField(*last.Field, v)
	case last.Index != nil:
		if cur.Type != ArrayType {
			return fmt.Errorf("%w: index %d of %s", ErrPathNotFound, *last.Index, cur.Type)
		}
		for len(cur.Values) <= *last.Index {
			cur.Values = append(cur.Values, Null())
		}
		cur.Values[*last.Index] = v
	}
	return nil
}

// DeletePath removes the node addressed by p. An absent final field
// or out-of-bounds final index is a no-op; a missing ancestor yields
// ErrPathNotFound.
func (y *Node) DeletePath(p keypath.Path) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty path is not deletable", ErrPathNotFound)
	}
	parentPath, last := p.Parent()
	parent, err := y.GetPath(parentPath)
	if err != nil {
		return err
	}
	switch {
	case last.Field != nil:
		if parent.Type != ObjectType {
			return fmt.Errorf("%w: field %q of %s", ErrPathNotFound, *last.Field, parent.Type)
		}
		parent.DeleteField(*last.Field)
	case last.Index != nil:
		if parent.Type != ArrayType {
			return fmt.Errorf("%w: index %d of %s", ErrPathNotFound, *last.Index, parent.Type)
		}
		parent.DeleteIndex(*last.Index)
	}
	return nil
}
