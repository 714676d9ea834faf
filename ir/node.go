// Package ir defines the document tree model shared by the diff
// producer and the reconstruction engine: a tagged variant over
// objects with ordered fields, arrays, and scalar leaves.
package ir

import "strconv"

type Node struct {
	Type Type

	// ObjectType: Fields holds keys in document order, Values the
	// corresponding children. ArrayType: Values only.
	Fields []string
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	if y.Fields != nil {
		dst.Fields = make([]string, len(y.Fields))
		copy(dst.Fields, y.Fields)
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Number = y.Number
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	return dst
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:   NumberType,
		Number: strconv.FormatInt(v, 10),
		Int64:  &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Number:  strconv.FormatFloat(f, 'g', -1, 64),
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func NewObject() *Node {
	return &Node{Type: ObjectType}
}

func FromSlice(ySlice []*Node) *Node {
	return &Node{Type: ArrayType, Values: ySlice}
}

// Entry is one ordered object field.
type Entry struct {
	Key string
	Val *Node
}

func FromEntries(entries []Entry) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]string, len(entries)),
		Values: make([]*Node, len(entries)),
	}
	for i := range entries {
		res.Fields[i] = entries[i].Key
		res.Values[i] = entries[i].Val
	}
	return res
}

// FieldIndex returns the position of field in an object, or -1.
func (y *Node) FieldIndex(field string) int {
	for i := range y.Fields {
		if y.Fields[i] == field {
			return i
		}
	}
	return -1
}

// Get returns the value of field in an object, or nil.
func Get(y *Node, field string) *Node {
	i := y.FieldIndex(field)
	if i == -1 {
		return nil
	}
	return y.Values[i]
}

// SetField replaces the value of field, appending the field if absent.
func (y *Node) SetField(field string, v *Node) {
	i := y.FieldIndex(field)
	if i == -1 {
		y.Fields = append(y.Fields, field)
		y.Values = append(y.Values, v)
		return
	}
	y.Values[i] = v
}

// DeleteField removes field from an object; absent fields are a no-op.
func (y *Node) DeleteField(field string) {
	i := y.FieldIndex(field)
	if i == -1 {
		return
	}
	y.Fields = append(y.Fields[:i], y.Fields[i+1:]...)
	y.Values = append(y.Values[:i], y.Values[i+1:]...)
}

// DeleteIndex removes the element at index from an array; out of
// bounds indices are a no-op.
func (y *Node) DeleteIndex(index int) {
	if index < 0 || index >= len(y.Values) {
		return
	}
	y.Values = append(y.Values[:index], y.Values[index+1:]...)
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
