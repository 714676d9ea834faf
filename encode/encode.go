// Package encode renders IR nodes as JSON text, preserving object
// field order.
package encode

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/treepatch/go-treepatch/ir"
)

type EncState struct {
	depth   int
	indent  int
	compact bool

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	if !es.compact {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	default:
		return write(w, es.color(node.Type, ValueColor, scalarText(node)))
	}
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) == 0 {
		return write(w, "{}")
	}
	if err := write(w, es.color(ir.ObjectType, SepColor, "{")); err != nil {
		return err
	}
	es.depth++
	for i, f := range node.Fields {
		if i > 0 {
			if err := write(w, es.color(ir.ObjectType, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := es.newline(w); err != nil {
			return err
		}
		if err := write(w, es.color(ir.ObjectType, FieldColor, quote(f))); err != nil {
			return err
		}
		sep := ": "
		if es.compact {
			sep = ":"
		}
		if err := write(w, es.color(ir.ObjectType, SepColor, sep)); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := es.newline(w); err != nil {
		return err
	}
	return write(w, es.color(ir.ObjectType, SepColor, "}"))
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return write(w, "[]")
	}
	if err := write(w, es.color(ir.ArrayType, SepColor, "[")); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := write(w, es.color(ir.ArrayType, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := es.newline(w); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := es.newline(w); err != nil {
		return err
	}
	return write(w, es.color(ir.ArrayType, SepColor, "]"))
}

func scalarText(node *ir.Node) string {
	switch node.Type {
	case ir.NullType:
		return "null"
	case ir.BoolType:
		return strconv.FormatBool(node.Bool)
	case ir.NumberType:
		if node.Number != "" {
			return node.Number
		}
		if node.Int64 != nil {
			return strconv.FormatInt(*node.Int64, 10)
		}
		if node.Float64 != nil {
			return strconv.FormatFloat(*node.Float64, 'g', -1, 64)
		}
		return "0"
	case ir.StringType:
		return quote(node.String)
	}
	return "null"
}

func quote(s string) string {
	d, err := json.Marshal(s)
	if err != nil {
		return strconv.Quote(s)
	}
	return string(d)
}

func (es *EncState) color(t ir.Type, attr ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, attr, s)
}

func (es *EncState) newline(w io.Writer) error {
	if es.compact {
		return nil
	}
	return write(w, "\n"+strings.Repeat(" ", es.depth*es.indent))
}

func write(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
