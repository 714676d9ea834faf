// Package parse loads JSON or YAML documents into IR nodes, keeping
// object fields in document order. JSON is handled as the YAML subset
// it is, so one loader covers both inputs.
package parse

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/treepatch/go-treepatch/ir"
)

func Parse(d []byte) (*ir.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(d, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if doc.Kind == 0 {
		// empty input
		return ir.Null(), nil
	}
	return fromYAML(&doc)
}

func ParseString(s string) (*ir.Node, error) {
	return Parse([]byte(s))
}

func ParseFile(path string) (*ir.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	node, err := Parse(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return node, nil
}

func fromYAML(n *yaml.Node) (*ir.Node, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return ir.Null(), nil
		}
		return fromYAML(n.Content[0])
	case yaml.AliasNode:
		return fromYAML(n.Alias)
	case yaml.MappingNode:
		res := ir.NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			val, err := fromYAML(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			res.SetField(key.Value, val)
		}
		return res, nil
	case yaml.SequenceNode:
		vals := make([]*ir.Node, len(n.Content))
		for i, c := range n.Content {
			v, err := fromYAML(c)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		return ir.FromSlice(vals), nil
	case yaml.ScalarNode:
		return fromScalar(n)
	}
	return nil, fmt.Errorf("%w: unsupported node kind %d at line %d", ErrParse, n.Kind, n.Line)
}

func fromScalar(n *yaml.Node) (*ir.Node, error) {
	switch n.ShortTag() {
	case "!!null":
		return ir.Null(), nil
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			// yaml accepts spellings strconv does not
			b = n.Value == "yes" || n.Value == "Yes" || n.Value == "on" || n.Value == "On"
		}
		return ir.FromBool(b), nil
	case "!!int":
		i, err := strconv.ParseInt(n.Value, 0, 64)
		if err != nil {
			return &ir.Node{Type: ir.NumberType, Number: n.Value}, nil
		}
		res := ir.FromInt(i)
		res.Number = n.Value
		return res, nil
	case "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return &ir.Node{Type: ir.NumberType, Number: n.Value}, nil
		}
		res := ir.FromFloat(f)
		res.Number = n.Value
		return res, nil
	default:
		return ir.FromString(n.Value), nil
	}
}
