package changes

import (
	"errors"
	"fmt"

	"github.com/treepatch/go-treepatch/ir"
)

// ErrNoDifferences reports an export without a differences key, the
// one decoding failure that is fatal to a whole run.
var ErrNoDifferences = errors.New(`export has no "differences" key`)

// DecodeExport interprets a parsed export document. The `differences`
// key is required; metadata and summary are optional.
func DecodeExport(doc *ir.Node) (*Export, error) {
	if doc.Type != ir.ObjectType {
		return nil, fmt.Errorf("export is %s, not Object", doc.Type)
	}
	diffs := ir.Get(doc, "differences")
	if diffs == nil {
		return nil, ErrNoDifferences
	}
	batch, err := DecodeBatch(diffs)
	if err != nil {
		return nil, err
	}
	res := &Export{Differences: batch}
	if meta := ir.Get(doc, "metadata"); meta != nil && meta.Type == ir.ObjectType {
		res.Metadata = decodeMetadata(meta)
	}
	res.Summary = batch.Summarize()
	return res, nil
}

func decodeMetadata(meta *ir.Node) *Metadata {
	res := &Metadata{}
	if v := ir.Get(meta, "comparison_timestamp"); v != nil {
		res.ComparisonTimestamp = v.String
	}
	if v := ir.Get(meta, "file1"); v != nil {
		res.File1 = v.String
	}
	if v := ir.Get(meta, "file2"); v != nil {
		res.File2 = v.String
	}
	if v := ir.Get(meta, "has_differences"); v != nil {
		res.HasDifferences = v.Bool
	}
	return res
}

// DecodeBatch interprets the differences mapping. Unknown kinds are
// carried through so callers can report them.
func DecodeBatch(diffs *ir.Node) (*Batch, error) {
	if diffs.Type != ir.ObjectType {
		return nil, fmt.Errorf("differences is %s, not Object", diffs.Type)
	}
	res := NewBatch()
	for i, field := range diffs.Fields {
		recs, err := decodeRecords(diffs.Values[i])
		if err != nil {
			return nil, fmt.Errorf("differences[%q]: %w", field, err)
		}
		res.Add(Kind(field), recs...)
	}
	return res, nil
}

// decodeRecords accepts the two legacy record encodings: a list of
// record objects (or bare path strings), and a mapping keyed by
// location text.
func decodeRecords(node *ir.Node) ([]*Record, error) {
	switch node.Type {
	case ir.ArrayType:
		res := make([]*Record, 0, len(node.Values))
		for _, v := range node.Values {
			rec, err := decodeListed(v)
			if err != nil {
				return nil, err
			}
			res = append(res, rec)
		}
		return res, nil
	case ir.ObjectType:
		res := make([]*Record, 0, len(node.Fields))
		for i, path := range node.Fields {
			res = append(res, decodeKeyed(path, node.Values[i]))
		}
		return res, nil
	case ir.NullType:
		return nil, nil
	default:
		return nil, fmt.Errorf("records are %s, not Array or Object", node.Type)
	}
}

func decodeListed(node *ir.Node) (*Record, error) {
	switch node.Type {
	case ir.StringType:
		// bare path, value not captured
		return &Record{Path: node.String}, nil
	case ir.ObjectType:
		path := ir.Get(node, "path")
		if path == nil || path.Type != ir.StringType {
			return nil, fmt.Errorf("record has no path")
		}
		rec := &Record{Path: path.String}
		rec.OldValue = ir.Get(node, "old_value")
		rec.NewValue = ir.Get(node, "new_value")
		if rec.NewValue == nil {
			rec.NewValue = ir.Get(node, "value")
		}
		if v := ir.Get(node, "old_type"); v != nil {
			rec.OldType = v.String
		}
		if v := ir.Get(node, "new_type"); v != nil {
			rec.NewType = v.String
		}
		return rec, nil
	default:
		return nil, fmt.Errorf("record is %s, not Object or String", node.Type)
	}
}

func decodeKeyed(path string, node *ir.Node) *Record {
	rec := &Record{Path: path}
	if node.Type != ir.ObjectType {
		rec.NewValue = node
		return rec
	}
	rec.OldValue = ir.Get(node, "old_value")
	rec.NewValue = ir.Get(node, "new_value")
	if rec.NewValue == nil {
		rec.NewValue = ir.Get(node, "value")
	}
	if rec.OldValue == nil && rec.NewValue == nil {
		// not a record object after all, the mapping value is
		// the new value itself
		rec.NewValue = node
		return rec
	}
	if v := ir.Get(node, "old_type"); v != nil {
		rec.OldType = v.String
	}
	if v := ir.Get(node, "new_type"); v != nil {
		rec.NewType = v.String
	}
	return rec
}
