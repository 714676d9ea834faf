package changes

import (
	"github.com/treepatch/go-treepatch/ir"
)

// ToNode renders the export envelope as a document tree in the list
// encoding, the shape new exports are written in.
func (x *Export) ToNode() *ir.Node {
	entries := make([]ir.Entry, 0, 3)
	if x.Metadata != nil {
		entries = append(entries, ir.Entry{Key: "metadata", Val: x.Metadata.toNode()})
	}
	entries = append(entries, ir.Entry{Key: "differences", Val: x.Differences.ToNode()})
	if x.Summary == nil {
		x.Summary = x.Differences.Summarize()
	}
	entries = append(entries, ir.Entry{Key: "summary", Val: x.Summary.toNode()})
	return ir.FromEntries(entries)
}

func (m *Metadata) toNode() *ir.Node {
	return ir.FromEntries([]ir.Entry{
		{Key: "comparison_timestamp", Val: ir.FromString(m.ComparisonTimestamp)},
		{Key: "file1", Val: ir.FromString(m.File1)},
		{Key: "file2", Val: ir.FromString(m.File2)},
		{Key: "has_differences", Val: ir.FromBool(m.HasDifferences)},
	})
}

func (s *Summary) toNode() *ir.Node {
	kinds := ir.NewObject()
	for _, kind := range Kinds() {
		n, ok := s.ChangeTypes[kind]
		if !ok {
			continue
		}
		kinds.SetField(string(kind), ir.FromInt(int64(n)))
	}
	return ir.FromEntries([]ir.Entry{
		{Key: "total_changes", Val: ir.FromInt(int64(s.TotalChanges))},
		{Key: "change_types", Val: kinds},
	})
}

// ToNode renders the batch in the list encoding, kinds in replay
// order, records in insertion order.
func (b *Batch) ToNode() *ir.Node {
	res := ir.NewObject()
	for _, kind := range Kinds() {
		recs := b.Records[kind]
		if len(recs) == 0 {
			continue
		}
		vals := make([]*ir.Node, len(recs))
		for i, rec := range recs {
			vals[i] = rec.toNode(kind)
		}
		res.SetField(string(kind), ir.FromSlice(vals))
	}
	return res
}

func (r *Record) toNode(kind Kind) *ir.Node {
	entries := []ir.Entry{
		{Key: "path", Val: ir.FromString(r.Path)},
	}
	oldVal, newVal := r.OldValue, r.NewValue
	if oldVal == nil {
		oldVal = ir.FromString(NotPresent)
	}
	if newVal == nil {
		newVal = ir.FromString(NotPresent)
	}
	switch kind {
	case DictItemAdded, IterableItemAdded:
		entries = append(entries, ir.Entry{Key: "new_value", Val: newVal})
	case DictItemRemoved, IterableItemRemoved:
		entries = append(entries, ir.Entry{Key: "old_value", Val: oldVal})
	case TypeChanges:
		entries = append(entries,
			ir.Entry{Key: "old_value", Val: oldVal},
			ir.Entry{Key: "new_value", Val: newVal},
			ir.Entry{Key: "old_type", Val: ir.FromString(r.OldType)},
			ir.Entry{Key: "new_type", Val: ir.FromString(r.NewType)},
		)
	default:
		entries = append(entries,
			ir.Entry{Key: "old_value", Val: oldVal},
			ir.Entry{Key: "new_value", Val: newVal},
		)
	}
	return ir.FromEntries(entries)
}
