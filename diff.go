package treepatch

import (
	"time"

	"github.com/treepatch/go-treepatch/changes"
	"github.com/treepatch/go-treepatch/debug"
	"github.com/treepatch/go-treepatch/ir"
	"github.com/treepatch/go-treepatch/keypath"
)

// Diff compares two trees and records their differences as a change
// batch, skipping excluded locations. The batch replays exactly under
// Reconstruct's semantics: sequence additions address indices past
// the base length, and sequence removals are recorded highest index
// first so in-order shifting deletes land correctly.
func Diff(base, target *ir.Node, opts ...Option) *changes.Batch {
	cfg := newConfig(opts)
	d := &differ{cfg: cfg, batch: changes.NewBatch()}
	d.diff(keypath.Path{}, base, target)
	return d.batch
}

// DiffExport wraps Diff's batch in an export envelope with metadata
// naming the compared inputs.
func DiffExport(base, target *ir.Node, file1, file2 string, opts ...Option) *changes.Export {
	batch := Diff(base, target, opts...)
	return &changes.Export{
		Metadata: &changes.Metadata{
			ComparisonTimestamp: time.Now().Format(time.RFC3339),
			File1:               file1,
			File2:               file2,
			HasDifferences:      !batch.Empty(),
		},
		Differences: batch,
		Summary:     batch.Summarize(),
	}
}

type differ struct {
	cfg   *Config
	batch *changes.Batch
}

func (d *differ) diff(kp keypath.Path, from, to *ir.Node) {
	if d.cfg.engine.IsExcluded(kp) {
		if debug.Diff() {
			debug.Logf("diff skipping excluded %s\n", kp)
		}
		return
	}
	if from.Type != to.Type {
		d.record(changes.TypeChanges, kp, &changes.Record{
			OldValue: from.Clone(),
			NewValue: to.Clone(),
			OldType:  from.Type.String(),
			NewType:  to.Type.String(),
		})
		return
	}
	switch from.Type {
	case ir.ObjectType:
		d.diffObject(kp, from, to)
	case ir.ArrayType:
		d.diffArray(kp, from, to)
	default:
		if !ir.Equiv(from, to) {
			d.record(changes.ValuesChanged, kp, &changes.Record{
				OldValue: from.Clone(),
				NewValue: to.Clone(),
			})
		}
	}
}

func (d *differ) diffObject(kp keypath.Path, from, to *ir.Node) {
	for i, f := range from.Fields {
		child := kp.Child(f)
		tv := ir.Get(to, f)
		if tv == nil {
			if !d.cfg.engine.IsExcluded(child) {
				d.record(changes.DictItemRemoved, child, &changes.Record{
					OldValue: from.Values[i].Clone(),
				})
			}
			continue
		}
		d.diff(child, from.Values[i], tv)
	}
	for i, f := range to.Fields {
		if from.FieldIndex(f) != -1 {
			continue
		}
		child := kp.Child(f)
		if d.cfg.engine.IsExcluded(child) {
			continue
		}
		d.record(changes.DictItemAdded, child, &changes.Record{
			NewValue: to.Values[i].Clone(),
		})
	}
}

func (d *differ) diffArray(kp keypath.Path, from, to *ir.Node) {
	n := min(len(from.Values), len(to.Values))
	for i := 0; i < n; i++ {
		d.diff(childIndex(kp, i), from.Values[i], to.Values[i])
	}
	for i := n; i < len(to.Values); i++ {
		child := childIndex(kp, i)
		if d.cfg.engine.IsExcluded(child) {
			continue
		}
		d.record(changes.IterableItemAdded, child, &changes.Record{
			NewValue: to.Values[i].Clone(),
		})
	}
	// highest index first, see Diff
	for i := len(from.Values) - 1; i >= n; i-- {
		child := childIndex(kp, i)
		if d.cfg.engine.IsExcluded(child) {
			continue
		}
		d.record(changes.IterableItemRemoved, child, &changes.Record{
			OldValue: from.Values[i].Clone(),
		})
	}
}

func childIndex(kp keypath.Path, i int) keypath.Path {
	res := make(keypath.Path, len(kp), len(kp)+1)
	copy(res, kp)
	return append(res, keypath.IndexStep(i))
}

func (d *differ) record(kind changes.Kind, kp keypath.Path, rec *changes.Record) {
	rec.Path = kp.String()
	if debug.Diff() {
		debug.Logf("record %s at %s\n", kind, rec.Path)
	}
	d.batch.Add(kind, rec)
}
