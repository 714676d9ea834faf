// Package treepatch computes and replays structural differences
// between document trees under an exclusion policy. Reconstruct
// replays a change batch onto a base tree; Diff produces such a
// batch from two trees.
package treepatch

import (
	"errors"
	"fmt"

	"github.com/treepatch/go-treepatch/changes"
	"github.com/treepatch/go-treepatch/debug"
	"github.com/treepatch/go-treepatch/ir"
	"github.com/treepatch/go-treepatch/keypath"
)

// Reconstruct replays a change batch onto base and returns the new
// tree plus per-record events. The base tree is never mutated; the
// engine works on a private deep copy. Record failures become Warned
// events, not errors; the returned error covers only top-level
// structural problems.
//
// Records replay in a fixed state order: mapping removals, value
// changes, type changes, sequence additions, sequence removals,
// mapping additions, then the field preservation pass.
func Reconstruct(base *ir.Node, batch *changes.Batch, opts ...Option) (*ir.Node, []Event, error) {
	if base == nil {
		return nil, nil, errors.New("no base tree")
	}
	if batch == nil {
		return nil, nil, errors.New("no change batch")
	}
	cfg := newConfig(opts)
	r := &recon{cfg: cfg, work: base.Clone()}
	for _, w := range cfg.engine.Warnings() {
		r.events = append(r.events, Event{Action: Warned, Reason: w})
	}

	for _, kind := range changes.Kinds() {
		for _, rec := range batch.Of(kind) {
			r.apply(kind, rec)
		}
	}
	r.work = preserveFields(r.work, base, cfg.preserved)
	return r.work, r.events, nil
}

type recon struct {
	cfg    *Config
	work   *ir.Node
	events []Event
}

func (r *recon) apply(kind changes.Kind, rec *changes.Record) {
	if debug.Recon() {
		debug.Logf("replay %s at %s\n", kind, rec.Path)
	}
	kp, err := rec.KeyPath()
	if err != nil {
		r.warn(kind, rec, fmt.Sprintf("malformed path: %v", err))
		return
	}
	if r.cfg.engine.IsExcluded(kp) {
		r.skip(kind, rec, "excluded")
		return
	}
	switch kind {
	case changes.DictItemRemoved:
		r.applyRemoved(kind, rec, kp)
	case changes.ValuesChanged, changes.TypeChanges:
		r.applyValueChanged(kind, rec, kp)
	case changes.IterableItemAdded:
		r.applyItemAdded(kind, rec, kp)
	case changes.IterableItemRemoved:
		r.applyItemRemoved(kind, rec, kp)
	case changes.DictItemAdded:
		r.applyAdded(kind, rec, kp)
	default:
		r.warn(kind, rec, "unknown change kind")
	}
}

func (r *recon) applyRemoved(kind changes.Kind, rec *changes.Record, kp keypath.Path) {
	if len(kp) == 0 {
		r.warn(kind, rec, "cannot remove the root")
		return
	}
	if err := r.work.DeletePath(kp); err != nil {
		r.warn(kind, rec, err.Error())
		return
	}
	r.applied(kind, rec)
}

func (r *recon) applyValueChanged(kind changes.Kind, rec *changes.Record, kp keypath.Path) {
	if !rec.NewCaptured() {
		r.skip(kind, rec, "new value not captured")
		return
	}
	newValue := rec.NewValue
	if r.isElementReplacement(kp, newValue) {
		newValue = r.selectiveMerge(kp, newValue)
	}
	if err := r.work.SetPath(kp, newValue.Clone()); err != nil {
		r.warn(kind, rec, err.Error())
		return
	}
	r.applied(kind, rec)
}

// isElementReplacement reports whether the record replaces a whole
// object element of a sequence while the policy carries field-level
// pattern exclusions, which forces a selective merge.
func (r *recon) isElementReplacement(kp keypath.Path, newValue *ir.Node) bool {
	if len(kp) == 0 || !kp[len(kp)-1].IsIndex() {
		return false
	}
	if newValue.Type != ir.ObjectType {
		return false
	}
	return r.cfg.engine.HasFieldPatterns()
}

// selectiveMerge applies a whole-element replacement keeping every
// field whose location matches an exclusion pattern at its current
// value in the working tree.
func (r *recon) selectiveMerge(kp keypath.Path, newValue *ir.Node) *ir.Node {
	current, err := r.work.GetPath(kp)
	if err != nil || current.Type != ir.ObjectType {
		return newValue
	}
	merged := newValue.Clone()
	for i, field := range merged.Fields {
		if !r.cfg.engine.MatchesPattern(kp.Child(field).String()) {
			continue
		}
		cur := ir.Get(current, field)
		if cur == nil {
			continue
		}
		if debug.Recon() {
			debug.Logf("preserved field %s of %s\n", field, kp)
		}
		merged.Values[i] = cur.Clone()
	}
	return merged
}

func (r *recon) applyItemAdded(kind changes.Kind, rec *changes.Record, kp keypath.Path) {
	if len(kp) == 0 || !kp[len(kp)-1].IsIndex() {
		r.warn(kind, rec, "final step is not a sequence index")
		return
	}
	if !rec.NewCaptured() {
		r.skip(kind, rec, "new value not captured")
		return
	}
	parent, err := r.work.GetPath(kp[:len(kp)-1])
	if err != nil {
		r.warn(kind, rec, err.Error())
		return
	}
	if parent.Type != ir.ArrayType {
		r.warn(kind, rec, fmt.Sprintf("parent is %s, not Array", parent.Type))
		return
	}
	// added-at-index means set-at-index, auto-extending with nulls
	if err := r.work.SetPath(kp, rec.NewValue.Clone()); err != nil {
		r.warn(kind, rec, err.Error())
		return
	}
	r.applied(kind, rec)
}

func (r *recon) applyItemRemoved(kind changes.Kind, rec *changes.Record, kp keypath.Path) {
	if len(kp) == 0 || !kp[len(kp)-1].IsIndex() {
		r.warn(kind, rec, "final step is not a sequence index")
		return
	}
	parent, err := r.work.GetPath(kp[:len(kp)-1])
	if err != nil {
		r.warn(kind, rec, err.Error())
		return
	}
	if parent.Type != ir.ArrayType {
		r.warn(kind, rec, fmt.Sprintf("parent is %s, not Array", parent.Type))
		return
	}
	index := *kp[len(kp)-1].Index
	if index < 0 || index >= len(parent.Values) {
		r.warn(kind, rec, fmt.Sprintf("%v: index %d (len %d)", ir.ErrIndexOutOfRange, index, len(parent.Values)))
		return
	}
	if rec.OldCaptured() && !ir.Equiv(parent.Values[index], rec.OldValue) {
		r.warn(kind, rec, "element does not match recorded old value")
		return
	}
	parent.DeleteIndex(index)
	r.applied(kind, rec)
}

func (r *recon) applyAdded(kind changes.Kind, rec *changes.Record, kp keypath.Path) {
	if len(kp) == 0 {
		r.warn(kind, rec, "cannot add the root")
		return
	}
	newValue := rec.NewValue
	if !rec.NewCaptured() {
		if r.cfg.fallback == nil {
			r.skip(kind, rec, "value not captured and no fallback tree")
			return
		}
		v, err := r.cfg.fallback.GetPath(kp)
		if err != nil {
			r.warn(kind, rec, fmt.Sprintf("fallback: %v", err))
			return
		}
		newValue = v
	}
	if err := r.work.SetPath(kp, newValue.Clone()); err != nil {
		r.warn(kind, rec, err.Error())
		return
	}
	r.applied(kind, rec)
}

func (r *recon) applied(kind changes.Kind, rec *changes.Record) {
	r.events = append(r.events, Event{Kind: kind, Path: rec.Path, Action: Applied})
}

func (r *recon) skip(kind changes.Kind, rec *changes.Record, reason string) {
	r.events = append(r.events, Event{Kind: kind, Path: rec.Path, Action: Skipped, Reason: reason})
}

func (r *recon) warn(kind changes.Kind, rec *changes.Record, reason string) {
	r.events = append(r.events, Event{Kind: kind, Path: rec.Path, Action: Warned, Reason: reason})
}
