package treepatch

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/treepatch/go-treepatch/changes"
	"github.com/treepatch/go-treepatch/encode"
	"github.com/treepatch/go-treepatch/ir"
)

type ReportOption func(*reportState)

// ReportColors enables ANSI colors, including character-level inline
// diffs for changed string values.
func ReportColors(v bool) ReportOption {
	return func(rs *reportState) { rs.colors = v }
}

type reportState struct {
	colors bool
}

var kindHeadings = map[changes.Kind]string{
	changes.DictItemAdded:       "added",
	changes.DictItemRemoved:     "removed",
	changes.ValuesChanged:       "changed",
	changes.TypeChanges:         "type changed",
	changes.IterableItemAdded:   "sequence item added",
	changes.IterableItemRemoved: "sequence item removed",
}

// WriteReport renders a change batch for humans, grouped by kind with
// per-kind counts.
func WriteReport(w io.Writer, batch *changes.Batch, opts ...ReportOption) error {
	rs := &reportState{}
	for _, opt := range opts {
		opt(rs)
	}
	if batch.Empty() {
		_, err := fmt.Fprintln(w, "no differences")
		return err
	}
	for _, kind := range changes.Kinds() {
		recs := batch.Of(kind)
		if len(recs) == 0 {
			continue
		}
		heading := fmt.Sprintf("%s (%d):", kindHeadings[kind], len(recs))
		if rs.colors {
			heading = color.New(color.Bold).Sprint(heading)
		}
		if _, err := fmt.Fprintln(w, heading); err != nil {
			return err
		}
		for _, rec := range recs {
			if _, err := fmt.Fprintf(w, "  %s%s\n", rec.Path, rs.describe(kind, rec)); err != nil {
				return err
			}
		}
	}
	s := batch.Summarize()
	_, err := fmt.Fprintf(w, "%d total changes\n", s.TotalChanges)
	return err
}

func (rs *reportState) describe(kind changes.Kind, rec *changes.Record) string {
	switch kind {
	case changes.DictItemAdded, changes.IterableItemAdded:
		if !rec.NewCaptured() {
			return ": (value not captured)"
		}
		return ": " + rs.value(rec.NewValue)
	case changes.DictItemRemoved, changes.IterableItemRemoved:
		if !rec.OldCaptured() {
			return ""
		}
		return ": " + rs.value(rec.OldValue)
	case changes.TypeChanges:
		return fmt.Sprintf(": %s -> %s (%s -> %s)",
			rs.value(rec.OldValue), rs.value(rec.NewValue), rec.OldType, rec.NewType)
	default:
		return ": " + rs.change(rec.OldValue, rec.NewValue)
	}
}

func (rs *reportState) value(v *ir.Node) string {
	if v == nil {
		return "null"
	}
	return encode.MustString(v, encode.Compact(true))
}

// change renders old -> new; for two strings under colors it shows a
// character-level inline diff instead.
func (rs *reportState) change(oldVal, newVal *ir.Node) string {
	if rs.colors &&
		oldVal != nil && oldVal.Type == ir.StringType &&
		newVal != nil && newVal.Type == ir.StringType {
		dmp := diffpatch.New()
		diffs := dmp.DiffMain(oldVal.String, newVal.String, false)
		diffs = dmp.DiffCleanupSemantic(diffs)
		return dmp.DiffPrettyText(diffs)
	}
	return rs.value(oldVal) + " -> " + rs.value(newVal)
}
