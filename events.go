package treepatch

import (
	"fmt"

	"github.com/treepatch/go-treepatch/changes"
)

type Action int

const (
	// Applied: the record was replayed onto the working tree.
	Applied Action = iota
	// Skipped: the record was deliberately not replayed (excluded
	// location, sentinel value with no fallback).
	Skipped
	// Warned: the record could not be replayed (malformed path,
	// missing location, out-of-bounds index, value mismatch).
	Warned
)

func (a Action) String() string {
	switch a {
	case Applied:
		return "applied"
	case Skipped:
		return "skipped"
	case Warned:
		return "warning"
	}
	return "<unknown action>"
}

// Event is the per-record outcome of a reconstruction run. No single
// record's failure aborts a run; callers decide how to surface the
// accumulated events.
type Event struct {
	Kind   changes.Kind
	Path   string
	Action Action
	Reason string
}

func (e Event) String() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s %s %s", e.Action, e.Kind, e.Path)
	}
	return fmt.Sprintf("%s %s %s: %s", e.Action, e.Kind, e.Path, e.Reason)
}
