// Package changes defines the change-record taxonomy produced by
// comparing two document trees, and the export envelope those records
// travel in. Both legacy export encodings are accepted on read: a
// list of record objects, and a mapping keyed by location text.
package changes

import (
	"github.com/treepatch/go-treepatch/ir"
	"github.com/treepatch/go-treepatch/keypath"
)

type Kind string

const (
	DictItemAdded       Kind = "dictionary_item_added"
	DictItemRemoved     Kind = "dictionary_item_removed"
	ValuesChanged       Kind = "values_changed"
	TypeChanges         Kind = "type_changes"
	IterableItemAdded   Kind = "iterable_item_added"
	IterableItemRemoved Kind = "iterable_item_removed"
)

// Kinds lists all change kinds in replay order: removals first so
// later writes never collide with soon-to-be-deleted structure,
// additions last, sequence edits in between.
func Kinds() []Kind {
	return []Kind{
		DictItemRemoved,
		ValuesChanged,
		TypeChanges,
		IterableItemAdded,
		IterableItemRemoved,
		DictItemAdded,
	}
}

// NotPresent is the wire sentinel for a value the producer did not
// capture.
const NotPresent = "not present"

// Record is one recorded change. Which of the value fields are
// meaningful depends on the kind; OldType/NewType accompany
// TypeChanges only.
type Record struct {
	Path     string
	OldValue *ir.Node
	NewValue *ir.Node
	OldType  string
	NewType  string
}

// KeyPath parses the record's location descriptor.
func (r *Record) KeyPath() (keypath.Path, error) {
	return keypath.Parse(r.Path)
}

// NewCaptured reports whether the record carries a usable new value,
// as opposed to none or the NotPresent sentinel.
func (r *Record) NewCaptured() bool {
	return captured(r.NewValue)
}

// OldCaptured reports whether the record carries a usable old value.
func (r *Record) OldCaptured() bool {
	return captured(r.OldValue)
}

func captured(v *ir.Node) bool {
	if v == nil {
		return false
	}
	return v.Type != ir.StringType || v.String != NotPresent
}

// Batch is a mapping from change kind to the ordered records of that
// kind. Order within a kind is producer insertion order and is
// significant on replay.
type Batch struct {
	Records map[Kind][]*Record
}

func NewBatch() *Batch {
	return &Batch{Records: map[Kind][]*Record{}}
}

func (b *Batch) Add(kind Kind, recs ...*Record) {
	b.Records[kind] = append(b.Records[kind], recs...)
}

func (b *Batch) Of(kind Kind) []*Record {
	return b.Records[kind]
}

func (b *Batch) Len() int {
	n := 0
	for _, recs := range b.Records {
		n += len(recs)
	}
	return n
}

func (b *Batch) Empty() bool {
	return b.Len() == 0
}

// Export is the envelope a batch is written in.
type Export struct {
	Metadata    *Metadata
	Differences *Batch
	Summary     *Summary
}

type Metadata struct {
	ComparisonTimestamp string
	File1               string
	File2               string
	HasDifferences      bool
}

type Summary struct {
	TotalChanges int
	ChangeTypes  map[Kind]int
}

// Summarize recomputes the summary from the batch.
func (b *Batch) Summarize() *Summary {
	s := &Summary{ChangeTypes: map[Kind]int{}}
	for kind, recs := range b.Records {
		if len(recs) == 0 {
			continue
		}
		s.ChangeTypes[kind] = len(recs)
		s.TotalChanges += len(recs)
	}
	return s
}
