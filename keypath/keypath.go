// Package keypath implements the textual location descriptors used by
// change records, in the form emitted by deep-diff exports:
//
//	root['tasks'][0]['name']
//
// A descriptor is the literal marker "root" followed by bracketed steps.
// Quoted steps address object fields, unquoted integer steps address
// array indices. Parse and String round-trip modulo quote style.
package keypath

import (
	"fmt"
	"strconv"
	"strings"
)

const rootMarker = "root"

// Step is one navigation step: exactly one of Field, Index is set.
type Step struct {
	Field *string
	Index *int
}

func FieldStep(f string) Step {
	return Step{Field: &f}
}

func IndexStep(i int) Step {
	return Step{Index: &i}
}

func (s Step) IsIndex() bool {
	return s.Index != nil
}

// Path is an ordered sequence of steps from the tree root.
type Path []Step

// Parse parses a textual location descriptor into a Path. A bare "root"
// yields the empty path addressing the whole tree.
func Parse(p string) (Path, error) {
	rest, ok := strings.CutPrefix(p, rootMarker)
	if !ok {
		return nil, fmt.Errorf("%w: %q should start with %q", ErrMalformedPath, p, rootMarker)
	}
	var res Path
	for len(rest) > 0 {
		if rest[0] != '[' {
			return nil, fmt.Errorf("%w: expected '[' at %q", ErrMalformedPath, rest)
		}
		i := strings.IndexByte(rest, ']')
		if i == -1 {
			return nil, fmt.Errorf("%w: no ']' closing %q", ErrMalformedPath, rest)
		}
		step, err := parseToken(rest[1:i])
		if err != nil {
			return nil, err
		}
		res = append(res, step)
		rest = rest[i+1:]
	}
	return res, nil
}

func parseToken(tok string) (Step, error) {
	if len(tok) == 0 {
		return Step{}, fmt.Errorf("%w: empty step", ErrMalformedPath)
	}
	switch tok[0] {
	case '\'', '"':
		if len(tok) < 2 || tok[len(tok)-1] != tok[0] {
			return Step{}, fmt.Errorf("%w: unterminated quote in %q", ErrMalformedPath, tok)
		}
		return FieldStep(unescape(tok[1:len(tok)-1], tok[0])), nil
	}
	if idx, err := strconv.Atoi(tok); err == nil {
		return IndexStep(idx), nil
	}
	return FieldStep(tok), nil
}

func unescape(s string, quote byte) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	res := make([]byte, 0, len(s))
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !escaped && c == '\\' && i+1 < len(s) && s[i+1] == quote {
			escaped = true
			continue
		}
		escaped = false
		res = append(res, c)
	}
	return string(res)
}

// String renders the canonical textual form: fields single-quoted,
// indices bare.
func (p Path) String() string {
	var buf strings.Builder
	buf.WriteString(rootMarker)
	for _, s := range p {
		if s.Index != nil {
			buf.WriteByte('[')
			buf.WriteString(strconv.Itoa(*s.Index))
			buf.WriteByte(']')
			continue
		}
		buf.WriteString("['")
		buf.WriteString(strings.Replace(*s.Field, "'", "\\'", -1))
		buf.WriteString("']")
	}
	return buf.String()
}

func (a Step) Equal(b Step) bool {
	if a.Index != nil {
		return b.Index != nil && *a.Index == *b.Index
	}
	return b.Field != nil && *a.Field == *b.Field
}

func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if !p[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// HasPrefix reports whether p starts with all of prefix's steps.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) > len(p) {
		return false
	}
	return p[:len(prefix)].Equal(prefix)
}

// Parent returns the path without its final step, and that step.
// Calling Parent on the empty path is invalid.
func (p Path) Parent() (Path, Step) {
	return p[:len(p)-1], p[len(p)-1]
}

// Child returns p extended by a field step, without sharing storage.
func (p Path) Child(field string) Path {
	res := make(Path, len(p), len(p)+1)
	copy(res, p)
	return append(res, FieldStep(field))
}
