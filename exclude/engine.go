package exclude

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/treepatch/go-treepatch/debug"
	"github.com/treepatch/go-treepatch/keypath"
)

// Engine answers exclusion queries for one compiled policy. Exact
// entries are compared structurally (through keypath), so quote-style
// differences between policy and record text never matter. Pattern
// rules that fail to compile are skipped with a recorded warning.
type Engine struct {
	exact    []keypath.Path
	patterns []*regexp.Regexp
	warnings []string

	fieldPatterns bool
}

// fieldPatRe detects pattern rules that target a field inside an
// array element: an escaped index bracket followed by another opening
// bracket, e.g. `\[\d+\].\['id'\]`.
var fieldPatRe = regexp.MustCompile(`\\\[\\d\+?\\\].*\\\[`)

func New(p *Policy) *Engine {
	e := &Engine{}
	for _, text := range p.ExcludedPaths {
		kp, err := keypath.Parse(text)
		if err != nil {
			e.warnings = append(e.warnings, fmt.Sprintf("excluded path %q: %v", text, err))
			continue
		}
		e.exact = append(e.exact, kp)
	}
	for _, pat := range p.ExcludedRegexPaths {
		re, err := regexp.Compile(normalizePattern(pat))
		if err != nil {
			e.warnings = append(e.warnings, fmt.Sprintf("excluded regex %q: %v", pat, err))
			continue
		}
		e.patterns = append(e.patterns, re)
		if fieldPatRe.MatchString(pat) {
			e.fieldPatterns = true
		}
	}
	return e
}

// normalizePattern rewrites escapes that Python's re accepts but RE2
// rejects; policy files in the wild quote apostrophes as \' inside
// raw strings.
func normalizePattern(pat string) string {
	pat = strings.Replace(pat, `\'`, `'`, -1)
	pat = strings.Replace(pat, `\"`, `"`, -1)
	return pat
}

// Warnings returns the rules skipped during compilation.
func (e *Engine) Warnings() []string {
	return e.warnings
}

// IsExcluded reports whether the location is excluded: an exact match
// against the exclusion set, an extension of an excluded entry's step
// sequence, or a pattern match on the serialized form.
func (e *Engine) IsExcluded(kp keypath.Path) bool {
	for _, x := range e.exact {
		if kp.HasPrefix(x) {
			if debug.Exclude() {
				debug.Logf("excluded %s under %s\n", kp, x)
			}
			return true
		}
	}
	return e.MatchesPattern(kp.String())
}

// IsExcludedText is IsExcluded over location text; unparseable text
// is only checked against the pattern rules.
func (e *Engine) IsExcludedText(text string) bool {
	kp, err := keypath.Parse(text)
	if err != nil {
		return e.MatchesPattern(text)
	}
	return e.IsExcluded(kp)
}

// MatchesPattern reports whether any pattern rule matches the text.
func (e *Engine) MatchesPattern(text string) bool {
	for _, re := range e.patterns {
		if re.MatchString(text) {
			if debug.Exclude() {
				debug.Logf("pattern %s matched %s\n", re, text)
			}
			return true
		}
	}
	return false
}

// HasFieldPatterns reports whether any pattern rule targets a field
// inside an array element, which forces selective merges on
// whole-element replacements.
func (e *Engine) HasFieldPatterns() bool {
	return e.fieldPatterns
}
