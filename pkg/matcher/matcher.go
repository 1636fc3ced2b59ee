// Package matcher scans canonical sentences against a lexicon.
//
// The lexicon is compiled once into an Aho-Corasick automaton that
// reports which terms occur in a text; a precise pass then locates each
// occurrence and verifies word boundaries. Built matchers are immutable
// and safe to share across concurrent scans.
package matcher

import (
	"fmt"

	"github.com/cloudflare/ahocorasick"

	"github.com/veilbreak/veilbreak/pkg/sentence"
	"github.com/veilbreak/veilbreak/pkg/types"
)

// Mode selects how matches interact with word boundaries.
type Mode int

const (
	// ModeWholeWord accepts a match only when it exactly spans one or
	// more contiguous word runs. "ell" does not match inside "hello".
	ModeWholeWord Mode = iota

	// ModeSubstring accepts any occurrence regardless of boundaries.
	ModeSubstring
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeWholeWord:
		return "whole-word"
	case ModeSubstring:
		return "substring"
	default:
		return "unknown"
	}
}

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "whole-word", "word":
		return ModeWholeWord, nil
	case "substring":
		return ModeSubstring, nil
	default:
		return 0, fmt.Errorf("unknown match mode %q (want whole-word or substring)", s)
	}
}

// Config for matcher construction.
type Config struct {
	// Terms to compile into the automaton. Terms without a canonical
	// form get one computed here.
	Terms []*types.Term

	// Mode controls boundary semantics. Default is whole-word.
	Mode Mode

	// Exclusive switches the overlap policy from union (every accepted
	// match is reported) to greedy non-overlapping matches.
	Exclusive bool
}

// Matcher is a compiled, reusable lexicon scanner.
type Matcher struct {
	mode      Mode
	exclusive bool

	patterns  []string             // unique canonical patterns
	byPattern [][]*types.Term      // terms per pattern, same index
	prefilter *ahocorasick.Matcher // reports which patterns occur, not where
}

// New compiles the lexicon into a Matcher.
//
// Every term must canonicalize to a non-empty pattern: an empty pattern
// would match everywhere, so it is rejected here rather than at scan
// time. An empty term set is legal and yields a matcher that never
// matches.
func New(cfg Config) (*Matcher, error) {
	m := &Matcher{
		mode:      cfg.Mode,
		exclusive: cfg.Exclusive,
	}

	index := make(map[string]int)
	for _, t := range cfg.Terms {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if t.Canonical == "" {
			t.Canonical = sentence.New(t.Term).String()
		}
		if t.Canonical == "" {
			return nil, fmt.Errorf("term %s: %q normalizes to an empty pattern", t.ID, t.Term)
		}

		i, ok := index[t.Canonical]
		if !ok {
			i = len(m.patterns)
			index[t.Canonical] = i
			m.patterns = append(m.patterns, t.Canonical)
			m.byPattern = append(m.byPattern, nil)
		}
		m.byPattern[i] = append(m.byPattern[i], t)
	}

	if len(m.patterns) > 0 {
		m.prefilter = ahocorasick.NewStringMatcher(m.patterns)
	}
	return m, nil
}

// Mode returns the configured boundary mode.
func (m *Matcher) Mode() Mode {
	return m.mode
}

// TermCount returns the number of lexicon terms compiled in.
func (m *Matcher) TermCount() int {
	n := 0
	for _, terms := range m.byPattern {
		n += len(terms)
	}
	return n
}
