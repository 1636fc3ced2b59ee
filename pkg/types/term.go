package types

import "fmt"

// Term is a single lexicon entry: a word or phrase the matcher looks for.
type Term struct {
	// ID uniquely identifies the term, e.g. "spam.crypto.1".
	ID string `json:"id" yaml:"id"`

	// Term is the surface form as written in the lexicon file.
	Term string `json:"term" yaml:"term"`

	// Canonical is the normalized form the matcher scans for. It is
	// computed from Term by the lexicon loader; a term supplied with a
	// pre-canonicalized form may set it directly.
	Canonical string `json:"canonical,omitempty" yaml:"canonical,omitempty"`

	// Categories tag the term for the caller's policy layer
	// (e.g. "spam", "scam"). The engine itself ignores them.
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`
}

// Validate checks structural requirements on the term.
// The canonical form is checked separately at matcher construction,
// after the loader has filled it in.
func (t *Term) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("term %q: missing id", t.Term)
	}
	if t.Term == "" {
		return fmt.Errorf("term %s: empty term text", t.ID)
	}
	return nil
}
