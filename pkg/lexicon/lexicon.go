// Package lexicon loads and holds the term lists the matcher scans for.
//
// Term files are YAML; a small builtin list ships embedded in the
// binary for out-of-the-box use, and callers supply their own files for
// real deployments. Loaded lexicons are read-only.
package lexicon

import (
	"fmt"

	"github.com/veilbreak/veilbreak/pkg/types"
)

// Lexicon is an immutable set of terms.
type Lexicon struct {
	terms []*types.Term
	byID  map[string]*types.Term
}

// New builds a Lexicon from terms, rejecting duplicate IDs.
func New(terms []*types.Term) (*Lexicon, error) {
	l := &Lexicon{
		terms: terms,
		byID:  make(map[string]*types.Term, len(terms)),
	}
	for _, t := range terms {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if _, dup := l.byID[t.ID]; dup {
			return nil, fmt.Errorf("duplicate term id %s", t.ID)
		}
		l.byID[t.ID] = t
	}
	return l, nil
}

// Terms returns the term list. Callers must not mutate it.
func (l *Lexicon) Terms() []*types.Term {
	return l.terms
}

// Term returns the term with the given ID, or nil.
func (l *Lexicon) Term(id string) *types.Term {
	return l.byID[id]
}

// Len returns the number of terms.
func (l *Lexicon) Len() int {
	return len(l.terms)
}
