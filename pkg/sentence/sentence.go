// Package sentence turns raw message text into a canonical, matchable
// form while keeping a positional map back to the original bytes.
//
// A Sentence is built once per message: the normalizer collapses every
// extended grapheme cluster to a canonical rune (or drops it), the
// boundary classifier tags word runs, and the checked mask starts out
// all false. The matcher is the only component that mutates a Sentence,
// and only through Mark.
package sentence

import (
	"strings"

	"github.com/veilbreak/veilbreak/pkg/types"
)

// Sentence is the canonical view of one message.
//
// A Sentence must not be shared across concurrent scans without
// external synchronization: Mark mutates the checked mask in place.
type Sentence struct {
	raw        string
	text       []rune
	boundaries []Boundary
	checked    []bool
	align      []types.Span
}

// New builds a Sentence from raw text. Construction is total: any
// input, including the empty string or pure separators, yields a valid
// Sentence.
func New(raw string) *Sentence {
	text, align := normalize(raw)
	return &Sentence{
		raw:        raw,
		text:       text,
		boundaries: classify(text),
		checked:    make([]bool, len(text)),
		align:      align,
	}
}

// String returns the canonical text: the lossy ASCII-leaning form the
// matcher scans and the audit log displays.
func (s *Sentence) String() string {
	return string(s.text)
}

// Raw returns the original input text unchanged.
func (s *Sentence) Raw() string {
	return s.raw
}

// Len returns the canonical length in runes. This is the length that
// boundaries, the checked mask, and match spans all share; it is not
// the raw input length.
func (s *Sentence) Len() int {
	return len(s.text)
}

// At returns the canonical rune at position i.
func (s *Sentence) At(i int) rune {
	return s.text[i]
}

// Boundaries returns a copy of the boundary tags, one per canonical
// position.
func (s *Sentence) Boundaries() []Boundary {
	out := make([]Boundary, len(s.boundaries))
	copy(out, s.boundaries)
	return out
}

// BoundaryAt returns the boundary tag at canonical position i.
func (s *Sentence) BoundaryAt(i int) Boundary {
	return s.boundaries[i]
}

// Checked returns a copy of the checked mask.
func (s *Sentence) Checked() []bool {
	out := make([]bool, len(s.checked))
	copy(out, s.checked)
	return out
}

// IsChecked reports whether canonical position i was covered by an
// accepted match.
func (s *Sentence) IsChecked(i int) bool {
	return s.checked[i]
}

// Mark records an accepted match over the canonical span. Marks only
// accumulate; overlapping matches union into the mask and nothing ever
// un-marks a position.
func (s *Sentence) Mark(span types.Span) {
	for i := span.Start; i < span.End && i < len(s.checked); i++ {
		if i >= 0 {
			s.checked[i] = true
		}
	}
}

// MarkSeparatorGaps marks every separator run that lies strictly
// between checked positions. When adjacent words both match, the
// covered region becomes contiguous, so "hello world" with both words
// matched redacts as one block instead of two with a bare space
// between.
func (s *Sentence) MarkSeparatorGaps() {
	for i := 0; i < len(s.text); {
		if s.boundaries[i] != NoContent {
			i++
			continue
		}
		j := i
		for j < len(s.text) && s.boundaries[j] == NoContent {
			j++
		}
		if i > 0 && s.checked[i-1] && j < len(s.text) && s.checked[j] {
			for k := i; k < j; k++ {
				s.checked[k] = true
			}
		}
		i = j
	}
}

// SourceSpan translates a canonical span to the byte range of the
// original text that produced it. The zero span translates to the zero
// span.
func (s *Sentence) SourceSpan(span types.Span) types.Span {
	if span.Len() <= 0 || span.Start < 0 || span.End > len(s.align) {
		return types.Span{}
	}
	return types.Span{
		Start: s.align[span.Start].Start,
		End:   s.align[span.End-1].End,
	}
}

// Surface returns the original text covered by a canonical span,
// exactly as the author wrote it.
func (s *Sentence) Surface(span types.Span) string {
	src := s.SourceSpan(span)
	return s.raw[src.Start:src.End]
}

// Redacted returns the original text with every checked region replaced
// by the mask rune, one mask per canonical character. Unmatched text,
// including its original styling, passes through untouched.
func (s *Sentence) Redacted(mask rune) string {
	var b strings.Builder
	b.Grow(len(s.raw))

	rawPos := 0
	for i := 0; i < len(s.text); {
		if !s.checked[i] {
			i++
			continue
		}

		// Maximal checked run [i, j).
		j := i + 1
		for j < len(s.text) && s.checked[j] {
			j++
		}

		src := s.SourceSpan(types.Span{Start: i, End: j})
		if src.Start > rawPos {
			b.WriteString(s.raw[rawPos:src.Start])
		}
		for k := i; k < j; k++ {
			b.WriteRune(mask)
		}
		rawPos = src.End
		i = j
	}

	if rawPos < len(s.raw) {
		b.WriteString(s.raw[rawPos:])
	}
	return b.String()
}
