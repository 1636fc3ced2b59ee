package matcher

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/veilbreak/veilbreak/pkg/sentence"
	"github.com/veilbreak/veilbreak/pkg/types"
)

// Scan finds all accepted lexicon occurrences in the sentence, marks
// the covered canonical positions as checked, and returns the matches
// with both canonical and source spans filled in.
//
// Scan mutates only the sentence's checked mask. The matcher itself is
// read-only and may serve many sentences concurrently; each sentence
// must be owned by a single scan at a time.
func (m *Matcher) Scan(s *sentence.Sentence) []*types.Match {
	if s.Len() == 0 || len(m.patterns) == 0 {
		return nil
	}

	canonical := s.String()
	candidates := m.prefilter.Match([]byte(canonical))
	if len(candidates) == 0 {
		return nil
	}

	// Byte offset -> rune position for the canonical text. Canonical
	// runes are not all single-byte (kept symbols, emoji separators),
	// so Index results need translating.
	runeAt := make(map[int]int, len(canonical))
	pos := 0
	for off := range canonical {
		runeAt[off] = pos
		pos++
	}

	var matches []*types.Match
	for _, ci := range candidates {
		pat := m.patterns[ci]
		patRunes := utf8.RuneCountInString(pat)

		for from := 0; from < len(canonical); {
			k := strings.Index(canonical[from:], pat)
			if k < 0 {
				break
			}
			byteStart := from + k
			start := runeAt[byteStart]
			span := types.Span{Start: start, End: start + patRunes}

			if m.accept(s, span) {
				matches = append(matches, m.buildMatches(s, ci, span)...)
			}

			// Advance one rune so self-overlapping occurrences of the
			// same pattern are still found.
			_, size := utf8.DecodeRuneInString(canonical[byteStart:])
			from = byteStart + size
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Canonical.Start != matches[j].Canonical.Start {
			return matches[i].Canonical.Start < matches[j].Canonical.Start
		}
		if matches[i].Canonical.End != matches[j].Canonical.End {
			return matches[i].Canonical.End > matches[j].Canonical.End
		}
		return matches[i].TermID < matches[j].TermID
	})

	if m.exclusive {
		matches = pruneOverlaps(matches)
	}

	for _, match := range matches {
		s.Mark(match.Canonical)
	}
	s.MarkSeparatorGaps()
	return matches
}

// accept verifies boundary alignment for a candidate canonical span.
func (m *Matcher) accept(s *sentence.Sentence, span types.Span) bool {
	if m.mode == ModeSubstring {
		return true
	}
	if s.BoundaryAt(span.Start) != sentence.Start {
		return false
	}
	last := span.End - 1
	switch s.BoundaryAt(last) {
	case sentence.End:
		return true
	case sentence.Start:
		// A one-character word run carries Start alone; it only closes
		// the match if the run really ends here.
		return last+1 == s.Len() || s.BoundaryAt(last+1) == sentence.NoContent
	default:
		return false
	}
}

// buildMatches materializes one Match per lexicon term behind the
// matched pattern (distinct terms may share a canonical form).
func (m *Matcher) buildMatches(s *sentence.Sentence, pattern int, span types.Span) []*types.Match {
	msgID := types.NewMessageID([]byte(s.Raw()))
	out := make([]*types.Match, 0, len(m.byPattern[pattern]))
	for _, t := range m.byPattern[pattern] {
		match := &types.Match{
			MessageID: msgID,
			TermID:    t.ID,
			Term:      t.Canonical,
			Canonical: span,
			Source:    s.SourceSpan(span),
			Surface:   s.Surface(span),
		}
		match.StructuralID = match.ComputeStructuralID()
		out = append(out, match)
	}
	return out
}

// pruneOverlaps keeps a greedy non-overlapping subset of the sorted
// matches: earliest start wins, longest match first at equal starts.
func pruneOverlaps(matches []*types.Match) []*types.Match {
	kept := matches[:0]
	end := 0
	for _, match := range matches {
		if match.Canonical.Start < end {
			continue
		}
		kept = append(kept, match)
		end = match.Canonical.End
	}
	return kept
}
