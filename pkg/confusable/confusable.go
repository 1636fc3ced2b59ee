// Package confusable collapses decorated Unicode text into plain
// comparable characters.
//
// Authors evade word filters by swapping letters for visual look-alikes:
// mathematical alphanumerics, fullwidth forms, Cyrillic and Greek
// homoglyphs, stacked diacritics, zero-width joiners. This package maps
// one extended grapheme cluster at a time to a single canonical rune, or
// reports that the cluster carries no content at all.
package confusable

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// folder strips decoration in two steps: NFKD pulls compatibility
// variants (fullwidth, mathematical, superscript forms) back to their
// base letters and splits off combining marks, then the marks themselves
// are removed. NFC recomposes whatever legitimate composition remains.
var folder = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.In(unicode.Mn)),
	runes.Remove(runes.In(unicode.Me)),
	norm.NFC,
)

// Normalize maps one extended grapheme cluster to its canonical rune.
// The second return value is false when the cluster carries no content
// (zero-width characters, lone combining marks, non-whitespace controls)
// and contributes nothing to the canonical sequence.
//
// Normalize is total: every cluster has a defined outcome. Unmapped
// alphanumeric clusters pass through lowercased; anything else that
// still renders (punctuation, symbols, emoji) passes through as itself
// and is left for the boundary classifier to treat as a separator.
func Normalize(cluster string) (rune, bool) {
	folded, _, err := transform.String(folder, cluster)
	if err != nil {
		// The fold chain only fails on invalid UTF-8; fall back to the
		// raw cluster so the outcome stays defined.
		folded = cluster
	}

	r, ok := firstContentRune(folded)
	if !ok {
		return 0, false
	}

	if unicode.IsSpace(r) {
		return ' ', true
	}

	// Case-sensitive entries first: capital I is confusable with l, but
	// lowercase i is not, so the lookup must see the rune before case
	// folding collapses the distinction.
	if mapped, ok := homoglyphs[r]; ok {
		return mapped, true
	}
	r = unicode.ToLower(r)
	if mapped, ok := homoglyphs[r]; ok {
		return mapped, true
	}
	return r, true
}

// Fold normalizes a whole string, dropping no-content clusters and
// concatenating the canonical runes. It does not keep positional
// information; callers that need the alignment map use the sentence
// package instead.
func Fold(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if c, ok := Normalize(string(r)); ok {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// firstContentRune returns the first rune of the folded cluster that
// still carries content. A cluster whose fold is empty or consists
// solely of format/control/mark code points has none.
func firstContentRune(folded string) (rune, bool) {
	for _, r := range folded {
		if unicode.IsSpace(r) {
			return r, true
		}
		if noContent(r) {
			continue
		}
		return r, true
	}
	return 0, false
}

// noContent reports whether a rune renders nothing on its own:
// format characters (zero-width space/joiner, soft hyphen, BOM),
// surrogates, non-whitespace controls, and any combining mark that
// survived the fold.
func noContent(r rune) bool {
	return unicode.In(r, unicode.Cf, unicode.Cs, unicode.Mn, unicode.Me) ||
		unicode.IsControl(r)
}
