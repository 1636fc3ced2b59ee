package sentence

import (
	"github.com/rivo/uniseg"

	"github.com/veilbreak/veilbreak/pkg/confusable"
	"github.com/veilbreak/veilbreak/pkg/types"
)

// normalize walks raw text one extended grapheme cluster at a time and
// produces the canonical rune sequence together with the alignment map.
//
// Iterating clusters rather than code points is what keeps the map
// honest: a base letter plus combining accents is one user-perceived
// character and must collapse to one canonical rune covering the whole
// source span, not split into fragments.
//
// Clusters with no content (zero-width characters, lone combining
// marks) contribute nothing to either slice. Separator clusters are
// emitted one canonical rune each; collapsing runs of them is the
// boundary classifier's job, not ours.
func normalize(raw string) ([]rune, []types.Span) {
	text := make([]rune, 0, len(raw))
	align := make([]types.Span, 0, len(raw))

	rest := raw
	state := -1
	offset := 0
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)

		if r, ok := confusable.Normalize(cluster); ok {
			text = append(text, r)
			align = append(align, types.Span{Start: offset, End: offset + len(cluster)})
		}
		offset += len(cluster)
	}

	return text, align
}
