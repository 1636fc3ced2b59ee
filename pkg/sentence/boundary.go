package sentence

import "unicode"

// Boundary describes a canonical position's role in word segmentation.
type Boundary int

const (
	// Start is the first character of a word run. A one-character word
	// is tagged Start alone; Start and End are never emitted for the
	// same position.
	Start Boundary = iota
	// Word is an interior character of a word run.
	Word
	// End is the last character of a word run of length two or more.
	End
	// NoContent is a separator character: whitespace, punctuation, or
	// any other canonical character that terminates a word run.
	NoContent
)

// IsWord reports whether the position belongs to a word run.
func (b Boundary) IsWord() bool {
	return b != NoContent
}

// String returns the boundary name.
func (b Boundary) String() string {
	switch b {
	case Start:
		return "start"
	case Word:
		return "word"
	case End:
		return "end"
	case NoContent:
		return "no-content"
	default:
		return "unknown"
	}
}

// isSeparator reports whether a canonical rune terminates a word run.
// Letters and digits carry word content; everything else is structural.
func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsNumber(r)
}

// classify partitions canonical text into maximal separator and word
// runs and tags every position. An empty input yields an empty slice.
func classify(text []rune) []Boundary {
	bounds := make([]Boundary, len(text))

	for i := 0; i < len(text); {
		sep := isSeparator(text[i])
		j := i + 1
		for j < len(text) && isSeparator(text[j]) == sep {
			j++
		}

		switch {
		case sep:
			for k := i; k < j; k++ {
				bounds[k] = NoContent
			}
		case j-i == 1:
			bounds[i] = Start
		default:
			bounds[i] = Start
			bounds[j-1] = End
			for k := i + 1; k < j-1; k++ {
				bounds[k] = Word
			}
		}
		i = j
	}

	return bounds
}
