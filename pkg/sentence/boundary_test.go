package sentence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Empty(t *testing.T) {
	assert.Empty(t, classify(nil))
	assert.Empty(t, classify([]rune{}))
}

func TestClassify_SingleWord(t *testing.T) {
	got := classify([]rune("hello"))
	want := []Boundary{Start, Word, Word, Word, End}
	assert.Equal(t, want, got)
}

func TestClassify_SingleCharacterWord(t *testing.T) {
	// A one-character word is Start alone, never Start and End both.
	got := classify([]rune("a"))
	assert.Equal(t, []Boundary{Start}, got)

	got = classify([]rune("a b"))
	assert.Equal(t, []Boundary{Start, NoContent, Start}, got)
}

func TestClassify_TwoCharacterWord(t *testing.T) {
	got := classify([]rune("ab"))
	assert.Equal(t, []Boundary{Start, End}, got)
}

func TestClassify_WordRunInvariant(t *testing.T) {
	// For any word run of length n >= 2 at [i, i+n): Start, Word..., End.
	got := classify([]rune("abcdef"))
	assert.Equal(t, Start, got[0])
	assert.Equal(t, End, got[5])
	for k := 1; k < 5; k++ {
		assert.Equal(t, Word, got[k], "interior position %d", k)
	}
}

func TestClassify_SeparatorRuns(t *testing.T) {
	got := classify([]rune("  hi,  there "))
	want := []Boundary{
		NoContent, NoContent,
		Start, End,
		NoContent, NoContent, NoContent,
		Start, Word, Word, Word, End,
		NoContent,
	}
	assert.Equal(t, want, got)
}

func TestClassify_AllSeparators(t *testing.T) {
	got := classify([]rune(" ... "))
	for i, b := range got {
		assert.Equal(t, NoContent, b, "position %d", i)
	}
}

func TestClassify_DigitsAreWordContent(t *testing.T) {
	got := classify([]rune("follow4follow"))
	assert.Equal(t, Start, got[0])
	assert.Equal(t, End, got[len(got)-1])
	assert.Equal(t, Word, got[6]) // the digit
}

func TestBoundary_IsWord(t *testing.T) {
	assert.True(t, Start.IsWord())
	assert.True(t, Word.IsWord())
	assert.True(t, End.IsWord())
	assert.False(t, NoContent.IsWord())
}

func TestBoundary_String(t *testing.T) {
	assert.Equal(t, "start", Start.String())
	assert.Equal(t, "word", Word.String())
	assert.Equal(t, "end", End.String())
	assert.Equal(t, "no-content", NoContent.String())
	assert.Equal(t, "unknown", Boundary(42).String())
}
