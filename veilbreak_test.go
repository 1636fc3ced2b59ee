package veilbreak

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customTerms() []*Term {
	return []*Term{
		{ID: "spam.crypto", Term: "free crypto", Categories: []string{"spam"}},
		{ID: "spam.nitro", Term: "free nitro", Categories: []string{"spam"}},
	}
}

func TestNewScanner_Builtin(t *testing.T) {
	s, err := NewScanner()
	require.NoError(t, err)
	assert.Greater(t, s.TermCount(), 0)
	assert.Equal(t, ModeWholeWord, s.Mode())
}

func TestScan_DisguisedTerm(t *testing.T) {
	s, err := NewScanner(WithTerms(customTerms()))
	require.NoError(t, err)

	raw := "𝕗𝕣𝕖𝕖 𝕔𝕣𝕪𝕡𝕥𝕠 for everyone"
	matches, err := s.Scan(raw)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	m := matches[0]
	assert.Equal(t, "spam.crypto", m.TermID)
	assert.Equal(t, Span{Start: 0, End: 11}, m.Canonical)
	assert.Equal(t, "𝕗𝕣𝕖𝕖 𝕔𝕣𝕪𝕡𝕥𝕠", m.Surface)
	assert.Equal(t, raw[m.Source.Start:m.Source.End], m.Surface)
}

func TestScan_Clean(t *testing.T) {
	s, err := NewScanner(WithTerms(customTerms()))
	require.NoError(t, err)

	matches, err := s.Scan("a perfectly fine message")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestScanSentence(t *testing.T) {
	s, err := NewScanner(WithTerms(customTerms()))
	require.NoError(t, err)

	snt, matches := s.ScanSentence("win free nitro today")
	require.Len(t, matches, 1)

	span := matches[0].Canonical
	for i := span.Start; i < span.End; i++ {
		assert.True(t, snt.IsChecked(i), "position %d", i)
	}
	assert.False(t, snt.IsChecked(0))
}

func TestRedact(t *testing.T) {
	s, err := NewScanner(WithTerms(customTerms()))
	require.NoError(t, err)

	assert.Equal(t, "win ********** today", s.Redact("win f​ree nitro today"))
	assert.Equal(t, "nothing here", s.Redact("nothing here"))
}

func TestWithMode(t *testing.T) {
	s, err := NewScanner(
		WithTerms([]*Term{{ID: "s.1", Term: "nitro"}}),
		WithMode(ModeSubstring),
	)
	require.NoError(t, err)
	assert.Equal(t, ModeSubstring, s.Mode())

	matches, err := s.Scan("freenitrodrop")
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestWithExclusiveMatches(t *testing.T) {
	s, err := NewScanner(
		WithTerms([]*Term{
			{ID: "o.1", Term: "dead"},
			{ID: "o.2", Term: "deadline"},
		}),
		WithMode(ModeSubstring),
		WithExclusiveMatches(),
	)
	require.NoError(t, err)

	matches, err := s.Scan("deadline approaching")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "o.2", matches[0].TermID)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "hello world", Normalize("𝕙ȩ𝕀𝓁ṓ ẁọʳ𝓘ď"))
	assert.Equal(t, "free crypto", Normalize("ＦＲＥＥ ＣＲＹＰＴＯ"))
}

func TestTerms_ReturnsCopy(t *testing.T) {
	s, err := NewScanner(WithTerms(customTerms()))
	require.NoError(t, err)

	terms := s.Terms()
	require.Len(t, terms, 2)
	terms[0] = nil
	assert.NotNil(t, s.Terms()[0])
}

func TestLoadTermsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terms.yml")
	data := []byte("terms:\n  - id: f.1\n    term: from file\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	terms, err := LoadTermsFromFile(path)
	require.NoError(t, err)
	require.Len(t, terms, 1)
	assert.Equal(t, "from file", terms[0].Canonical)

	s, err := NewScanner(WithTerms(terms))
	require.NoError(t, err)
	assert.Equal(t, 1, s.TermCount())
}

func TestLoadBuiltinTerms(t *testing.T) {
	terms, err := LoadBuiltinTerms()
	require.NoError(t, err)
	assert.NotEmpty(t, terms)
}
