package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpan(t *testing.T) {
	s := Span{Start: 3, End: 7}

	assert.Equal(t, 4, s.Len())
	assert.False(t, s.Contains(2))
	assert.True(t, s.Contains(3))
	assert.True(t, s.Contains(6))
	assert.False(t, s.Contains(7)) // End is exclusive
}

func TestSpan_Overlaps(t *testing.T) {
	s := Span{Start: 3, End: 7}

	assert.True(t, s.Overlaps(Span{Start: 6, End: 10}))
	assert.True(t, s.Overlaps(Span{Start: 0, End: 4}))
	assert.True(t, s.Overlaps(Span{Start: 4, End: 5}))
	assert.False(t, s.Overlaps(Span{Start: 7, End: 10})) // adjacent, not overlapping
	assert.False(t, s.Overlaps(Span{Start: 0, End: 3}))
}

func TestMessageID(t *testing.T) {
	id := NewMessageID([]byte("hello world"))

	// Stable and content-addressed.
	assert.Equal(t, id, NewMessageID([]byte("hello world")))
	assert.NotEqual(t, id, NewMessageID([]byte("hello world!")))
	assert.Equal(t, "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed", id.Hex())

	parsed, err := ParseMessageID(id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestParseMessageID_Invalid(t *testing.T) {
	_, err := ParseMessageID("abc")
	assert.Error(t, err)

	_, err = ParseMessageID("zz" + NewMessageID(nil).Hex()[2:])
	assert.Error(t, err)
}

func TestTerm_Validate(t *testing.T) {
	assert.NoError(t, (&Term{ID: "a.1", Term: "alpha"}).Validate())
	assert.Error(t, (&Term{Term: "alpha"}).Validate())
	assert.Error(t, (&Term{ID: "a.1"}).Validate())
}

func TestMatch_ComputeStructuralID(t *testing.T) {
	m := &Match{
		MessageID: NewMessageID([]byte("some message")),
		TermID:    "spam.1",
		Source:    Span{Start: 5, End: 16},
	}

	id := m.ComputeStructuralID()
	assert.Len(t, id, 40)
	assert.Equal(t, id, m.ComputeStructuralID())

	// Any location component changes the ID.
	moved := *m
	moved.Source.Start = 6
	assert.NotEqual(t, id, moved.ComputeStructuralID())

	renamed := *m
	renamed.TermID = "spam.2"
	assert.NotEqual(t, id, renamed.ComputeStructuralID())

	other := *m
	other.MessageID = NewMessageID([]byte("other message"))
	assert.NotEqual(t, id, other.ComputeStructuralID())
}
