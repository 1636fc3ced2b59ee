package types

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
)

// Match is a single accepted lexicon hit.
type Match struct {
	MessageID    MessageID `json:"-"`
	StructuralID string    `json:"structural_id,omitempty"` // SHA-1(term_id + '\0' + message_id + '\0' + start + '\0' + end)
	TermID       string    `json:"term_id"`                 // e.g. "spam.crypto.1"
	Term         string    `json:"term"`                    // canonical form that matched

	// Canonical is the matched range in canonical text, in rune positions.
	Canonical Span `json:"canonical"`

	// Source is the matched range in the original text, in byte offsets.
	// Redaction and auditing operate on this span.
	Source Span `json:"source"`

	// Surface is the original text covered by Source, exactly as the
	// author wrote it, obfuscation included.
	Surface string `json:"surface"`
}

// ComputeStructuralID computes a location-based unique ID for the match.
func (m *Match) ComputeStructuralID() string {
	h := sha1.New()
	h.Write([]byte(m.TermID))
	h.Write([]byte{0})
	h.Write(m.MessageID[:])
	h.Write([]byte{0})
	fmt.Fprintf(h, "%d", m.Source.Start)
	h.Write([]byte{0})
	fmt.Fprintf(h, "%d", m.Source.End)
	return hex.EncodeToString(h.Sum(nil))
}
