package types

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
)

// MessageID is the SHA-1 of a message's raw content.
// It identifies a scanned message in the audit store.
type MessageID [20]byte

// NewMessageID computes the ID for raw message content.
func NewMessageID(content []byte) MessageID {
	return MessageID(sha1.Sum(content))
}

// Hex returns the lowercase hex encoding of the ID.
func (id MessageID) Hex() string {
	return hex.EncodeToString(id[:])
}

// ParseMessageID decodes a 40-character hex string into a MessageID.
func ParseMessageID(s string) (MessageID, error) {
	var id MessageID
	if len(s) != 40 {
		return id, fmt.Errorf("message ID must be 40 hex characters, got %d", len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return id, fmt.Errorf("invalid message ID %q: %w", s, err)
	}
	copy(id[:], b)
	return id, nil
}
