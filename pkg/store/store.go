// Package store persists scanned messages and accepted matches for
// moderation audit.
//
// Sentences themselves are never stored; only the message identity and
// the match locations a moderator needs to review a decision.
package store

import (
	"fmt"

	"github.com/veilbreak/veilbreak/pkg/types"
)

// Store provides persistence for scan results.
// This interface abstracts the underlying backend so callers can pick
// between the SQLite store and the in-memory store.
type Store interface {
	// AddMessage records a scanned message. Idempotent.
	AddMessage(id types.MessageID, source string, length int) error

	// MessageExists reports whether a message was already scanned.
	MessageExists(id types.MessageID) (bool, error)

	// AddMatch records an accepted match. Idempotent on structural ID.
	AddMatch(m *types.Match) error

	// GetMatches retrieves matches for one message.
	GetMatches(id types.MessageID) ([]*types.Match, error)

	// GetAllMatches retrieves every recorded match (for export).
	GetAllMatches() ([]*types.Match, error)

	// Close closes the backend.
	Close() error
}

// Config for store initialization.
type Config struct {
	// Path is the database file path. Use ":memory:" for an in-memory
	// SQLite database, or leave empty to get the non-SQLite memory
	// store.
	Path string
}

// New creates a Store for the config.
func New(cfg Config) (Store, error) {
	if cfg.Path == "" {
		return NewMemory(), nil
	}
	s, err := NewSQLite(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening store at %s: %w", cfg.Path, err)
	}
	return s, nil
}
