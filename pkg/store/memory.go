package store

import (
	"sync"

	"github.com/veilbreak/veilbreak/pkg/types"
)

// messageRecord stores message metadata.
type messageRecord struct {
	source string
	length int
}

// MemoryStore implements Store using in-memory data structures.
// Suitable for tests and for serve-mode processes whose host keeps its
// own records.
type MemoryStore struct {
	mu       sync.RWMutex
	messages map[string]messageRecord // keyed by MessageID.Hex()
	matches  []*types.Match
	seen     map[string]bool // structural IDs already recorded
}

// NewMemory creates a new in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{
		messages: make(map[string]messageRecord),
		seen:     make(map[string]bool),
	}
}

// AddMessage records a scanned message. Idempotent.
func (m *MemoryStore) AddMessage(id types.MessageID, source string, length int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := id.Hex()
	if _, exists := m.messages[key]; exists {
		return nil
	}
	m.messages[key] = messageRecord{source: source, length: length}
	return nil
}

// MessageExists reports whether a message was already scanned.
func (m *MemoryStore) MessageExists(id types.MessageID) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, exists := m.messages[id.Hex()]
	return exists, nil
}

// AddMatch records an accepted match, deduplicated by structural ID.
func (m *MemoryStore) AddMatch(match *types.Match) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.seen[match.StructuralID] {
		return nil
	}
	m.seen[match.StructuralID] = true
	m.matches = append(m.matches, match)
	return nil
}

// GetMatches retrieves matches for one message.
func (m *MemoryStore) GetMatches(id types.MessageID) ([]*types.Match, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*types.Match
	for _, match := range m.matches {
		if match.MessageID == id {
			out = append(out, match)
		}
	}
	return out, nil
}

// GetAllMatches retrieves every recorded match.
func (m *MemoryStore) GetAllMatches() ([]*types.Match, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*types.Match, len(m.matches))
	copy(out, m.matches)
	return out, nil
}

// Close is a no-op for the memory store.
func (m *MemoryStore) Close() error {
	return nil
}
