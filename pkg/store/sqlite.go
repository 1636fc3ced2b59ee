package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/veilbreak/veilbreak/pkg/types"
)

// SQLiteStore implements Store using SQLite (pure-Go driver, no CGO).
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a SQLite-based store.
// Use ":memory:" for an in-memory database (useful for testing).
func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := CreateSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// AddMessage records a scanned message. Idempotent.
func (s *SQLiteStore) AddMessage(id types.MessageID, source string, length int) error {
	_, err := s.db.Exec(
		"INSERT OR IGNORE INTO messages (id, source, length) VALUES (?, ?, ?)",
		id.Hex(), source, length,
	)
	if err != nil {
		return fmt.Errorf("inserting message: %w", err)
	}
	return nil
}

// MessageExists reports whether a message was already scanned.
func (s *SQLiteStore) MessageExists(id types.MessageID) (bool, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM messages WHERE id = ?", id.Hex()).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("querying message: %w", err)
	}
	return count > 0, nil
}

// AddMatch records an accepted match, deduplicated by structural ID.
func (s *SQLiteStore) AddMatch(m *types.Match) error {
	_, err := s.db.Exec(`
		INSERT OR IGNORE INTO matches
			(structural_id, message_id, term_id, term, canonical_start, canonical_end, source_start, source_end, surface)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		m.StructuralID,
		m.MessageID.Hex(),
		m.TermID,
		m.Term,
		m.Canonical.Start,
		m.Canonical.End,
		m.Source.Start,
		m.Source.End,
		m.Surface,
	)
	if err != nil {
		return fmt.Errorf("inserting match: %w", err)
	}
	return nil
}

// GetMatches retrieves matches for one message.
func (s *SQLiteStore) GetMatches(id types.MessageID) ([]*types.Match, error) {
	rows, err := s.db.Query(`
		SELECT structural_id, message_id, term_id, term, canonical_start, canonical_end, source_start, source_end, surface
		FROM matches WHERE message_id = ?
		ORDER BY canonical_start, term_id
	`, id.Hex())
	if err != nil {
		return nil, fmt.Errorf("querying matches: %w", err)
	}
	defer rows.Close()

	return scanMatchRows(rows)
}

// GetAllMatches retrieves every recorded match.
func (s *SQLiteStore) GetAllMatches() ([]*types.Match, error) {
	rows, err := s.db.Query(`
		SELECT structural_id, message_id, term_id, term, canonical_start, canonical_end, source_start, source_end, surface
		FROM matches
		ORDER BY message_id, canonical_start, term_id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying matches: %w", err)
	}
	defer rows.Close()

	return scanMatchRows(rows)
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func scanMatchRows(rows *sql.Rows) ([]*types.Match, error) {
	var matches []*types.Match
	for rows.Next() {
		var m types.Match
		var msgHex string
		err := rows.Scan(
			&m.StructuralID,
			&msgHex,
			&m.TermID,
			&m.Term,
			&m.Canonical.Start,
			&m.Canonical.End,
			&m.Source.Start,
			&m.Source.End,
			&m.Surface,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning match row: %w", err)
		}
		id, err := types.ParseMessageID(msgHex)
		if err != nil {
			return nil, err
		}
		m.MessageID = id
		matches = append(matches, &m)
	}
	return matches, rows.Err()
}
