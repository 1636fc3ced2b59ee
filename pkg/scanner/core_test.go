package scanner

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilbreak/veilbreak/pkg/matcher"
	"github.com/veilbreak/veilbreak/pkg/store"
	"github.com/veilbreak/veilbreak/pkg/types"
)

func testTerms() []*types.Term {
	return []*types.Term{
		{ID: "spam.crypto", Term: "free crypto", Categories: []string{"spam"}},
		{ID: "spam.nitro", Term: "free nitro", Categories: []string{"spam"}},
	}
}

func newCore(t *testing.T, cfg Config) *Core {
	t.Helper()
	c, err := NewCore(cfg)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestNewCore_BuiltinTerms(t *testing.T) {
	c := newCore(t, Config{})
	assert.Greater(t, c.Matcher().TermCount(), 0)
}

func TestScan_Hit(t *testing.T) {
	c := newCore(t, Config{Terms: testTerms()})

	result, err := c.Scan("claim your ƒrèé ¢ryptò now", "chat:general")
	require.NoError(t, err)

	assert.Equal(t, "chat:general", result.Source)
	assert.Equal(t, "claim your free crypto now", result.Canonical)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, "spam.crypto", result.Matches[0].TermID)
	assert.Equal(t, "claim your *********** now", result.Redacted)

	// The match landed in the audit store.
	id := types.NewMessageID([]byte("claim your ƒrèé ¢ryptò now"))
	exists, err := c.Store().MessageExists(id)
	require.NoError(t, err)
	assert.True(t, exists)

	stored, err := c.Store().GetMatches(id)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestScan_Clean(t *testing.T) {
	c := newCore(t, Config{Terms: testTerms()})

	result, err := c.Scan("perfectly ordinary message", "chat:general")
	require.NoError(t, err)
	assert.Empty(t, result.Matches)
	assert.Empty(t, result.Redacted)

	// Clean messages still get a message record.
	exists, err := c.Store().MessageExists(types.NewMessageID([]byte("perfectly ordinary message")))
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestScan_SubstringMode(t *testing.T) {
	c := newCore(t, Config{
		Terms: []*types.Term{{ID: "s.1", Term: "nitro"}},
		Mode:  matcher.ModeSubstring,
	})

	result, err := c.Scan("freenitrodrop", "x")
	require.NoError(t, err)
	assert.Len(t, result.Matches, 1)
}

func TestScanBatch(t *testing.T) {
	c := newCore(t, Config{Terms: testTerms()})

	items := make([]ContentItem, 0, 20)
	for i := 0; i < 20; i++ {
		content := fmt.Sprintf("message %d is clean", i)
		if i%4 == 0 {
			content = fmt.Sprintf("message %d offers free nitro", i)
		}
		items = append(items, ContentItem{Source: fmt.Sprintf("chat:%d", i), Content: content})
	}

	batch, err := c.ScanBatch(context.Background(), items)
	require.NoError(t, err)
	require.Len(t, batch.Results, 20)
	assert.Equal(t, 5, batch.Total)

	// Results stay in input order regardless of goroutine scheduling.
	for i, r := range batch.Results {
		assert.Equal(t, fmt.Sprintf("chat:%d", i), r.Source)
	}
}

func TestScanBatch_Empty(t *testing.T) {
	c := newCore(t, Config{Terms: testTerms()})

	batch, err := c.ScanBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, batch.Results)
	assert.Zero(t, batch.Total)
}

func TestScanBatch_SharedSQLiteStore(t *testing.T) {
	s, err := store.NewSQLite(":memory:")
	require.NoError(t, err)

	c := newCore(t, Config{Terms: testTerms(), Store: s})

	items := []ContentItem{
		{Source: "a", Content: "free crypto here"},
		{Source: "b", Content: "free nitro there"},
	}
	_, err = c.ScanBatch(context.Background(), items)
	require.NoError(t, err)

	all, err := s.GetAllMatches()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
