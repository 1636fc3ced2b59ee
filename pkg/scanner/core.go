// Package scanner wires the lexicon, matcher, and audit store into one
// per-message scanning pipeline.
package scanner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/veilbreak/veilbreak/pkg/lexicon"
	"github.com/veilbreak/veilbreak/pkg/matcher"
	"github.com/veilbreak/veilbreak/pkg/sentence"
	"github.com/veilbreak/veilbreak/pkg/store"
	"github.com/veilbreak/veilbreak/pkg/types"
)

// RedactMask is the rune substituted for matched characters in the
// redacted rendering of a message.
const RedactMask = '*'

var (
	// cachedBuiltinTerms holds builtin terms loaded once per process.
	cachedBuiltinTerms []*types.Term
	cachedTermsErr     error
	cacheOnce          sync.Once
)

// loadBuiltinTermsCached loads builtin terms once and caches them.
func loadBuiltinTermsCached() ([]*types.Term, error) {
	cacheOnce.Do(func() {
		loader := lexicon.NewLoader()
		cachedBuiltinTerms, cachedTermsErr = loader.LoadBuiltinTerms()
	})
	return cachedBuiltinTerms, cachedTermsErr
}

// Config for Core construction.
type Config struct {
	// Terms to match. Nil loads the embedded builtin terms.
	Terms []*types.Term

	// Mode controls boundary semantics. Default whole-word.
	Mode matcher.Mode

	// Exclusive switches overlap policy to greedy non-overlapping.
	Exclusive bool

	// Store receives messages and matches. Nil uses an in-memory store.
	Store store.Store
}

// Core wraps the matcher and store for scanning operations.
// A Core is safe for concurrent use: the matcher is immutable and each
// scan owns its own Sentence.
type Core struct {
	matcher *matcher.Matcher
	store   store.Store
}

// NewCore creates a scanning core from the config.
func NewCore(cfg Config) (*Core, error) {
	terms := cfg.Terms
	if terms == nil {
		var err error
		terms, err = loadBuiltinTermsCached()
		if err != nil {
			return nil, fmt.Errorf("loading builtin terms: %w", err)
		}
	}

	m, err := matcher.New(matcher.Config{
		Terms:     terms,
		Mode:      cfg.Mode,
		Exclusive: cfg.Exclusive,
	})
	if err != nil {
		return nil, fmt.Errorf("compiling lexicon: %w", err)
	}

	s := cfg.Store
	if s == nil {
		s = store.NewMemory()
	}

	return &Core{matcher: m, store: s}, nil
}

// Scan scans a single message and records the result in the store.
func (c *Core) Scan(content, source string) (*ScanResult, error) {
	snt := sentence.New(content)
	matches := c.matcher.Scan(snt)

	id := types.NewMessageID([]byte(content))
	if err := c.store.AddMessage(id, source, snt.Len()); err != nil {
		return nil, fmt.Errorf("storing message: %w", err)
	}
	for _, match := range matches {
		if err := c.store.AddMatch(match); err != nil {
			return nil, fmt.Errorf("storing match: %w", err)
		}
	}

	result := &ScanResult{
		Source:    source,
		MessageID: id.Hex(),
		Canonical: snt.String(),
		Matches:   matches,
	}
	if len(matches) > 0 {
		result.Redacted = snt.Redacted(RedactMask)
	}
	return result, nil
}

// ScanBatch scans messages concurrently, one goroutine per message.
// The pipeline is CPU-bound with no shared mutable state between
// messages, so independent messages parallelize cleanly.
func (c *Core) ScanBatch(ctx context.Context, items []ContentItem) (*BatchScanResult, error) {
	results := make([]ScanResult, len(items))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			r, err := c.Scan(item.Content, item.Source)
			if err != nil {
				return err
			}
			results[i] = *r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for i := range results {
		total += len(results[i].Matches)
	}
	return &BatchScanResult{Results: results, Total: total}, nil
}

// Matcher exposes the compiled matcher, e.g. for direct Sentence scans.
func (c *Core) Matcher() *matcher.Matcher {
	return c.matcher
}

// Store exposes the audit store for reporting.
func (c *Core) Store() store.Store {
	return c.store
}

// Close releases the store.
func (c *Core) Close() {
	if c.store != nil {
		c.store.Close()
	}
}
