// Package veilbreak provides Unicode-robust word and phrase matching
// for content moderation.
//
// Veilbreak detects lexicon terms even when authors disguise them with
// stylized Unicode look-alikes, diacritics, zero-width insertions, or
// alternate scripts, and reports match locations against the original
// text for accurate redaction and auditing.
//
// # Basic Usage
//
// Create a scanner with the builtin terms and scan a message:
//
//	scanner, err := veilbreak.NewScanner()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	matches, err := scanner.Scan("𝕗𝕣𝕖𝕖 𝕔𝕣𝕪𝕡𝕥𝕠 for everyone")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, match := range matches {
//	    fmt.Printf("found %s at bytes [%d, %d)\n",
//	        match.TermID, match.Source.Start, match.Source.End)
//	}
//
// # Custom Lexicons
//
// Load terms from a YAML file and pick the boundary mode:
//
//	terms, err := veilbreak.LoadTermsFromFile("terms.yml")
//	if err != nil {
//	    return err
//	}
//	scanner, err := veilbreak.NewScanner(
//	    veilbreak.WithTerms(terms),
//	    veilbreak.WithMode(veilbreak.ModeSubstring),
//	)
package veilbreak

import (
	"fmt"

	"github.com/veilbreak/veilbreak/pkg/lexicon"
	"github.com/veilbreak/veilbreak/pkg/matcher"
	"github.com/veilbreak/veilbreak/pkg/sentence"
	"github.com/veilbreak/veilbreak/pkg/types"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/veilbreak/veilbreak" without
// subpackages.
type (
	// Match is a single accepted lexicon hit with canonical and source spans.
	Match = types.Match

	// Term is a lexicon entry.
	Term = types.Term

	// Span is a half-open [Start, End) range.
	Span = types.Span

	// Sentence is the canonical view of one message.
	Sentence = sentence.Sentence

	// Mode selects whole-word or substring boundary semantics.
	Mode = matcher.Mode
)

// Re-export boundary modes.
const (
	ModeWholeWord = matcher.ModeWholeWord
	ModeSubstring = matcher.ModeSubstring
)

// Scanner matches disguised lexicon terms in message text.
// A Scanner is immutable after construction and safe for concurrent use.
type Scanner struct {
	matcher *matcher.Matcher
	config  *scannerConfig
}

// scannerConfig holds scanner configuration.
type scannerConfig struct {
	terms     []*types.Term
	mode      matcher.Mode
	exclusive bool
}

// Option configures a Scanner.
type Option func(*scannerConfig)

// WithTerms uses custom terms instead of the builtin lexicon.
func WithTerms(terms []*Term) Option {
	return func(c *scannerConfig) {
		c.terms = terms
	}
}

// WithMode sets boundary semantics. Default is whole-word.
func WithMode(mode Mode) Option {
	return func(c *scannerConfig) {
		c.mode = mode
	}
}

// WithExclusiveMatches switches the overlap policy from union (all
// accepted matches reported) to greedy non-overlapping matches.
func WithExclusiveMatches() Option {
	return func(c *scannerConfig) {
		c.exclusive = true
	}
}

// NewScanner creates a Scanner.
//
// By default the scanner uses the embedded builtin terms in whole-word
// mode with the union overlap policy.
func NewScanner(opts ...Option) (*Scanner, error) {
	config := &scannerConfig{}
	for _, opt := range opts {
		opt(config)
	}

	if config.terms == nil {
		loader := lexicon.NewLoader()
		terms, err := loader.LoadBuiltinTerms()
		if err != nil {
			return nil, fmt.Errorf("loading builtin terms: %w", err)
		}
		config.terms = terms
	}

	m, err := matcher.New(matcher.Config{
		Terms:     config.terms,
		Mode:      config.mode,
		Exclusive: config.exclusive,
	})
	if err != nil {
		return nil, fmt.Errorf("compiling lexicon: %w", err)
	}

	return &Scanner{matcher: m, config: config}, nil
}

// Scan normalizes content, scans it, and returns the accepted matches.
// Each call builds and discards its own Sentence; use ScanSentence to
// keep the sentence for boundary or redaction inspection.
func (s *Scanner) Scan(content string) ([]*Match, error) {
	_, matches := s.ScanSentence(content)
	return matches, nil
}

// ScanSentence normalizes content into a Sentence, scans it, and
// returns both. The sentence's checked mask reflects the matches.
func (s *Scanner) ScanSentence(content string) (*Sentence, []*Match) {
	snt := sentence.New(content)
	return snt, s.matcher.Scan(snt)
}

// Redact returns content with every matched region masked by '*'.
func (s *Scanner) Redact(content string) string {
	snt, _ := s.ScanSentence(content)
	return snt.Redacted('*')
}

// TermCount returns the number of lexicon terms loaded.
func (s *Scanner) TermCount() int {
	return s.matcher.TermCount()
}

// Terms returns a copy of the loaded terms.
func (s *Scanner) Terms() []*Term {
	terms := make([]*Term, len(s.config.terms))
	copy(terms, s.config.terms)
	return terms
}

// Mode returns the configured boundary mode.
func (s *Scanner) Mode() Mode {
	return s.matcher.Mode()
}

// Normalize returns the canonical form of text: confusables mapped,
// diacritics stripped, zero-width characters removed, case folded.
func Normalize(text string) string {
	return sentence.New(text).String()
}

// NewSentence builds the canonical Sentence for raw text.
func NewSentence(text string) *Sentence {
	return sentence.New(text)
}

// LoadTermsFromFile loads lexicon terms from a YAML file.
// Use with WithTerms to create a scanner over a custom lexicon.
func LoadTermsFromFile(path string) ([]*Term, error) {
	loader := lexicon.NewLoader()
	return loader.LoadTermFile(path)
}

// LoadBuiltinTerms returns the embedded builtin terms.
func LoadBuiltinTerms() ([]*Term, error) {
	loader := lexicon.NewLoader()
	return loader.LoadBuiltinTerms()
}
