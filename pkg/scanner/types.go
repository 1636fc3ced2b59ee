package scanner

import "github.com/veilbreak/veilbreak/pkg/types"

// ContentItem is one message to scan.
type ContentItem struct {
	Source   string            `json:"source"`   // e.g. "chat:general:msg-123"
	Content  string            `json:"content"`  // raw message text
	Metadata map[string]string `json:"metadata"` // optional caller metadata, stored nowhere
}

// ScanResult holds the outcome for a single message.
type ScanResult struct {
	Source    string         `json:"source"`
	MessageID string         `json:"message_id"`
	Canonical string         `json:"canonical"`
	Redacted  string         `json:"redacted,omitempty"`
	Matches   []*types.Match `json:"matches"`
}

// BatchScanResult holds the outcomes for a batch of messages.
type BatchScanResult struct {
	Results []ScanResult `json:"results"`
	Total   int          `json:"total"`
}
