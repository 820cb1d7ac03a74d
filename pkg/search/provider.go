package search

import (
	"context"
	"time"
)

// Result is the provider-agnostic shape of one search call. Text carries
// the prose summary that downstream prompts embed; Sources and Links feed
// citation assembly.
type Result struct {
	Query     string    `json:"query"`
	Text      string    `json:"results"`
	Sources   []string  `json:"sources"`
	Links     []string  `json:"links"`
	Timestamp time.Time `json:"timestamp"`
}

// Provider defines the contract for any search backend. Implementations
// must bound their own latency; callers substitute deterministic fallback
// results on error rather than failing a research session.
type Provider interface {
	Search(ctx context.Context, query string) (*Result, error)
}

// Canned marks a provider that serves deterministic offline results
// instead of live search.
type Canned interface {
	Canned() bool
}

// IsCanned reports whether a provider serves deterministic offline
// results.
func IsCanned(p Provider) bool {
	c, ok := p.(Canned)
	return ok && c.Canned()
}
