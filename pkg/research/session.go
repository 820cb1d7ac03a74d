package research

import (
	"time"

	"ai-research-be/pkg/search"

	"github.com/google/uuid"
)

// Status is the research session lifecycle state. Transitions are
// monotonic: planning -> executing -> synthesizing -> completed|failed.
type Status string

const (
	StatusPlanning     Status = "planning"
	StatusExecuting    Status = "executing"
	StatusSynthesizing Status = "synthesizing"
	StatusCompleted    Status = "completed"
	StatusFailed       Status = "failed"
)

var statusRank = map[Status]int{
	StatusPlanning:     0,
	StatusExecuting:    1,
	StatusSynthesizing: 2,
	StatusCompleted:    3,
	StatusFailed:       3,
}

// Terminal reports whether the session can no longer change state.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// CanTransitionTo reports whether moving to next respects the monotonic
// lifecycle order.
func (s Status) CanTransitionTo(next Status) bool {
	if s.Terminal() {
		return false
	}
	return statusRank[next] > statusRank[s]
}

// Finding is one piece of research content produced by a worker,
// together with its provenance and a heuristic confidence score.
// Immutable once created.
type Finding struct {
	AgentId        uint           `json:"agentId"`
	Agent          string         `json:"agent"`
	Specialization string         `json:"specialization"`
	Content        string         `json:"content"`
	Source         string         `json:"source"`
	Confidence     float64        `json:"confidence"`
	SearchResult   *search.Result `json:"searchResults,omitempty"`
}

// Citation is a formatted reference assembled from the sources and links
// of a session's findings. Created once at synthesis time.
type Citation struct {
	Position     int    `json:"position"`
	FindingIndex int    `json:"findingIndex"`
	SourceURL    string `json:"sourceUrl,omitempty"`
	SourceTitle  string `json:"sourceTitle"`
	Text         string `json:"citationText"`
}

// Session is one end-to-end research run. It is owned exclusively by the
// orchestrator for its lifetime and becomes read-only once the status is
// terminal.
type Session struct {
	Id             uuid.UUID  `json:"sessionId"`
	Topic          string     `json:"topic"`
	Status         Status     `json:"status"`
	Plan           *Plan      `json:"plan,omitempty"`
	Findings       []Finding  `json:"findings"`
	Synthesis      *Synthesis `json:"synthesis,omitempty"`
	Citations      []Citation `json:"citations,omitempty"`
	ConversationId uint       `json:"-"`
	CreatedAt      time.Time  `json:"createdAt"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
}

// Clone returns a deep-enough copy safe to hand to concurrent readers:
// slices are copied, the immutable leaves are shared.
func (s *Session) Clone() *Session {
	out := *s
	out.Findings = make([]Finding, len(s.Findings))
	copy(out.Findings, s.Findings)
	out.Citations = make([]Citation, len(s.Citations))
	copy(out.Citations, s.Citations)
	return &out
}
