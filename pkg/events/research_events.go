package events

import "time"

const (
	TypeResearchCompleted = "RESEARCH_COMPLETED"
	TypeResearchFailed    = "RESEARCH_FAILED"
)

// NewResearchCompleted builds the domain event published when a research
// session reaches the completed status.
func NewResearchCompleted(sessionId, topic string, findingCount, citationCount int) Event {
	return BaseEvent{
		Type: TypeResearchCompleted,
		Data: map[string]interface{}{
			"session_id":     sessionId,
			"topic":          topic,
			"finding_count":  findingCount,
			"citation_count": citationCount,
		},
		OccurredAt: time.Now(),
	}
}

// NewResearchFailed builds the domain event published when a research
// session fails during planning or fan-out setup.
func NewResearchFailed(sessionId, topic, reason string) Event {
	return BaseEvent{
		Type: TypeResearchFailed,
		Data: map[string]interface{}{
			"session_id": sessionId,
			"topic":      topic,
			"reason":     reason,
		},
		OccurredAt: time.Now(),
	}
}
