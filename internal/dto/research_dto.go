package dto

import (
	"time"

	"ai-research-be/pkg/research"
)

type StartResearchRequest struct {
	Topic string `json:"topic" validate:"required,min=1"`
}

type StartResearchResponse struct {
	Message string `json:"message"`
}

type SessionResponse struct {
	SessionId   string              `json:"sessionId"`
	Topic       string              `json:"topic"`
	Status      string              `json:"status"`
	Plan        *research.Plan      `json:"plan,omitempty"`
	Findings    []research.Finding  `json:"findings"`
	Synthesis   *research.Synthesis `json:"synthesis,omitempty"`
	Citations   []research.Citation `json:"citations,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	CompletedAt *time.Time          `json:"completedAt,omitempty"`
}

func NewSessionResponse(s *research.Session) *SessionResponse {
	return &SessionResponse{
		SessionId:   s.Id.String(),
		Topic:       s.Topic,
		Status:      string(s.Status),
		Plan:        s.Plan,
		Findings:    s.Findings,
		Synthesis:   s.Synthesis,
		Citations:   s.Citations,
		CreatedAt:   s.CreatedAt,
		CompletedAt: s.CompletedAt,
	}
}

type AgentResponse struct {
	Id        uint   `json:"id"`
	Name      string `json:"name"`
	Expertise string `json:"expertise"`
	Color     string `json:"color"`
}

type AgentMessageResponse struct {
	Id          uint      `json:"id"`
	Message     string    `json:"message"`
	MessageType string    `json:"messageType"`
	Timestamp   time.Time `json:"timestamp"`
}

type AgentConnectionResponse struct {
	AgentId          uint      `json:"agentId"`
	Strength         float64   `json:"strength"`
	InteractionCount int       `json:"interactionCount"`
	LastInteraction  time.Time `json:"lastInteraction"`
}

type AgentDetailResponse struct {
	AgentResponse
	Messages    []AgentMessageResponse    `json:"messages"`
	MemoryCount int64                     `json:"memoryCount"`
	Connections []AgentConnectionResponse `json:"connections"`
}

// FindingRecordedMessage travels on the in-process bus from the
// orchestrator to the memory consumer.
type FindingRecordedMessage struct {
	SessionId      string  `json:"sessionId"`
	AgentId        uint    `json:"agentId"`
	Agent          string  `json:"agent"`
	Specialization string  `json:"specialization"`
	Content        string  `json:"content"`
	Importance     float64 `json:"importance"`
}
