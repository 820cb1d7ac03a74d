package dto

import "ai-research-be/pkg/search"

// Live channel payloads. Field names are wire contract with the
// visualization frontend and must not change.

type SessionStartedEvent struct {
	SessionId string `json:"sessionId"`
	Topic     string `json:"topic"`
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
}

type PhaseCompletedEvent struct {
	SessionId string `json:"sessionId"`
	Phase     string `json:"phase"`
	Message   string `json:"message"`
}

// PerplexityResultEvent reuses the search result shape; the json tags on
// search.Result already match the wire contract (query, results,
// sources, links, timestamp).
type PerplexityResultEvent = search.Result

type AgentAnalysisEvent struct {
	Agent      string  `json:"agent"`
	Analysis   string  `json:"analysis"`
	Confidence float64 `json:"confidence"`
	Timestamp  string  `json:"timestamp"`
}

type ResearchCompletedEvent struct {
	SessionId      string      `json:"sessionId"`
	Topic          string      `json:"topic"`
	SearchResults  interface{} `json:"searchResults,omitempty"`
	AgentAnalysis  interface{} `json:"agentAnalysis,omitempty"`
	EmbeddingCount int         `json:"embeddingCount"`
}

type ErrorEvent struct {
	Message string `json:"message"`
}
