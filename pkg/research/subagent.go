package research

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"ai-research-be/pkg/llm"
	"ai-research-be/pkg/search"
)

const (
	// SourceAISuffix tags findings derived from a live completion over
	// real search results.
	SourceAISuffix = "_ai_analysis_with_perplexity"

	// SourceFallbackSuffix tags deterministic templated findings so
	// downstream consumers can tell them from AI-derived content.
	SourceFallbackSuffix = "_fallback_analysis"
)

// Subagent executes exactly one research subtask and returns its
// findings. It holds no session-spanning state: instantiate one per
// subtask.
type Subagent struct {
	Persona  Persona
	searcher search.Provider
	llm      llm.Provider
}

func NewSubagent(persona Persona, searcher search.Provider, completions llm.Provider) *Subagent {
	return &Subagent{
		Persona:  persona,
		searcher: searcher,
		llm:      completions,
	}
}

// PerformResearch runs the worker's subtask: search, then a
// specialization-specific analysis prompt against the completion
// capability. Failures never escape: a search or completion error (or a
// completion capability serving canned content) degrades to a single
// deterministic fallback Finding for this specialization.
//
// The contract allows zero-or-more findings; the base implementation
// always returns exactly one.
func (s *Subagent) PerformResearch(ctx context.Context, topic, query string) []Finding {
	result, err := s.searcher.Search(ctx, query)
	if err != nil {
		return []Finding{s.fallbackFinding(topic, nil)}
	}

	if llm.IsCanned(s.llm) {
		return []Finding{s.fallbackFinding(topic, result)}
	}

	text, err := s.llm.Complete(ctx, s.buildPrompt(topic, result.Text),
		llm.WithSystemMessage(s.systemMessage()),
	)
	if err != nil || strings.TrimSpace(text) == "" {
		return []Finding{s.fallbackFinding(topic, result)}
	}

	return []Finding{{
		AgentId:        s.Persona.AgentId,
		Agent:          s.Persona.Name,
		Specialization: s.Persona.Specialization,
		Content:        text,
		Source:         s.Persona.Specialization + SourceAISuffix,
		Confidence:     s.heuristicConfidence(),
		SearchResult:   result,
	}}
}

func (s *Subagent) systemMessage() string {
	return fmt.Sprintf(
		"You are %s, a specialized research agent with expertise in %s. Your personality is %s. Analyze the provided search results and provide detailed, insightful research findings based on your expertise.",
		s.Persona.Name, s.Persona.Specialization, s.Persona.Personality,
	)
}

func (s *Subagent) buildPrompt(topic, searchText string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Using the following current information about %s, research the topic from the %s perspective. Focus on:\n",
		topic, s.Persona.Specialization)
	for _, point := range s.Persona.FocusPoints {
		fmt.Fprintf(&b, "- %s\n", point)
	}
	fmt.Fprintf(&b, "\nProvide detailed, evidence-based findings with specific examples.\n\nSearch Results:\n%s", searchText)
	return b.String()
}

// heuristicConfidence draws a pseudo-random score from the persona's
// band. This is a presentation heuristic usable only for relative
// ranking within a session, never a calibrated probability.
func (s *Subagent) heuristicConfidence() float64 {
	c := s.Persona.ConfidenceLo + rand.Float64()*(s.Persona.ConfidenceHi-s.Persona.ConfidenceLo)
	return clamp01(c)
}

func (s *Subagent) fallbackFinding(topic string, result *search.Result) Finding {
	return Finding{
		AgentId:        s.Persona.AgentId,
		Agent:          s.Persona.Name,
		Specialization: s.Persona.Specialization,
		Content:        FallbackContent(s.Persona.Specialization, topic),
		Source:         s.Persona.Specialization + SourceFallbackSuffix,
		Confidence:     clamp01(s.Persona.FallbackConfidence),
		SearchResult:   result,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
