package research

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-research-be/pkg/llm"
	"ai-research-be/pkg/search"
)

type stubSearcher struct {
	result *search.Result
	err    error
}

func (s *stubSearcher) Search(context.Context, string) (*search.Result, error) {
	return s.result, s.err
}

type stubCompletions struct {
	text   string
	err    error
	canned bool
}

func (s *stubCompletions) Complete(context.Context, string, ...llm.Option) (string, error) {
	return s.text, s.err
}

func (s *stubCompletions) Canned() bool { return s.canned }

func TestPerformResearchLiveAnalysis(t *testing.T) {
	persona := Roster[2] // Tech Specialist
	agent := NewSubagent(persona,
		&stubSearcher{result: &search.Result{Query: "q", Text: "search prose"}},
		&stubCompletions{text: "deep technical insight"},
	)

	findings := agent.PerformResearch(context.Background(), "fusion energy", "fusion energy technical implementation")
	require.Len(t, findings, 1)

	f := findings[0]
	assert.Equal(t, persona.AgentId, f.AgentId)
	assert.Equal(t, "Tech Specialist", f.Agent)
	assert.Equal(t, "deep technical insight", f.Content)
	assert.Equal(t, "technical_analysis"+SourceAISuffix, f.Source)
	assert.GreaterOrEqual(t, f.Confidence, persona.ConfidenceLo)
	assert.LessOrEqual(t, f.Confidence, persona.ConfidenceHi)
	require.NotNil(t, f.SearchResult)
	assert.Equal(t, "search prose", f.SearchResult.Text)
}

func TestPerformResearchSearchFailureDegrades(t *testing.T) {
	persona := Roster[0]
	agent := NewSubagent(persona,
		&stubSearcher{err: errors.New("search down")},
		&stubCompletions{text: "never used"},
	)

	findings := agent.PerformResearch(context.Background(), "fusion energy", "q")
	require.Len(t, findings, 1)

	f := findings[0]
	assert.Equal(t, "background_research"+SourceFallbackSuffix, f.Source)
	assert.Equal(t, persona.FallbackConfidence, f.Confidence)
	assert.True(t, strings.Contains(f.Content, "fusion energy"))
	assert.Nil(t, f.SearchResult)
}

func TestPerformResearchCannedCompletionsDegrade(t *testing.T) {
	persona := Roster[1]
	result := &search.Result{Query: "q", Text: "offline paragraph"}
	agent := NewSubagent(persona,
		&stubSearcher{result: result},
		&stubCompletions{text: "demo text", canned: true},
	)

	findings := agent.PerformResearch(context.Background(), "fusion energy", "q")
	require.Len(t, findings, 1)

	f := findings[0]
	assert.Equal(t, "trend_analysis"+SourceFallbackSuffix, f.Source)
	assert.Equal(t, FallbackContent("trend_analysis", "fusion energy"), f.Content)
	// The search result is still attached for citation assembly.
	assert.Equal(t, result, f.SearchResult)
}

func TestPerformResearchEmptyCompletionDegrades(t *testing.T) {
	agent := NewSubagent(Roster[3],
		&stubSearcher{result: &search.Result{Text: "prose"}},
		&stubCompletions{text: "  \n"},
	)

	findings := agent.PerformResearch(context.Background(), "fusion energy", "q")
	require.Len(t, findings, 1)
	assert.Equal(t, "impact_assessment"+SourceFallbackSuffix, findings[0].Source)
}

func TestFallbackContentUnknownSpecialization(t *testing.T) {
	text := FallbackContent("numerology", "tides")
	assert.Contains(t, text, "tides")
	assert.Contains(t, text, "numerology")
}
