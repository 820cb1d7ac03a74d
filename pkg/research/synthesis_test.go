package research

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-research-be/pkg/llm/fallback"
)

func TestSynthesizeWithFallbackCompletions(t *testing.T) {
	synth := NewSynthesizer(fallback.NewFallbackProvider())

	findings := []Finding{
		{Agent: "Explorer", Specialization: "background_research", Content: "history of the field", Confidence: 0.8},
	}
	out, err := synth.Synthesize(context.Background(), "fusion energy", findings)
	require.NoError(t, err)

	// Canned mode keeps finding text out of the prompt, so the table's
	// synthesis sentence wins regardless of what the workers produced.
	assert.Equal(t, "Pattern synthesis completed with integrated findings and cross-domain insights.", out.Text)
	assert.False(t, out.GeneratedAt.IsZero())
	require.Len(t, out.KeyFindings, 1)
	assert.Equal(t, "Explorer", out.KeyFindings[0].Agent)
}

func TestExtractKeyFindingsThresholdAndCap(t *testing.T) {
	var findings []Finding
	for i := 0; i < 15; i++ {
		findings = append(findings, Finding{
			Agent:      fmt.Sprintf("agent-%d", i),
			Content:    "short",
			Confidence: 0.9,
		})
	}
	findings = append(findings, Finding{Agent: "weak", Confidence: 0.7})
	findings = append(findings, Finding{Agent: "weaker", Confidence: 0.3})

	key := extractKeyFindings(findings)
	require.Len(t, key, maxKeyFindings)
	for i, kf := range key {
		assert.Equal(t, fmt.Sprintf("agent-%d", i), kf.Agent, "aggregation order preserved")
		assert.Greater(t, kf.Confidence, keyFindingMinScore)
	}
}

func TestExtractKeyFindingsTruncatesContent(t *testing.T) {
	long := strings.Repeat("a", 150)
	key := extractKeyFindings([]Finding{{Content: long, Confidence: 0.95}})

	require.Len(t, key, 1)
	assert.Len(t, key[0].Content, keyFindingContentLimit+3)
	assert.True(t, strings.HasSuffix(key[0].Content, "..."))
}

func TestExtractKeyFindingsExcludesAtThreshold(t *testing.T) {
	key := extractKeyFindings([]Finding{{Confidence: keyFindingMinScore}})
	assert.Empty(t, key)
}
