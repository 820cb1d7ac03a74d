package fallback

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-research-be/pkg/llm"
)

func TestFallbackProviderKeywordTable(t *testing.T) {
	provider := NewFallbackProvider()
	ctx := context.Background()

	cases := []struct {
		prompt string
		want   string
	}{
		{"Create a PLANNING outline for the topic", "Research plan created with comprehensive methodology and structured approach."},
		{"summarize the background material", "Background research completed with key insights and foundational knowledge."},
		{"run a deep analysis of the data", "Detailed analysis performed with critical examination and evidence-based conclusions."},
		{"perform synthesis of all findings", "Pattern synthesis completed with integrated findings and cross-domain insights."},
		{"final evaluation of the report", "Critical evaluation finished with balanced assessment and improvement recommendations."},
		{"find a connection between fields", "Cross-domain connections established with interdisciplinary perspectives."},
		{"something entirely different", genericResponse},
	}
	for _, tc := range cases {
		got, err := provider.Complete(ctx, tc.prompt)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "prompt: %s", tc.prompt)
	}
}

func TestFallbackProviderFirstMatchWins(t *testing.T) {
	provider := NewFallbackProvider()

	// "planning" precedes "analysis" in the table.
	got, err := provider.Complete(context.Background(), "planning the analysis")
	require.NoError(t, err)
	assert.Equal(t, "Research plan created with comprehensive methodology and structured approach.", got)
}

func TestFallbackProviderIsCanned(t *testing.T) {
	assert.True(t, llm.IsCanned(NewFallbackProvider()))
}

type stubProvider struct {
	text string
	err  error
}

func (s *stubProvider) Complete(context.Context, string, ...llm.Option) (string, error) {
	return s.text, s.err
}

func TestWrapPassesThroughLiveText(t *testing.T) {
	wrapped := Wrap(&stubProvider{text: "live completion"})

	got, err := wrapped.Complete(context.Background(), "analysis prompt")
	require.NoError(t, err)
	assert.Equal(t, "live completion", got)
	assert.False(t, llm.IsCanned(wrapped))
}

func TestWrapDegradesOnError(t *testing.T) {
	wrapped := Wrap(&stubProvider{err: errors.New("backend down")})

	got, err := wrapped.Complete(context.Background(), "run a deep analysis")
	require.NoError(t, err)
	assert.Equal(t, "Detailed analysis performed with critical examination and evidence-based conclusions.", got)
}

func TestWrapDegradesOnEmptyText(t *testing.T) {
	wrapped := Wrap(&stubProvider{text: "   "})

	got, err := wrapped.Complete(context.Background(), "no keyword here")
	require.NoError(t, err)
	assert.Equal(t, genericResponse, got)
}

func TestWrapReportsCannedPrimary(t *testing.T) {
	assert.True(t, llm.IsCanned(Wrap(NewFallbackProvider())))
}
