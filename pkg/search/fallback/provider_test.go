package fallback

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-research-be/pkg/search"
)

func TestSearchReturnsCannedParagraph(t *testing.T) {
	provider := NewFallbackProvider()

	result, err := provider.Search(context.Background(), "quantum computing advances")
	require.NoError(t, err)

	assert.Equal(t, "quantum computing advances", result.Query)
	assert.Contains(t, result.Text, "Quantum computing research is progressing")
	assert.Equal(t, []string{"Fallback research data", "Offline knowledge base"}, result.Sources)
	assert.Empty(t, result.Links)
	assert.False(t, result.Timestamp.IsZero())
}

func TestSearchMatchesCaseInsensitively(t *testing.T) {
	provider := NewFallbackProvider()

	result, err := provider.Search(context.Background(), "The Future Of AI Regulation")
	require.NoError(t, err)
	assert.Contains(t, result.Text, "Artificial Intelligence has evolved significantly")
}

func TestSearchUnknownTopicGetsGenericTemplate(t *testing.T) {
	provider := NewFallbackProvider()

	result, err := provider.Search(context.Background(), "beekeeping")
	require.NoError(t, err)
	assert.Contains(t, result.Text, "Research on beekeeping shows various developments")
	assert.Equal(t, []string{"Fallback research data", "Offline knowledge base"}, result.Sources)
}

func TestSearchIsCanned(t *testing.T) {
	assert.True(t, search.IsCanned(NewFallbackProvider()))
}

// stubSearcher stands in for a live backend in wrapper tests.
type stubSearcher struct {
	result *search.Result
	err    error
}

func (s *stubSearcher) Search(context.Context, string) (*search.Result, error) {
	return s.result, s.err
}

func TestWrapPassesThroughLiveResult(t *testing.T) {
	live := &search.Result{Query: "solar grids", Text: "fresh backend content", Sources: []string{"example.org"}}
	wrapped := Wrap(&stubSearcher{result: live})

	result, err := wrapped.Search(context.Background(), "solar grids")
	require.NoError(t, err)
	assert.Equal(t, live, result)
	assert.False(t, search.IsCanned(wrapped))
}

func TestWrapDegradesOnError(t *testing.T) {
	wrapped := Wrap(&stubSearcher{err: assert.AnError})

	result, err := wrapped.Search(context.Background(), "climate change mitigation")
	require.NoError(t, err)
	assert.Contains(t, result.Text, "Climate change research shows increasing global temperatures")
	assert.Equal(t, []string{"Fallback research data", "Offline knowledge base"}, result.Sources)
}

func TestWrapDegradesOnEmptyResult(t *testing.T) {
	wrapped := Wrap(&stubSearcher{result: &search.Result{Query: "quantum chips", Text: "   "}})

	result, err := wrapped.Search(context.Background(), "quantum chips")
	require.NoError(t, err)
	assert.Contains(t, result.Text, "Quantum computing research is progressing")
}

func TestWrapPropagatesCannedPrimary(t *testing.T) {
	assert.True(t, search.IsCanned(Wrap(NewFallbackProvider())))
}
