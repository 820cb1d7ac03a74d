package research

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-research-be/pkg/search"
)

func TestBuildCitationsLinksBeforeSources(t *testing.T) {
	findings := []Finding{
		{SearchResult: &search.Result{
			Links:   []string{"https://example.org/paper"},
			Sources: []string{"Journal of Examples"},
		}},
	}

	citations := BuildCitations(findings)
	require.Len(t, citations, 2)

	assert.Equal(t, 1, citations[0].Position)
	assert.Equal(t, "https://example.org/paper", citations[0].SourceURL)
	assert.Equal(t, "example.org/paper", citations[0].SourceTitle)
	assert.Equal(t, "[1] example.org/paper (https://example.org/paper)", citations[0].Text)

	assert.Equal(t, 2, citations[1].Position)
	assert.Empty(t, citations[1].SourceURL)
	assert.Equal(t, "[2] Journal of Examples", citations[1].Text)
}

func TestBuildCitationsDeduplicatesAcrossFindings(t *testing.T) {
	shared := &search.Result{Sources: []string{"Fallback research data", "Offline knowledge base"}}
	findings := []Finding{
		{SearchResult: shared},
		{SearchResult: shared},
		{SearchResult: nil},
	}

	citations := BuildCitations(findings)
	require.Len(t, citations, 2)
	assert.Equal(t, 0, citations[0].FindingIndex, "first-seen finding wins")
	assert.Equal(t, 0, citations[1].FindingIndex)
}

func TestBuildCitationsSkipsBlankEntries(t *testing.T) {
	findings := []Finding{
		{SearchResult: &search.Result{Sources: []string{"  ", "", "Real Source"}}},
	}

	citations := BuildCitations(findings)
	require.Len(t, citations, 1)
	assert.Equal(t, "Real Source", citations[0].SourceTitle)
}

func TestBuildCitationsCap(t *testing.T) {
	var links []string
	for i := 0; i < 30; i++ {
		links = append(links, fmt.Sprintf("https://example.org/%d", i))
	}
	findings := []Finding{{SearchResult: &search.Result{Links: links}}}

	citations := BuildCitations(findings)
	assert.Len(t, citations, maxCitations)
	assert.Equal(t, maxCitations, citations[len(citations)-1].Position)
}

func TestDeriveTitleTruncation(t *testing.T) {
	long := "https://example.org/" + strings.Repeat("x", 100)

	citations := BuildCitations([]Finding{{SearchResult: &search.Result{Links: []string{long}}}})
	require.Len(t, citations, 1)
	assert.Len(t, citations[0].SourceTitle, citationTitleMax+3)
	assert.True(t, strings.HasSuffix(citations[0].SourceTitle, "..."))
}
