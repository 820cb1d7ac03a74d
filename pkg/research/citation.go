package research

import (
	"fmt"
	"strings"
)

const (
	maxCitations     = 20
	citationTitleMax = 60
)

// BuildCitations assembles formatted citations from the sources and
// links nested in a session's findings. Duplicates are dropped and
// first-seen order across findings is preserved; output is capped at
// maxCitations.
func BuildCitations(findings []Finding) []Citation {
	seen := make(map[string]struct{})
	citations := make([]Citation, 0, maxCitations)

	add := func(raw string, findingIndex int) bool {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return true
		}
		if _, dup := seen[raw]; dup {
			return true
		}
		seen[raw] = struct{}{}

		c := Citation{
			Position:     len(citations) + 1,
			FindingIndex: findingIndex,
			SourceURL:    extractURL(raw),
			SourceTitle:  deriveTitle(raw),
		}
		if c.SourceURL != "" {
			c.Text = fmt.Sprintf("[%d] %s (%s)", c.Position, c.SourceTitle, c.SourceURL)
		} else {
			c.Text = fmt.Sprintf("[%d] %s", c.Position, c.SourceTitle)
		}
		citations = append(citations, c)
		return len(citations) < maxCitations
	}

	// Links first within each finding: they carry the strongest
	// provenance. Sources follow.
	for i, f := range findings {
		if f.SearchResult == nil {
			continue
		}
		for _, link := range f.SearchResult.Links {
			if !add(link, i) {
				return citations
			}
		}
		for _, src := range f.SearchResult.Sources {
			if !add(src, i) {
				return citations
			}
		}
	}
	return citations
}

// extractURL returns the raw string when it looks like a link, empty
// otherwise.
func extractURL(raw string) string {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return ""
}

// deriveTitle builds a display title from a source string: URLs are
// stripped of their scheme, and everything is truncated to
// citationTitleMax characters.
func deriveTitle(raw string) string {
	title := raw
	title = strings.TrimPrefix(title, "https://")
	title = strings.TrimPrefix(title, "http://")
	title = strings.TrimSuffix(title, "/")
	if len(title) > citationTitleMax {
		title = title[:citationTitleMax] + "..."
	}
	return title
}
