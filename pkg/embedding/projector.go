package embedding

import (
	"math/rand"
	"regexp"
	"sort"
	"strings"
)

const (
	maxTokens   = 100
	maxConcepts = 10
	jitterRange = 0.25
)

// theme carries a keyword list and a fixed axis direction. Every keyword
// hit pulls the projected coordinate toward the theme's direction.
type theme struct {
	name       string
	keywords   []string
	dx, dy, dz float64
}

var themes = []theme{
	{"technical", []string{"algorithm", "technology", "system", "software", "implementation", "engineering", "computing"}, 1.0, 0.2, -0.3},
	{"scientific", []string{"research", "study", "experiment", "theory", "quantum", "physics", "discovery"}, -0.8, 0.6, 0.1},
	{"social", []string{"society", "people", "community", "human", "culture", "education", "health"}, 0.1, -0.9, 0.4},
	{"economic", []string{"market", "cost", "business", "economic", "finance", "industry", "investment"}, -0.4, -0.3, -0.8},
	{"environmental", []string{"climate", "environment", "energy", "sustainability", "carbon", "green", "renewable"}, 0.3, 0.7, 0.8},
}

// significanceKeywords bump the importance score of a projection.
var significanceKeywords = []string{
	"breakthrough", "significant", "critical", "major", "revolutionary",
	"essential", "urgent", "novel", "transformative", "landmark",
}

var wordSplitter = regexp.MustCompile(`\W+`)

// Project maps free text to a 3-D coordinate plus a weight in [0,1].
// Deterministic up to a uniform jitter of at most jitterRange per axis,
// added for visual separation of points with identical theme profiles.
func Project(content string) (x, y, z, weight float64) {
	tokens := strings.Fields(strings.ToLower(content))
	if len(tokens) > maxTokens {
		tokens = tokens[:maxTokens]
	}

	total := 0
	for _, th := range themes {
		hits := 0
		for _, tok := range tokens {
			for _, kw := range th.keywords {
				if strings.Contains(tok, kw) {
					hits++
					break
				}
			}
		}
		x += th.dx * float64(hits)
		y += th.dy * float64(hits)
		z += th.dz * float64(hits)
		total += hits
	}

	norm := float64(total)
	if norm < 1 {
		norm = 1
	}
	x, y, z = x/norm, y/norm, z/norm

	x += (rand.Float64()*2 - 1) * jitterRange
	y += (rand.Float64()*2 - 1) * jitterRange
	z += (rand.Float64()*2 - 1) * jitterRange

	weight = float64(total) / 10
	if weight > 1 {
		weight = 1
	}
	return x, y, z, weight
}

// ExtractConcepts returns the dominant terms of the content: lower-cased
// tokens longer than 3 characters that occur more than once, ordered by
// descending frequency, capped at maxConcepts.
func ExtractConcepts(content string) []string {
	freq := make(map[string]int)
	for _, tok := range wordSplitter.Split(strings.ToLower(content), -1) {
		if len(tok) <= 3 {
			continue
		}
		freq[tok]++
	}

	concepts := make([]string, 0, len(freq))
	for tok, n := range freq {
		if n > 1 {
			concepts = append(concepts, tok)
		}
	}
	sort.Slice(concepts, func(i, j int) bool {
		if freq[concepts[i]] != freq[concepts[j]] {
			return freq[concepts[i]] > freq[concepts[j]]
		}
		return concepts[i] < concepts[j]
	})

	if len(concepts) > maxConcepts {
		concepts = concepts[:maxConcepts]
	}
	return concepts
}

// ImportanceScore starts at 0.5 and adds 0.1 per occurrence of a
// significance keyword, capped at 1.0.
func ImportanceScore(content string) float64 {
	lower := strings.ToLower(content)
	score := 0.5
	for _, kw := range significanceKeywords {
		score += 0.1 * float64(strings.Count(lower, kw))
	}
	if score > 1 {
		score = 1
	}
	return score
}

// ClusterKey builds the signature of a concept set: sorted, concatenated
// and capped at 20 characters so near-identical concept sets collapse
// into one cluster.
func ClusterKey(concepts []string) string {
	if len(concepts) == 0 {
		return ""
	}
	sorted := make([]string, len(concepts))
	copy(sorted, concepts)
	sort.Strings(sorted)

	key := strings.Join(sorted, "")
	if len(key) > 20 {
		key = key[:20]
	}
	return key
}
