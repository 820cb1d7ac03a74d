package embedding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectJitterStaysBounded(t *testing.T) {
	content := "quantum physics research experiment"

	// The theme pull is deterministic; only the jitter varies between
	// calls, so repeated projections of the same text stay within
	// 2*jitterRange of each other on every axis.
	x0, y0, z0, _ := Project(content)
	for i := 0; i < 20; i++ {
		x, y, z, _ := Project(content)
		assert.InDelta(t, x0, x, 2*jitterRange)
		assert.InDelta(t, y0, y, 2*jitterRange)
		assert.InDelta(t, z0, z, 2*jitterRange)
	}
}

func TestProjectWeightCappedAtOne(t *testing.T) {
	// Far more than ten keyword hits.
	content := strings.Repeat("quantum climate market society algorithm ", 10)

	_, _, _, weight := Project(content)
	assert.Equal(t, 1.0, weight)
}

func TestProjectNoThemeHitsGivesZeroWeight(t *testing.T) {
	_, _, _, weight := Project("lorem ipsum dolor sit amet")
	assert.Equal(t, 0.0, weight)
}

func TestExtractConceptsOrderAndCap(t *testing.T) {
	content := "solar solar solar panels panels grid grid battery sun a an"

	concepts := ExtractConcepts(content)
	// Descending frequency; tokens of length <= 3 and single occurrences
	// never qualify.
	assert.Equal(t, []string{"solar", "grid", "panels"}, concepts)
}

func TestExtractConceptsCapsAtTen(t *testing.T) {
	var b strings.Builder
	words := []string{"alpha", "bravo", "charlie", "delta", "echoes", "foxtrot",
		"golfing", "hotels", "indigo", "juliet", "kilos", "limas"}
	for _, w := range words {
		b.WriteString(w + " " + w + " ")
	}

	concepts := ExtractConcepts(b.String())
	assert.Len(t, concepts, 10)
}

func TestImportanceScore(t *testing.T) {
	assert.InDelta(t, 0.5, ImportanceScore("nothing special here"), 1e-9)
	assert.InDelta(t, 0.7, ImportanceScore("a significant and novel result"), 1e-9)

	// Six significance keywords would push past 1.0; the score is capped.
	loaded := "breakthrough significant critical major revolutionary essential"
	assert.Equal(t, 1.0, ImportanceScore(loaded))
}

func TestClusterKey(t *testing.T) {
	assert.Equal(t, "", ClusterKey(nil))

	// Order-independent and capped at 20 characters.
	a := ClusterKey([]string{"beta", "alpha"})
	b := ClusterKey([]string{"alpha", "beta"})
	assert.Equal(t, a, b)
	assert.Equal(t, "alphabeta", a)

	long := ClusterKey([]string{"hyperdimensional", "projections"})
	assert.Len(t, long, 20)
}
