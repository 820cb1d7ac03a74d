package embedding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpaceNoveltyDecaysOnRepetition(t *testing.T) {
	space := NewSpace()
	content := "solar solar panels panels storage storage"

	first := space.Insert(content, Metadata{Query: "q", Source: "test"})
	second := space.Insert(content, Metadata{Query: "q", Source: "test"})

	assert.Equal(t, 1.0, first.Novelty, "unseen concepts score full novelty")
	assert.Less(t, second.Novelty, first.Novelty)
}

func TestSpaceNoveltyFloor(t *testing.T) {
	space := NewSpace()
	content := "fusion fusion fusion reactors reactors"

	var last Point
	for i := 0; i < 30; i++ {
		last = space.Insert(content, Metadata{})
	}
	assert.GreaterOrEqual(t, last.Novelty, 0.0)
	assert.LessOrEqual(t, last.Novelty, 0.1*0.1+1e-9, "both concepts at floor factor")
}

func TestSpaceClusterSharing(t *testing.T) {
	space := NewSpace()
	content := "neural neural networks networks"

	a := space.Insert(content, Metadata{})
	b := space.Insert(content, Metadata{})
	require.NotEmpty(t, a.Cluster)
	assert.Equal(t, a.Cluster, b.Cluster)

	cluster, ok := space.ClusterOf(a.Cluster)
	require.True(t, ok)
	assert.Equal(t, []string{a.Id, b.Id}, cluster.Members)

	centroid, ok := space.CentroidOf(a.Cluster)
	require.True(t, ok)
	assert.InDelta(t, (a.X+b.X)/2, centroid.X, 1e-9)
	assert.InDelta(t, (a.Y+b.Y)/2, centroid.Y, 1e-9)
	assert.InDelta(t, (a.Z+b.Z)/2, centroid.Z, 1e-9)
}

func TestSpaceNoConceptsNoCluster(t *testing.T) {
	space := NewSpace()

	p := space.Insert("one two few", Metadata{})
	assert.Empty(t, p.Cluster)

	_, ok := space.ClusterOf("")
	assert.False(t, ok)
}

func TestSpaceSnapshotPreservesInsertionOrder(t *testing.T) {
	space := NewSpace()

	ids := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		p := space.Insert("wind wind turbines turbines", Metadata{})
		ids = append(ids, p.Id)
	}

	snapshot := space.Snapshot()
	require.Len(t, snapshot, 5)
	for i, p := range snapshot {
		assert.Equal(t, ids[i], p.Id)
	}
	assert.Equal(t, 5, space.Len())
}

func TestSpaceClearResetsNovelty(t *testing.T) {
	space := NewSpace()
	content := "geothermal geothermal wells wells"

	space.Insert(content, Metadata{})
	space.Clear()

	assert.Equal(t, 0, space.Len())
	assert.Empty(t, space.Snapshot())

	// Concept counts are gone too, so the same content is novel again.
	p := space.Insert(content, Metadata{})
	assert.Equal(t, 1.0, p.Novelty)
}
