package embedding

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Space is the process-wide, append-only collection of embedding points
// and their derived concept clusters. It outlives individual research
// sessions and only empties on an explicit Clear.
//
// A single mutex guards the point map, the cluster map and the concept
// occurrence counts; inserts and snapshots are safe to interleave from
// any number of goroutines.
type Space struct {
	mu           sync.Mutex
	points       map[string]Point
	order        []string
	clusters     map[string]*Cluster
	conceptCount map[string]int
}

func NewSpace() *Space {
	return &Space{
		points:       make(map[string]Point),
		clusters:     make(map[string]*Cluster),
		conceptCount: make(map[string]int),
	}
}

// Insert projects content into a new point, scores it against the current
// state of the space and appends it. Novelty is computed from concept
// occurrence counts accumulated over the whole process lifetime, so a
// concept seen before always scores lower on its next appearance.
func (s *Space) Insert(content string, meta Metadata) Point {
	x, y, z, weight := Project(content)
	concepts := ExtractConcepts(content)

	point := Point{
		Id:         uuid.NewString(),
		X:          x,
		Y:          y,
		Z:          z,
		Concepts:   concepts,
		Importance: ImportanceScore(content),
		Weight:     weight,
		Metadata:   meta,
		CreatedAt:  time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	novelty := 1.0
	for _, c := range concepts {
		factor := 1 - 0.1*float64(s.conceptCount[c])
		if factor < 0.1 {
			factor = 0.1
		}
		novelty *= factor
	}
	if novelty < 0 {
		novelty = 0
	}
	point.Novelty = novelty

	for _, c := range concepts {
		s.conceptCount[c]++
	}

	if key := ClusterKey(concepts); key != "" {
		point.Cluster = key
		cluster, ok := s.clusters[key]
		if !ok {
			cluster = &Cluster{Key: key}
			s.clusters[key] = cluster
		}
		cluster.Members = append(cluster.Members, point.Id)
	}

	s.points[point.Id] = point
	s.order = append(s.order, point.Id)
	return point
}

// Snapshot returns a copy of all points in insertion order. Safe to call
// concurrently with writers.
func (s *Space) Snapshot() []Point {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Point, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.points[id])
	}
	return out
}

// Len reports the current number of points.
func (s *Space) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.points)
}

// Clear atomically empties the space, its clusters and the concept
// occurrence counts.
func (s *Space) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.points = make(map[string]Point)
	s.order = nil
	s.clusters = make(map[string]*Cluster)
	s.conceptCount = make(map[string]int)
}

// ClusterOf returns the cluster holding the given key, or false when no
// point has produced that signature yet.
func (s *Space) ClusterOf(key string) (Cluster, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cluster, ok := s.clusters[key]
	if !ok {
		return Cluster{}, false
	}
	members := make([]string, len(cluster.Members))
	copy(members, cluster.Members)
	return Cluster{Key: cluster.Key, Members: members}, true
}

// CentroidOf recomputes the arithmetic mean of a cluster's member
// coordinates. Centroids are never maintained incrementally.
func (s *Space) CentroidOf(key string) (Centroid, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cluster, ok := s.clusters[key]
	if !ok || len(cluster.Members) == 0 {
		return Centroid{}, false
	}

	var c Centroid
	for _, id := range cluster.Members {
		p := s.points[id]
		c.X += p.X
		c.Y += p.Y
		c.Z += p.Z
	}
	n := float64(len(cluster.Members))
	c.X, c.Y, c.Z = c.X/n, c.Y/n, c.Z/n
	return c, true
}
