package embedding

import "time"

// Point is a heuristic 3-D projection of a piece of research text.
// It is presentation data for the visualization layer, not a trained
// vector embedding.
type Point struct {
	Id         string    `json:"id"`
	X          float64   `json:"x"`
	Y          float64   `json:"y"`
	Z          float64   `json:"z"`
	Concepts   []string  `json:"concepts"`
	Cluster    string    `json:"cluster,omitempty"`
	Novelty    float64   `json:"novelty"`
	Importance float64   `json:"importance"`
	Weight     float64   `json:"weight"`
	Metadata   Metadata  `json:"metadata"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Metadata links a point back to the session, agent and query that
// produced it.
type Metadata struct {
	SessionId string `json:"sessionId,omitempty"`
	Agent     string `json:"agent,omitempty"`
	Query     string `json:"query"`
	Source    string `json:"source"`
}

// Cluster groups points sharing a concept signature. Members hold point
// ids; the centroid is recomputed on read.
type Cluster struct {
	Key     string   `json:"key"`
	Members []string `json:"members"`
}

// Centroid is the arithmetic mean of a cluster's member coordinates.
type Centroid struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}
