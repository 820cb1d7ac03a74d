package research

import (
	"fmt"
	"time"
)

// Subtask is one unit of the research plan, assigned to a single worker
// role with a pre-built search query.
type Subtask struct {
	Name  string `json:"name"`
	Focus string `json:"focus"`
	Role  string `json:"role"`
	Query string `json:"query"`
}

// Plan is the decomposition of a topic into subtasks. Produced once per
// session and immutable afterward.
//
// The subtask shape is fixed by the roster regardless of what the
// completion capability returned for the planning prompt: the advisory
// text is embedded in later prompts as context, never parsed as
// structured data.
type Plan struct {
	Topic     string    `json:"topic"`
	Advisory  string    `json:"advisory,omitempty"`
	Subtasks  []Subtask `json:"subtasks"`
	CreatedAt time.Time `json:"createdAt"`
}

// BuildPlan derives the fixed-shape subtask list for a topic from the
// first count roster personas. count is clamped to [1, len(Roster)].
func BuildPlan(topic, advisory string, count int) *Plan {
	if count < 1 {
		count = 1
	}
	if count > len(Roster) {
		count = len(Roster)
	}

	subtasks := make([]Subtask, 0, count)
	for _, p := range Roster[:count] {
		subtasks = append(subtasks, Subtask{
			Name:  p.Name,
			Focus: p.FocusPoints[0],
			Role:  p.Specialization,
			Query: fmt.Sprintf("%s %s", topic, p.QueryKeywords),
		})
	}

	return &Plan{
		Topic:     topic,
		Advisory:  advisory,
		Subtasks:  subtasks,
		CreatedAt: time.Now(),
	}
}
