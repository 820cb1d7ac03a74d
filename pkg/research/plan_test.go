package research

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPlanSubtaskShape(t *testing.T) {
	plan := BuildPlan("quantum computing", "advisory text", 4)

	assert.Equal(t, "quantum computing", plan.Topic)
	assert.Equal(t, "advisory text", plan.Advisory)
	require.Len(t, plan.Subtasks, 4)

	// Subtasks follow roster order with pre-built queries.
	assert.Equal(t, "Explorer", plan.Subtasks[0].Name)
	assert.Equal(t, "background_research", plan.Subtasks[0].Role)
	assert.Equal(t, "quantum computing background history", plan.Subtasks[0].Query)

	assert.Equal(t, "Trend Scout", plan.Subtasks[1].Name)
	assert.Equal(t, "quantum computing latest trends", plan.Subtasks[1].Query)

	assert.Equal(t, "Impact Assessor", plan.Subtasks[3].Name)
	assert.Equal(t, "quantum computing impact future", plan.Subtasks[3].Query)

	for _, st := range plan.Subtasks {
		assert.NotEmpty(t, st.Focus)
	}
}

func TestBuildPlanClampsCount(t *testing.T) {
	assert.Len(t, BuildPlan("t", "", 0).Subtasks, 1)
	assert.Len(t, BuildPlan("t", "", -3).Subtasks, 1)
	assert.Len(t, BuildPlan("t", "", 100).Subtasks, len(Roster))
}

func TestStatusLifecycle(t *testing.T) {
	assert.True(t, StatusPlanning.CanTransitionTo(StatusExecuting))
	assert.True(t, StatusPlanning.CanTransitionTo(StatusFailed))
	assert.True(t, StatusExecuting.CanTransitionTo(StatusSynthesizing))
	assert.True(t, StatusSynthesizing.CanTransitionTo(StatusCompleted))

	// No regressions, no leaving a terminal state.
	assert.False(t, StatusExecuting.CanTransitionTo(StatusPlanning))
	assert.False(t, StatusCompleted.CanTransitionTo(StatusFailed))
	assert.False(t, StatusFailed.CanTransitionTo(StatusExecuting))

	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusFailed.Terminal())
	assert.False(t, StatusSynthesizing.Terminal())
}

func TestSessionCloneIsolatesSlices(t *testing.T) {
	session := &Session{
		Topic:    "solar power",
		Findings: []Finding{{Agent: "Explorer", Content: "original"}},
	}
	clone := session.Clone()

	session.Findings[0].Content = "mutated"
	assert.Equal(t, "original", clone.Findings[0].Content)
}
