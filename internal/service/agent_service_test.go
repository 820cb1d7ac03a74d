// FILE: internal/service/agent_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-research-be/internal/constant"
	"ai-research-be/internal/entity"
	"ai-research-be/pkg/research"
)

func TestListAgentsServesRosterWhenStoreEmpty(t *testing.T) {
	svc := NewAgentService(&fakeFactory{store: &memoryStore{}}, nopLogger{})

	agents := svc.ListAgents(context.Background())
	require.Len(t, agents, len(research.Roster))
	assert.Equal(t, "Explorer", agents[0].Name)
	assert.Equal(t, "background_research", agents[0].Expertise)
	assert.Equal(t, "#00ff88", agents[0].Color)
}

func TestListAgentsPrefersSeededStore(t *testing.T) {
	store := &memoryStore{agents: []*entity.Agent{
		{Id: 7, Name: "Custom Agent", PersonalityType: "custom_research", Color: "#123456"},
	}}
	svc := NewAgentService(&fakeFactory{store: store}, nopLogger{})

	agents := svc.ListAgents(context.Background())
	require.Len(t, agents, 1)
	assert.Equal(t, uint(7), agents[0].Id)
	assert.Equal(t, "custom_research", agents[0].Expertise)
}

func TestGetAgentDetails(t *testing.T) {
	now := time.Now()
	store := &memoryStore{
		agents: []*entity.Agent{
			{Id: 3, Name: "Tech Specialist", PersonalityType: "technical_analysis", Color: "#ff8800"},
		},
		messages: []*entity.Message{
			{Id: 1, ConversationId: 1, SpeakerId: 3, Message: "finding text", Timestamp: now, MessageType: constant.MessageTypeFinding},
		},
		memories: []*entity.AgentMemory{
			{Id: 1, AgentId: 3, MemoryType: "finding", Content: "finding text"},
		},
		connections: []*entity.NetworkConnection{
			{Id: 1, Agent1Id: 1, Agent2Id: 3, Strength: 1.2, InteractionCount: 3, LastInteraction: now},
		},
	}
	svc := NewAgentService(&fakeFactory{store: store}, nopLogger{})

	detail, err := svc.GetAgentDetails(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, detail)

	assert.Equal(t, "Tech Specialist", detail.Name)
	assert.Equal(t, "technical_analysis", detail.Expertise)
	assert.Equal(t, int64(1), detail.MemoryCount)

	require.Len(t, detail.Messages, 1)
	assert.Equal(t, "finding text", detail.Messages[0].Message)

	// The connection is reported from the queried agent's perspective.
	require.Len(t, detail.Connections, 1)
	assert.Equal(t, uint(1), detail.Connections[0].AgentId)
	assert.Equal(t, 1.2, detail.Connections[0].Strength)
	assert.Equal(t, 3, detail.Connections[0].InteractionCount)
}

func TestGetAgentDetailsUnknownAgent(t *testing.T) {
	svc := NewAgentService(&fakeFactory{store: &memoryStore{}}, nopLogger{})

	detail, err := svc.GetAgentDetails(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, detail)
}
