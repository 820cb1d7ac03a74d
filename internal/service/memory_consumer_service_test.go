// FILE: internal/service/memory_consumer_service_test.go
package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-research-be/internal/dto"
)

func publishFinding(t *testing.T, pubSub *gochannel.GoChannel, topic string, msg dto.FindingRecordedMessage) {
	t.Helper()
	payload, err := json.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, pubSub.Publish(topic, message.NewMessage(watermill.NewUUID(), payload)))
}

func waitFor(t *testing.T, condition func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestMemoryConsumerStoresFindingMemory(t *testing.T) {
	const topic = "test.finding.recorded"
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	store := &memoryStore{}
	consumer := NewMemoryConsumerService(pubSub, topic, &fakeFactory{store: store})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, consumer.Consume(ctx))

	publishFinding(t, pubSub, topic, dto.FindingRecordedMessage{
		SessionId:      "session-1",
		AgentId:        3,
		Agent:          "Tech Specialist",
		Specialization: "technical_analysis",
		Content:        "finding text",
		Importance:     0.8,
	})

	waitFor(t, func() bool {
		store.mu.Lock()
		defer store.mu.Unlock()
		return len(store.memories) == 1 && len(store.connections) == 1
	})

	store.mu.Lock()
	defer store.mu.Unlock()

	memory := store.memories[0]
	assert.Equal(t, uint(3), memory.AgentId)
	assert.Equal(t, "finding", memory.MemoryType)
	assert.Equal(t, "finding text", memory.Content)
	assert.Equal(t, 0.8, memory.Importance)

	connection := store.connections[0]
	assert.Equal(t, uint(1), connection.Agent1Id)
	assert.Equal(t, uint(3), connection.Agent2Id)
	assert.Equal(t, 1.0, connection.Strength)
	assert.Equal(t, 1, connection.InteractionCount)
}

func TestMemoryConsumerSkipsLeadSelfConnection(t *testing.T) {
	const topic = "test.finding.lead"
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	store := &memoryStore{}
	consumer := NewMemoryConsumerService(pubSub, topic, &fakeFactory{store: store})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, consumer.Consume(ctx))

	publishFinding(t, pubSub, topic, dto.FindingRecordedMessage{
		SessionId: "session-2",
		AgentId:   1,
		Agent:     "Explorer",
		Content:   "lead finding",
	})

	waitFor(t, func() bool {
		store.mu.Lock()
		defer store.mu.Unlock()
		return len(store.memories) == 1
	})

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Empty(t, store.connections, "no connection from the lead to itself")
}
