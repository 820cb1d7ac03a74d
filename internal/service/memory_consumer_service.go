// FILE: internal/service/memory_consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"ai-research-be/internal/dto"
	"ai-research-be/internal/entity"
	"ai-research-be/internal/repository/specification"
	"ai-research-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// leadAgentId is the roster id of the lead-equivalent agent. Network
// connections record interaction strength between the lead and each
// producing worker.
const leadAgentId uint = 1

type IMemoryConsumerService interface {
	Consume(ctx context.Context) error
}

type memoryConsumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewMemoryConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IMemoryConsumerService {
	return &memoryConsumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *memoryConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *memoryConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.FindingRecordedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal finding message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	memory := &entity.AgentMemory{
		AgentId:      payload.AgentId,
		MemoryType:   "finding",
		Content:      payload.Content,
		Importance:   payload.Importance,
		CreatedAt:    now,
		LastAccessed: now,
	}
	if err := uow.AgentMemoryRepository().Create(ctx, memory); err != nil {
		log.Printf("[ERROR] Failed to store agent memory for agent %d: %v", payload.AgentId, err)
		msg.Nack()
		return
	}

	if err := cs.strengthenConnection(ctx, uow, payload.AgentId, now); err != nil {
		log.Printf("[ERROR] Failed to update network connection for agent %d: %v", payload.AgentId, err)
		msg.Nack()
		return
	}

	msg.Ack()
}

// strengthenConnection upserts the lead-worker connection, bumping its
// strength and interaction count.
func (cs *memoryConsumerService) strengthenConnection(ctx context.Context, uow unitofwork.UnitOfWork, agentId uint, now time.Time) error {
	if agentId == leadAgentId {
		return nil
	}

	repo := uow.NetworkConnectionRepository()
	existing, err := repo.FindOne(ctx, specification.ByAgentPair{Agent1Id: leadAgentId, Agent2Id: agentId})
	if err != nil {
		return err
	}

	if existing == nil {
		return repo.Create(ctx, &entity.NetworkConnection{
			Agent1Id:         leadAgentId,
			Agent2Id:         agentId,
			Strength:         1.0,
			LastInteraction:  now,
			InteractionCount: 1,
		})
	}

	existing.Strength += 0.1
	existing.InteractionCount++
	existing.LastInteraction = now
	return repo.Update(ctx, existing)
}
