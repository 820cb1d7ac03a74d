// FILE: internal/service/agent_service.go
package service

import (
	"context"

	"ai-research-be/internal/dto"
	"ai-research-be/internal/pkg/logger"
	"ai-research-be/internal/repository/specification"
	"ai-research-be/internal/repository/unitofwork"
	"ai-research-be/pkg/research"
)

type IAgentService interface {
	ListAgents(ctx context.Context) []dto.AgentResponse
	GetAgentDetails(ctx context.Context, id uint) (*dto.AgentDetailResponse, error)
}

type agentService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewAgentService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IAgentService {
	return &agentService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

// ListAgents serves the seeded agents from the record store, falling
// back to the built-in roster when the store is unreachable or unseeded.
func (s *agentService) ListAgents(ctx context.Context) []dto.AgentResponse {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	agents, err := uow.AgentRepository().FindAll(ctx)
	if err != nil {
		s.logger.Warn("AgentService", "Failed to load agents from store, serving roster", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if len(agents) > 0 {
		out := make([]dto.AgentResponse, 0, len(agents))
		for _, a := range agents {
			out = append(out, dto.AgentResponse{
				Id:        a.Id,
				Name:      a.Name,
				Expertise: a.PersonalityType,
				Color:     a.Color,
			})
		}
		return out
	}

	out := make([]dto.AgentResponse, 0, len(research.Roster))
	for _, p := range research.Roster {
		out = append(out, dto.AgentResponse{
			Id:        p.AgentId,
			Name:      p.Name,
			Expertise: p.Specialization,
			Color:     p.Color,
		})
	}
	return out
}

// GetAgentDetails returns one agent together with its recent messages,
// memory size and network connections. A nil response means the agent
// does not exist.
func (s *agentService) GetAgentDetails(ctx context.Context, id uint) (*dto.AgentDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	agent, err := uow.AgentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, nil
	}

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.BySpeakerId{SpeakerId: id},
		specification.OrderBy{Field: "timestamp", Desc: true},
		specification.Pagination{Limit: 10},
	)
	if err != nil {
		return nil, err
	}

	memoryCount, err := uow.AgentMemoryRepository().Count(ctx, specification.Filter("agent_id", id))
	if err != nil {
		return nil, err
	}

	connections, err := uow.NetworkConnectionRepository().FindAll(ctx, specification.ByConnectionEndpoint{AgentId: id})
	if err != nil {
		return nil, err
	}

	detail := &dto.AgentDetailResponse{
		AgentResponse: dto.AgentResponse{
			Id:        agent.Id,
			Name:      agent.Name,
			Expertise: agent.PersonalityType,
			Color:     agent.Color,
		},
		Messages:    make([]dto.AgentMessageResponse, 0, len(messages)),
		MemoryCount: memoryCount,
		Connections: make([]dto.AgentConnectionResponse, 0, len(connections)),
	}
	for _, m := range messages {
		detail.Messages = append(detail.Messages, dto.AgentMessageResponse{
			Id:          m.Id,
			Message:     m.Message,
			MessageType: m.MessageType,
			Timestamp:   m.Timestamp,
		})
	}
	for _, c := range connections {
		peer := c.Agent1Id
		if peer == id {
			peer = c.Agent2Id
		}
		detail.Connections = append(detail.Connections, dto.AgentConnectionResponse{
			AgentId:          peer,
			Strength:         c.Strength,
			InteractionCount: c.InteractionCount,
			LastInteraction:  c.LastInteraction,
		})
	}
	return detail, nil
}
