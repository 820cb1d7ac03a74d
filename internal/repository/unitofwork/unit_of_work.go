package unitofwork

import (
	"context"

	"ai-research-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	AgentRepository() contract.AgentRepository
	ConversationRepository() contract.ConversationRepository
	MessageRepository() contract.MessageRepository
	AgentMemoryRepository() contract.AgentMemoryRepository
	NetworkConnectionRepository() contract.NetworkConnectionRepository
	CitationRepository() contract.CitationRepository
}
