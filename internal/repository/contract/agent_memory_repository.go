package contract

import (
	"context"

	"ai-research-be/internal/entity"
	"ai-research-be/internal/repository/specification"
)

type AgentMemoryRepository interface {
	Create(ctx context.Context, memory *entity.AgentMemory) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AgentMemory, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
