package implementation

import (
	"context"

	"ai-research-be/internal/entity"
	"ai-research-be/internal/repository/contract"
	"ai-research-be/internal/repository/specification"

	"gorm.io/gorm"
)

type AgentMemoryRepositoryImpl struct {
	db *gorm.DB
}

func NewAgentMemoryRepository(db *gorm.DB) contract.AgentMemoryRepository {
	return &AgentMemoryRepositoryImpl{db: db}
}

func (r *AgentMemoryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AgentMemoryRepositoryImpl) Create(ctx context.Context, memory *entity.AgentMemory) error {
	return r.db.WithContext(ctx).Create(memory).Error
}

func (r *AgentMemoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AgentMemory, error) {
	var memories []*entity.AgentMemory
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&memories).Error; err != nil {
		return nil, err
	}
	return memories, nil
}

func (r *AgentMemoryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&entity.AgentMemory{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
