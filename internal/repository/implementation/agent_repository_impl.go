package implementation

import (
	"context"
	"errors"

	"ai-research-be/internal/entity"
	"ai-research-be/internal/repository/contract"
	"ai-research-be/internal/repository/specification"

	"gorm.io/gorm"
)

type AgentRepositoryImpl struct {
	db *gorm.DB
}

func NewAgentRepository(db *gorm.DB) contract.AgentRepository {
	return &AgentRepositoryImpl{db: db}
}

func (r *AgentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AgentRepositoryImpl) Create(ctx context.Context, agent *entity.Agent) error {
	return r.db.WithContext(ctx).Create(agent).Error
}

func (r *AgentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Agent, error) {
	var agent entity.Agent
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&agent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &agent, nil
}

func (r *AgentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Agent, error) {
	var agents []*entity.Agent
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&agents).Error; err != nil {
		return nil, err
	}
	return agents, nil
}

func (r *AgentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&entity.Agent{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
