package implementation

import (
	"context"

	"ai-research-be/internal/entity"
	"ai-research-be/internal/repository/contract"
	"ai-research-be/internal/repository/specification"

	"gorm.io/gorm"
)

type CitationRepositoryImpl struct {
	db *gorm.DB
}

func NewCitationRepository(db *gorm.DB) contract.CitationRepository {
	return &CitationRepositoryImpl{db: db}
}

func (r *CitationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CitationRepositoryImpl) CreateBatch(ctx context.Context, citations []*entity.Citation) error {
	if len(citations) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(citations).Error
}

func (r *CitationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Citation, error) {
	var citations []*entity.Citation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&citations).Error; err != nil {
		return nil, err
	}
	return citations, nil
}

func (r *CitationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&entity.Citation{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
