package contract

import (
	"context"

	"ai-research-be/internal/entity"
	"ai-research-be/internal/repository/specification"
)

type CitationRepository interface {
	CreateBatch(ctx context.Context, citations []*entity.Citation) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Citation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
