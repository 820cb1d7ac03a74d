package contract

import (
	"context"

	"ai-research-be/internal/entity"
	"ai-research-be/internal/repository/specification"
)

type NetworkConnectionRepository interface {
	Create(ctx context.Context, connection *entity.NetworkConnection) error
	Update(ctx context.Context, connection *entity.NetworkConnection) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NetworkConnection, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NetworkConnection, error)
}
