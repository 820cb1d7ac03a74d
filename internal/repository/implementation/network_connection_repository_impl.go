package implementation

import (
	"context"
	"errors"

	"ai-research-be/internal/entity"
	"ai-research-be/internal/repository/contract"
	"ai-research-be/internal/repository/specification"

	"gorm.io/gorm"
)

type NetworkConnectionRepositoryImpl struct {
	db *gorm.DB
}

func NewNetworkConnectionRepository(db *gorm.DB) contract.NetworkConnectionRepository {
	return &NetworkConnectionRepositoryImpl{db: db}
}

func (r *NetworkConnectionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NetworkConnectionRepositoryImpl) Create(ctx context.Context, connection *entity.NetworkConnection) error {
	return r.db.WithContext(ctx).Create(connection).Error
}

func (r *NetworkConnectionRepositoryImpl) Update(ctx context.Context, connection *entity.NetworkConnection) error {
	return r.db.WithContext(ctx).Save(connection).Error
}

func (r *NetworkConnectionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NetworkConnection, error) {
	var connection entity.NetworkConnection
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&connection).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &connection, nil
}

func (r *NetworkConnectionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NetworkConnection, error) {
	var connections []*entity.NetworkConnection
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&connections).Error; err != nil {
		return nil, err
	}
	return connections, nil
}
