package repository

import (
	"context"

	"gamezone/internal/domain/entity"
)

// ProductRepository is the read-only bulk-fetch interface over the
// external product store.
type ProductRepository interface {
	FetchAll(ctx context.Context) ([]*entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
}
