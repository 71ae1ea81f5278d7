package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductRepository defines catalog database operations.
//
// GetByIDAndOwner answers the owner-scoped lookup used by the patch and
// delete paths, where a missing row and a row owned by someone else are
// indistinguishable to the caller.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetByIDAndOwner(ctx context.Context, id, ownerUserID int64) (*entity.Product, error)
	ListByOwner(ctx context.Context, ownerUserID int64) ([]*entity.Product, error)
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
	ExistsBySKUExcluding(ctx context.Context, sku string, excludeID int64) (bool, error)
	Update(ctx context.Context, p *entity.Product) error
	Delete(ctx context.Context, id int64) error
}
