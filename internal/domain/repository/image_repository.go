package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// ImageRepository defines image-metadata database operations.
type ImageRepository interface {
	Create(ctx context.Context, img *entity.Image) error
	GetByID(ctx context.Context, id int64) (*entity.Image, error)
	ListByProduct(ctx context.Context, productID int64) ([]*entity.Image, error)
	Delete(ctx context.Context, id int64) error
}
