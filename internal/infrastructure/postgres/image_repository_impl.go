package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type ImageRepository struct {
	pool *pgxpool.Pool
}

func NewImageRepository(pool *pgxpool.Pool) *ImageRepository {
	return &ImageRepository{pool: pool}
}

const imageColumns = `id, product_id, user_id, file_name, content_type, file_size,
	storage_key, date_created`

func (r *ImageRepository) Create(ctx context.Context, img *entity.Image) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO images (product_id, user_id, file_name, content_type, file_size,
			storage_key, date_created)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, img.ProductID, img.UserID, img.FileName, img.ContentType, img.FileSize,
		img.StorageKey, img.DateCreated)

	if err := row.Scan(&img.ID); err != nil {
		return translate(err)
	}
	return nil
}

func (r *ImageRepository) GetByID(ctx context.Context, id int64) (*entity.Image, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+imageColumns+`
		FROM images
		WHERE id = $1
	`, id)
	return scanImage(row)
}

func (r *ImageRepository) ListByProduct(ctx context.Context, productID int64) ([]*entity.Image, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+imageColumns+`
		FROM images
		WHERE product_id = $1
		ORDER BY id
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Image
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, rows.Err()
}

func (r *ImageRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM images WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanImage(row pgx.Row) (*entity.Image, error) {
	img := &entity.Image{}
	if err := row.Scan(&img.ID, &img.ProductID, &img.UserID, &img.FileName,
		&img.ContentType, &img.FileSize, &img.StorageKey, &img.DateCreated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return img, nil
}

var _ repository.ImageRepository = (*ImageRepository)(nil)
