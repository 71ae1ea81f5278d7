package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const productColumns = `id, name, description, sku, manufacturer, quantity,
	owner_user_id, date_added, date_last_updated`

func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO products (name, description, sku, manufacturer, quantity,
			owner_user_id, date_added, date_last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, p.Name, p.Description, p.SKU, p.Manufacturer, p.Quantity,
		p.OwnerUserID, p.DateAdded, p.DateLastUpdated)

	if err := row.Scan(&p.ID); err != nil {
		return translate(err)
	}
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE id = $1
	`, id)
	return scanProduct(row)
}

func (r *ProductRepository) GetByIDAndOwner(ctx context.Context, id, ownerUserID int64) (*entity.Product, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE id = $1 AND owner_user_id = $2
	`, id, ownerUserID)
	return scanProduct(row)
}

func (r *ProductRepository) ListByOwner(ctx context.Context, ownerUserID int64) ([]*entity.Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE owner_user_id = $1
		ORDER BY id
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProductRepository) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM products WHERE sku = $1)
	`, sku).Scan(&exists)
	return exists, err
}

func (r *ProductRepository) ExistsBySKUExcluding(ctx context.Context, sku string, excludeID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM products WHERE sku = $1 AND id <> $2)
	`, sku, excludeID).Scan(&exists)
	return exists, err
}

func (r *ProductRepository) Update(ctx context.Context, p *entity.Product) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE products
		SET name = $1, description = $2, sku = $3, manufacturer = $4,
			quantity = $5, date_last_updated = $6
		WHERE id = $7
	`, p.Name, p.Description, p.SKU, p.Manufacturer,
		p.Quantity, p.DateLastUpdated, p.ID)
	if err != nil {
		return translate(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	p := &entity.Product{}
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.SKU, &p.Manufacturer,
		&p.Quantity, &p.OwnerUserID, &p.DateAdded, &p.DateLastUpdated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

var _ repository.ProductRepository = (*ProductRepository)(nil)
