package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type HealthCheckRepository struct {
	pool *pgxpool.Pool
}

func NewHealthCheckRepository(pool *pgxpool.Pool) *HealthCheckRepository {
	return &HealthCheckRepository{pool: pool}
}

func (r *HealthCheckRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *HealthCheckRepository) Create(ctx context.Context, hc *entity.HealthCheck) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO health_checks (checked_at)
		VALUES ($1)
		RETURNING id
	`, hc.CheckedAt)
	return row.Scan(&hc.ID)
}

var _ repository.HealthCheckRepository = (*HealthCheckRepository)(nil)
