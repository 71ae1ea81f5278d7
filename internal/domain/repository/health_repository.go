package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// HealthCheckRepository backs the liveness probe: a trivial round-trip
// plus an insert of the probe record.
type HealthCheckRepository interface {
	Ping(ctx context.Context) error
	Create(ctx context.Context, hc *entity.HealthCheck) error
}
