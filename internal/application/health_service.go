package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"storefront/internal/domain/entity"
	repo "storefront/internal/domain/repository"
)

// HealthService performs the side-effecting liveness check: one trivial
// round-trip against the store plus an insert of a timestamped record.
// Every failure collapses into "unhealthy"; nothing propagates.
type HealthService struct {
	Repo   repo.HealthCheckRepository
	Logger *logrus.Logger
}

func NewHealthService(r repo.HealthCheckRepository, logger *logrus.Logger) *HealthService {
	return &HealthService{Repo: r, Logger: logger}
}

func (s *HealthService) Check(ctx context.Context) bool {
	if err := s.Repo.Ping(ctx); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("database connection test failed")
		}
		return false
	}

	hc := &entity.HealthCheck{CheckedAt: time.Now().UTC()}
	if err := s.Repo.Create(ctx, hc); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("failed to persist health check record")
		}
		return false
	}

	if s.Logger != nil {
		s.Logger.WithField("check_id", hc.ID).Debug("health check successful")
	}
	return true
}
