package entity

import "time"

// HealthCheck records one successful liveness probe round-trip.
type HealthCheck struct {
	ID        int64
	CheckedAt time.Time
}
