package postgres

import (
	"context"

	"arena/internal/domain/repository"
	"arena/internal/errors"

	"gorm.io/gorm"
)

type healthChecker struct {
	db *gorm.DB
}

// NewHealthChecker reports database reachability for the health endpoint.
func NewHealthChecker(db *gorm.DB) repository.HealthChecker {
	return &healthChecker{db: db}
}

func (h *healthChecker) Ping(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	return errors.Wrap(sqlDB.PingContext(ctx), "failed to ping PostgreSQL")
}
