package repository

import (
	"context"
	"time"

	"creatorhub/internal/domain/entity"
)

// AnalyticsRepository persists click logs.
type AnalyticsRepository interface {
	// CreateLog appends one click log row.
	CreateLog(ctx context.Context, log *entity.AnalyticsLog) error

	// CountClicksByType aggregates the user's clicks since the given instant.
	CountClicksByType(ctx context.Context, userID string, since time.Time) ([]entity.ClickCount, error)
}
