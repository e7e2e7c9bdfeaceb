package usecase

import (
	"context"
	"time"

	"creatorhub/internal/domain/entity"
)

// Summary window bounds in days, and the number of ranked items.
const (
	DefaultSummaryDays = 30
	MaxSummaryDays     = 365
	TopItemsLimit      = 10
)

// AnalyticsUsecase records public clicks and reports them to the owner.
type AnalyticsUsecase interface {
	// TrackClick records one click on a public item.
	TrackClick(ctx context.Context, input *TrackClickInput) error

	// GetSummary aggregates the caller's clicks over the last days.
	GetSummary(ctx context.Context, userID string, days int) (*AnalyticsSummary, error)
}

// TrackClickInput identifies the clicked item.
type TrackClickInput struct {
	ID   string `json:"id" validate:"required"`
	Type string `json:"type" validate:"required"`
}

// AnalyticsSummary is the click report of the dashboard.
type AnalyticsSummary struct {
	Days        int                  `json:"days"`
	Since       time.Time            `json:"since"`
	TotalClicks int64                `json:"total_clicks"`
	ByType      []entity.ClickCount  `json:"by_type"`
	TopItems    []*entity.ItemClicks `json:"top_items"`
}
