package usecase

import (
	"context"

	"creatorhub/internal/domain/entity"
)

// PlanUsecase derives the plan of a user from its subscription on every call.
type PlanUsecase interface {
	// IsPro reports whether the user currently holds the Pro plan.
	IsPro(ctx context.Context, userID string) (bool, error)

	// Limits returns the free plan quotas.
	Limits() entity.PlanLimits

	// CheckItemQuota fails with ErrQuotaExceeded when a free user cannot add another item.
	CheckItemQuota(ctx context.Context, userID string, itemType entity.ItemType) error

	// CheckSocialLinkQuota fails with ErrQuotaExceeded when a free user saves more filled networks than allowed.
	CheckSocialLinkQuota(ctx context.Context, userID string, filled int) error

	// GetPlan reports plan, quotas and current usage.
	GetPlan(ctx context.Context, userID string) (*PlanOverview, error)
}

// PlanOverview is the plan state shown in the dashboard.
type PlanOverview struct {
	IsPro  bool              `json:"is_pro"`
	Limits entity.PlanLimits `json:"limits"`
	Usage  PlanUsage         `json:"usage"`
}

// PlanUsage counts what a user currently has against each quota.
type PlanUsage struct {
	Products    int64 `json:"products"`
	Coupons     int64 `json:"coupons"`
	Partners    int64 `json:"partners"`
	SocialLinks int   `json:"social_links"`
}
