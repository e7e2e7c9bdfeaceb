package repository

import (
	"context"
	"time"

	"creatorhub/internal/domain/entity"
	"creatorhub/internal/errors"
)

// ErrSubscriptionNotFound is returned when a subscription is not found.
var ErrSubscriptionNotFound = errors.New("subscription not found")

// SubscriptionRepository defines persistence for payment provider subscription state.
type SubscriptionRepository interface {
	// FindSubscriptionByUserID retrieves the subscription of a user.
	FindSubscriptionByUserID(ctx context.Context, userID string) (*entity.UserSubscription, error)

	// FindSubscriptionByStripeID retrieves a subscription by the provider subscription id.
	FindSubscriptionByStripeID(ctx context.Context, stripeSubscriptionID string) (*entity.UserSubscription, error)

	// UpsertSubscription creates or replaces the subscription row of subscription.UserID.
	UpsertSubscription(ctx context.Context, subscription *entity.UserSubscription) error

	// UpdateBillingPeriod refreshes price and period end of an existing subscription.
	// Returns ErrSubscriptionNotFound when no row matches.
	UpdateBillingPeriod(ctx context.Context, stripeSubscriptionID, priceID string, periodEnd time.Time) error

	// ListSubscriptions returns every subscription row.
	ListSubscriptions(ctx context.Context) ([]*entity.UserSubscription, error)
}
