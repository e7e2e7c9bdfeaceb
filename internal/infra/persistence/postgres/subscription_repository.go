// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"creatorhub/internal/domain/entity"
	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/domain/repository"
	"creatorhub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// FindSubscriptionByUserID retrieves the subscription of a user.
func (repo *subscriptionRepository) FindSubscriptionByUserID(ctx context.Context, userID string) (*entity.UserSubscription, error) {
	var subscriptionM model.UserSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by user ID")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

// FindSubscriptionByStripeID retrieves a subscription by the provider subscription id.
func (repo *subscriptionRepository) FindSubscriptionByStripeID(ctx context.Context, stripeSubscriptionID string) (*entity.UserSubscription, error) {
	var subscriptionM model.UserSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("stripe_subscription_id = ?", stripeSubscriptionID).
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by stripe ID")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

// UpsertSubscription creates or replaces the subscription row of a user.
func (repo *subscriptionRepository) UpsertSubscription(ctx context.Context, subscription *entity.UserSubscription) error {
	now := time.Now()
	subscriptionM := fromSubscriptionDomain(subscription)
	if subscriptionM.CreatedAt.IsZero() {
		subscriptionM.CreatedAt = now
	}
	subscriptionM.UpdatedAt = now

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"stripe_customer_id",
				"stripe_subscription_id",
				"stripe_price_id",
				"stripe_current_period_end",
				"updated_at",
			}),
		}).
		Create(subscriptionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert subscription")
	}

	subscription.UpdatedAt = now

	return nil
}

// UpdateBillingPeriod refreshes price and period end of an existing subscription.
func (repo *subscriptionRepository) UpdateBillingPeriod(ctx context.Context, stripeSubscriptionID, priceID string, periodEnd time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserSubscriptionModel{}).
		Where("stripe_subscription_id = ?", stripeSubscriptionID).
		Updates(map[string]any{
			"stripe_price_id":           priceID,
			"stripe_current_period_end": periodEnd,
			"updated_at":                time.Now(),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update billing period")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// ListSubscriptions returns every subscription row.
func (repo *subscriptionRepository) ListSubscriptions(ctx context.Context) ([]*entity.UserSubscription, error) {
	var subscriptionsM []*model.UserSubscriptionModel

	if err := repo.db.WithContext(ctx).Find(&subscriptionsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions")
	}

	subscriptions := make([]*entity.UserSubscription, 0, len(subscriptionsM))
	for _, subscriptionM := range subscriptionsM {
		subscriptions = append(subscriptions, toSubscriptionDomain(subscriptionM))
	}

	return subscriptions, nil
}

func toSubscriptionDomain(data *model.UserSubscriptionModel) *entity.UserSubscription {
	if data == nil {
		return nil
	}

	return &entity.UserSubscription{
		UserID:                 data.UserID,
		StripeCustomerID:       data.StripeCustomerID,
		StripeSubscriptionID:   data.StripeSubscriptionID,
		StripePriceID:          data.StripePriceID,
		StripeCurrentPeriodEnd: data.StripeCurrentPeriodEnd,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}

func fromSubscriptionDomain(data *entity.UserSubscription) *model.UserSubscriptionModel {
	if data == nil {
		return nil
	}

	return &model.UserSubscriptionModel{
		UserID:                 data.UserID,
		StripeCustomerID:       data.StripeCustomerID,
		StripeSubscriptionID:   data.StripeSubscriptionID,
		StripePriceID:          data.StripePriceID,
		StripeCurrentPeriodEnd: data.StripeCurrentPeriodEnd,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}
