package model

import (
	"time"
)

// UserSubscriptionModel is the GORM-specific struct for the 'user_subscriptions' table.
// It mirrors the payment provider subscription of a user.
type UserSubscriptionModel struct {
	UserID                 string     `gorm:"type:varchar(191);primaryKey"`
	StripeCustomerID       *string    `gorm:"type:varchar(255);uniqueIndex"`
	StripeSubscriptionID   *string    `gorm:"type:varchar(255);uniqueIndex"`
	StripePriceID          *string    `gorm:"type:varchar(255)"`
	StripeCurrentPeriodEnd *time.Time `gorm:"type:timestamptz"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserSubscriptionModel) TableName() string {
	return "user_subscriptions"
}
