package entity

import "time"

// ProGracePeriod extends the paid period so renewals that settle late do not drop the plan.
const ProGracePeriod = 24 * time.Hour

// UserSubscription mirrors the payment provider's subscription state for one user.
// Rows are written only from payment webhooks.
type UserSubscription struct {
	UserID                 string     `json:"user_id"`
	StripeCustomerID       *string    `json:"stripe_customer_id"`
	StripeSubscriptionID   *string    `json:"stripe_subscription_id"`
	StripePriceID          *string    `json:"stripe_price_id"`
	StripeCurrentPeriodEnd *time.Time `json:"stripe_current_period_end"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

// IsPro reports whether the subscription grants the Pro plan at the given instant.
// A nil subscription is the free plan.
func (s *UserSubscription) IsPro(now time.Time) bool {
	if s == nil || s.StripePriceID == nil || *s.StripePriceID == "" || s.StripeCurrentPeriodEnd == nil {
		return false
	}

	return s.StripeCurrentPeriodEnd.Add(ProGracePeriod).After(now)
}

// HasCustomer reports whether the payment provider already knows this user.
func (s *UserSubscription) HasCustomer() bool {
	return s != nil && s.StripeCustomerID != nil && *s.StripeCustomerID != ""
}
