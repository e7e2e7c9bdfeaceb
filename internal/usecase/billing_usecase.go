package usecase

import (
	"context"

	"creatorhub/internal/domain/service"
)

// BillingUsecase connects users with the payment provider.
type BillingUsecase interface {
	// CreateBillingSession returns a billing portal URL for known customers, a checkout URL otherwise.
	CreateBillingSession(ctx context.Context, userID, email string) (*BillingSession, error)

	// HandleWebhook verifies and applies a payment provider event.
	HandleWebhook(ctx context.Context, payload []byte, signature string) (*service.PaymentEvent, error)
}

// BillingSession is the provider page the client is redirected to.
type BillingSession struct {
	URL string `json:"url"`
}
