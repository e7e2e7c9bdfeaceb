package service

import (
	"context"
	"time"
)

// Payment webhook event types handled by the billing usecase.
const (
	PaymentEventCheckoutCompleted = "checkout.session.completed"
	PaymentEventInvoicePaid       = "invoice.payment_succeeded"
)

// CheckoutRequest describes a subscription checkout for one user.
type CheckoutRequest struct {
	UserID     string
	Email      string
	SuccessURL string
	CancelURL  string
}

// PaymentEvent is a verified webhook event reduced to the fields billing needs.
type PaymentEvent struct {
	ID             string
	Type           string
	UserID         string // From checkout metadata, empty for invoices.
	SubscriptionID string
	CustomerID     string
}

// PaymentSubscription is the provider-side subscription state.
type PaymentSubscription struct {
	ID               string
	CustomerID       string
	PriceID          string
	CurrentPeriodEnd time.Time // Zero when the provider did not report it.
}

// PaymentGateway abstracts the payment provider.
type PaymentGateway interface {
	// CreateCheckoutSession starts a subscription checkout and returns its URL.
	CreateCheckoutSession(ctx context.Context, req *CheckoutRequest) (string, error)

	// CreatePortalSession opens the billing portal for an existing customer and returns its URL.
	CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error)

	// ParseWebhookEvent verifies the signature and decodes the event.
	ParseWebhookEvent(payload []byte, signature string) (*PaymentEvent, error)

	// RetrieveSubscription loads a subscription by id.
	RetrieveSubscription(ctx context.Context, subscriptionID string) (*PaymentSubscription, error)
}
