// Package payment integrates the Stripe API for subscriptions.
package payment

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"creatorhub/config"
	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
)

// metadataUserID carries our user id through checkout sessions.
const metadataUserID = "userId"

// stripeGateway implements service.PaymentGateway with the Stripe API.
type stripeGateway struct {
	api           *client.API
	priceID       string
	webhookSecret string
}

// NewPaymentGateway builds the Stripe gateway. Without a secret key billing is disabled.
func NewPaymentGateway(cfg *config.Config, logger *slog.Logger) service.PaymentGateway {
	if cfg.Stripe == nil || cfg.Stripe.SecretKey == "" {
		logger.Warn("Stripe not configured, billing endpoints are disabled")

		return &stripeGateway{}
	}

	api := &client.API{}
	api.Init(cfg.Stripe.SecretKey, nil)

	return &stripeGateway{
		api:           api,
		priceID:       cfg.Stripe.PriceID,
		webhookSecret: cfg.Stripe.WebhookSecret,
	}
}

// CreateCheckoutSession starts a subscription checkout for the Pro price.
func (g *stripeGateway) CreateCheckoutSession(ctx context.Context, req *service.CheckoutRequest) (string, error) {
	if g.api == nil || g.priceID == "" {
		return "", domainerrors.ErrBillingNotConfigured
	}

	params := &stripe.CheckoutSessionParams{
		Mode:                     stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		SuccessURL:               stripe.String(req.SuccessURL),
		CancelURL:                stripe.String(req.CancelURL),
		PaymentMethodTypes:       stripe.StringSlice([]string{"card"}),
		BillingAddressCollection: stripe.String(string(stripe.CheckoutSessionBillingAddressCollectionAuto)),
		ClientReferenceID:        stripe.String(req.UserID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(g.priceID),
				Quantity: stripe.Int64(1),
			},
		},
	}
	if req.Email != "" {
		params.CustomerEmail = stripe.String(req.Email)
	}
	params.AddMetadata(metadataUserID, req.UserID)
	params.Context = ctx

	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return "", errors.Wrap(err, "failed to create checkout session")
	}

	return session.URL, nil
}

// CreatePortalSession opens the billing portal for an existing customer.
func (g *stripeGateway) CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error) {
	if g.api == nil {
		return "", domainerrors.ErrBillingNotConfigured
	}

	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(returnURL),
	}
	params.Context = ctx

	session, err := g.api.BillingPortalSessions.New(params)
	if err != nil {
		return "", errors.Wrap(err, "failed to create billing portal session")
	}

	return session.URL, nil
}

// ParseWebhookEvent verifies the Stripe-Signature header and decodes the event.
func (g *stripeGateway) ParseWebhookEvent(payload []byte, signature string) (*service.PaymentEvent, error) {
	if g.webhookSecret == "" {
		return nil, domainerrors.ErrBillingNotConfigured
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, domainerrors.ErrInvalidWebhook.WithDetails(err.Error())
	}

	result := &service.PaymentEvent{
		ID:   event.ID,
		Type: string(event.Type),
	}
	if event.Data == nil {
		return result, nil
	}

	switch result.Type {
	case service.PaymentEventCheckoutCompleted:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return nil, domainerrors.ErrInvalidWebhook.WithDetails("malformed checkout session")
		}
		result.UserID = session.Metadata[metadataUserID]
		if session.Subscription != nil {
			result.SubscriptionID = session.Subscription.ID
		}
		if session.Customer != nil {
			result.CustomerID = session.Customer.ID
		}
	case service.PaymentEventInvoicePaid:
		var invoice stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			return nil, domainerrors.ErrInvalidWebhook.WithDetails("malformed invoice")
		}
		if invoice.Subscription != nil {
			result.SubscriptionID = invoice.Subscription.ID
		}
		if invoice.Customer != nil {
			result.CustomerID = invoice.Customer.ID
		}
	}

	return result, nil
}

// RetrieveSubscription loads a subscription with its price and period.
func (g *stripeGateway) RetrieveSubscription(ctx context.Context, subscriptionID string) (*service.PaymentSubscription, error) {
	if g.api == nil {
		return nil, domainerrors.ErrBillingNotConfigured
	}

	params := &stripe.SubscriptionParams{}
	params.Context = ctx

	sub, err := g.api.Subscriptions.Get(subscriptionID, params)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to retrieve subscription %s", subscriptionID)
	}

	return toPaymentSubscription(sub), nil
}

func toPaymentSubscription(sub *stripe.Subscription) *service.PaymentSubscription {
	result := &service.PaymentSubscription{ID: sub.ID}
	if sub.Customer != nil {
		result.CustomerID = sub.Customer.ID
	}
	if sub.Items != nil && len(sub.Items.Data) > 0 && sub.Items.Data[0].Price != nil {
		result.PriceID = sub.Items.Data[0].Price.ID
	}
	if sub.CurrentPeriodEnd > 0 {
		result.CurrentPeriodEnd = time.Unix(sub.CurrentPeriodEnd, 0).UTC()
	}

	return result
}
