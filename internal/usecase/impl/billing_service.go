package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"creatorhub/config"
	"creatorhub/internal/domain/entity"
	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/domain/repository"
	"creatorhub/internal/domain/service"
	"creatorhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// fallbackBillingPeriod is used when the provider reports no period end.
const fallbackBillingPeriod = 30 * 24 * time.Hour

type billingService struct {
	subscriptionRepo repository.SubscriptionRepository
	gateway          service.PaymentGateway
	returnURL        string
	logger           *slog.Logger
	now              func() time.Time
}

// BillingServiceParams holds dependencies for BillingService, injected by Fx.
type BillingServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	Gateway          service.PaymentGateway
	Config           *config.Config
	Logger           *slog.Logger
}

// NewBillingService creates a new billing service instance
func NewBillingService(params BillingServiceParams) usecase.BillingUsecase {
	return &billingService{
		subscriptionRepo: params.SubscriptionRepo,
		gateway:          params.Gateway,
		returnURL:        strings.TrimRight(params.Config.App.BaseURL, "/") + "/admin/settings",
		logger:           params.Logger,
		now:              time.Now,
	}
}

// CreateBillingSession opens the portal for known customers and a checkout otherwise.
func (s *billingService) CreateBillingSession(ctx context.Context, userID, email string) (*usecase.BillingSession, error) {
	subscription, err := s.subscriptionRepo.FindSubscriptionByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrSubscriptionNotFound) {
		return nil, errors.Wrap(err, "failed to load subscription")
	}

	if subscription.HasCustomer() {
		url, err := s.gateway.CreatePortalSession(ctx, *subscription.StripeCustomerID, s.returnURL)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create portal session")
		}

		return &usecase.BillingSession{URL: url}, nil
	}

	url, err := s.gateway.CreateCheckoutSession(ctx, &service.CheckoutRequest{
		UserID:     userID,
		Email:      email,
		SuccessURL: s.returnURL,
		CancelURL:  s.returnURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create checkout session")
	}

	return &usecase.BillingSession{URL: url}, nil
}

// HandleWebhook verifies a provider event and mirrors its subscription state.
func (s *billingService) HandleWebhook(ctx context.Context, payload []byte, signature string) (*service.PaymentEvent, error) {
	event, err := s.gateway.ParseWebhookEvent(payload, signature)
	if err != nil {
		return nil, err
	}

	switch event.Type {
	case service.PaymentEventCheckoutCompleted:
		err = s.handleCheckoutCompleted(ctx, event)
	case service.PaymentEventInvoicePaid:
		err = s.handleInvoicePaid(ctx, event)
	default:
		s.logger.DebugContext(ctx, "Ignoring payment event", slog.String("type", event.Type))
	}
	if err != nil {
		return nil, err
	}

	return event, nil
}

func (s *billingService) handleCheckoutCompleted(ctx context.Context, event *service.PaymentEvent) error {
	if event.UserID == "" {
		return domainerrors.NewFieldError("metadata.userId", "is required")
	}
	if event.SubscriptionID == "" {
		return domainerrors.NewFieldError("subscription", "is required")
	}

	remote, err := s.gateway.RetrieveSubscription(ctx, event.SubscriptionID)
	if err != nil {
		return errors.Wrap(err, "failed to retrieve subscription")
	}

	customerID := remote.CustomerID
	if customerID == "" {
		customerID = event.CustomerID
	}
	periodEnd := s.periodEnd(remote)

	subscription := &entity.UserSubscription{
		UserID:                 event.UserID,
		StripeCustomerID:       entity.NullIfEmpty(customerID),
		StripeSubscriptionID:   entity.NullIfEmpty(remote.ID),
		StripePriceID:          entity.NullIfEmpty(remote.PriceID),
		StripeCurrentPeriodEnd: &periodEnd,
	}

	if err := s.subscriptionRepo.UpsertSubscription(ctx, subscription); err != nil {
		return errors.Wrap(err, "failed to save subscription")
	}

	s.logger.InfoContext(ctx, "Subscription activated",
		slog.String("user_id", event.UserID),
		slog.String("subscription_id", remote.ID),
	)

	return nil
}

func (s *billingService) handleInvoicePaid(ctx context.Context, event *service.PaymentEvent) error {
	if event.SubscriptionID == "" {
		return nil
	}

	remote, err := s.gateway.RetrieveSubscription(ctx, event.SubscriptionID)
	if err != nil {
		return errors.Wrap(err, "failed to retrieve subscription")
	}

	err = s.subscriptionRepo.UpdateBillingPeriod(ctx, remote.ID, remote.PriceID, s.periodEnd(remote))
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			s.logger.DebugContext(ctx, "Invoice for unknown subscription", slog.String("subscription_id", remote.ID))

			return nil
		}

		return errors.Wrap(err, "failed to update billing period")
	}

	return nil
}

func (s *billingService) periodEnd(remote *service.PaymentSubscription) time.Time {
	if remote.CurrentPeriodEnd.IsZero() {
		return s.now().Add(fallbackBillingPeriod)
	}

	return remote.CurrentPeriodEnd
}
