package handler

import (
	"io"
	"log/slog"
	"net/http"

	"creatorhub/internal/delivery/api/response"
	deliverycontext "creatorhub/internal/delivery/context"
	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	maxWebhookBodySize    = 64 << 10
	stripeSignatureHeader = "Stripe-Signature"
)

// BillingHandlerParams holds dependencies for BillingHandler, injected by Fx.
type BillingHandlerParams struct {
	fx.In

	BillingUC usecase.BillingUsecase
	PlanUC    usecase.PlanUsecase
	Logger    *slog.Logger
}

// BillingHandler serves plan state, checkout and payment provider webhooks.
type BillingHandler struct {
	billingUC usecase.BillingUsecase
	planUC    usecase.PlanUsecase
	logger    *slog.Logger
}

// NewBillingHandler is the constructor for BillingHandler
func NewBillingHandler(params BillingHandlerParams) *BillingHandler {
	return &BillingHandler{
		billingUC: params.BillingUC,
		planUC:    params.PlanUC,
		logger:    params.Logger,
	}
}

// GetPlan reports the caller's plan, quotas and usage.
func (h *BillingHandler) GetPlan(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	plan, err := h.planUC.GetPlan(c.Request().Context(), user.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, plan)
}

// CreateSession returns the checkout or billing portal URL for the caller.
func (h *BillingHandler) CreateSession(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	session, err := h.billingUC.CreateBillingSession(c.Request().Context(), user.ID, user.Email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, session)
}

// Webhook verifies and applies a payment provider event.
func (h *BillingHandler) Webhook(c echo.Context) error {
	body := http.MaxBytesReader(c.Response(), c.Request().Body, maxWebhookBodySize)

	payload, err := io.ReadAll(body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return response.HandleAppError(c, domainerrors.ErrInvalidWebhook.WithDetails("payload exceeds 64KiB"))
		}

		return response.HandleAppError(c, domainerrors.ErrInvalidWebhook.WithDetails("payload could not be read"))
	}

	event, err := h.billingUC.HandleWebhook(c.Request().Context(), payload, c.Request().Header.Get(stripeSignatureHeader))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).InfoContext(c.Request().Context(), "Webhook processed",
		slog.String("event_id", event.ID),
		slog.String("event_type", event.Type),
	)

	return response.OK(c, map[string]bool{"received": true})
}
