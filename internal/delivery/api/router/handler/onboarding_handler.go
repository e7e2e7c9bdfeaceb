package handler

import (
	"creatorhub/internal/delivery/api/middleware"
	"creatorhub/internal/delivery/api/response"
	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OnboardingHandlerParams holds dependencies for OnboardingHandler, injected by Fx.
type OnboardingHandlerParams struct {
	fx.In

	OnboardingUC usecase.OnboardingUsecase
}

// OnboardingHandler serves the username claim flow.
type OnboardingHandler struct {
	onboardingUC usecase.OnboardingUsecase
}

// NewOnboardingHandler is the constructor for OnboardingHandler
func NewOnboardingHandler(params OnboardingHandlerParams) *OnboardingHandler {
	return &OnboardingHandler{
		onboardingUC: params.OnboardingUC,
	}
}

// GetStatus reports whether the caller already onboarded.
func (h *OnboardingHandler) GetStatus(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	status, err := h.onboardingUC.GetStatus(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, status)
}

// Onboard claims a username for the caller.
func (h *OnboardingHandler) Onboard(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var req usecase.OnboardInput
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.onboardingUC.Onboard(c.Request().Context(), identity, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, user)
}
