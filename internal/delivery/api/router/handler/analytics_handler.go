package handler

import (
	"strconv"

	"creatorhub/internal/delivery/api/response"
	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AnalyticsHandlerParams holds dependencies for AnalyticsHandler, injected by Fx.
type AnalyticsHandlerParams struct {
	fx.In

	AnalyticsUC usecase.AnalyticsUsecase
}

// AnalyticsHandler records public clicks and serves the click report.
type AnalyticsHandler struct {
	analyticsUC usecase.AnalyticsUsecase
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler
func NewAnalyticsHandler(params AnalyticsHandlerParams) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUC: params.AnalyticsUC,
	}
}

// Track records a click on a public item. No authentication is required.
func (h *AnalyticsHandler) Track(c echo.Context) error {
	var req usecase.TrackClickInput
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.analyticsUC.TrackClick(c.Request().Context(), &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]bool{"success": true})
}

// Summary reports the caller's clicks over ?days=N.
func (h *AnalyticsHandler) Summary(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	days := usecase.DefaultSummaryDays
	if raw := c.QueryParam("days"); raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil {
			return response.HandleAppError(c, domainerrors.NewFieldError("days", "must be a whole number"))
		}
	}

	summary, err := h.analyticsUC.GetSummary(c.Request().Context(), user.ID, days)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, summary)
}
