package handler

import (
	"net/http"

	"creatorhub/internal/delivery/api/response"
	"creatorhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
}

// ProfileHandler serves the creator's profile, appearance and QR code.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
	}
}

// GetProfile returns the caller's profile with every social network.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), user.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, profile)
}

// UpdateProfile saves name, bio, avatar and social links.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req usecase.UpdateProfileInput
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), user.ID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, profile)
}

// UpdateSettings saves the accent color and theme.
func (h *ProfileHandler) UpdateSettings(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req usecase.UpdateSettingsInput
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	updated, err := h.profileUC.UpdateSettings(c.Request().Context(), user.ID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, updated)
}

// ListThemes returns the theme catalogue.
func (h *ProfileHandler) ListThemes(c echo.Context) error {
	return response.OK(c, h.profileUC.ListThemes())
}

// GetQRCode returns the caller's public page URL as a PNG QR code.
func (h *ProfileHandler) GetQRCode(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	png, err := h.profileUC.GenerateQRCode(c.Request().Context(), user.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="`+user.Username+`-qr.png"`)

	return c.Blob(http.StatusOK, "image/png", png)
}
