package handler

import (
	"net/http"
	"strings"

	"creatorhub/internal/delivery/api/render"
	"creatorhub/internal/delivery/api/response"
	"creatorhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PublicHandlerParams holds dependencies for PublicHandler, injected by Fx.
type PublicHandlerParams struct {
	fx.In

	PublicProfileUC usecase.PublicProfileUsecase
}

// PublicHandler serves the public creator pages.
type PublicHandler struct {
	publicProfileUC usecase.PublicProfileUsecase
}

// NewPublicHandler is the constructor for PublicHandler
func NewPublicHandler(params PublicHandlerParams) *PublicHandler {
	return &PublicHandler{
		publicProfileUC: params.PublicProfileUC,
	}
}

// GetProfileJSON returns the public profile as JSON.
func (h *PublicHandler) GetProfileJSON(c echo.Context) error {
	profile, err := h.publicProfileUC.GetPublicProfile(c.Request().Context(), c.Param("username"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, profile)
}

// GetProfilePage renders the public profile as HTML, or JSON when the client asks for it.
func (h *PublicHandler) GetProfilePage(c echo.Context) error {
	if wantsJSON(c.Request()) {
		return h.GetProfileJSON(c)
	}

	profile, err := h.publicProfileUC.GetPublicProfile(c.Request().Context(), c.Param("username"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Render(http.StatusOK, render.ProfilePage, profile)
}

func wantsJSON(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get(echo.HeaderAccept), ",") {
		mediaType, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		if mediaType == echo.MIMEApplicationJSON {
			return true
		}
	}

	return false
}
