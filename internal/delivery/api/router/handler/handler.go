// Package handler holds the echo handlers of the API.
package handler

import (
	"net/http"

	"creatorhub/internal/delivery/api/middleware"
	"creatorhub/internal/delivery/api/response"
	"creatorhub/internal/domain/entity"
	domainerrors "creatorhub/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}

func currentUser(c echo.Context) (*entity.User, error) {
	user, ok := middleware.GetUser(c)
	if !ok {
		return nil, domainerrors.ErrOnboardingRequired
	}

	return user, nil
}

// bind decodes the request into req and validates it.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body is not valid JSON for this endpoint")
	}

	return c.Validate(req)
}

// paramID parses the :id path parameter. Malformed ids cannot match a row.
func paramID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrNotFound.WithMessage("item not found")
	}

	return id, nil
}

func noContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}
