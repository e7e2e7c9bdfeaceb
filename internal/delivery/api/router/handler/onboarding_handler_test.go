package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"creatorhub/internal/delivery/api/middleware"
	"creatorhub/internal/domain/entity"
	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/domain/service"
	mockUsecase "creatorhub/internal/mocks/usecase"
	"creatorhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func withIdentity(identity *service.Identity) requestOption {
	return func(c echo.Context) {
		middleware.SetIdentity(c, identity)
	}
}

func TestOnboardingHandler_Onboard(t *testing.T) {
	identity := &service.Identity{Subject: "user-1", Email: "creator@example.com"}

	t.Run("created", func(t *testing.T) {
		e := newTestEcho(t)
		onboardingUC := mockUsecase.NewMockOnboardingUsecase(t)
		h := NewOnboardingHandler(OnboardingHandlerParams{OnboardingUC: onboardingUC})

		onboardingUC.EXPECT().Onboard(mock.Anything, identity, &usecase.OnboardInput{Username: "creator"}).
			Return(&entity.User{ID: "user-1", Username: "creator"}, nil).Once()

		rec := serve(t, e, h.Onboard, jsonRequest(http.MethodPost, "/api/onboarding", `{"username":"creator"}`), withIdentity(identity))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"username":"creator"`)
	})

	t.Run("username taken", func(t *testing.T) {
		e := newTestEcho(t)
		onboardingUC := mockUsecase.NewMockOnboardingUsecase(t)
		h := NewOnboardingHandler(OnboardingHandlerParams{OnboardingUC: onboardingUC})

		onboardingUC.EXPECT().Onboard(mock.Anything, identity, mock.Anything).
			Return(nil, domainerrors.ErrUsernameTaken).Once()

		rec := serve(t, e, h.Onboard, jsonRequest(http.MethodPost, "/api/onboarding", `{"username":"creator"}`), withIdentity(identity))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("no identity", func(t *testing.T) {
		e := newTestEcho(t)
		h := NewOnboardingHandler(OnboardingHandlerParams{OnboardingUC: mockUsecase.NewMockOnboardingUsecase(t)})

		rec := serve(t, e, h.Onboard, jsonRequest(http.MethodPost, "/api/onboarding", `{"username":"creator"}`))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestOnboardingHandler_GetStatus(t *testing.T) {
	e := newTestEcho(t)
	onboardingUC := mockUsecase.NewMockOnboardingUsecase(t)
	h := NewOnboardingHandler(OnboardingHandlerParams{OnboardingUC: onboardingUC})

	onboardingUC.EXPECT().GetStatus(mock.Anything, "user-1").
		Return(&usecase.OnboardingStatus{Onboarded: false}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/onboarding", nil)
	rec := serve(t, e, h.GetStatus, req, withIdentity(&service.Identity{Subject: "user-1"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"onboarded":false`)
}
