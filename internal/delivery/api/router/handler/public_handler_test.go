package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"creatorhub/internal/domain/entity"
	domainerrors "creatorhub/internal/domain/errors"
	mockUsecase "creatorhub/internal/mocks/usecase"
	"creatorhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func samplePublicProfile() *usecase.PublicProfile {
	theme, _ := entity.LookupTheme(entity.ThemeSunset)

	return &usecase.PublicProfile{
		Username:   "creator",
		Name:       "Creator <b>",
		Bio:        "Reviews and deals",
		ThemeColor: "#ff0066",
		Theme:      theme,
		IsPro:      true,
		SocialLinks: []entity.PublicSocialLink{
			{Network: entity.SocialNetwork("instagram"), URL: "https://instagram.com/creator"},
		},
		Products: []*entity.Product{
			{ID: uuid.New(), Title: "Camera", AffiliateURL: "https://shop.example/camera", Active: true},
		},
	}
}

func TestPublicHandler_GetProfilePage(t *testing.T) {
	t.Run("renders HTML by default", func(t *testing.T) {
		e := newTestEcho(t)
		publicUC := mockUsecase.NewMockPublicProfileUsecase(t)
		h := NewPublicHandler(PublicHandlerParams{PublicProfileUC: publicUC})

		publicUC.EXPECT().GetPublicProfile(mock.Anything, "creator").Return(samplePublicProfile(), nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/creator", nil)
		req.Header.Set(echo.HeaderAccept, "text/html,application/xhtml+xml")
		rec := serve(t, e, h.GetProfilePage, req, withParam("username", "creator"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML)
		assert.Contains(t, rec.Body.String(), "Creator &lt;b&gt;")
		assert.Contains(t, rec.Body.String(), `data-track-type="product"`)
		assert.Contains(t, rec.Body.String(), "linear-gradient(135deg, #f97316, #db2777)")
		assert.NotContains(t, rec.Body.String(), "Made with CreatorHub")
	})

	t.Run("returns JSON when asked", func(t *testing.T) {
		e := newTestEcho(t)
		publicUC := mockUsecase.NewMockPublicProfileUsecase(t)
		h := NewPublicHandler(PublicHandlerParams{PublicProfileUC: publicUC})

		publicUC.EXPECT().GetPublicProfile(mock.Anything, "creator").Return(samplePublicProfile(), nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/creator", nil)
		req.Header.Set(echo.HeaderAccept, "application/json; q=1")
		rec := serve(t, e, h.GetProfilePage, req, withParam("username", "creator"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
		assert.Contains(t, rec.Body.String(), `"username":"creator"`)
	})

	t.Run("unknown username", func(t *testing.T) {
		e := newTestEcho(t)
		publicUC := mockUsecase.NewMockPublicProfileUsecase(t)
		h := NewPublicHandler(PublicHandlerParams{PublicProfileUC: publicUC})

		publicUC.EXPECT().GetPublicProfile(mock.Anything, "ghost").
			Return(nil, domainerrors.ErrNotFound.WithMessage("profile not found")).Once()

		req := httptest.NewRequest(http.MethodGet, "/ghost", nil)
		rec := serve(t, e, h.GetProfilePage, req, withParam("username", "ghost"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestWantsJSON(t *testing.T) {
	tests := []struct {
		accept string
		want   bool
	}{
		{accept: "", want: false},
		{accept: "text/html", want: false},
		{accept: "application/json", want: true},
		{accept: "text/html, application/json;q=0.9", want: true},
		{accept: "application/jsonp", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.accept, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/creator", nil)
			req.Header.Set(echo.HeaderAccept, tt.accept)
			assert.Equal(t, tt.want, wantsJSON(req))
		})
	}
}
