package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "creatorhub/internal/domain/errors"
	mockUsecase "creatorhub/internal/mocks/usecase"
	"creatorhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAnalyticsHandler_Track(t *testing.T) {
	t.Run("tracked", func(t *testing.T) {
		e := newTestEcho(t)
		analyticsUC := mockUsecase.NewMockAnalyticsUsecase(t)
		h := NewAnalyticsHandler(AnalyticsHandlerParams{AnalyticsUC: analyticsUC})

		analyticsUC.EXPECT().
			TrackClick(mock.Anything, &usecase.TrackClickInput{ID: "4f1c2a3e-0000-4000-8000-000000000001", Type: "coupon"}).
			Return(nil).Once()

		req := jsonRequest(http.MethodPost, "/api/analytics/track", `{"id":"4f1c2a3e-0000-4000-8000-000000000001","type":"coupon"}`)
		rec := serve(t, e, h.Track, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":true`)
	})

	t.Run("missing type", func(t *testing.T) {
		e := newTestEcho(t)
		h := NewAnalyticsHandler(AnalyticsHandlerParams{AnalyticsUC: mockUsecase.NewMockAnalyticsUsecase(t)})

		rec := serve(t, e, h.Track, jsonRequest(http.MethodPost, "/api/analytics/track", `{"id":"x"}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"type"`)
	})

	t.Run("unknown item", func(t *testing.T) {
		e := newTestEcho(t)
		analyticsUC := mockUsecase.NewMockAnalyticsUsecase(t)
		h := NewAnalyticsHandler(AnalyticsHandlerParams{AnalyticsUC: analyticsUC})

		analyticsUC.EXPECT().TrackClick(mock.Anything, mock.Anything).
			Return(domainerrors.ErrNotFound.WithMessage("item not found")).Once()

		rec := serve(t, e, h.Track, jsonRequest(http.MethodPost, "/api/analytics/track", `{"id":"x","type":"product"}`))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAnalyticsHandler_Summary(t *testing.T) {
	t.Run("defaults to 30 days", func(t *testing.T) {
		e := newTestEcho(t)
		analyticsUC := mockUsecase.NewMockAnalyticsUsecase(t)
		h := NewAnalyticsHandler(AnalyticsHandlerParams{AnalyticsUC: analyticsUC})

		analyticsUC.EXPECT().GetSummary(mock.Anything, testUser.ID, usecase.DefaultSummaryDays).
			Return(&usecase.AnalyticsSummary{Days: usecase.DefaultSummaryDays, TotalClicks: 7}, nil).Once()

		rec := serve(t, e, h.Summary, httptest.NewRequest(http.MethodGet, "/api/analytics/summary", nil), withUser(testUser))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total_clicks":7`)
	})

	t.Run("passes days through", func(t *testing.T) {
		e := newTestEcho(t)
		analyticsUC := mockUsecase.NewMockAnalyticsUsecase(t)
		h := NewAnalyticsHandler(AnalyticsHandlerParams{AnalyticsUC: analyticsUC})

		analyticsUC.EXPECT().GetSummary(mock.Anything, testUser.ID, 7).
			Return(&usecase.AnalyticsSummary{Days: 7}, nil).Once()

		rec := serve(t, e, h.Summary, httptest.NewRequest(http.MethodGet, "/api/analytics/summary?days=7", nil), withUser(testUser))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non numeric days", func(t *testing.T) {
		e := newTestEcho(t)
		h := NewAnalyticsHandler(AnalyticsHandlerParams{AnalyticsUC: mockUsecase.NewMockAnalyticsUsecase(t)})

		rec := serve(t, e, h.Summary, httptest.NewRequest(http.MethodGet, "/api/analytics/summary?days=week", nil), withUser(testUser))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"days"`)
	})
}
