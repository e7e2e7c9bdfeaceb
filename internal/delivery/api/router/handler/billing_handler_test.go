package handler

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"creatorhub/internal/domain/entity"
	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/domain/service"
	mockUsecase "creatorhub/internal/mocks/usecase"
	"creatorhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type billingHandlerMocks struct {
	billing *mockUsecase.MockBillingUsecase
	plan    *mockUsecase.MockPlanUsecase
}

func newBillingHandlerForTest(t *testing.T) (*BillingHandler, billingHandlerMocks) {
	mocks := billingHandlerMocks{
		billing: mockUsecase.NewMockBillingUsecase(t),
		plan:    mockUsecase.NewMockPlanUsecase(t),
	}

	return NewBillingHandler(BillingHandlerParams{
		BillingUC: mocks.billing,
		PlanUC:    mocks.plan,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), mocks
}

func TestBillingHandler_Webhook(t *testing.T) {
	t.Run("processed", func(t *testing.T) {
		e := newTestEcho(t)
		h, mocks := newBillingHandlerForTest(t)

		payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)
		mocks.billing.EXPECT().HandleWebhook(mock.Anything, payload, "t=1,v1=abc").
			Return(&service.PaymentEvent{ID: "evt_1", Type: "checkout.session.completed"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/webhook", bytes.NewReader(payload))
		req.Header.Set("Stripe-Signature", "t=1,v1=abc")
		rec := serve(t, e, h.Webhook, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"received":true`)
	})

	t.Run("bad signature", func(t *testing.T) {
		e := newTestEcho(t)
		h, mocks := newBillingHandlerForTest(t)

		mocks.billing.EXPECT().HandleWebhook(mock.Anything, mock.Anything, "forged").
			Return(nil, domainerrors.ErrInvalidWebhook).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/webhook", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Stripe-Signature", "forged")
		rec := serve(t, e, h.Webhook, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_WEBHOOK")
	})

	t.Run("oversized payload never reaches the usecase", func(t *testing.T) {
		e := newTestEcho(t)
		h, _ := newBillingHandlerForTest(t)

		req := httptest.NewRequest(http.MethodPost, "/api/webhook", bytes.NewReader(make([]byte, maxWebhookBodySize+1)))
		rec := serve(t, e, h.Webhook, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBillingHandler_CreateSession(t *testing.T) {
	e := newTestEcho(t)
	h, mocks := newBillingHandlerForTest(t)

	mocks.billing.EXPECT().CreateBillingSession(mock.Anything, testUser.ID, testUser.Email).
		Return(&usecase.BillingSession{URL: "https://checkout.stripe.test/session"}, nil).Once()

	rec := serve(t, e, h.CreateSession, httptest.NewRequest(http.MethodGet, "/api/stripe", nil), withUser(testUser))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://checkout.stripe.test/session")
}

func TestBillingHandler_GetPlan(t *testing.T) {
	e := newTestEcho(t)
	h, mocks := newBillingHandlerForTest(t)

	mocks.plan.EXPECT().GetPlan(mock.Anything, testUser.ID).
		Return(&usecase.PlanOverview{
			Limits: entity.PlanLimits{Products: 3},
			Usage:  usecase.PlanUsage{Products: 2},
		}, nil).Once()

	rec := serve(t, e, h.GetPlan, httptest.NewRequest(http.MethodGet, "/api/plan", nil), withUser(testUser))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"is_pro":false`)
}
