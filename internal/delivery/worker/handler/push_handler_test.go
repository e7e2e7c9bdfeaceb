package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"creatorhub/internal/domain/service"
	mockSvc "creatorhub/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

var pushNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newPushHandlerForTest(t *testing.T, metrics service.Metrics) *PushHandler {
	t.Helper()

	return &PushHandler{
		metrics: metrics,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:     func() time.Time { return pushNow },
	}
}

func pushBody(t *testing.T, event any) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	msg := PubSubMessage{Subscription: "projects/local/subscriptions/click-events-sub"}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = map[string]string{"request_id": "req-1"}

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func push(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		req.Header[key] = values
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(echo.New().NewContext(req, rec))

	return rec
}

func validEvent() *service.ClickEvent {
	return &service.ClickEvent{
		EventID:   uuid.NewString(),
		ItemID:    uuid.NewString(),
		ItemType:  "product",
		UserID:    "user-1",
		ClickedAt: pushNow.Add(-1500 * time.Millisecond),
	}
}

func TestPushHandler_HandlePush(t *testing.T) {
	t.Run("consumes a click event and records lag", func(t *testing.T) {
		metrics := mockSvc.NewMockMetrics(t)
		metrics.EXPECT().ClickEventDelivered("product", 1500*time.Millisecond).Return().Once()
		h := newPushHandlerForTest(t, metrics)

		rec := push(h, pushBody(t, validEvent()), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown item type is dropped", func(t *testing.T) {
		h := newPushHandlerForTest(t, mockSvc.NewMockMetrics(t))
		event := validEvent()
		event.ItemType = "banner"

		rec := push(h, pushBody(t, event), nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("data is not base64", func(t *testing.T) {
		h := newPushHandlerForTest(t, mockSvc.NewMockMetrics(t))

		rec := push(h, `{"message":{"data":"%%%","messageId":"m"}}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPushHandler_VerifyToken(t *testing.T) {
	newVerifyingHandler := func(t *testing.T, validate TokenValidator) *PushHandler {
		h := newPushHandlerForTest(t, mockSvc.NewMockMetrics(t))
		h.verifyPushAuth = true
		h.audience = "https://worker.creatorhub.test/push"
		h.validate = validate

		return h
	}

	t.Run("missing token", func(t *testing.T) {
		h := newVerifyingHandler(t, func(context.Context, string, string) (*idtoken.Payload, error) {
			t.Fatal("validator must not be called")

			return nil, nil
		})

		rec := push(h, pushBody(t, validEvent()), nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		h := newVerifyingHandler(t, func(context.Context, string, string) (*idtoken.Payload, error) {
			return nil, errors.New("signature mismatch")
		})

		rec := push(h, pushBody(t, validEvent()), http.Header{"Authorization": {"Bearer forged"}})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("google token for configured audience", func(t *testing.T) {
		metrics := mockSvc.NewMockMetrics(t)
		metrics.EXPECT().ClickEventDelivered("product", 1500*time.Millisecond).Return().Once()
		h := newPushHandlerForTest(t, metrics)
		h.verifyPushAuth = true
		h.audience = "https://worker.creatorhub.test/push"
		h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "signed", token)
			assert.Equal(t, "https://worker.creatorhub.test/push", audience)

			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		}

		rec := push(h, pushBody(t, validEvent()), http.Header{"Authorization": {"Bearer signed"}})

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
