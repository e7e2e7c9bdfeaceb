package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRegistry_Counters(t *testing.T) {
	r := NewRegistry()

	r.ClickTracked("product")
	r.ClickTracked("product")
	r.QuotaRejected("coupons")

	assert.InDelta(t, 2, testutil.ToFloat64(r.clicksTracked.WithLabelValues("product")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.quotaRejections.WithLabelValues("coupons")), 0)
}

func TestRegistry_Handler(t *testing.T) {
	r := NewRegistry()
	r.ClickTracked("partner")

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `creatorhub_clicks_tracked_total{type="partner"} 1`)
}
