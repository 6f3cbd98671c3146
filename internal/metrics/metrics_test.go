package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.Observe(http.MethodGet, http.StatusOK, 20*time.Millisecond)
	m.Observe(http.MethodGet, http.StatusOK, 40*time.Millisecond)
	m.Observe(http.MethodPost, http.StatusBadRequest, time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.ResponsesSent.WithLabelValues(http.MethodGet, "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ResponsesSent.WithLabelValues(http.MethodPost, "400")))
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.RequestsReceived.Inc()

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "castlist_requests_received_total 1")
}
