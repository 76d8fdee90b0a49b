package metrics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aleister1102/hookcord/internal/common/errorwrapper"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookMetrics_ObserveRequest(t *testing.T) {
	m := NewWebhookMetrics()

	m.ObserveRequest(http.MethodPost, http.StatusNoContent, 20*time.Millisecond, nil)
	m.ObserveRequest(http.MethodPost, http.StatusNoContent, 30*time.Millisecond, nil)
	m.ObserveRequest(http.MethodPost, http.StatusTooManyRequests, 10*time.Millisecond,
		errorwrapper.NewHTTPErrorWithURL(http.StatusTooManyRequests, "slow down", ""))
	m.ObserveRequest(http.MethodDelete, 0, time.Millisecond,
		errorwrapper.NewNetworkError("http://x", "HTTP request failed", errors.New("refused")))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues(http.MethodPost, "204")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues(http.MethodPost, "429")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues(http.MethodDelete, "none")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ErrorsTotal.WithLabelValues(http.MethodPost, "http")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ErrorsTotal.WithLabelValues(http.MethodDelete, "network")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.RequestDuration))
}

func TestWebhookMetrics_ErrorType(t *testing.T) {
	assert.Equal(t, "context", errorType(context.Canceled))
	assert.Equal(t, "context", errorType(errorwrapper.WrapError(context.DeadlineExceeded, "wrapped")))
	assert.Equal(t, "other", errorType(errors.New("boom")))
}

func TestWebhookMetrics_RegistriesAreIndependent(t *testing.T) {
	first := NewWebhookMetrics()
	second := NewWebhookMetrics()

	first.ObserveRequest(http.MethodGet, http.StatusOK, time.Millisecond, nil)
	assert.Equal(t, 0.0, testutil.ToFloat64(second.RequestsTotal.WithLabelValues(http.MethodGet, "200")))
}

func TestWebhookMetrics_Push(t *testing.T) {
	var gotPath, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	m := NewWebhookMetrics()
	m.ObserveRequest(http.MethodPost, http.StatusNoContent, time.Millisecond, nil)

	require.NoError(t, m.Push(context.Background(), server.URL, "hookcord"))
	assert.Equal(t, "/metrics/job/hookcord", gotPath)
	assert.NotEmpty(t, gotBody)
}

func TestWebhookMetrics_PushFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	err := NewWebhookMetrics().Push(context.Background(), server.URL, "hookcord")
	assert.Error(t, err)
}
