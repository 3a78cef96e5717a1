package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := New()

	m.Received("calltools")
	m.Received("calltools")
	m.Outcome(OutcomeSkipped)
	m.Outcome(OutcomeCreated)
	m.ForwardDuration(120 * time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.received.WithLabelValues("calltools")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.outcomes.WithLabelValues(OutcomeSkipped)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.outcomes.WithLabelValues(OutcomeFailed)))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "callrelay_webhooks_received_total")
	assert.Contains(t, rec.Body.String(), "callrelay_quickbase_request_duration_seconds_count 1")
}
