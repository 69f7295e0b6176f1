package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordValuation(t *testing.T) {
	c := DefaultMetrics.ValuationsTotal.WithLabelValues("base", "projected")
	before := testutil.ToFloat64(c)
	RecordValuation("base", "projected")
	RecordValuation("base", "projected")
	assert.Equal(t, before+2, testutil.ToFloat64(c))
}

func TestSetHistoryYears(t *testing.T) {
	SetHistoryYears(15)
	assert.Equal(t, 15.0, testutil.ToFloat64(DefaultMetrics.HistoryYears))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	RecordRequest("GET", "/health", "200", 0.01)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "btc_energy_value_http_requests_total")
}
