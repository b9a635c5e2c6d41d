package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordRejection(t *testing.T) {
	t.Parallel()

	m := New()
	m.RecordRejection("store", "not_found")
	m.RecordRejection("store", "not_found")
	m.RecordRejection("rank", "invalid")

	require.Equal(t, 2.0, testutil.ToFloat64(m.rejections.WithLabelValues("store", "not_found")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.rejections.WithLabelValues("rank", "invalid")))
}

func TestInstrument_CountsRequests(t *testing.T) {
	t.Parallel()

	m := New()
	h := m.Instrument("query", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/query", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)

	require.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("query", "post", "418")))
}

func TestHandler_ExposesRegistry(t *testing.T) {
	t.Parallel()

	m := New()
	m.RecordRejection("location", "invalid")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), `opsgraph_reference_rejections_total{kind="location",outcome="invalid"} 1`))
}
