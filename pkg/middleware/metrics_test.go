package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMetrics_RecordsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(PrometheusMetrics("metrics-test"))
	r.Get("/campgrounds/{id}", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/campgrounds/abc123", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("metrics-test", "GET", "/campgrounds/{id}", "200"))
	assert.Equal(t, 1.0, got)
}

func TestPrometheusMetrics_CapturesErrorStatus(t *testing.T) {
	r := chi.NewRouter()
	r.Use(PrometheusMetrics("metrics-test"))
	r.Get("/boom", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("metrics-test", "GET", "/boom", "500"))
	assert.Equal(t, 1.0, got)
}
