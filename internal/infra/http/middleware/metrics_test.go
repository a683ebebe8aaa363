package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/api/emails/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/emails/{id}", "404"))

	for _, id := range []string{"a", "b", "c"} {
		req := httptest.NewRequest(http.MethodGet, "/api/emails/"+id, nil)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/emails/{id}", "404"))
	assert.Equal(t, float64(3), after-before)
}

func TestRecordIntegrationError(t *testing.T) {
	before := testutil.ToFloat64(integrationErrors.WithLabelValues("twilio"))
	RecordIntegrationError("twilio")
	assert.Equal(t, before+1, testutil.ToFloat64(integrationErrors.WithLabelValues("twilio")))
}

func TestRecordLeadNotification(t *testing.T) {
	before := testutil.ToFloat64(leadNotifications.WithLabelValues("sent"))
	RecordLeadNotification("sent")
	assert.Equal(t, before+1, testutil.ToFloat64(leadNotifications.WithLabelValues("sent")))
}
