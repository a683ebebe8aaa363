package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/ligue-crm/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-crm/internal/infra/integration/vapi"
)

func TestListCallsRelaysUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer vapi-key", r.Header.Get("Authorization"))
		assert.Equal(t, "limit=5", r.URL.RawQuery)
		w.Write([]byte(`[{"id":"call-1","customer":{"number":"+15551234567"}}]`))
	}))
	defer upstream.Close()

	h := handlers.NewCallHandler(vapi.NewClient("vapi-key", upstream.URL))

	w := do(t, http.HandlerFunc(h.List), http.MethodGet, "/api/vapi/calls?limit=5", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `[{"id":"call-1","customer":{"number":"+15551234567"}}]`, w.Body.String())
}

func TestListCallsUpstreamFailureIsBadGateway(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid Key. Hot tip, you may be using the private key instead of the public key."}`))
	}))
	defer upstream.Close()

	h := handlers.NewCallHandler(vapi.NewClient("wrong", upstream.URL))

	w := do(t, http.HandlerFunc(h.List), http.MethodGet, "/api/vapi/calls", "")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch calls"}`, w.Body.String())
}

func TestListCallsTransportFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	h := handlers.NewCallHandler(vapi.NewClient("vapi-key", upstream.URL))

	w := do(t, http.HandlerFunc(h.List), http.MethodGet, "/api/vapi/calls", "")

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestListCallsNotConfigured(t *testing.T) {
	h := handlers.NewCallHandler(vapi.NewClient("", "https://api.vapi.ai"))

	w := do(t, http.HandlerFunc(h.List), http.MethodGet, "/api/vapi/calls", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Server configuration error"}`, w.Body.String())
}
