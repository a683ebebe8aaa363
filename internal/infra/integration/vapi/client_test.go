package vapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCallsRelaysBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/call", r.URL.Path)
		assert.Equal(t, "limit=10", r.URL.RawQuery)
		assert.Equal(t, "Bearer key-1", r.Header.Get("Authorization"))
		w.Write([]byte(`[{"id":"call-1","status":"ended"}]`))
	}))
	defer srv.Close()

	body, err := NewClient("key-1", srv.URL).ListCalls(context.Background(), "limit=10")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"call-1","status":"ended"}]`, string(body))
}

func TestListCallsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid Key"}`))
	}))
	defer srv.Close()

	_, err := NewClient("bad", srv.URL).ListCalls(context.Background(), "")
	assert.ErrorContains(t, err, "vapi status 401")
}

func TestListCallsNonJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway</html>"))
	}))
	defer srv.Close()

	_, err := NewClient("key-1", srv.URL).ListCalls(context.Background(), "")
	assert.Error(t, err)
}

func TestListCallsNotConfigured(t *testing.T) {
	_, err := NewClient("", "https://api.vapi.ai").ListCalls(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
