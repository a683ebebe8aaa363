package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/ligue-crm/internal/infra/http/handlers"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

type broker struct{ closed bool }

func (b broker) IsClosed() bool { return b.closed }

func TestHealthHealthy(t *testing.T) {
	h := handlers.NewHealthHandler(pinger{}, pinger{}, nil, map[string]bool{"twilio": true, "vapi": false})

	w := do(t, http.HandlerFunc(h.Handle), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handlers.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, map[string]string{
		"mongodb":  "healthy",
		"postgres": "healthy",
		"rabbitmq": "not configured",
		"twilio":   "configured",
		"vapi":     "not configured",
	}, resp.Dependencies)
}

func TestHealthDegraded(t *testing.T) {
	h := handlers.NewHealthHandler(pinger{err: errors.New("server selection timeout")}, pinger{}, broker{closed: true}, nil)

	w := do(t, http.HandlerFunc(h.Handle), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp handlers.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, "unhealthy: server selection timeout", resp.Dependencies["mongodb"])
	assert.Equal(t, "unhealthy: connection closed", resp.Dependencies["rabbitmq"])
}
