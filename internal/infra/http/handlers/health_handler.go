package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type BrokerStatus interface {
	IsClosed() bool
}

type HealthHandler struct {
	Mongo        Pinger
	Postgres     Pinger
	Broker       BrokerStatus
	Integrations map[string]bool
	StartTime    time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(mongo, postgres Pinger, broker BrokerStatus, integrations map[string]bool) *HealthHandler {
	return &HealthHandler{
		Mongo:        mongo,
		Postgres:     postgres,
		Broker:       broker,
		Integrations: integrations,
		StartTime:    time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	deps := map[string]string{
		"mongodb":  pingStatus(ctx, h.Mongo),
		"postgres": pingStatus(ctx, h.Postgres),
	}

	switch {
	case h.Broker == nil:
		deps["rabbitmq"] = "not configured"
	case h.Broker.IsClosed():
		deps["rabbitmq"] = "unhealthy: connection closed"
	default:
		deps["rabbitmq"] = "healthy"
	}

	for name, configured := range h.Integrations {
		if configured {
			deps[name] = "configured"
		} else {
			deps[name] = "not configured"
		}
	}

	status := "healthy"
	for _, v := range deps {
		if v != "healthy" && v != "configured" && v != "not configured" {
			status = "degraded"
			break
		}
	}

	response := HealthResponse{
		Status:       status,
		Version:      "1.0.0",
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	}

	code := http.StatusOK
	if status == "degraded" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, response)
}

func pingStatus(ctx context.Context, p Pinger) string {
	if p == nil {
		return "not configured"
	}
	if err := p.Ping(ctx); err != nil {
		return fmt.Sprintf("unhealthy: %v", err)
	}
	return "healthy"
}
