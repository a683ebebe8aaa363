package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/ligue-crm/internal/infra/http/handlers"
	httpmw "github.com/xavierca1/ligue-crm/internal/infra/http/middleware"
)

type routes struct {
	Emails    *handlers.EmailHandler
	Leads     *handlers.LeadHandler
	Auth      *handlers.AuthHandler
	Calls     *handlers.CallHandler
	EmailTest *handlers.EmailTestHandler
	Health    *handlers.HealthHandler

	AllowedOrigins []string
}

func newRouter(rt routes) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(httpmw.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: rt.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/health", rt.Health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/email-test", rt.EmailTest.Status)
		r.Post("/email-test", rt.EmailTest.Send)

		r.Put("/emails/bulk-update", rt.Emails.BulkUpdate)
		r.Get("/emails/{id}", rt.Emails.Get)
		r.Put("/emails/{id}", rt.Emails.Update)
		r.Delete("/emails/{id}", rt.Emails.Delete)

		r.Post("/leads/interested", rt.Leads.NotifyInterest)
		r.Post("/auth/login", rt.Auth.Login)
		r.Get("/vapi/calls", rt.Calls.List)
	})

	return r
}
