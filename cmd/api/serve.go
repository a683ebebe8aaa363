package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/xavierca1/ligue-crm/internal/config"
	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/database"
	"github.com/xavierca1/ligue-crm/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-crm/internal/infra/integration/supabase"
	"github.com/xavierca1/ligue-crm/internal/infra/integration/twilio"
	"github.com/xavierca1/ligue-crm/internal/infra/integration/vapi"
	"github.com/xavierca1/ligue-crm/internal/infra/mail"
	"github.com/xavierca1/ligue-crm/internal/infra/queue"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx, config.Load())
	},
}

func serve(ctx context.Context, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	// 1. Stores
	mongoClient, err := database.NewMongoClient(ctx, cfg.MongoURI)
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(dctx); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}()

	db, err := database.NewDBConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	defer db.Close()

	var events entity.LeadEventPublisher
	var brokerStatus handlers.BrokerStatus
	if cfg.RabbitMQURL != "" {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			log.Warn().Err(err).Msg("lead events disabled")
		} else {
			defer rabbitMQ.Close()
			events = queue.NewProducer(rabbitMQ.Ch)
			brokerStatus = rabbitMQ
		}
	}

	emailRepo := database.NewEmailRepository(mongoClient.Database(cfg.MongoDatabase))
	profileRepo := database.NewProfileRepository(db)

	// 2. Integrations
	mailSender := mail.NewEmailSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPEmail, cfg.SMTPPassword).
		WithSender(cfg.SMTPFromName, cfg.SMTPReplyTo)
	smsClient := twilio.NewClient(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioPhoneNumber)
	authClient := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)
	vapiClient := vapi.NewClient(cfg.VapiAPIKey, cfg.VapiBaseURL)

	// 3. Use cases
	notifyLeadUC := usecase.NewNotifyLeadInterestUseCase(smsClient, mailSender, events, usecase.LeadNotifierConfig{
		TwilioAccountSID:  cfg.TwilioAccountSID,
		TwilioAuthToken:   cfg.TwilioAuthToken,
		TwilioPhoneNumber: cfg.TwilioPhoneNumber,
		AdminEmail:        cfg.AdminEmail,
		SMTPEmail:         cfg.SMTPEmail,
		SMTPPassword:      cfg.SMTPPassword,
	})
	loginUC := usecase.NewLoginUseCase(authClient, profileRepo)

	// 4. Handlers
	router := newRouter(routes{
		Emails:    handlers.NewEmailHandler(emailRepo),
		Leads:     handlers.NewLeadHandler(notifyLeadUC),
		Auth:      handlers.NewAuthHandler(loginUC),
		Calls:     handlers.NewCallHandler(vapiClient),
		EmailTest: handlers.NewEmailTestHandler(mailSender),
		Health: handlers.NewHealthHandler(
			database.MongoPinger{Client: mongoClient},
			database.PostgresPinger{DB: db},
			brokerStatus,
			map[string]bool{
				"smtp":     cfg.SMTPConfigured(),
				"twilio":   cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" && cfg.TwilioPhoneNumber != "",
				"supabase": cfg.SupabaseURL != "" && cfg.SupabaseAnonKey != "",
				"vapi":     vapiClient.Configured(),
			},
		),
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("CRM API listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
