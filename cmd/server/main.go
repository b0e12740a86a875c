package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/genassess/genesis-assessment-hub/internal/config"
	"github.com/genassess/genesis-assessment-hub/internal/handlers"
	"github.com/genassess/genesis-assessment-hub/internal/mail"
	"github.com/genassess/genesis-assessment-hub/internal/orderform"
	"github.com/genassess/genesis-assessment-hub/internal/repository"
	"github.com/genassess/genesis-assessment-hub/internal/service"
	"github.com/genassess/genesis-assessment-hub/internal/telemetry"
	"github.com/genassess/genesis-assessment-hub/internal/validation"
	"github.com/genassess/genesis-assessment-hub/pkg/logger"
)

const serviceName = "genesis-assessment-hub"

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting genesis examinations server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
		"mail_provider", cfg.Mail.Provider,
	)

	shutdownTracing, err := telemetry.Setup(context.Background(), serviceName, cfg.OTelEndpoint)
	if err != nil {
		log.Error("failed to set up tracing", "error", err)
		os.Exit(1)
	}

	sender, mailReady, err := newSender(cfg.Mail, log)
	if err != nil {
		log.Error("failed to create mail sender", "error", err)
		os.Exit(1)
	}
	if !mailReady() {
		log.Warn("RESEND_API_KEY is not set; order relay requests will fail until it is configured")
	}

	// Initialize repositories
	contentRepo := repository.NewInMemoryContentRepository()

	// Initialize services
	contentService := service.NewContentService(contentRepo)
	relayService := service.NewOrderRelayService(sender, validation.New(), service.RelayOptions{
		From:            cfg.Mail.From,
		OperationsEmail: cfg.Mail.OperationsEmail,
	}, log)

	relayKey := ""
	if len(cfg.Relay.APIKeys) > 0 {
		relayKey = cfg.Relay.APIKeys[0]
	}
	relayClient := orderform.NewRelayClient(cfg.Relay.URL, relayKey, time.Duration(cfg.Relay.Timeout)*time.Second)

	// Initialize handlers
	router := newRouter(routerDeps{
		log:         log,
		health:      handlers.NewHealthHandler(log, cfg.Mail.Provider, mailReady),
		relay:       handlers.NewRelayHandler(relayService, log),
		site:        handlers.NewSiteHandler(contentService, cfg.Site.BaseURL, log),
		forms:       handlers.NewFormHandler(relayClient, orderform.ContactResetDelay, cfg.Site.BaseURL, log),
		relayKeys:   cfg.Relay.APIKeys,
		pageTimeout: 60 * time.Second,
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	if err := shutdownTracing(ctx); err != nil {
		log.Error("failed to flush traces", "error", err)
	}

	log.Info("server stopped gracefully")
}

// newSender picks the mail provider. The returned func reports whether the
// provider can send right now.
func newSender(cfg config.MailConfig, log *slog.Logger) (mail.Sender, func() bool, error) {
	switch cfg.Provider {
	case "log":
		return mail.NewLogSender(log), func() bool { return true }, nil
	default:
		sender, err := mail.NewResendSender(cfg.ResendAPIKey, cfg.ResendBaseURL, log)
		if err != nil {
			return nil, nil, err
		}
		return sender, sender.Configured, nil
	}
}
