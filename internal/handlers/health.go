package handlers

import (
	"log/slog"
	"net/http"
	"time"
)

// HealthHandler provides health check endpoint
type HealthHandler struct {
	logger     *slog.Logger
	mailReady  func() bool
	mailerName string
}

// NewHealthHandler creates a new health handler. mailReady reports whether
// the email provider has credentials; nil means always ready.
func NewHealthHandler(logger *slog.Logger, mailerName string, mailReady func() bool) *HealthHandler {
	return &HealthHandler{
		logger:     logger,
		mailReady:  mailReady,
		mailerName: mailerName,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Mailer    string    `json:"mailer"`
	MailReady bool      `json:"mailReady"`
}

// ServeHTTP handles health check requests. The relay stays up without mail
// credentials, so a missing key degrades the status instead of failing it.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ready := h.mailReady == nil || h.mailReady()

	status := "healthy"
	if !ready {
		status = "degraded"
	}

	WriteJSON(w, r, http.StatusOK, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Mailer:    h.mailerName,
		MailReady: ready,
	})
}
