package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/genassess/genesis-assessment-hub/internal/models"
	"github.com/genassess/genesis-assessment-hub/internal/service"
	"github.com/genassess/genesis-assessment-hub/internal/validation"
)

// RelaySuccessMessage is returned once both order emails are delivered.
const RelaySuccessMessage = "Order emails sent successfully"

// MaxOrderBodyBytes caps the size of a relay request body.
const MaxOrderBodyBytes = 64 << 10

// orderRelay is the part of the relay service the handler needs.
type orderRelay interface {
	Relay(ctx context.Context, order models.OrderRequest) (*service.RelayResult, error)
}

// RelayHandler handles order mail relay requests
type RelayHandler struct {
	relay orderRelay
	log   *slog.Logger
}

// NewRelayHandler creates a new relay handler
func NewRelayHandler(relay orderRelay, log *slog.Logger) *RelayHandler {
	return &RelayHandler{
		relay: relay,
		log:   log,
	}
}

// SendOrderEmail handles POST /functions/v1/send-order-email and POST /api/order
func (h *RelayHandler) SendOrderEmail(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest

	body := http.MaxBytesReader(w, r.Body, MaxOrderBodyBytes)
	if err := render.DecodeJSON(body, &req); err != nil {
		h.log.Warn("failed to decode order request", "error", err)
		WriteError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.log.Info("order relay request received",
		"institution", req.InstitutionName,
		"exam_type", req.ExamType,
		"quantity", req.Quantity,
	)

	result, err := h.relay.Relay(r.Context(), req)
	if err != nil {
		var fields validation.FieldErrors
		switch {
		case errors.As(err, &fields):
			WriteJSON(w, r, http.StatusBadRequest, ErrorResponse{Error: "Invalid order", Fields: fields})
		case errors.Is(err, service.ErrInvalidOrder):
			WriteError(w, r, http.StatusBadRequest, "Invalid order")
		default:
			h.log.Error("order relay failed", "error", err)
			WriteError(w, r, http.StatusInternalServerError, err.Error())
		}
		return
	}

	WriteJSON(w, r, http.StatusOK, models.RelayResponse{
		Success: true,
		Message: RelaySuccessMessage,
	})
	h.log.Info("order relayed successfully", "reference", result.Reference)
}
