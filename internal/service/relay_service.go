package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/genassess/genesis-assessment-hub/internal/mail"
	"github.com/genassess/genesis-assessment-hub/internal/models"
)

var (
	ErrInvalidOrder       = errors.New("invalid order")
	ErrMissingCredentials = errors.New("email provider credentials are not configured")
	ErrCustomerEmail      = errors.New("failed to send customer confirmation")
	ErrOperationsEmail    = errors.New("failed to send operations notification")
)

// Validator checks an order before any email is composed.
type Validator interface {
	Struct(s any) error
}

// configuredSender is implemented by senders that can tell up front whether
// they hold provider credentials.
type configuredSender interface {
	Configured() bool
}

// RelayOptions holds the fixed addressing of relayed orders.
type RelayOptions struct {
	From            string
	OperationsEmail string
}

// RelayResult describes a fully delivered order.
type RelayResult struct {
	Reference string
}

// OrderRelayService turns an order into two delivered emails: the customer
// confirmation first, then the operations notification. A failing step stops
// the pipeline. Nothing is retried or deduplicated.
type OrderRelayService struct {
	sender    mail.Sender
	validator Validator
	opts      RelayOptions
	logger    *slog.Logger
	tracer    trace.Tracer
}

// NewOrderRelayService creates a new order relay service
func NewOrderRelayService(sender mail.Sender, validator Validator, opts RelayOptions, logger *slog.Logger) *OrderRelayService {
	return &OrderRelayService{
		sender:    sender,
		validator: validator,
		opts:      opts,
		logger:    logger,
		tracer:    otel.Tracer("github.com/genassess/genesis-assessment-hub/internal/service"),
	}
}

type deliveryStep struct {
	name    string
	failure error
	compose func(ctx context.Context, order models.OrderRequest, ref string) (mail.Message, error)
}

// Relay validates the order and delivers both emails in order.
func (s *OrderRelayService) Relay(ctx context.Context, order models.OrderRequest) (*RelayResult, error) {
	ref := uuid.NewString()

	ctx, span := s.tracer.Start(ctx, "relay.order", trace.WithAttributes(
		attribute.String("order.reference", ref),
		attribute.String("order.exam_type", string(order.ExamType)),
		attribute.Int("order.quantity", order.Quantity),
	))
	defer span.End()

	log := s.logger.With("order_ref", ref)
	log.Info("received order", "institution", order.InstitutionName, "exam_type", order.ExamType, "quantity", order.Quantity)

	if err := s.validator.Struct(order); err != nil {
		log.Warn("rejected order", "error", err)
		span.SetStatus(codes.Error, "invalid order")
		return nil, fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}

	if cs, ok := s.sender.(configuredSender); ok && !cs.Configured() {
		log.Error("email provider credentials missing")
		span.SetStatus(codes.Error, "missing credentials")
		return nil, ErrMissingCredentials
	}

	for _, step := range s.steps() {
		if err := s.deliver(ctx, log, step, order, ref); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, step.name)
			return nil, err
		}
	}

	log.Info("order emails sent")
	return &RelayResult{Reference: ref}, nil
}

func (s *OrderRelayService) steps() []deliveryStep {
	return []deliveryStep{
		{
			name:    "customer_confirmation",
			failure: ErrCustomerEmail,
			compose: s.customerMessage,
		},
		{
			name:    "operations_notification",
			failure: ErrOperationsEmail,
			compose: s.operationsMessage,
		},
	}
}

func (s *OrderRelayService) deliver(ctx context.Context, log *slog.Logger, step deliveryStep, order models.OrderRequest, ref string) error {
	ctx, span := s.tracer.Start(ctx, "relay."+step.name)
	defer span.End()

	msg, err := step.compose(ctx, order, ref)
	if err != nil {
		log.Error("failed to compose email", "step", step.name, "error", err)
		return fmt.Errorf("%w: %w", step.failure, err)
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		log.Error("failed to send email", "step", step.name, "to", msg.To, "error", err)
		span.RecordError(err)
		if errors.Is(err, mail.ErrMissingAPIKey) {
			return ErrMissingCredentials
		}
		return fmt.Errorf("%w: %w", step.failure, err)
	}

	log.Info("email sent", "step", step.name, "to", msg.To)
	return nil
}

func (s *OrderRelayService) customerMessage(ctx context.Context, order models.OrderRequest, _ string) (mail.Message, error) {
	html, err := mail.Render(ctx, mail.CustomerConfirmation(order))
	if err != nil {
		return mail.Message{}, err
	}
	return mail.Message{
		From:    s.opts.From,
		To:      []string{order.Email},
		Subject: mail.CustomerSubject,
		HTML:    html,
	}, nil
}

func (s *OrderRelayService) operationsMessage(ctx context.Context, order models.OrderRequest, ref string) (mail.Message, error) {
	html, err := mail.Render(ctx, mail.OperationsNotification(order, ref))
	if err != nil {
		return mail.Message{}, err
	}
	return mail.Message{
		From:    s.opts.From,
		To:      []string{s.opts.OperationsEmail},
		Subject: mail.OperationsSubject(order.InstitutionName),
		HTML:    html,
	}, nil
}
