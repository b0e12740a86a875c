package orderform

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/genassess/genesis-assessment-hub/internal/models"
	"github.com/genassess/genesis-assessment-hub/internal/validation"
)

// ContactResetDelay is how long the contact form shows its confirmation
// before returning to an empty form.
const ContactResetDelay = 3 * time.Second

// Contact form field names.
const (
	ContactFieldName        = "name"
	ContactFieldInstitution = "institution"
	ContactFieldEmail       = "email"
	ContactFieldPhone       = "phone"
	ContactFieldMessage     = "message"
)

// ContactFields lists the contact form fields in display order.
var ContactFields = []string{
	ContactFieldName,
	ContactFieldInstitution,
	ContactFieldEmail,
	ContactFieldPhone,
	ContactFieldMessage,
}

// ContactForm captures an inquiry. Submission is local only: the inquiry is
// logged and the form resets itself after the reset delay.
type ContactForm struct {
	logger     *slog.Logger
	resetDelay time.Duration
	autoReset  bool

	mu     sync.Mutex
	fields map[string]string
	errors map[string]string
	state  State
	timer  *time.Timer
}

// ContactOption configures a ContactForm.
type ContactOption func(*ContactForm)

// WithoutAutoReset leaves a submitted form as it is until Reset is called.
// Request-scoped forms use it since the page itself returns to the empty form.
func WithoutAutoReset() ContactOption {
	return func(f *ContactForm) {
		f.autoReset = false
	}
}

// NewContactForm creates an empty contact form. A non-positive resetDelay
// uses ContactResetDelay.
func NewContactForm(logger *slog.Logger, resetDelay time.Duration, opts ...ContactOption) *ContactForm {
	if resetDelay <= 0 {
		resetDelay = ContactResetDelay
	}
	f := &ContactForm{
		logger:     logger,
		resetDelay: resetDelay,
		autoReset:  true,
		fields:     make(map[string]string),
		errors:     make(map[string]string),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *ContactForm) UpdateField(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fields[field] = value
	delete(f.errors, field)
}

func (f *ContactForm) Value(field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields[field]
}

func (f *ContactForm) Errors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyMap(f.errors)
}

func (f *ContactForm) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Submit validates the inquiry and, when valid, records it and schedules the
// reset unless auto reset is off.
func (f *ContactForm) Submit(ctx context.Context) (Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	inquiry := buildInquiry(f.fields)
	errs := validateContact(inquiry)
	f.errors = errs
	if len(errs) > 0 {
		return Result{State: StateEditing, Errors: copyMap(errs)}, ErrInvalidFields
	}

	f.logger.InfoContext(ctx, "contact inquiry received",
		"institution", inquiry.Institution,
		"email", inquiry.Email,
	)

	f.state = StateSubmitted
	if f.autoReset {
		f.stopTimer()
		f.timer = time.AfterFunc(f.resetDelay, f.Reset)
	}

	return Result{State: StateSubmitted}, nil
}

// Reset empties the form and returns it to editing.
func (f *ContactForm) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fields = make(map[string]string)
	f.errors = make(map[string]string)
	f.state = StateEditing
	f.stopTimer()
}

func (f *ContactForm) stopTimer() {
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}

func buildInquiry(fields map[string]string) models.ContactInquiry {
	return models.ContactInquiry{
		Name:        strings.TrimSpace(fields[ContactFieldName]),
		Institution: strings.TrimSpace(fields[ContactFieldInstitution]),
		Email:       strings.TrimSpace(fields[ContactFieldEmail]),
		Phone:       strings.TrimSpace(fields[ContactFieldPhone]),
		Message:     strings.TrimSpace(fields[ContactFieldMessage]),
	}
}

// validateContact maps each failing inquiry field to its dictionary key.
// The inquiry's JSON names are the form field names.
func validateContact(inquiry models.ContactInquiry) map[string]string {
	errs := make(map[string]string)

	var fe validation.FieldErrors
	if err := formValidator.Struct(inquiry); err != nil && !errors.As(err, &fe) {
		for _, field := range ContactFields {
			errs[field] = "contact.error." + field
		}
		return errs
	}
	for field := range fe {
		errs[field] = "contact.error." + field
	}

	return errs
}
