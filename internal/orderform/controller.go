// Package orderform holds the state machines behind the order and contact
// forms: field capture, validation, submission and reset.
package orderform

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/genassess/genesis-assessment-hub/internal/models"
	"github.com/genassess/genesis-assessment-hub/internal/validation"
)

// formValidator is shared by the order and contact forms.
var formValidator = validation.New()

// Order form field names. They match the JSON names of models.OrderRequest.
const (
	FieldInstitutionName = "institutionName"
	FieldContactName     = "contactName"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldExamType        = "examType"
	FieldQuantity        = "quantity"
	FieldExamDate        = "examDate"
	FieldDeliveryDate    = "deliveryDate"
	FieldAdditionalNotes = "additionalNotes"
)

// OrderFields lists the order form fields in display order.
var OrderFields = []string{
	FieldInstitutionName,
	FieldContactName,
	FieldEmail,
	FieldPhone,
	FieldExamType,
	FieldQuantity,
	FieldExamDate,
	FieldDeliveryDate,
	FieldAdditionalNotes,
}

// SubmitFailedKey is the dictionary key of the toast shown when delivery fails.
const SubmitFailedKey = "order.error.submit"

var (
	ErrSubmitInFlight   = errors.New("an order submission is already in progress")
	ErrAlreadySubmitted = errors.New("order already submitted")
	ErrInvalidFields    = errors.New("order form has invalid fields")
	ErrSubmitFailed     = errors.New("order submission failed")
)

// State is the lifecycle position of a form.
type State int

const (
	StateEditing State = iota
	StateSubmitted
)

func (s State) String() string {
	if s == StateSubmitted {
		return "submitted"
	}
	return "editing"
}

// Submitter delivers a validated order.
type Submitter interface {
	SubmitOrder(ctx context.Context, order models.OrderRequest) error
}

// Notice is a transient message for the user, shown as a toast.
type Notice struct {
	Key         string
	Destructive bool
}

// Notifier receives notices raised by a form.
type Notifier interface {
	Notify(n Notice)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(n Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }

// Result is the outcome of a Submit call.
type Result struct {
	State  State
	Errors map[string]string
}

// Controller owns the order form state. It is safe for concurrent use.
type Controller struct {
	submitter Submitter
	notifier  Notifier

	mu         sync.Mutex
	fields     map[string]string
	errors     map[string]string
	state      State
	submitting bool
}

// NewController creates an empty order form.
func NewController(submitter Submitter, notifier Notifier) *Controller {
	return &Controller{
		submitter: submitter,
		notifier:  notifier,
		fields:    make(map[string]string),
		errors:    make(map[string]string),
	}
}

// UpdateField stores the raw value of a field and clears its error.
func (c *Controller) UpdateField(field, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fields[field] = value
	delete(c.errors, field)
}

// Value returns the raw value of a field.
func (c *Controller) Value(field string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fields[field]
}

// Errors returns a copy of the current field errors.
func (c *Controller) Errors() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyMap(c.errors)
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Submitting reports whether a submission is in flight.
func (c *Controller) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

// Submit validates every field and, when all pass, hands the order to the
// submitter exactly once. Fields survive a failed delivery so the user can
// retry. A submitted form only accepts another order after NewOrder.
func (c *Controller) Submit(ctx context.Context) (Result, error) {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return Result{State: StateEditing}, ErrSubmitInFlight
	}
	if c.state == StateSubmitted {
		c.mu.Unlock()
		return Result{State: StateSubmitted}, ErrAlreadySubmitted
	}

	order := buildOrder(c.fields)
	errs := validateOrder(c.fields, order)
	c.errors = errs
	if len(errs) > 0 {
		c.mu.Unlock()
		return Result{State: StateEditing, Errors: copyMap(errs)}, ErrInvalidFields
	}

	c.submitting = true
	c.mu.Unlock()

	err := c.submitter.SubmitOrder(ctx, order)

	c.mu.Lock()
	c.submitting = false
	if err != nil {
		c.state = StateEditing
		c.mu.Unlock()
		if c.notifier != nil {
			c.notifier.Notify(Notice{Key: SubmitFailedKey, Destructive: true})
		}
		return Result{State: StateEditing}, fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}
	c.state = StateSubmitted
	c.mu.Unlock()

	return Result{State: StateSubmitted}, nil
}

// NewOrder clears all fields and errors and returns the form to editing.
func (c *Controller) NewOrder() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fields = make(map[string]string)
	c.errors = make(map[string]string)
	c.state = StateEditing
}

// validateOrder checks the order built from the raw fields and maps each
// failing field to its dictionary key.
func validateOrder(fields map[string]string, order models.OrderRequest) map[string]string {
	errs := make(map[string]string)

	var fe validation.FieldErrors
	if err := formValidator.Struct(order); err != nil && !errors.As(err, &fe) {
		// Only a programming error reaches here; block the submit.
		for _, field := range OrderFields {
			if field != FieldAdditionalNotes {
				errs[field] = orderErrorKey(field)
			}
		}
		return errs
	}
	for field := range fe {
		errs[field] = orderErrorKey(field)
	}

	// Text that does not parse as a count is reported as its own error
	// rather than as the zero it was converted to.
	if _, ok := validation.Quantity(fields[FieldQuantity]); !ok {
		errs[FieldQuantity] = orderErrorKey(FieldQuantity)
	}

	return errs
}

func orderErrorKey(field string) string {
	switch field {
	case FieldInstitutionName:
		return "order.error.institution"
	case FieldContactName:
		return "order.error.contact"
	}
	return "order.error." + field
}

func buildOrder(fields map[string]string) models.OrderRequest {
	quantity, _ := validation.Quantity(fields[FieldQuantity])
	return models.OrderRequest{
		InstitutionName: strings.TrimSpace(fields[FieldInstitutionName]),
		ContactName:     strings.TrimSpace(fields[FieldContactName]),
		Email:           strings.TrimSpace(fields[FieldEmail]),
		Phone:           strings.TrimSpace(fields[FieldPhone]),
		ExamType:        models.ExamType(strings.TrimSpace(fields[FieldExamType])),
		Quantity:        quantity,
		ExamDate:        strings.TrimSpace(fields[FieldExamDate]),
		DeliveryDate:    strings.TrimSpace(fields[FieldDeliveryDate]),
		AdditionalNotes: strings.TrimSpace(fields[FieldAdditionalNotes]),
	}
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
