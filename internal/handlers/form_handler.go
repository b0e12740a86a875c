package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/genassess/genesis-assessment-hub/internal/orderform"
	"github.com/genassess/genesis-assessment-hub/internal/site"
)

// noticeCollector gathers the toasts raised by an order form until the
// request that submitted it drains them.
type noticeCollector struct {
	mu      sync.Mutex
	notices []orderform.Notice
}

func (c *noticeCollector) Notify(n orderform.Notice) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notices = append(c.notices, n)
}

func (c *noticeCollector) drain() []orderform.Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.notices
	c.notices = nil
	return out
}

const (
	orderSessionTTL  = 30 * time.Minute
	maxOrderSessions = 10000
)

// orderSession is one rendered order form. POSTs carrying its token share the
// controller, so a repeated submit meets the in-flight latch or the
// submitted state instead of a fresh form.
type orderSession struct {
	form    *orderform.Controller
	notices *noticeCollector
	created time.Time
}

type orderSessions struct {
	submitter orderform.Submitter

	mu       sync.Mutex
	sessions map[string]*orderSession
}

func newOrderSessions(submitter orderform.Submitter) *orderSessions {
	return &orderSessions{
		submitter: submitter,
		sessions:  make(map[string]*orderSession),
	}
}

func (s *orderSessions) newSession(now time.Time) *orderSession {
	notices := &noticeCollector{}
	return &orderSession{
		form:    orderform.NewController(s.submitter, notices),
		notices: notices,
		created: now,
	}
}

// get returns the session of token, creating it when unknown. Malformed
// tokens get an untracked session and a fresh token.
func (s *orderSessions) get(token string, now time.Time) (*orderSession, string) {
	if _, err := uuid.Parse(token); err != nil {
		token = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[token]; ok && now.Sub(sess.created) < orderSessionTTL {
		return sess, token
	}

	sess := s.newSession(now)
	s.sweep(now)
	if len(s.sessions) < maxOrderSessions {
		s.sessions[token] = sess
	}
	return sess, token
}

// sweep drops expired sessions. Callers hold s.mu.
func (s *orderSessions) sweep(now time.Time) {
	for token, sess := range s.sessions {
		if now.Sub(sess.created) >= orderSessionTTL {
			delete(s.sessions, token)
		}
	}
}

func (s *orderSessions) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// FormHandler serves the order and contact forms.
type FormHandler struct {
	orders            *orderSessions
	contactResetDelay time.Duration
	baseURL           string
	logger            *slog.Logger
	now               func() time.Time
}

// NewFormHandler creates a new form handler. Orders go through submitter.
func NewFormHandler(submitter orderform.Submitter, contactResetDelay time.Duration, baseURL string, logger *slog.Logger) *FormHandler {
	if contactResetDelay <= 0 {
		contactResetDelay = orderform.ContactResetDelay
	}
	return &FormHandler{
		orders:            newOrderSessions(submitter),
		contactResetDelay: contactResetDelay,
		baseURL:           baseURL,
		logger:            logger,
		now:               time.Now,
	}
}

func (h *FormHandler) render(w http.ResponseWriter, r *http.Request, status int, page site.Page) {
	page.Path = r.URL.Path
	WriteHTML(w, r, status, site.Layout(h.baseURL, page), h.logger)
}

// OrderForm handles GET /order. Every render carries a new form token.
func (h *FormHandler) OrderForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, site.Page{
		Meta: site.OrderMeta,
		Body: site.OrderPage(site.FormView{Token: uuid.NewString()}),
	})
}

// NewOrder handles GET /order/new and returns the visitor to an empty form.
func (h *FormHandler) NewOrder(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/order", http.StatusSeeOther)
}

// SubmitOrder handles POST /order
func (h *FormHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("failed to parse order form", "error", err)
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	sess, token := h.orders.get(r.PostForm.Get(site.OrderTokenField), h.now())
	form := sess.form
	if form.State() == orderform.StateEditing && !form.Submitting() {
		for _, field := range orderform.OrderFields {
			form.UpdateField(field, r.PostForm.Get(field))
		}
	}

	result, err := form.Submit(r.Context())

	view := site.FormView{
		Values:    make(map[string]string, len(orderform.OrderFields)),
		Errors:    result.Errors,
		Submitted: result.State == orderform.StateSubmitted,
		Token:     token,
	}
	for _, field := range orderform.OrderFields {
		view.Values[field] = r.PostForm.Get(field)
	}

	var notices []orderform.Notice
	status := http.StatusOK
	switch {
	case err == nil:
		h.logger.Info("order form submitted", "institution", view.Values[orderform.FieldInstitutionName])
	case errors.Is(err, orderform.ErrAlreadySubmitted):
		h.logger.Info("duplicate order form submission ignored")
	case errors.Is(err, orderform.ErrSubmitInFlight):
		h.logger.Info("order form submission already in flight")
		status = http.StatusConflict
		notices = append(notices, orderform.Notice{Key: "order.submitting"})
	case errors.Is(err, orderform.ErrInvalidFields):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, orderform.ErrSubmitFailed):
		h.logger.Error("order submission failed", "error", err)
		status = http.StatusBadGateway
		notices = append(notices, sess.notices.drain()...)
	default:
		h.logger.Error("order submission failed", "error", err)
		status = http.StatusInternalServerError
	}

	h.render(w, r, status, site.Page{
		Meta:    site.OrderMeta,
		Notices: notices,
		Body:    site.OrderPage(view),
	})
}

// ContactForm handles GET /contact
func (h *FormHandler) ContactForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, site.Page{
		Meta: site.ContactMeta,
		Body: site.ContactPage(site.FormView{}),
	})
}

// SubmitContact handles POST /contact. Valid inquiries show the thank-you
// note and the page returns to an empty form after the reset delay.
func (h *FormHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("failed to parse contact form", "error", err)
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	// The form lives for one request; the refresh below returns the page to
	// an empty form.
	form := orderform.NewContactForm(h.logger, h.contactResetDelay, orderform.WithoutAutoReset())
	for _, field := range orderform.ContactFields {
		form.UpdateField(field, r.PostForm.Get(field))
	}

	result, err := form.Submit(r.Context())
	if err != nil {
		view := site.FormView{
			Values: make(map[string]string, len(orderform.ContactFields)),
			Errors: result.Errors,
		}
		for _, field := range orderform.ContactFields {
			view.Values[field] = form.Value(field)
		}
		h.render(w, r, http.StatusUnprocessableEntity, site.Page{
			Meta: site.ContactMeta,
			Body: site.ContactPage(view),
		})
		return
	}

	h.render(w, r, http.StatusOK, site.Page{
		Meta:         site.ContactMeta,
		RefreshAfter: h.contactResetDelay,
		RefreshURL:   "/contact",
		Body:         site.ContactPage(site.FormView{Submitted: true}),
	})
}
