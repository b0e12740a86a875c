package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/genassess/genesis-assessment-hub/internal/models"
	"github.com/genassess/genesis-assessment-hub/internal/site"
	"github.com/genassess/genesis-assessment-hub/pkg/logger"
)

type stubSubmitter struct {
	err    error
	orders []models.OrderRequest
}

func (s *stubSubmitter) SubmitOrder(ctx context.Context, order models.OrderRequest) error {
	s.orders = append(s.orders, order)
	return s.err
}

func validOrderForm() url.Values {
	return url.Values{
		"institutionName": {"Unity Primary"},
		"contactName":     {"J. Doe"},
		"email":           {"j@doe.com"},
		"phone":           {"0920000000"},
		"examType":        {"primary"},
		"quantity":        {"50"},
		"examDate":        {"2025-06-01"},
		"deliveryDate":    {"2025-05-20"},
	}
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestFormHandler_SubmitOrder(t *testing.T) {
	tests := []struct {
		name           string
		mutate         func(url.Values)
		submitErr      error
		expectedStatus int
		expectedBody   []string
		expectedOrders int
	}{
		{
			name:           "success shows confirmation",
			mutate:         func(url.Values) {},
			expectedStatus: http.StatusOK,
			expectedBody:   []string{"Order Submitted Successfully!", `href="/order/new"`},
			expectedOrders: 1,
		},
		{
			name:           "invalid email shows inline error",
			mutate:         func(f url.Values) { f.Set("email", "a@b") },
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   []string{"Please enter a valid email address", `value="Unity Primary"`},
			expectedOrders: 0,
		},
		{
			name:           "relay failure shows toast and keeps values",
			mutate:         func(url.Values) {},
			submitErr:      errors.New("relay returned 500"),
			expectedStatus: http.StatusBadGateway,
			expectedBody:   []string{"Order Failed", "Failed to submit order. Please try again or contact us directly.", `value="j@doe.com"`},
			expectedOrders: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			submitter := &stubSubmitter{err: tt.submitErr}
			h := NewFormHandler(submitter, time.Second, "", logger.New("error"))

			form := validOrderForm()
			tt.mutate(form)
			w := httptest.NewRecorder()

			h.SubmitOrder(w, postForm("/order", form))

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.expectedStatus)
			}
			for _, want := range tt.expectedBody {
				if !strings.Contains(w.Body.String(), want) {
					t.Errorf("body missing %q", want)
				}
			}
			if len(submitter.orders) != tt.expectedOrders {
				t.Errorf("submitted %d orders, want %d", len(submitter.orders), tt.expectedOrders)
			}
		})
	}
}

var tokenInput = regexp.MustCompile(`name="formToken" value="([0-9a-f-]{36})"`)

func TestFormHandler_OrderFormGuardsResubmission(t *testing.T) {
	h := NewFormHandler(&stubSubmitter{}, time.Second, "", logger.New("error"))
	w := httptest.NewRecorder()

	h.OrderForm(w, httptest.NewRequest(http.MethodGet, "/order", nil))

	body := w.Body.String()
	if !strings.Contains(body, `onsubmit="`) || !strings.Contains(body, "b.disabled=true") {
		t.Error("order form should disable its submit button on submit")
	}
	if !strings.Contains(body, `data-submitting="Submitting..."`) {
		t.Error("submit button should carry the in-progress label")
	}
	if !tokenInput.MatchString(body) {
		t.Error("order form should carry a form token")
	}
}

func TestFormHandler_SubmitOrder_SameTokenSendsOnce(t *testing.T) {
	submitter := &stubSubmitter{}
	h := NewFormHandler(submitter, time.Second, "", logger.New("error"))

	form := validOrderForm()
	form.Set(site.OrderTokenField, uuid.NewString())

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		h.SubmitOrder(w, postForm("/order", form))
		if w.Code != http.StatusOK {
			t.Fatalf("post %d: status = %d, want 200", i+1, w.Code)
		}
		if !strings.Contains(w.Body.String(), "Order Submitted Successfully!") {
			t.Errorf("post %d: expected the confirmation", i+1)
		}
	}
	if len(submitter.orders) != 1 {
		t.Errorf("submitted %d orders, want 1", len(submitter.orders))
	}
}

func TestFormHandler_SubmitOrder_RetryAfterFailure(t *testing.T) {
	submitter := &stubSubmitter{err: errors.New("relay returned 500")}
	h := NewFormHandler(submitter, time.Second, "", logger.New("error"))

	form := validOrderForm()
	token := uuid.NewString()
	form.Set(site.OrderTokenField, token)

	w := httptest.NewRecorder()
	h.SubmitOrder(w, postForm("/order", form))
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	if m := tokenInput.FindStringSubmatch(w.Body.String()); m == nil || m[1] != token {
		t.Fatal("failed form should keep its token")
	}

	submitter.err = nil
	w = httptest.NewRecorder()
	h.SubmitOrder(w, postForm("/order", form))
	if w.Code != http.StatusOK {
		t.Fatalf("retry status = %d, want 200", w.Code)
	}
	if strings.Contains(w.Body.String(), "Failed to submit order") {
		t.Error("the earlier failure toast should not be shown again")
	}
	if len(submitter.orders) != 2 {
		t.Errorf("submitted %d orders, want 2", len(submitter.orders))
	}
}

type blockingSubmitter struct {
	mu      sync.Mutex
	calls   int
	started chan struct{}
	release chan struct{}
}

func (s *blockingSubmitter) SubmitOrder(ctx context.Context, order models.OrderRequest) error {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	s.started <- struct{}{}
	<-s.release
	return nil
}

func TestFormHandler_SubmitOrder_ConcurrentDuplicate(t *testing.T) {
	submitter := &blockingSubmitter{
		started: make(chan struct{}, 2),
		release: make(chan struct{}),
	}
	h := NewFormHandler(submitter, time.Second, "", logger.New("error"))

	form := validOrderForm()
	form.Set(site.OrderTokenField, uuid.NewString())

	first := httptest.NewRecorder()
	done := make(chan struct{})
	go func() {
		h.SubmitOrder(first, postForm("/order", form))
		close(done)
	}()

	select {
	case <-submitter.started:
	case <-time.After(time.Second):
		t.Fatal("first submission never reached the submitter")
	}

	second := httptest.NewRecorder()
	h.SubmitOrder(second, postForm("/order", form))
	if second.Code != http.StatusConflict {
		t.Errorf("duplicate status = %d, want 409", second.Code)
	}
	if !strings.Contains(second.Body.String(), "Submitting...") {
		t.Error("duplicate should show the in-progress notice")
	}

	close(submitter.release)
	<-done
	if first.Code != http.StatusOK {
		t.Errorf("first status = %d, want 200", first.Code)
	}
	if submitter.calls != 1 {
		t.Errorf("submitter called %d times, want 1", submitter.calls)
	}
}

func TestFormHandler_SubmitOrder_MalformedTokenIsReplaced(t *testing.T) {
	h := NewFormHandler(&stubSubmitter{}, time.Second, "", logger.New("error"))

	form := validOrderForm()
	form.Set("email", "bad")
	form.Set(site.OrderTokenField, "not-a-token")

	w := httptest.NewRecorder()
	h.SubmitOrder(w, postForm("/order", form))

	m := tokenInput.FindStringSubmatch(w.Body.String())
	if m == nil {
		t.Fatal("expected a fresh token in the redrawn form")
	}
	if _, err := uuid.Parse(m[1]); err != nil {
		t.Errorf("token %q is not a uuid", m[1])
	}
}

func TestOrderSessions_Expire(t *testing.T) {
	sessions := newOrderSessions(&stubSubmitter{})
	start := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	token := uuid.NewString()

	first, _ := sessions.get(token, start)
	if again, _ := sessions.get(token, start.Add(time.Minute)); again != first {
		t.Error("same token should return the same session")
	}

	later, _ := sessions.get(token, start.Add(orderSessionTTL))
	if later == first {
		t.Error("expired session should be replaced")
	}
	if sessions.size() != 1 {
		t.Errorf("tracked %d sessions, want 1", sessions.size())
	}
}

func TestFormHandler_NewOrder(t *testing.T) {
	h := NewFormHandler(&stubSubmitter{}, time.Second, "", logger.New("error"))
	w := httptest.NewRecorder()

	h.NewOrder(w, httptest.NewRequest(http.MethodGet, "/order/new", nil))

	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/order" {
		t.Errorf("got %d to %q, want 303 to /order", w.Code, w.Header().Get("Location"))
	}
}

func TestFormHandler_SubmitContact(t *testing.T) {
	h := NewFormHandler(&stubSubmitter{}, 3*time.Second, "", logger.New("error"))

	valid := url.Values{
		"name":        {"Grace Ater"},
		"institution": {"Unity Primary"},
		"email":       {"grace@unity.ss"},
		"phone":       {"+211 912 345 678"},
		"message":     {"We need 200 papers."},
	}

	w := httptest.NewRecorder()
	h.SubmitContact(w, postForm("/contact", valid))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `content="3;url=/contact"`) {
		t.Error("expected the page to return to the empty form after the reset delay")
	}

	invalid := url.Values{"name": {"Grace Ater"}}
	w = httptest.NewRecorder()
	h.SubmitContact(w, postForm("/contact", invalid))
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Please describe your requirements") {
		t.Error("expected the message error")
	}
	if !strings.Contains(w.Body.String(), `value="Grace Ater"`) {
		t.Error("expected the entered name to be kept")
	}
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		ready      func() bool
		wantStatus string
	}{
		{"ready", func() bool { return true }, "healthy"},
		{"no credentials", func() bool { return false }, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(logger.New("error"), "resend", tt.ready)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			if w.Code != http.StatusOK {
				t.Errorf("status = %d, want 200", w.Code)
			}
			if !strings.Contains(w.Body.String(), `"status":"`+tt.wantStatus+`"`) {
				t.Errorf("body = %s, want status %s", w.Body.String(), tt.wantStatus)
			}
		})
	}
}
