package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/genassess/genesis-assessment-hub/internal/i18n"
)

func TestRelayAuth(t *testing.T) {
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("success"))
	})

	authHandler := RelayAuth([]string{"anon-key", "service-key"})(testHandler)

	tests := []struct {
		name           string
		method         string
		apiKey         string
		bearer         string
		expectedStatus int
	}{
		{name: "apikey header", method: http.MethodPost, apiKey: "anon-key", expectedStatus: http.StatusOK},
		{name: "bearer token", method: http.MethodPost, bearer: "service-key", expectedStatus: http.StatusOK},
		{name: "missing key", method: http.MethodPost, expectedStatus: http.StatusUnauthorized},
		{name: "wrong key", method: http.MethodPost, apiKey: "wrong", expectedStatus: http.StatusForbidden},
		{name: "preflight passes", method: http.MethodOptions, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/functions/v1/send-order-email", nil)
			if tt.apiKey != "" {
				req.Header.Set("apikey", tt.apiKey)
			}
			if tt.bearer != "" {
				req.Header.Set("Authorization", "Bearer "+tt.bearer)
			}

			w := httptest.NewRecorder()
			authHandler.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.expectedStatus)
			}
			if tt.expectedStatus == http.StatusOK && w.Body.String() != "success" {
				t.Errorf("body = %s, want success", w.Body.String())
			}
			if tt.expectedStatus == http.StatusForbidden {
				var body map[string]string
				if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if body["error"] == "" {
					t.Error("expected an error message")
				}
			}
		})
	}
}

func TestRelayAuth_NoKeysConfigured(t *testing.T) {
	handler := RelayAuth(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/order", nil))
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestLanguage(t *testing.T) {
	var got *i18n.Dictionary
	handler := Language(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = i18n.FromContext(r.Context())
	}))

	t.Run("query param persisted", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?lang=ar", nil))

		if got.Lang() != i18n.Arabic {
			t.Errorf("lang = %s, want ar", got.Lang())
		}
		if cookie := w.Header().Get("Set-Cookie"); !strings.Contains(cookie, i18n.LangCookieName+"=ar") {
			t.Errorf("Set-Cookie = %q", cookie)
		}
	})

	t.Run("browser language not persisted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "ar-SS")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if got.Lang() != i18n.Arabic {
			t.Errorf("lang = %s, want ar", got.Lang())
		}
		if w.Header().Get("Set-Cookie") != "" {
			t.Error("detected language should not be stored")
		}
	})
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := Logger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/faq", nil))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to decode log entry: %v", err)
	}
	if entry["path"] != "/faq" {
		t.Errorf("path = %v, want /faq", entry["path"])
	}
	if entry["status"] != float64(http.StatusTeapot) {
		t.Errorf("status = %v, want %d", entry["status"], http.StatusTeapot)
	}
}

func TestAllowAnyOrigin(t *testing.T) {
	handler := AllowAnyOrigin([]string{"authorization", "apikey"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	req := httptest.NewRequest(http.MethodPost, "/functions/v1/send-order-email", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Headers"); got != "authorization, apikey" {
		t.Errorf("Access-Control-Allow-Headers = %q", got)
	}
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want the inner handler's 401", w.Code)
	}
}
