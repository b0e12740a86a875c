package orderform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/genassess/genesis-assessment-hub/internal/models"
)

func TestRelayClient_SubmitOrder(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantErr    bool
		errContain string
	}{
		{"success", http.StatusOK, `{"success":true,"message":"Order emails sent successfully"}`, false, ""},
		{"server error", http.StatusInternalServerError, `{"error":"Failed to send customer email"}`, true, "Failed to send customer email"},
		{"success false", http.StatusOK, `{"success":false}`, true, "did not report success"},
		{"garbage body", http.StatusOK, `not json`, true, "decode relay response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.OrderRequest
			var gotKey, gotAuth string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotKey = r.Header.Get("apikey")
				gotAuth = r.Header.Get("Authorization")
				_ = json.NewDecoder(r.Body).Decode(&got)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewRelayClient(server.URL, "anon-key", 5*time.Second)
			err := client.SubmitOrder(context.Background(), models.OrderRequest{
				InstitutionName: "Unity Primary",
				Quantity:        50,
			})

			if (err != nil) != tt.wantErr {
				t.Fatalf("SubmitOrder() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errContain) {
				t.Errorf("error = %v, want it to contain %q", err, tt.errContain)
			}
			if got.InstitutionName != "Unity Primary" || got.Quantity != 50 {
				t.Errorf("relay received %+v", got)
			}
			if gotKey != "anon-key" || gotAuth != "Bearer anon-key" {
				t.Errorf("headers apikey=%q authorization=%q", gotKey, gotAuth)
			}
		})
	}
}

func TestRelayClient_NoKeyOmitsHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" || r.Header.Get("apikey") != "" {
			t.Error("expected no credentials headers")
		}
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := NewRelayClient(server.URL, "", time.Second)
	if err := client.SubmitOrder(context.Background(), models.OrderRequest{}); err != nil {
		t.Fatalf("SubmitOrder() error = %v", err)
	}
}

func TestRelayClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewRelayClient(url, "", time.Second)
	if err := client.SubmitOrder(context.Background(), models.OrderRequest{}); err == nil {
		t.Fatal("expected an error for an unreachable relay")
	}
}
