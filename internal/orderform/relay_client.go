package orderform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/genassess/genesis-assessment-hub/internal/models"
)

// RelayClient submits orders to the mail relay over HTTP.
type RelayClient struct {
	url    string
	apiKey string
	client *http.Client
}

// NewRelayClient creates a client posting to url. apiKey may be empty.
func NewRelayClient(url, apiKey string, timeout time.Duration) *RelayClient {
	return &RelayClient{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
	}
}

// SubmitOrder posts the order as JSON. A non-2xx status or a body without
// success=true is reported as an error.
func (c *RelayClient) SubmitOrder(ctx context.Context, order models.OrderRequest) error {
	body, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("encode order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("call relay: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read relay response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(payload, &body)
		if body.Error != "" {
			return fmt.Errorf("relay returned %d: %s", resp.StatusCode, body.Error)
		}
		return fmt.Errorf("relay returned %d", resp.StatusCode)
	}

	var result models.RelayResponse
	if err := json.Unmarshal(payload, &result); err != nil {
		return fmt.Errorf("decode relay response: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("relay did not report success")
	}
	return nil
}
