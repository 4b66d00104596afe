// internal/adapters/network/client.go
package network

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Saiashu12/fulfillment-task/internal/core/domain"
	"github.com/Saiashu12/fulfillment-task/internal/core/ports"
)

// Config holds the fulfillment network connection settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks JSON over HTTP to the fulfillment network. The network is a
// separate failure domain even when its endpoints run in this process.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Statically assert that *Client implements the FulfillmentNetwork interface.
var _ ports.FulfillmentNetwork = (*Client)(nil)

// NewClient creates a new fulfillment network client.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With(slog.String("gateway", "network")),
	}
}

func (c *Client) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.ExternalError{System: "network", Operation: path, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.ExternalError{System: "network", Operation: path, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		var remote struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &remote) == nil && remote.Error != "" {
			return &domain.ExternalError{System: "network", Operation: path, Err: fmt.Errorf("status %d: %s", resp.StatusCode, remote.Error)}
		}
		return &domain.ExternalError{System: "network", Operation: path, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return &domain.ExternalError{System: "network", Operation: path, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}

// InventoryBySKU fetches the authoritative available quantity for a SKU.
func (c *Client) InventoryBySKU(ctx context.Context, sku string) (int, error) {
	if sku == "" {
		return 0, &domain.ValidationError{Field: "sku"}
	}

	var resp struct {
		SKU       string `json:"sku"`
		Inventory int    `json:"inventory"`
	}
	if err := c.post(ctx, "/inventory", map[string]string{"sku": sku}, &resp); err != nil {
		return 0, err
	}
	return resp.Inventory, nil
}

// FulfillOrder asks the network to fulfill the order and returns the
// generated tracking info.
func (c *Client) FulfillOrder(ctx context.Context, orderID string) (*domain.TrackingInfo, error) {
	if orderID == "" {
		return nil, &domain.ValidationError{Field: "orderId"}
	}

	var tracking domain.TrackingInfo
	if err := c.post(ctx, "/fulfill-order", map[string]string{"orderId": orderID}, &tracking); err != nil {
		return nil, err
	}
	return &tracking, nil
}
