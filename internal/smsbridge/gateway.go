package smsbridge

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/carson-networks/sms-ledger/internal/extract"
)

const defaultGatewayTimeout = 30 * time.Second

// GatewayClient reads messages from an SMS gateway running on the paired
// device. It implements Bridge.
type GatewayClient struct {
	baseURL    string
	httpClient *http.Client
}

var _ Bridge = (*GatewayClient)(nil)

// NewGatewayClient creates a GatewayClient for the given base URL.
func NewGatewayClient(baseURL string) *GatewayClient {
	return &GatewayClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultGatewayTimeout},
	}
}

type permissionResponse struct {
	Read string `json:"read"`
}

type messagesResponse struct {
	Messages []extract.RawMessage `json:"messages"`
}

// EnsurePermission asks the gateway whether SMS read access is granted.
// A reachable gateway that reports anything but "granted" yields false
// without an error.
func (c *GatewayClient) EnsurePermission(ctx context.Context) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/permission", nil)
	if err != nil {
		return false, fmt.Errorf("smsbridge: build permission request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("smsbridge: permission request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, nil
	}

	var perm permissionResponse
	if err := json.NewDecoder(resp.Body).Decode(&perm); err != nil {
		return false, fmt.Errorf("smsbridge: decode permission response: %w", err)
	}

	return perm.Read == "granted", nil
}

// ReadRecent fetches up to maxCount messages received within the last
// windowDays days. An empty inbox returns an empty slice.
func (c *GatewayClient) ReadRecent(ctx context.Context, windowDays, maxCount int) ([]extract.RawMessage, error) {
	sinceMs := time.Now().Add(-time.Duration(windowDays) * 24 * time.Hour).UnixMilli()

	query := url.Values{}
	query.Set("sinceMs", strconv.FormatInt(sinceMs, 10))
	query.Set("max", strconv.Itoa(maxCount))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/messages?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("smsbridge: build messages request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("smsbridge: messages request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("smsbridge: gateway returned status %d", resp.StatusCode)
	}

	var body messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("smsbridge: decode messages response: %w", err)
	}

	if body.Messages == nil {
		return []extract.RawMessage{}, nil
	}
	return body.Messages, nil
}
