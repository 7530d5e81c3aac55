// Package payment wraps the iamport payment gateway. The storefront only
// needs one capability from it: confirming that a transaction was actually
// paid and for which amount.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/shopspring/decimal"
)

const (
	defaultBaseURL = "https://api.iamport.kr"
	requestTimeout = 10 * time.Second
)

// ErrVerificationFailed covers every way verification can fail: gateway
// rejection, non-paid status, amount mismatch, or a transport/auth error.
var ErrVerificationFailed = errors.New("payment verification failed")

// Payment is the slice of the gateway's payment record the workflow needs.
type Payment struct {
	ImpUID string          `json:"imp_uid"`
	Status string          `json:"status"`
	Amount decimal.Decimal `json:"amount"`
}

type Client struct {
	apiKey     string
	apiSecret  string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a gateway client. baseURL may be empty to use the
// production endpoint.
func NewClient(apiKey, apiSecret, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// NewClientFromEnv reads IAMPORT_API_KEY, IAMPORT_API_SECRET and the
// optional IAMPORT_API_URL override.
func NewClientFromEnv() *Client {
	return NewClient(
		os.Getenv("IAMPORT_API_KEY"),
		os.Getenv("IAMPORT_API_SECRET"),
		os.Getenv("IAMPORT_API_URL"),
	)
}

// getToken fetches a short-lived access token for subsequent lookups.
func (c *Client) getToken(ctx context.Context) (string, error) {
	payload, _ := json.Marshal(map[string]string{
		"imp_key":    c.apiKey,
		"imp_secret": c.apiSecret,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/users/getToken", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach payment gateway: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gateway token error (%d): %s", resp.StatusCode, body)
	}

	var tokenResp struct {
		Code     int    `json:"code"`
		Message  string `json:"message"`
		Response struct {
			AccessToken string `json:"access_token"`
		} `json:"response"`
	}
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", fmt.Errorf("failed to parse gateway token response: %w", err)
	}
	if tokenResp.Code != 0 || tokenResp.Response.AccessToken == "" {
		return "", fmt.Errorf("gateway refused token request: %s", tokenResp.Message)
	}
	return tokenResp.Response.AccessToken, nil
}

// Lookup fetches the gateway's record for one transaction id.
func (c *Client) Lookup(ctx context.Context, impUID string) (*Payment, error) {
	token, err := c.getToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/payments/"+impUID, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach payment gateway: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway payment lookup error (%d): %s", resp.StatusCode, body)
	}

	var paymentResp struct {
		Code     int     `json:"code"`
		Message  string  `json:"message"`
		Response Payment `json:"response"`
	}
	if err := json.Unmarshal(body, &paymentResp); err != nil {
		return nil, fmt.Errorf("failed to parse gateway payment response: %w", err)
	}
	if paymentResp.Code != 0 {
		return nil, fmt.Errorf("gateway rejected payment lookup: %s", paymentResp.Message)
	}
	return &paymentResp.Response, nil
}

// Verify confirms that the transaction exists, reports status "paid" and
// carries exactly the expected amount. Any other outcome, including
// transport or auth failures, is ErrVerificationFailed.
func (c *Client) Verify(ctx context.Context, impUID string, expected decimal.Decimal) error {
	p, err := c.Lookup(ctx, impUID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}
	if p.Status != "paid" {
		return fmt.Errorf("%w: payment not completed (status %q)", ErrVerificationFailed, p.Status)
	}
	if !p.Amount.Equal(expected) {
		return fmt.Errorf("%w: paid amount %s does not match order total %s",
			ErrVerificationFailed, p.Amount, expected)
	}
	return nil
}
