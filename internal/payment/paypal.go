// Package payment holds the PayPal REST client used by checkout. Token
// exchange, order creation and order capture are each a single attempt; there
// are no retries, only a circuit breaker so a struggling provider fails fast
// instead of tying up request handlers.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker/v2"
)

// ErrProvider marks failures reported by (or while reaching) PayPal. Callers
// surface only the short message, never the raw provider payload.
var ErrProvider = errors.New("payment provider error")

// DefaultCurrencyDivisor converts display-currency minor units into the
// provider currency. It is a placeholder rate, kept only as the default for
// deployments that do not configure PAYPAL_CURRENCY_DIVISOR.
const DefaultCurrencyDivisor = 83

const defaultAPIBase = "https://api-m.sandbox.paypal.com"

type Config struct {
	ClientID        string
	Secret          string
	APIBase         string
	CurrencyDivisor int64
	Timeout         time.Duration
}

type Client struct {
	cfg     Config
	httpc   *http.Client
	breaker *gobreaker.CircuitBreaker[*apiResponse]
}

type apiResponse struct {
	status int
	body   []byte
}

// NewClient fails fast when credentials are missing so a misconfigured
// deployment is caught at startup rather than on the first checkout.
func NewClient(cfg Config) (*Client, error) {
	if cfg.ClientID == "" || cfg.Secret == "" {
		return nil, errors.New("missing PayPal credentials")
	}
	if cfg.APIBase == "" {
		cfg.APIBase = defaultAPIBase
	}
	cfg.APIBase = strings.TrimRight(cfg.APIBase, "/")
	if cfg.CurrencyDivisor <= 0 {
		cfg.CurrencyDivisor = DefaultCurrencyDivisor
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &Client{
		cfg:   cfg,
		httpc: &http.Client{Timeout: cfg.Timeout},
		breaker: gobreaker.NewCircuitBreaker[*apiResponse](gobreaker.Settings{
			Name: "paypal",
		}),
	}, nil
}

// CreateOrder submits a capture-intent order for the given cart total and
// returns the provider's order id.
func (c *Client) CreateOrder(ctx context.Context, totalAmount int64) (string, error) {
	token, err := c.getAccessToken(ctx)
	if err != nil {
		return "", err
	}

	payload := map[string]interface{}{
		"intent": "CAPTURE",
		"purchase_units": []map[string]interface{}{
			{
				"amount": map[string]string{
					"currency_code": "USD",
					"value":         c.providerAmount(totalAmount),
				},
			},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal order request: %w", err)
	}

	resp, err := c.post(ctx, "/v2/checkout/orders", token, body)
	if err != nil {
		return "", err
	}
	if resp.status < 200 || resp.status >= 300 {
		return "", providerFailure("failed to create PayPal order", resp)
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(resp.body, &created); err != nil || created.ID == "" {
		return "", fmt.Errorf("%w: malformed order creation response", ErrProvider)
	}

	return created.ID, nil
}

// CaptureOrder submits a capture request for a previously created provider
// order and returns the raw capture payload. The captured amount is not
// verified against the cart total; callers own that trust decision.
func (c *Client) CaptureOrder(ctx context.Context, orderID string) (json.RawMessage, error) {
	token, err := c.getAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := c.post(ctx, "/v2/checkout/orders/"+orderID+"/capture", token, nil)
	if err != nil {
		return nil, err
	}
	if resp.status < 200 || resp.status >= 300 {
		return nil, providerFailure("failed to capture payment", resp)
	}

	return json.RawMessage(resp.body), nil
}

func (c *Client) getAccessToken(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.APIBase+"/v1/oauth2/token",
		strings.NewReader("grant_type=client_credentials"))
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.cfg.ClientID, c.cfg.Secret)

	resp, err := c.do(req)
	if err != nil {
		return "", err
	}
	if resp.status < 200 || resp.status >= 300 {
		return "", providerFailure("failed to obtain access token", resp)
	}

	var token struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(resp.body, &token); err != nil || token.AccessToken == "" {
		return "", fmt.Errorf("%w: malformed token response", ErrProvider)
	}

	return token.AccessToken, nil
}

func (c *Client) post(ctx context.Context, path, token string, body []byte) (*apiResponse, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIBase+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	return c.do(req)
}

func (c *Client) do(req *http.Request) (*apiResponse, error) {
	resp, err := c.breaker.Execute(func() (*apiResponse, error) {
		httpResp, err := c.httpc.Do(req)
		if err != nil {
			return nil, err
		}
		defer httpResp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(httpResp.Body, 1<<20))
		if err != nil {
			return nil, err
		}

		return &apiResponse{status: httpResp.StatusCode, body: body}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}
	return resp, nil
}

// providerAmount converts minor units to the provider currency with the
// configured divisor, two decimal places.
func (c *Client) providerAmount(totalAmount int64) string {
	return decimal.NewFromInt(totalAmount).
		Div(decimal.NewFromInt(c.cfg.CurrencyDivisor)).
		StringFixed(2)
}

func providerFailure(action string, resp *apiResponse) error {
	var detail struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(resp.body, &detail)
	if detail.Message != "" {
		return fmt.Errorf("%w: %s: %s", ErrProvider, action, detail.Message)
	}
	return fmt.Errorf("%w: %s: status %d", ErrProvider, action, resp.status)
}
