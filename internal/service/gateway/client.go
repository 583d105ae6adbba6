package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"orderdesk/internal/model"

	"github.com/andybalholm/brotli"
)

type Config struct {
	BaseURL string
}

// TokenSource returns the bearer token to attach to outgoing requests.
// An empty string means no Authorization header is sent.
type TokenSource func() string

type Client struct {
	client  *http.Client
	baseURL string
}

func NewClient(cfg Config, tokens TokenSource) *Client {
	return &Client{
		client: &http.Client{
			Transport: &BearerTransport{
				Tokens: tokens,
				Base:   http.DefaultTransport,
			},
			Timeout: 10 * time.Second,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// BearerTransport attaches the current session token as a bearer
// credential and negotiates brotli-compressed responses.
type BearerTransport struct {
	Tokens TokenSource
	Base   http.RoundTripper
}

func (t *BearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.Tokens != nil {
		if token := t.Tokens(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "br")
	return t.Base.RoundTrip(req)
}

// Login exchanges a username for an opaque bearer token. The gateway
// returns the token as a plain-text body.
func (c *Client) Login(ctx context.Context, username string) (string, error) {
	u := fmt.Sprintf("%s/auth/login?username=%s", c.baseURL, url.QueryEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if !success(resp.StatusCode) {
		return "", newStatusError("login", resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read login response: %w", err)
	}

	token := strings.TrimSpace(string(body))
	if token == "" {
		return "", fmt.Errorf("login returned an empty token")
	}
	return token, nil
}

// PlaceOrder submits an order request. The response body is ignored;
// only the status matters.
func (c *Client) PlaceOrder(ctx context.Context, order model.OrderRequest) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to encode order: %w", err)
	}

	u := fmt.Sprintf("%s/api/orders", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !success(resp.StatusCode) {
		return newStatusError("place order", resp)
	}
	return nil
}

// OrdersByCustomer fetches all orders belonging to a customer.
func (c *Client) OrdersByCustomer(ctx context.Context, customerID string) ([]model.Order, error) {
	u := fmt.Sprintf("%s/api/orders/customer/%s", c.baseURL, url.PathEscape(customerID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !success(resp.StatusCode) {
		return nil, newStatusError("fetch orders", resp)
	}

	var orders []model.Order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, nil
}

// Health reports whether the gateway is reachable. Any HTTP response
// counts as reachable; only a transport failure does not.
func (c *Client) Health(ctx context.Context) bool {
	u := fmt.Sprintf("%s/actuator/health", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false
	}

	resp, err := c.do(req)
	if err != nil {
		return false
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return true
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.Header.Get("Content-Encoding") == "br" {
		resp.Body = &readCloserWrapper{Reader: brotli.NewReader(resp.Body), Closer: resp.Body}
	}
	return resp, nil
}

func success(code int) bool {
	return code >= 200 && code < 300
}

type readCloserWrapper struct {
	io.Reader
	io.Closer
}

func (r *readCloserWrapper) Read(p []byte) (n int, err error) {
	return r.Reader.Read(p)
}

func (r *readCloserWrapper) Close() error {
	return r.Closer.Close()
}
