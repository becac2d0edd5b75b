// Package backend implements the outbound client for the remote
// currency-account REST API. All application state lives behind that API;
// this package only issues requests, attaches the session's bearer token,
// and normalizes failures into pkg/apierror variants.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"currency-wallet-web/config"
	"currency-wallet-web/internal/core/ports"
	"currency-wallet-web/pkg/apierror"

	"github.com/rs/zerolog"
)

// Client talks to the backend REST API. One instance is shared by all
// requests; per-request data (the bearer token) travels in the context.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// Compile-time checks that Client covers the full backend surface.
var (
	_ ports.AuthAPI     = (*Client)(nil)
	_ ports.ProfileAPI  = (*Client)(nil)
	_ ports.AccountAPI  = (*Client)(nil)
	_ ports.TransferAPI = (*Client)(nil)
	_ ports.ExchangeAPI = (*Client)(nil)
	_ ports.CurrencyAPI = (*Client)(nil)
	_ ports.PaymentAPI  = (*Client)(nil)
	_ ports.AdminAPI    = (*Client)(nil)
)

// New creates a backend client from configuration.
func New(cfg config.BackendConfig, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With().Str("component", "backend_client").Logger(),
	}
}

// do executes one request against the backend. payload is JSON-encoded when
// non-nil; a 2xx body is decoded into out when out is non-nil. Non-2xx
// responses and transport failures come back as *apierror.APIError.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := ports.TokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("backend unreachable")
		return apierror.Unreachable(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return apierror.Unreachable(fmt.Errorf("read %s %s response: %w", method, path, err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := apierror.Normalize(resp.StatusCode, respBody)
		c.log.Warn().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Str("message", apiErr.Message).
			Msg("backend error response")
		return apiErr
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode %s %s response: %w", method, path, err)
		}
	}
	return nil
}
