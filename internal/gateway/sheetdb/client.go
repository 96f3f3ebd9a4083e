// Package sheetdb is the HTTP adapter for the spreadsheet-backed
// persistence API. It implements the gateway ports: plain JSON records,
// 2xx means success, anything else becomes a message-only gateway error.
package sheetdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hisabapp/hisab/internal/apperrors"
	"github.com/hisabapp/hisab/internal/metrics"
)

// Client is the shared HTTP client for all entity gateways.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// NewClient creates a gateway client for the API at baseURL. token, when
// non-empty, is sent as a bearer token on every request.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// do performs one round trip. body (when non-nil) is JSON-encoded; out
// (when non-nil) receives the decoded response body. Non-2xx statuses and
// transport errors come back wrapped in apperrors.ErrGateway.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		metrics.GatewayRequestDuration.WithLabelValues(method, path, "error").Observe(time.Since(start).Seconds())
		return fmt.Errorf("%s %s: %s: %w", method, path, err.Error(), apperrors.ErrGateway)
	}
	defer resp.Body.Close()
	metrics.GatewayRequestDuration.WithLabelValues(method, path, strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// The API has no structured error codes, only a message body.
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%s %s: status %d: %s: %w", method, path, resp.StatusCode, strings.TrimSpace(string(msg)), apperrors.ErrGateway)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s %s response: %s: %w", method, path, err.Error(), apperrors.ErrGateway)
		}
	}
	return nil
}

// deleteAck is the body of a successful delete.
type deleteAck struct {
	Success bool `json:"success"`
}
