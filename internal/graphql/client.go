// Package graphql sends fixed GraphQL operations to a single backend
// endpoint over HTTP.
package graphql

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

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// RequestIDHeader carries the inbound request id to the backend.
const RequestIDHeader = "X-Request-Id"

// Error is one entry of a GraphQL response "errors" array.
type Error struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

// Errors is the "errors" array of a GraphQL response.
type Errors []Error

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Message)
	}
	return strings.Join(msgs, "; ")
}

// Client posts GraphQL requests to one endpoint. Every call goes to the
// backend; nothing is cached or retried.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a client. A nil httpClient means a plain *http.Client
// without a timeout.
func NewClient(endpoint, apiKey string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Endpoint returns the backend URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Do sends req and decodes the response body into out.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode graphql request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create graphql request: %w", err)
	}

	requestID := chimiddleware.GetReqID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Cache-Control", "no-cache")
	httpReq.Header.Set("Pragma", "no-cache")
	httpReq.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("send graphql request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read graphql response: %w", err)
	}

	c.logger.Debug("graphql request completed",
		"request_id", requestID,
		"status", resp.StatusCode,
		"bytes", len(body),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	// GraphQL servers report most failures in-band, so the body is decoded
	// whatever the status.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("graphql backend returned non-2xx status",
			"request_id", requestID,
			"status", resp.StatusCode,
		)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode graphql response (status %d): %w", resp.StatusCode, err)
	}

	return nil
}
