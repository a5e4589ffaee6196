package placeholder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/CrestNiraj12/postdeck/domain"
)

const (
	maxResponseBytes = 4 << 20 // Whole /posts listing fits many times over
	maxErrorRunes    = 120     // Error bodies end up on a single status line
)

// Client is a thin HTTP wrapper for a JSONPlaceholder-style API.
// It handles base URL construction and JSON encoding.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates an API client. A nil logger discards logs.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Get performs a GET request and returns the response body.
func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// Post performs a POST request with body encoded as JSON.
func (c *Client) Post(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding %s body: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed", slog.String("op", op), slog.String("error", err.Error()))
		return nil, &domain.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, &domain.TransportError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("reading response: %w", err)}
	}
	if len(data) > maxResponseBytes {
		return nil, &domain.TransportError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("response exceeds %d bytes", maxResponseBytes)}
	}

	c.logger.Debug("request done",
		slog.String("op", op),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &domain.TransportError{Op: op, Status: resp.StatusCode, Err: errors.New(errorSnippet(data))}
	}

	return data, nil
}

// errorSnippet flattens an error body to one short line.
func errorSnippet(data []byte) string {
	flat := []rune(strings.Join(strings.Fields(string(data)), " "))
	if len(flat) == 0 {
		return "empty response"
	}
	if len(flat) > maxErrorRunes {
		return string(flat[:maxErrorRunes]) + "…"
	}
	return string(flat)
}

// flexString accepts a JSON string or number and keeps its text form.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", b)
	}
	*f = flexString(n.String())
	return nil
}
