package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/suyatrade/console/internal/config"
	"github.com/suyatrade/console/internal/logger"
)

// Error is a non-2xx backend response. Body holds the already-parsed
// response body: decoded JSON when the backend sent JSON, the raw text
// otherwise. Callers branch on Status where absence matters (404 on the
// telegram settings means "not configured yet").
type Error struct {
	Status int
	Body   any
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend returned %d", e.Status)
}

func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == 404
}

// Client issues JSON requests against the trading backend. Failed
// requests are never retried here; retry policy is a caller decision.
type Client struct {
	rc  *resty.Client
	log *logger.Logger
}

func NewClient(cfg *config.Config, log *logger.Logger) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.Backend.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout()).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	return &Client{rc: rc, log: log}
}

func (c *Client) do(ctx context.Context, method, path string, headers map[string]string, body, out any) error {
	req := c.rc.R().SetContext(ctx)
	for k, v := range headers {
		req.SetHeader(k, v)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json")
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.IsError() {
		c.log.Warn("backend request failed",
			"method", method, "path", path, "status", resp.StatusCode())
		return &Error{Status: resp.StatusCode(), Body: parseBody(resp)}
	}

	if out != nil && isJSON(resp) {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return fmt.Errorf("decode %s response: %w", path, err)
		}
	}
	return nil
}

func isJSON(resp *resty.Response) bool {
	return strings.Contains(resp.Header().Get("Content-Type"), "application/json")
}

// parseBody normalizes a response body: JSON is decoded, anything else is
// kept as raw text.
func parseBody(resp *resty.Response) any {
	if isJSON(resp) {
		var v any
		if err := json.Unmarshal(resp.Body(), &v); err == nil {
			return v
		}
	}
	return string(resp.Body())
}
