package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// Default client settings.
const (
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3
)

// Config holds the settings for an API client. BaseURL and APIKey are
// required. A zero Timeout falls back to DefaultTimeout and a nil
// HTTPClient/Logger to sensible defaults; MaxRetries of zero means no
// retries.
type Config struct {
	BaseURL    string
	APIKey     string
	UserAgent  string
	HTTPClient *http.Client
	Timeout    time.Duration
	MaxRetries int
	Debug      bool
	Logger     *slog.Logger
}

// Client is the HTTP API client. It is safe for concurrent use; each call
// owns its own attempt state.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	retry      *RetryConfig
	debug      bool
	logger     *slog.Logger

	// sleep waits between attempts. Overridable in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewClient creates a new API client from the given config.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if cfg.MaxRetries < 0 {
		return nil, fmt.Errorf("max retries must be >= 0, got %d", cfg.MaxRetries)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	retry := DefaultRetryConfig()
	retry.MaxRetries = cfg.MaxRetries

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		userAgent:  cfg.UserAgent,
		httpClient: httpClient,
		retry:      retry,
		debug:      cfg.Debug,
		logger:     logger,
		sleep:      sleepContext,
	}, nil
}

// Close releases pooled transport connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// Do executes an API request with authentication, retry, and error
// classification. On success the response body is decoded into result
// (unless result is nil). On failure the returned error is an *APIError
// for classified HTTP failures or a *NetworkError for transport failures.
//
// Validation (400) and authentication (401) failures are surfaced
// immediately. Rate-limit (429) failures wait the server-stated
// retry_after before the next attempt. All other failures retry with
// exponential backoff until the attempt budget is exhausted.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, result interface{}) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		payload = data
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	if c.debug {
		c.logger.Debug("api request", "method", method, "path", path, "body", string(payload))
	}

	var lastErr error
	for attempt := 0; attempt <= c.retry.MaxRetries; attempt++ {
		err := c.doOnce(ctx, method, reqURL, payload, result, attempt)
		if err == nil {
			return nil
		}
		lastErr = err

		if !Retryable(err) {
			return err
		}
		if attempt == c.retry.MaxRetries {
			break
		}

		delay := c.retry.Delay(attempt)
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
			// The server's stated delay is authoritative.
			delay = time.Duration(apiErr.RetryAfter) * time.Second
		}

		if c.debug {
			c.logger.Debug("api request failed, retrying", "attempt", attempt, "delay", delay, "error", err)
		}
		if err := c.sleep(ctx, delay); err != nil {
			return err
		}
	}

	if lastErr == nil {
		// Unreachable with a correct loop, but the pipeline must
		// terminate with an error rather than report false success.
		lastErr = &APIError{
			StatusCode: http.StatusInternalServerError,
			Code:       defaultErrorCode,
			Message:    "request failed",
		}
	}
	return lastErr
}

func (c *Client) doOnce(ctx context.Context, method, reqURL string, payload []byte, result interface{}, attempt int) error {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err, URL: reqURL, Attempt: attempt}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err, URL: reqURL, Attempt: attempt}
	}

	requestID := resp.Header.Get("x-request-id")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := parseErrorBody(resp.StatusCode, data, requestID)
		if c.debug {
			c.logger.Debug("api error response", "status", resp.StatusCode, "code", apiErr.Code, "request_id", requestID)
		}
		return apiErr
	}

	if result != nil {
		if err := json.Unmarshal(data, result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	if c.debug {
		c.logger.Debug("api response", "status", resp.StatusCode, "body", string(data))
	}

	return nil
}

// sleepContext waits for d or until the context is cancelled.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
