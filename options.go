package ekdsend

import (
	"log/slog"
	"net/http"
	"time"
)

const (
	defaultBaseURL    = "https://es.ekddigital.com/v1"
	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 3
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	maxRetries int
	debug      bool
	logger     *slog.Logger
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client. When set, the client's own
// timeout applies and WithTimeout is ignored.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-attempt request timeout.
// Default: 30 seconds
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithMaxRetries sets the number of retries for transient failures.
// Zero disables retries entirely.
// Default: 3
func WithMaxRetries(count int) Option {
	return func(c *clientConfig) {
		c.maxRetries = count
	}
}

// WithDebug enables diagnostic tracing of requests and responses through
// the configured logger.
func WithDebug(debug bool) Option {
	return func(c *clientConfig) {
		c.debug = debug
	}
}

// WithLogger sets the logger used for debug tracing.
// Default: slog.Default()
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}
