package ekdsend

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ekddigital/ekdsend-go/internal/api"
)

// Version is the SDK version, sent in the User-Agent header.
const Version = "1.1.0"

const userAgent = "ekdsend-go/" + Version

// API key prefixes distinguishing live and test environments.
const (
	liveKeyPrefix = "ek_live_"
	testKeyPrefix = "ek_test_"
)

// Client is the main EKDSend client. It is safe for concurrent use.
type Client struct {
	api *api.Client

	mu     sync.RWMutex
	closed bool

	// Emails provides access to the email API.
	Emails *EmailsService
	// SMS provides access to the SMS API.
	SMS *SMSService
	// Calls provides access to the voice API.
	Calls *CallsService
}

// New creates a new EKDSend client with the given API key.
// The key must start with "ek_live_" or "ek_test_"; an invalid format is
// rejected here, before any network call.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if !strings.HasPrefix(apiKey, liveKeyPrefix) && !strings.HasPrefix(apiKey, testKeyPrefix) {
		return nil, fmt.Errorf("%w: must start with %q or %q", ErrInvalidAPIKey, liveKeyPrefix, testKeyPrefix)
	}

	cfg := &clientConfig{
		baseURL:    defaultBaseURL,
		timeout:    defaultTimeout,
		maxRetries: defaultMaxRetries,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:    strings.TrimSuffix(cfg.baseURL, "/"),
		APIKey:     apiKey,
		UserAgent:  userAgent,
		HTTPClient: cfg.httpClient,
		Timeout:    cfg.timeout,
		MaxRetries: cfg.maxRetries,
		Debug:      cfg.debug,
		Logger:     cfg.logger,
	})
	if err != nil {
		return nil, err
	}

	c := &Client{api: apiClient}
	c.Emails = &EmailsService{client: c}
	c.SMS = &SMSService{client: c}
	c.Calls = &CallsService{client: c}

	return c, nil
}

// checkClosed returns ErrClientClosed if the client has been closed.
func (c *Client) checkClosed() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClientClosed
	}
	return nil
}

// Close closes the client and releases pooled connections. Resource
// methods called after Close return ErrClientClosed without issuing a
// network request. Close is idempotent.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.api.Close()

	return nil
}
