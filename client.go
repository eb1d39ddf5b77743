package gagiteck

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
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gagiteck/gagiteck-go/internal/config"
)

// Version is the SDK version reported in the User-Agent header.
const Version = "0.1.0"

// Client is a REST client for the Gagiteck platform API. It is safe for
// concurrent use.
type Client struct {
	apiKey    string
	baseURL   string
	userAgent string
	httpc     *http.Client
	logger    *slog.Logger

	// API resources.
	Agents     *AgentsService
	Workflows  *WorkflowsService
	Executions *ExecutionsService
}

// ClientOption configures a Client.
type ClientOption func(*clientOptions)

type clientOptions struct {
	baseURL string
	timeout time.Duration
	httpc   *http.Client
	logger  *slog.Logger
}

// WithBaseURL overrides the API endpoint (default DefaultBaseURL).
func WithBaseURL(u string) ClientOption {
	return func(o *clientOptions) { o.baseURL = u }
}

// WithTimeout sets the per-request timeout (default DefaultHTTPTimeout).
// Ignored when a custom HTTP client is supplied.
func WithTimeout(d time.Duration) ClientOption {
	return func(o *clientOptions) { o.timeout = d }
}

// WithHTTPClient supplies a custom *http.Client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(o *clientOptions) { o.httpc = c }
}

// WithLogger enables debug logging of API requests.
func WithLogger(l *slog.Logger) ClientOption {
	return func(o *clientOptions) { o.logger = l }
}

// NewClient creates a platform client. The API key must start with "ggt_";
// a missing or malformed key fails with *AuthenticationError.
func NewClient(apiKey string, opts ...ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, &AuthenticationError{Message: "API key is required"}
	}
	if !strings.HasPrefix(apiKey, APIKeyPrefix) {
		return nil, &AuthenticationError{Message: `invalid API key format, key should start with "ggt_"`}
	}

	var o clientOptions
	for _, fn := range opts {
		fn(&o)
	}
	if o.baseURL == "" {
		o.baseURL = DefaultBaseURL
	}
	if o.timeout == 0 {
		o.timeout = DefaultHTTPTimeout
	}
	if o.httpc == nil {
		o.httpc = &http.Client{Timeout: o.timeout}
	}

	c := &Client{
		apiKey:    apiKey,
		baseURL:   strings.TrimRight(o.baseURL, "/"),
		userAgent: "gagiteck-go/" + Version,
		httpc:     o.httpc,
		logger:    o.logger,
	}
	c.Agents = &AgentsService{client: c}
	c.Workflows = &WorkflowsService{client: c}
	c.Executions = &ExecutionsService{client: c}
	return c, nil
}

// NewClientFromEnv creates a client using GAGITECK_API_KEY and, when set,
// GAGITECK_BASE_URL, falling back to the standard settings files.
func NewClientFromEnv(opts ...ClientOption) (*Client, error) {
	settings, err := config.LoadSettings(config.DefaultSettingsPaths(".")...)
	if err != nil {
		settings = &config.Settings{APIKey: os.Getenv(config.EnvAPIKey)}
	}
	if settings.BaseURL != "" {
		opts = append([]ClientOption{WithBaseURL(settings.BaseURL)}, opts...)
	}
	return NewClient(settings.APIKey, opts...)
}

// BaseURL returns the resolved API endpoint.
func (c *Client) BaseURL() string { return c.baseURL }

// Close releases idle transport connections.
func (c *Client) Close() error {
	c.httpc.CloseIdleConnections()
	return nil
}

// apiErrorBody is the JSON error envelope the platform returns.
type apiErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do performs one API request. body and out may be nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		timeout := errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err)
		return &TransportError{Timeout: timeout, Err: err}
	}
	defer resp.Body.Close()

	if c.logger != nil {
		c.logger.DebugContext(ctx, "api request",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"duration", time.Since(start),
		)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: fmt.Errorf("read response body: %w", err)}
	}

	if resp.StatusCode >= 400 {
		return c.apiError(resp, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// apiError maps an error response to the SDK error taxonomy.
func (c *Client) apiError(resp *http.Response, data []byte) error {
	message := strings.TrimSpace(string(data))
	var envelope apiErrorBody
	if err := json.Unmarshal(data, &envelope); err == nil {
		if envelope.Message != "" {
			message = envelope.Message
		} else if envelope.Error != "" {
			message = envelope.Error
		}
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return &AuthenticationError{Message: "invalid or expired API key"}
	case http.StatusTooManyRequests:
		retryAfter := 60 * time.Second
		if v := resp.Header.Get("Retry-After"); v != "" {
			if secs, err := strconv.Atoi(v); err == nil {
				retryAfter = time.Duration(secs) * time.Second
			}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message, RetryAfter: retryAfter}
	default:
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}
}
