package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"time"
)

// Defaults applied when no option overrides them.
const (
	DefaultBaseURL    = "https://api.sendpigeon.dev"
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 2

	// MaxAllowedRetries is the upper bound accepted for the retry count.
	MaxAllowedRetries = 5
)

// Logger receives debug records from the client.
type Logger interface {
	Logf(format string, args ...any)
}

// LoggerFunc adapts a plain function to the Logger interface.
type LoggerFunc func(format string, args ...any)

// Logf implements Logger.
func (f LoggerFunc) Logf(format string, args ...any) { f(format, args...) }

// Client is the HTTP API client. It is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	retry      *RetryConfig
	debug      bool
	logger     Logger
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithTimeout sets the per-attempt request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithRetries sets the number of retries. Total attempts are retries+1.
func WithRetries(retries int) Option {
	return func(c *Client) {
		c.retry.MaxRetries = retries
	}
}

// WithRetryOn sets the predicate deciding which HTTP status codes are retried.
func WithRetryOn(fn func(status int) bool) Option {
	return func(c *Client) {
		c.retry.RetryableOn = fn
	}
}

// WithDebug enables debug logging of each attempt.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithLogger sets the debug log sink.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// New creates a new API client.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, &ValidationError{Message: "API key is required"}
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		retry:  DefaultRetryConfig(),
		logger: LoggerFunc(log.New(log.Writer(), "[sendpigeon] ", log.LstdFlags).Printf),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.retry.MaxRetries < 0 || c.retry.MaxRetries > MaxAllowedRetries {
		return nil, &ValidationError{
			Message: fmt.Sprintf("max retries must be between 0 and %d, got %d", MaxAllowedRetries, c.retry.MaxRetries),
		}
	}

	return c, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Close releases idle pooled connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// Do executes an HTTP request against the API and decodes the response into
// result. body is marshalled as JSON when non-nil; header entries are added
// on top of the standard auth and content-type headers. Failed attempts are
// retried per the retry configuration; the timeout applies per attempt, not
// to the call as a whole. Bound the whole call with a context deadline.
func (c *Client) Do(ctx context.Context, method, path string, body, result any, header http.Header) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		payload = data
	}

	url := c.baseURL + path
	var lastErr error

	for attempt := 0; attempt <= c.retry.MaxRetries; attempt++ {
		resp, err := c.attempt(ctx, method, url, payload, header, attempt)
		if err != nil {
			lastErr = err
			if attempt < c.retry.MaxRetries {
				if werr := c.retry.Wait(ctx, c.retry.Delay(attempt)); werr != nil {
					return classifyTransportError(werr, url, attempt+1)
				}
				continue
			}
			return classifyTransportError(err, url, attempt+1)
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return decodeResponse(resp, method, path, result)
		}

		if c.retry.ShouldRetry(attempt, resp.StatusCode) {
			retryAfter := resp.Header.Get("Retry-After")
			drain(resp)
			delay := c.retry.Delay(attempt)
			if d, ok := ParseRetryAfter(retryAfter); ok {
				delay = d
			}
			if werr := c.retry.Wait(ctx, delay); werr != nil {
				return classifyTransportError(werr, url, attempt+1)
			}
			continue
		}

		return parseErrorResponse(resp)
	}

	// Unreachable with a well-formed retry config; kept so a miswired
	// RetryableOn still lands somewhere sane.
	return &NetworkError{Err: fmt.Errorf("max retries exceeded: %w", lastErr), URL: url, Attempts: c.retry.MaxRetries + 1}
}

// attempt performs a single request. A fresh request is built each time so
// the body reader is never shared across attempts.
func (c *Client) attempt(ctx context.Context, method, url string, payload []byte, header http.Header, n int) (*http.Response, error) {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.debug {
		status := "error"
		if err == nil {
			status = fmt.Sprintf("%d", resp.StatusCode)
		}
		retryInfo := ""
		if n > 0 {
			retryInfo = fmt.Sprintf(" (retry %d)", n)
		}
		c.logger.Logf("%s %s -> %s in %s%s", method, req.URL.Path, status, time.Since(start).Round(time.Millisecond), retryInfo)
	}
	return resp, err
}

// decodeResponse reads a 2xx body into result. A success body that cannot be
// decoded into the expected shape means the client and service have drifted
// out of sync; that is a contract violation, not an API error, so it panics
// instead of surfacing through the normal error channel.
func decodeResponse(resp *http.Response, method, path string, result any) error {
	defer resp.Body.Close()

	if result == nil || resp.StatusCode == http.StatusNoContent {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: fmt.Errorf("read response body: %w", err), URL: resp.Request.URL.String(), Attempts: 1}
	}
	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, result); err != nil {
		panic(fmt.Sprintf("sendpigeon: %s %s succeeded with a body that does not match the expected schema: %v", method, path, err))
	}
	return nil
}

// parseErrorResponse converts a non-2xx response into an APIError using the
// service error envelope {"message": ..., "code": ...}.
func parseErrorResponse(resp *http.Response) error {
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)

	var envelope struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Message != "" {
		return &APIError{
			Status:  resp.StatusCode,
			Message: envelope.Message,
			APICode: envelope.Code,
		}
	}

	return &APIError{
		Status:  resp.StatusCode,
		Message: fmt.Sprintf("request failed: %d", resp.StatusCode),
	}
}

// classifyTransportError maps a transport-level failure to the error
// taxonomy. Deadline failures become TimeoutError so callers can tell
// "never connected" apart from "connected too slowly".
func classifyTransportError(err error, url string, attempts int) error {
	if isTimeout(err) {
		return &TimeoutError{Err: err, URL: url, Attempts: attempts}
	}
	return &NetworkError{Err: err, URL: url, Attempts: attempts}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func drain(resp *http.Response) {
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
