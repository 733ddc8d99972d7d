package sendpigeon

import (
	"net/http"
	"time"

	"github.com/sendpigeon/sendpigeon-go/internal/api"
)

const (
	defaultBaseURL = api.DefaultBaseURL

	// DefaultTimeout is the per-attempt timeout applied when WithTimeout is
	// not used.
	DefaultTimeout = api.DefaultTimeout
	// DefaultMaxRetries is the retry count applied when WithMaxRetries is
	// not used. MaxRetries is bounded to [0, MaxRetries].
	DefaultMaxRetries = api.DefaultMaxRetries
	// MaxRetries is the largest accepted retry count.
	MaxRetries = api.MaxAllowedRetries
)

// Logger receives debug records when the debug flag is enabled.
type Logger = api.Logger

// LoggerFunc adapts a plain function to the Logger interface.
type LoggerFunc = api.LoggerFunc

// clientConfig holds configuration for the client. It is fixed at
// construction; nothing mutates it afterwards.
type clientConfig struct {
	baseURL    string
	timeout    time.Duration
	maxRetries int
	debug      bool
	logger     Logger
	httpClient *http.Client
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL overrides the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithTimeout sets the per-attempt request timeout.
// Default: 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithMaxRetries sets the number of retries for transient failures.
// Must be between 0 and 5. Default: 2.
func WithMaxRetries(count int) Option {
	return func(c *clientConfig) {
		c.maxRetries = count
	}
}

// WithDebug enables debug logging of every request attempt.
func WithDebug(debug bool) Option {
	return func(c *clientConfig) {
		c.debug = debug
	}
}

// WithLogger sets the sink for debug records.
func WithLogger(logger Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client, e.g. for proxy or transport
// tuning. Its timeout is left untouched unless WithTimeout is also given.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}
