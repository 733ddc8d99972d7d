package sendpigeon

import (
	"context"

	"github.com/google/uuid"

	"github.com/sendpigeon/sendpigeon-go/internal/api"
)

// Client is the SendPigeon API client. Resource services are exposed as
// fields; all of them share one executor and one connection pool.
//
// The Client is safe for concurrent use. Configuration is immutable after
// construction; the only shared mutable state is the transport's connection
// pool, which net/http synchronizes internally.
type Client struct {
	apiClient *api.Client

	// Emails sends transactional email and manages scheduled sends.
	Emails *EmailsService
	// Templates manages reusable email templates.
	Templates *TemplatesService
	// Domains manages sending domains and their DNS verification.
	Domains *DomainsService
	// APIKeys manages API keys.
	APIKeys *APIKeysService
	// Suppressions manages the do-not-send list.
	Suppressions *SuppressionsService
	// Tracking manages organization-wide open/click tracking defaults.
	Tracking *TrackingService
	// Contacts manages the contact audience.
	Contacts *ContactsService
	// Broadcasts manages audience-wide sends.
	Broadcasts *BroadcastsService
}

// New creates a SendPigeon client. The API key is required; an empty key or
// a retry count outside [0, 5] fails with a validation *Error before any
// network call is made.
func New(apiKey string, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		baseURL:    defaultBaseURL,
		maxRetries: DefaultMaxRetries,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(apiKey, cfg)
	if err != nil {
		return nil, wrapError(err)
	}

	c := &Client{apiClient: apiClient}
	c.Emails = &EmailsService{client: apiClient}
	c.Templates = &TemplatesService{client: apiClient}
	c.Domains = &DomainsService{client: apiClient}
	c.APIKeys = &APIKeysService{client: apiClient}
	c.Suppressions = &SuppressionsService{client: apiClient}
	c.Tracking = &TrackingService{client: apiClient}
	c.Contacts = &ContactsService{client: apiClient}
	c.Broadcasts = &BroadcastsService{client: apiClient}

	return c, nil
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(apiKey string, cfg *clientConfig) (*api.Client, error) {
	apiOpts := []api.Option{
		api.WithBaseURL(cfg.baseURL),
		api.WithRetries(cfg.maxRetries),
	}
	if cfg.httpClient != nil {
		apiOpts = append(apiOpts, api.WithHTTPClient(cfg.httpClient))
	}
	if cfg.timeout > 0 {
		apiOpts = append(apiOpts, api.WithTimeout(cfg.timeout))
	}
	if cfg.debug {
		apiOpts = append(apiOpts, api.WithDebug(true))
	}
	if cfg.logger != nil {
		apiOpts = append(apiOpts, api.WithLogger(cfg.logger))
	}

	return api.New(apiKey, apiOpts...)
}

// Send sends a transactional email. Shorthand for c.Emails.Send.
func (c *Client) Send(ctx context.Context, params *SendEmailParams) Result[*SendEmailResponse] {
	return c.Emails.Send(ctx, params)
}

// SendBatch sends up to 100 emails in a single request. Shorthand for
// c.Emails.SendBatch.
func (c *Client) SendBatch(ctx context.Context, emails []*SendEmailParams) Result[*SendBatchResponse] {
	return c.Emails.SendBatch(ctx, emails)
}

// Close releases pooled connections. Pair construction with
// defer client.Close() to release the transport on any exit path.
func (c *Client) Close() error {
	c.apiClient.Close()
	return nil
}

// NewIdempotencyKey returns a random key for SendEmailParams.IdempotencyKey.
// Reusing the same key across retries of your own prevents duplicate sends.
func NewIdempotencyKey() string {
	return uuid.NewString()
}
