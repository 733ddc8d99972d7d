package sendpigeon

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sendpigeon/sendpigeon-go/internal/api"
)

// EmailStatus is the lifecycle state of a sent email.
type EmailStatus string

const (
	EmailStatusScheduled  EmailStatus = "scheduled"
	EmailStatusCancelled  EmailStatus = "cancelled"
	EmailStatusPending    EmailStatus = "pending"
	EmailStatusSent       EmailStatus = "sent"
	EmailStatusDelivered  EmailStatus = "delivered"
	EmailStatusBounced    EmailStatus = "bounced"
	EmailStatusComplained EmailStatus = "complained"
	EmailStatusFailed     EmailStatus = "failed"
)

// TrackingOptions are per-email open/click tracking toggles. Nil fields
// fall back to the organization defaults (see TrackingService).
type TrackingOptions struct {
	Opens  *bool `json:"opens,omitempty"`
	Clicks *bool `json:"clicks,omitempty"`
}

// Bool returns a pointer to b, for TrackingOptions and update params.
func Bool(b bool) *bool { return &b }

// Attachment is a file attached to an outgoing email. Provide either
// Content (base64) or Path (URL the service fetches).
type Attachment struct {
	Filename    string `json:"filename"`
	Content     string `json:"content,omitempty"`
	Path        string `json:"path,omitempty"`
	ContentType string `json:"contentType,omitempty"`
}

// AttachmentMeta describes a stored attachment on a sent email.
type AttachmentMeta struct {
	Filename    string `json:"filename"`
	Size        int    `json:"size"`
	ContentType string `json:"contentType"`
}

// SendEmailParams are the inputs for sending one email. To is required;
// at least one of HTML, Text, or TemplateID must be set. Absent optional
// fields are omitted from the wire payload entirely.
type SendEmailParams struct {
	// To lists recipient addresses.
	To []string
	// From is the sender address; defaults to the account's verified domain.
	From string
	// Subject is required unless TemplateID is set.
	Subject string
	// HTML is the HTML body.
	HTML string
	// Text is the plain-text body.
	Text string
	CC   []string
	BCC  []string
	// ReplyTo overrides the reply address.
	ReplyTo string
	// TemplateID selects a stored template instead of Subject/HTML/Text.
	TemplateID string
	// Variables substitute into the template; only meaningful with TemplateID.
	Variables   map[string]string
	Attachments []*Attachment
	// Tags label the email for filtering (max 5).
	Tags []string
	// Metadata is an opaque key-value map echoed back in webhooks.
	Metadata map[string]string
	// Headers sets custom message headers.
	Headers map[string]string
	// ScheduledAt defers the send; ISO-8601, max 30 days ahead.
	ScheduledAt string
	// IdempotencyKey dedupes repeated sends. See NewIdempotencyKey.
	// Sent as the Idempotency-Key header, or in the body for batch items.
	IdempotencyKey string
	// Tracking overrides open/click tracking for this email.
	Tracking *TrackingOptions
}

// sendEmailBody is the wire shape of a send request. Field names are the
// API contract; omitempty keeps absent options out of the payload.
type sendEmailBody struct {
	To             []string          `json:"to"`
	From           string            `json:"from,omitempty"`
	Subject        string            `json:"subject,omitempty"`
	HTML           string            `json:"html,omitempty"`
	Text           string            `json:"text,omitempty"`
	CC             []string          `json:"cc,omitempty"`
	BCC            []string          `json:"bcc,omitempty"`
	ReplyTo        string            `json:"replyTo,omitempty"`
	TemplateID     string            `json:"templateId,omitempty"`
	Variables      map[string]string `json:"variables,omitempty"`
	Attachments    []*Attachment     `json:"attachments,omitempty"`
	Tags           []string          `json:"tags,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	Headers        map[string]string `json:"headers,omitempty"`
	ScheduledAt    string            `json:"scheduled_at,omitempty"`
	Tracking       *TrackingOptions  `json:"tracking,omitempty"`
	IdempotencyKey string            `json:"idempotencyKey,omitempty"`
}

// SendEmailResponse is the result of a send.
type SendEmailResponse struct {
	ID          string      `json:"id"`
	Status      EmailStatus `json:"status"`
	ScheduledAt string      `json:"scheduled_at,omitempty"`
	// Suppressed lists recipients skipped because they are on the
	// suppression list.
	Suppressed []string `json:"suppressed,omitempty"`
}

// BatchEmailResult is the outcome for a single email in a batch. Results
// are positionally correlated with the input: Index i is input i.
type BatchEmailResult struct {
	Index      int            `json:"index"`
	Status     string         `json:"status"` // "sent" or "error"
	ID         string         `json:"id,omitempty"`
	Suppressed []string       `json:"suppressed,omitempty"`
	Error      map[string]any `json:"error,omitempty"`
}

// BatchSummary aggregates a batch outcome.
type BatchSummary struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

// SendBatchResponse is the result of a batch send.
type SendBatchResponse struct {
	Data    []BatchEmailResult `json:"data"`
	Summary BatchSummary       `json:"summary"`
}

// EmailDetail is the stored record of a sent email.
type EmailDetail struct {
	ID            string            `json:"id"`
	FromAddress   string            `json:"fromAddress"`
	ToAddress     string            `json:"toAddress"`
	CCAddress     string            `json:"ccAddress,omitempty"`
	BCCAddress    string            `json:"bccAddress,omitempty"`
	Subject       string            `json:"subject"`
	Status        EmailStatus       `json:"status"`
	Tags          []string          `json:"tags,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	CreatedAt     string            `json:"createdAt"`
	SentAt        string            `json:"sentAt,omitempty"`
	DeliveredAt   string            `json:"deliveredAt,omitempty"`
	BouncedAt     string            `json:"bouncedAt,omitempty"`
	ComplainedAt  string            `json:"complainedAt,omitempty"`
	BounceType    string            `json:"bounceType,omitempty"`
	ComplaintType string            `json:"complaintType,omitempty"`
	Attachments   []AttachmentMeta  `json:"attachments,omitempty"`
	HasBody       bool              `json:"hasBody"`
}

// EmailsService sends transactional email and manages scheduled sends.
type EmailsService struct {
	client *api.Client
}

// Send sends one email. Validation failures (no recipient; none of HTML,
// Text, TemplateID set) are returned as validation errors without touching
// the network.
func (s *EmailsService) Send(ctx context.Context, params *SendEmailParams) Result[*SendEmailResponse] {
	if err := validateSend(params); err != nil {
		return Fail[*SendEmailResponse](err)
	}

	body := buildSendBody(params, false)
	var header http.Header
	if params.IdempotencyKey != "" {
		header = http.Header{"Idempotency-Key": []string{params.IdempotencyKey}}
	}

	return execute[SendEmailResponse](ctx, s.client, http.MethodPost, "/v1/emails", body, header)
}

// SendBatch sends up to 100 emails in one request. The batch is a single
// HTTP call: individual items are not validated or retried client-side, and
// the response reports each item's outcome in input order plus a summary.
func (s *EmailsService) SendBatch(ctx context.Context, emails []*SendEmailParams) Result[*SendBatchResponse] {
	if len(emails) == 0 {
		return Fail[*SendBatchResponse](validationError("at least one email is required"))
	}

	items := make([]*sendEmailBody, len(emails))
	for i, e := range emails {
		items[i] = buildSendBody(e, true)
	}
	body := map[string]any{"emails": items}

	return execute[SendBatchResponse](ctx, s.client, http.MethodPost, "/v1/emails/batch", body, nil)
}

// Get returns the stored record of a sent email.
func (s *EmailsService) Get(ctx context.Context, id string) Result[*EmailDetail] {
	return execute[EmailDetail](ctx, s.client, http.MethodGet, "/v1/emails/"+url.PathEscape(id), nil, nil)
}

// Cancel cancels a scheduled email that has not been sent yet.
func (s *EmailsService) Cancel(ctx context.Context, id string) Result[Empty] {
	return executeEmpty(ctx, s.client, http.MethodDelete, "/v1/emails/"+url.PathEscape(id)+"/schedule", nil)
}

func validateSend(params *SendEmailParams) *Error {
	if params == nil {
		return validationError("send params are required")
	}
	if len(params.To) == 0 {
		return validationError("at least one recipient is required")
	}
	for _, addr := range params.To {
		if addr == "" {
			return validationError("recipient address cannot be empty")
		}
	}
	if params.HTML == "" && params.Text == "" && params.TemplateID == "" {
		return validationError("one of html, text, or templateId is required")
	}
	return nil
}

// buildSendBody maps params onto the wire shape. For single sends the
// idempotency key travels as a header, for batch items it is part of the
// body.
func buildSendBody(params *SendEmailParams, batch bool) *sendEmailBody {
	body := &sendEmailBody{
		To:          params.To,
		From:        params.From,
		Subject:     params.Subject,
		HTML:        params.HTML,
		Text:        params.Text,
		CC:          params.CC,
		BCC:         params.BCC,
		ReplyTo:     params.ReplyTo,
		TemplateID:  params.TemplateID,
		Variables:   params.Variables,
		Attachments: params.Attachments,
		Tags:        params.Tags,
		Metadata:    params.Metadata,
		Headers:     params.Headers,
		ScheduledAt: params.ScheduledAt,
		Tracking:    params.Tracking,
	}
	if batch {
		body.IdempotencyKey = params.IdempotencyKey
	}
	return body
}
