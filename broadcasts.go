package sendpigeon

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sendpigeon/sendpigeon-go/internal/api"
)

// BroadcastStatus is the lifecycle state of a broadcast.
type BroadcastStatus string

const (
	BroadcastStatusDraft     BroadcastStatus = "draft"
	BroadcastStatusScheduled BroadcastStatus = "scheduled"
	BroadcastStatusSending   BroadcastStatus = "sending"
	BroadcastStatusSent      BroadcastStatus = "sent"
	BroadcastStatusCancelled BroadcastStatus = "cancelled"
)

// RecipientStatus is the per-recipient delivery state within a broadcast.
type RecipientStatus string

const (
	RecipientStatusPending      RecipientStatus = "pending"
	RecipientStatusSent         RecipientStatus = "sent"
	RecipientStatusDelivered    RecipientStatus = "delivered"
	RecipientStatusOpened       RecipientStatus = "opened"
	RecipientStatusClicked      RecipientStatus = "clicked"
	RecipientStatusBounced      RecipientStatus = "bounced"
	RecipientStatusComplained   RecipientStatus = "complained"
	RecipientStatusUnsubscribed RecipientStatus = "unsubscribed"
)

// BroadcastStats are aggregate delivery counters for a broadcast.
type BroadcastStats struct {
	TotalRecipients   int `json:"totalRecipients"`
	SentCount         int `json:"sentCount"`
	DeliveredCount    int `json:"deliveredCount"`
	OpenedCount       int `json:"openedCount"`
	ClickedCount      int `json:"clickedCount"`
	BouncedCount      int `json:"bouncedCount"`
	ComplainedCount   int `json:"complainedCount"`
	UnsubscribedCount int `json:"unsubscribedCount"`
}

// Broadcast is a send to a segmented contact audience.
type Broadcast struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Subject         string          `json:"subject"`
	PreviewText     string          `json:"previewText,omitempty"`
	HTMLContent     string          `json:"htmlContent,omitempty"`
	Content         map[string]any  `json:"content,omitempty"`
	TextContent     string          `json:"textContent,omitempty"`
	FromName        string          `json:"fromName"`
	FromEmail       string          `json:"fromEmail"`
	ReplyTo         string          `json:"replyTo,omitempty"`
	PhysicalAddress string          `json:"physicalAddress,omitempty"`
	Tags            []string        `json:"tags,omitempty"`
	Status          BroadcastStatus `json:"status"`
	ScheduledAt     string          `json:"scheduledAt,omitempty"`
	SentAt          string          `json:"sentAt,omitempty"`
	CompletedAt     string          `json:"completedAt,omitempty"`
	Stats           BroadcastStats  `json:"stats"`
	CreatedAt       string          `json:"createdAt"`
	UpdatedAt       string          `json:"updatedAt"`
}

// BroadcastListResponse is a page of broadcasts.
type BroadcastListResponse struct {
	Data  []Broadcast `json:"data"`
	Total int         `json:"total"`
}

// BroadcastRecipient records one contact's delivery state in a broadcast.
type BroadcastRecipient struct {
	ID             string          `json:"id"`
	ContactID      string          `json:"contactId"`
	Email          string          `json:"email"`
	Status         RecipientStatus `json:"status"`
	SentAt         string          `json:"sentAt,omitempty"`
	DeliveredAt    string          `json:"deliveredAt,omitempty"`
	OpenedAt       string          `json:"openedAt,omitempty"`
	ClickedAt      string          `json:"clickedAt,omitempty"`
	BouncedAt      string          `json:"bouncedAt,omitempty"`
	ComplainedAt   string          `json:"complainedAt,omitempty"`
	UnsubscribedAt string          `json:"unsubscribedAt,omitempty"`
	CreatedAt      string          `json:"createdAt"`
}

// RecipientListResponse is a page of broadcast recipients.
type RecipientListResponse struct {
	Data  []BroadcastRecipient `json:"data"`
	Total int                  `json:"total"`
}

// CreateBroadcastParams are the inputs for creating a broadcast.
type CreateBroadcastParams struct {
	Name        string `json:"name"`
	Subject     string `json:"subject"`
	FromName    string `json:"fromName"`
	FromEmail   string `json:"fromEmail"`
	PreviewText string `json:"previewText,omitempty"`
	HTMLContent string `json:"htmlContent,omitempty"`
	// Content is editor JSON, opaque to the client.
	Content     map[string]any `json:"content,omitempty"`
	TextContent string         `json:"textContent,omitempty"`
	ReplyTo     string         `json:"replyTo,omitempty"`
	// Tags select the target contacts.
	Tags []string `json:"tags,omitempty"`
	// BroadcastTemplateID copies content from an existing template.
	BroadcastTemplateID string `json:"broadcastTemplateId,omitempty"`
}

// UpdateBroadcastParams update a draft broadcast. Nil fields are left
// unchanged.
type UpdateBroadcastParams struct {
	Name        *string        `json:"name,omitempty"`
	Subject     *string        `json:"subject,omitempty"`
	FromName    *string        `json:"fromName,omitempty"`
	FromEmail   *string        `json:"fromEmail,omitempty"`
	PreviewText *string        `json:"previewText,omitempty"`
	HTMLContent *string        `json:"htmlContent,omitempty"`
	Content     map[string]any `json:"content,omitempty"`
	TextContent *string        `json:"textContent,omitempty"`
	ReplyTo     *string        `json:"replyTo,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
}

// BroadcastTargeting narrows the audience of a send. IncludeTags and
// ExcludeTags are independent set filters: contacts must carry at least one
// include tag (when set) and none of the exclude tags. They are passed
// through to the service unvalidated.
type BroadcastTargeting struct {
	IncludeTags []string `json:"includeTags,omitempty"`
	ExcludeTags []string `json:"excludeTags,omitempty"`
}

// ListBroadcastsParams filter and page the broadcast list.
type ListBroadcastsParams struct {
	Status BroadcastStatus
	Limit  int
	Offset int
}

// ListRecipientsParams filter and page a broadcast's recipient list.
type ListRecipientsParams struct {
	Status RecipientStatus
	Limit  int
	Offset int
}

// TestBroadcastResponse is the outcome of a test send.
type TestBroadcastResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// OpensOverTime is one hour's opens in broadcast analytics.
type OpensOverTime struct {
	Hour  string `json:"hour"`
	Opens int    `json:"opens"`
}

// LinkPerformance is per-link click analytics.
type LinkPerformance struct {
	URL          string `json:"url"`
	Clicks       int    `json:"clicks"`
	UniqueClicks int    `json:"uniqueClicks"`
}

// BroadcastAnalytics are engagement analytics for a sent broadcast.
type BroadcastAnalytics struct {
	OpensOverTime   []OpensOverTime   `json:"opensOverTime,omitempty"`
	LinkPerformance []LinkPerformance `json:"linkPerformance,omitempty"`
}

// BroadcastsService manages audience-wide sends.
type BroadcastsService struct {
	client *api.Client
}

// List returns a page of broadcasts.
func (s *BroadcastsService) List(ctx context.Context, params *ListBroadcastsParams) Result[*BroadcastListResponse] {
	q := url.Values{}
	if params != nil {
		if params.Status != "" {
			q.Set("status", string(params.Status))
		}
		if params.Limit > 0 {
			q.Set("limit", strconv.Itoa(params.Limit))
		}
		if params.Offset > 0 {
			q.Set("offset", strconv.Itoa(params.Offset))
		}
	}
	path := "/v1/broadcasts"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	return execute[BroadcastListResponse](ctx, s.client, http.MethodGet, path, nil, nil)
}

// Create creates a draft broadcast.
func (s *BroadcastsService) Create(ctx context.Context, params *CreateBroadcastParams) Result[*Broadcast] {
	if params == nil || params.Name == "" || params.Subject == "" || params.FromName == "" || params.FromEmail == "" {
		return Fail[*Broadcast](validationError("broadcast name, subject, fromName, and fromEmail are required"))
	}
	return execute[Broadcast](ctx, s.client, http.MethodPost, "/v1/broadcasts", params, nil)
}

// Get returns a broadcast by ID.
func (s *BroadcastsService) Get(ctx context.Context, id string) Result[*Broadcast] {
	return execute[Broadcast](ctx, s.client, http.MethodGet, "/v1/broadcasts/"+url.PathEscape(id), nil, nil)
}

// Update updates a draft broadcast.
func (s *BroadcastsService) Update(ctx context.Context, id string, params *UpdateBroadcastParams) Result[*Broadcast] {
	return execute[Broadcast](ctx, s.client, http.MethodPatch, "/v1/broadcasts/"+url.PathEscape(id), params, nil)
}

// Delete deletes a broadcast. Only drafts can be deleted.
func (s *BroadcastsService) Delete(ctx context.Context, id string) Result[Empty] {
	return executeEmpty(ctx, s.client, http.MethodDelete, "/v1/broadcasts/"+url.PathEscape(id), nil)
}

// Duplicate copies a broadcast into a new draft.
func (s *BroadcastsService) Duplicate(ctx context.Context, id string) Result[*Broadcast] {
	return execute[Broadcast](ctx, s.client, http.MethodPost, "/v1/broadcasts/"+url.PathEscape(id)+"/duplicate", nil, nil)
}

// Recipients returns a page of a broadcast's recipients.
func (s *BroadcastsService) Recipients(ctx context.Context, id string, params *ListRecipientsParams) Result[*RecipientListResponse] {
	q := url.Values{}
	if params != nil {
		if params.Status != "" {
			q.Set("status", string(params.Status))
		}
		if params.Limit > 0 {
			q.Set("limit", strconv.Itoa(params.Limit))
		}
		if params.Offset > 0 {
			q.Set("offset", strconv.Itoa(params.Offset))
		}
	}
	path := "/v1/broadcasts/" + url.PathEscape(id) + "/recipients"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	return execute[RecipientListResponse](ctx, s.client, http.MethodGet, path, nil, nil)
}

// Send starts sending a broadcast immediately. A nil targeting sends to all
// contacts carrying the broadcast's tags.
func (s *BroadcastsService) Send(ctx context.Context, id string, targeting *BroadcastTargeting) Result[*Broadcast] {
	body := targetingBody(targeting, "")
	return execute[Broadcast](ctx, s.client, http.MethodPost, "/v1/broadcasts/"+url.PathEscape(id)+"/send", body, nil)
}

// Schedule schedules a broadcast for a future send.
func (s *BroadcastsService) Schedule(ctx context.Context, id string, scheduledAt string, targeting *BroadcastTargeting) Result[*Broadcast] {
	if scheduledAt == "" {
		return Fail[*Broadcast](validationError("scheduledAt is required"))
	}
	body := targetingBody(targeting, scheduledAt)
	return execute[Broadcast](ctx, s.client, http.MethodPost, "/v1/broadcasts/"+url.PathEscape(id)+"/schedule", body, nil)
}

// Cancel cancels a scheduled broadcast.
func (s *BroadcastsService) Cancel(ctx context.Context, id string) Result[*Broadcast] {
	return execute[Broadcast](ctx, s.client, http.MethodPost, "/v1/broadcasts/"+url.PathEscape(id)+"/cancel", nil, nil)
}

// Test sends the broadcast content to a single address without touching the
// audience.
func (s *BroadcastsService) Test(ctx context.Context, id string, email string) Result[*TestBroadcastResponse] {
	if email == "" {
		return Fail[*TestBroadcastResponse](validationError("test email address is required"))
	}
	body := map[string]string{"email": email}
	return execute[TestBroadcastResponse](ctx, s.client, http.MethodPost, "/v1/broadcasts/"+url.PathEscape(id)+"/test", body, nil)
}

// Analytics returns engagement analytics for a sent broadcast.
func (s *BroadcastsService) Analytics(ctx context.Context, id string) Result[*BroadcastAnalytics] {
	return execute[BroadcastAnalytics](ctx, s.client, http.MethodGet, "/v1/broadcasts/"+url.PathEscape(id)+"/analytics", nil, nil)
}

func targetingBody(targeting *BroadcastTargeting, scheduledAt string) map[string]any {
	body := map[string]any{}
	if scheduledAt != "" {
		body["scheduledAt"] = scheduledAt
	}
	if targeting != nil {
		if len(targeting.IncludeTags) > 0 {
			body["includeTags"] = targeting.IncludeTags
		}
		if len(targeting.ExcludeTags) > 0 {
			body["excludeTags"] = targeting.ExcludeTags
		}
	}
	return body
}
