package sendpigeon

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sendpigeon/sendpigeon-go/internal/api"
)

// ContactStatus is the subscription state of a contact.
type ContactStatus string

const (
	ContactStatusActive       ContactStatus = "active"
	ContactStatusUnsubscribed ContactStatus = "unsubscribed"
	ContactStatusBounced      ContactStatus = "bounced"
	ContactStatusComplained   ContactStatus = "complained"
)

// Contact is an audience member.
type Contact struct {
	ID             string         `json:"id"`
	Email          string         `json:"email"`
	Fields         map[string]any `json:"fields,omitempty"`
	Tags           []string       `json:"tags,omitempty"`
	Status         ContactStatus  `json:"status"`
	UnsubscribedAt string         `json:"unsubscribedAt,omitempty"`
	BouncedAt      string         `json:"bouncedAt,omitempty"`
	ComplainedAt   string         `json:"complainedAt,omitempty"`
	CreatedAt      string         `json:"createdAt"`
	UpdatedAt      string         `json:"updatedAt"`
}

// ContactListResponse is a page of contacts.
type ContactListResponse struct {
	Data  []Contact `json:"data"`
	Total int       `json:"total"`
}

// AudienceStats summarize the audience by status.
type AudienceStats struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	Unsubscribed int `json:"unsubscribed"`
	Bounced      int `json:"bounced"`
	Complained   int `json:"complained"`
}

// ListContactsParams filter and page the contact list. Zero values use the
// service defaults (limit 50, offset 0, no filters).
type ListContactsParams struct {
	Status ContactStatus
	Tag    string
	Search string
	Limit  int
	Offset int
}

// CreateContactParams are the inputs for creating a contact.
type CreateContactParams struct {
	Email  string         `json:"email"`
	Fields map[string]any `json:"fields,omitempty"`
	Tags   []string       `json:"tags,omitempty"`
}

// UpdateContactParams update a contact. Nil fields are left unchanged.
type UpdateContactParams struct {
	Fields map[string]any `json:"fields,omitempty"`
	Tags   []string       `json:"tags,omitempty"`
}

// BatchContactFailure records one contact rejected during a batch upsert.
type BatchContactFailure struct {
	Email string `json:"email"`
	Error string `json:"error"`
}

// BatchContactResult summarizes a batch contact upsert.
type BatchContactResult struct {
	Created int                   `json:"created"`
	Updated int                   `json:"updated"`
	Failed  []BatchContactFailure `json:"failed,omitempty"`
}

// ContactsService manages the contact audience.
type ContactsService struct {
	client *api.Client
}

// List returns a page of contacts matching the filters.
func (s *ContactsService) List(ctx context.Context, params *ListContactsParams) Result[*ContactListResponse] {
	q := url.Values{}
	if params != nil {
		if params.Status != "" {
			q.Set("status", string(params.Status))
		}
		if params.Tag != "" {
			q.Set("tag", params.Tag)
		}
		if params.Search != "" {
			q.Set("search", params.Search)
		}
		if params.Limit > 0 {
			q.Set("limit", strconv.Itoa(params.Limit))
		}
		if params.Offset > 0 {
			q.Set("offset", strconv.Itoa(params.Offset))
		}
	}
	path := "/v1/contacts"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	return execute[ContactListResponse](ctx, s.client, http.MethodGet, path, nil, nil)
}

// Stats returns audience counts by status.
func (s *ContactsService) Stats(ctx context.Context) Result[*AudienceStats] {
	return execute[AudienceStats](ctx, s.client, http.MethodGet, "/v1/contacts/stats", nil, nil)
}

// Tags returns the distinct tags in use across the audience.
func (s *ContactsService) Tags(ctx context.Context) Result[[]string] {
	var out struct {
		Data []string `json:"data"`
	}
	if err := s.client.Do(ctx, http.MethodGet, "/v1/contacts/tags", nil, &out, nil); err != nil {
		return Fail[[]string](wrapError(err))
	}
	return Ok(out.Data)
}

// Create creates a contact.
func (s *ContactsService) Create(ctx context.Context, params *CreateContactParams) Result[*Contact] {
	if params == nil || params.Email == "" {
		return Fail[*Contact](validationError("contact email is required"))
	}
	return execute[Contact](ctx, s.client, http.MethodPost, "/v1/contacts", params, nil)
}

// Batch creates or updates contacts in one request, keyed by email.
func (s *ContactsService) Batch(ctx context.Context, contacts []*CreateContactParams) Result[*BatchContactResult] {
	if len(contacts) == 0 {
		return Fail[*BatchContactResult](validationError("at least one contact is required"))
	}
	body := map[string]any{"contacts": contacts}
	return execute[BatchContactResult](ctx, s.client, http.MethodPost, "/v1/contacts/batch", body, nil)
}

// Get returns a contact by ID.
func (s *ContactsService) Get(ctx context.Context, id string) Result[*Contact] {
	return execute[Contact](ctx, s.client, http.MethodGet, "/v1/contacts/"+url.PathEscape(id), nil, nil)
}

// Update updates a contact's fields or tags.
func (s *ContactsService) Update(ctx context.Context, id string, params *UpdateContactParams) Result[*Contact] {
	return execute[Contact](ctx, s.client, http.MethodPatch, "/v1/contacts/"+url.PathEscape(id), params, nil)
}

// Delete removes a contact.
func (s *ContactsService) Delete(ctx context.Context, id string) Result[Empty] {
	return executeEmpty(ctx, s.client, http.MethodDelete, "/v1/contacts/"+url.PathEscape(id), nil)
}

// Unsubscribe marks a contact as unsubscribed.
func (s *ContactsService) Unsubscribe(ctx context.Context, id string) Result[*Contact] {
	return execute[Contact](ctx, s.client, http.MethodPost, "/v1/contacts/"+url.PathEscape(id)+"/unsubscribe", nil, nil)
}

// Resubscribe reactivates an unsubscribed contact.
func (s *ContactsService) Resubscribe(ctx context.Context, id string) Result[*Contact] {
	return execute[Contact](ctx, s.client, http.MethodPost, "/v1/contacts/"+url.PathEscape(id)+"/resubscribe", nil, nil)
}
