package sendpigeon

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sendpigeon/sendpigeon-go/internal/api"
)

// Template is a reusable email template with {{variable}} placeholders.
type Template struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Subject   string         `json:"subject"`
	HTML      string         `json:"html,omitempty"`
	Text      string         `json:"text,omitempty"`
	Variables []string       `json:"variables,omitempty"`
	Domain    map[string]any `json:"domain,omitempty"`
	CreatedAt string         `json:"createdAt"`
	UpdatedAt string         `json:"updatedAt"`
}

// CreateTemplateParams are the inputs for creating a template.
type CreateTemplateParams struct {
	Name     string `json:"name"`
	Subject  string `json:"subject"`
	HTML     string `json:"html,omitempty"`
	Text     string `json:"text,omitempty"`
	DomainID string `json:"domainId,omitempty"`
}

// UpdateTemplateParams are the inputs for updating a template. Nil fields
// are left unchanged.
type UpdateTemplateParams struct {
	Name    *string `json:"name,omitempty"`
	Subject *string `json:"subject,omitempty"`
	HTML    *string `json:"html,omitempty"`
	Text    *string `json:"text,omitempty"`
}

// String returns a pointer to s, for update params.
func String(s string) *string { return &s }

// TemplatesService manages email templates.
type TemplatesService struct {
	client *api.Client
}

// List returns all templates.
func (s *TemplatesService) List(ctx context.Context) Result[[]Template] {
	return executeSlice[Template](ctx, s.client, http.MethodGet, "/v1/templates", nil)
}

// Get returns a template by ID.
func (s *TemplatesService) Get(ctx context.Context, id string) Result[*Template] {
	return execute[Template](ctx, s.client, http.MethodGet, "/v1/templates/"+url.PathEscape(id), nil, nil)
}

// Create creates a template.
func (s *TemplatesService) Create(ctx context.Context, params *CreateTemplateParams) Result[*Template] {
	if params == nil || params.Name == "" || params.Subject == "" {
		return Fail[*Template](validationError("template name and subject are required"))
	}
	return execute[Template](ctx, s.client, http.MethodPost, "/v1/templates", params, nil)
}

// Update updates a template.
func (s *TemplatesService) Update(ctx context.Context, id string, params *UpdateTemplateParams) Result[*Template] {
	return execute[Template](ctx, s.client, http.MethodPatch, "/v1/templates/"+url.PathEscape(id), params, nil)
}

// Delete deletes a template.
func (s *TemplatesService) Delete(ctx context.Context, id string) Result[Empty] {
	return executeEmpty(ctx, s.client, http.MethodDelete, "/v1/templates/"+url.PathEscape(id), nil)
}
