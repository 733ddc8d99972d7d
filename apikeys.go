package sendpigeon

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sendpigeon/sendpigeon-go/internal/api"
)

// APIKeyMode distinguishes live keys from test keys.
type APIKeyMode string

const (
	APIKeyModeLive APIKeyMode = "live"
	APIKeyModeTest APIKeyMode = "test"
)

// APIKeyPermission scopes what a key may do.
type APIKeyPermission string

const (
	APIKeyPermissionFullAccess APIKeyPermission = "full_access"
	APIKeyPermissionSending    APIKeyPermission = "sending"
)

// APIKey is an API key record. The raw key material is returned only by
// Create; on every other operation Key is empty, which is normal and not an
// error.
type APIKey struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	KeyPrefix  string           `json:"keyPrefix"`
	Mode       APIKeyMode       `json:"mode"`
	Permission APIKeyPermission `json:"permission"`
	CreatedAt  string           `json:"createdAt"`
	LastUsedAt string           `json:"lastUsedAt,omitempty"`
	ExpiresAt  string           `json:"expiresAt,omitempty"`
	Domain     map[string]any   `json:"domain,omitempty"`
	// Key is the secret key material, present only in the Create response.
	Key string `json:"key,omitempty"`
}

// CreateAPIKeyParams are the inputs for creating an API key. Mode defaults
// to live and Permission to full_access when unset.
type CreateAPIKeyParams struct {
	Name       string           `json:"name"`
	Mode       APIKeyMode       `json:"mode,omitempty"`
	Permission APIKeyPermission `json:"permission,omitempty"`
	DomainID   string           `json:"domainId,omitempty"`
	ExpiresAt  string           `json:"expiresAt,omitempty"`
}

// APIKeysService manages API keys.
type APIKeysService struct {
	client *api.Client
}

// List returns all API keys, without their secret material.
func (s *APIKeysService) List(ctx context.Context) Result[[]APIKey] {
	return executeSlice[APIKey](ctx, s.client, http.MethodGet, "/v1/api-keys", nil)
}

// Create creates an API key. The response is the only place the raw key is
// ever returned; store it immediately.
func (s *APIKeysService) Create(ctx context.Context, params *CreateAPIKeyParams) Result[*APIKey] {
	if params == nil || params.Name == "" {
		return Fail[*APIKey](validationError("API key name is required"))
	}
	body := *params
	if body.Mode == "" {
		body.Mode = APIKeyModeLive
	}
	if body.Permission == "" {
		body.Permission = APIKeyPermissionFullAccess
	}
	return execute[APIKey](ctx, s.client, http.MethodPost, "/v1/api-keys", body, nil)
}

// Delete revokes an API key.
func (s *APIKeysService) Delete(ctx context.Context, id string) Result[Empty] {
	return executeEmpty(ctx, s.client, http.MethodDelete, "/v1/api-keys/"+url.PathEscape(id), nil)
}
