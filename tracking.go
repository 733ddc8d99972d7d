package sendpigeon

import (
	"context"
	"net/http"

	"github.com/sendpigeon/sendpigeon-go/internal/api"
)

// TrackingDefaults are the organization-wide open/click tracking settings.
// Per-email TrackingOptions override them for a single send.
type TrackingDefaults struct {
	OpenTrackingEnabled  bool `json:"openTrackingEnabled"`
	ClickTrackingEnabled bool `json:"clickTrackingEnabled"`
	// PrivacyMode stops the service from storing IPs and user agents.
	PrivacyMode         bool `json:"privacyMode"`
	WebhookOnEveryOpen  bool `json:"webhookOnEveryOpen"`
	WebhookOnEveryClick bool `json:"webhookOnEveryClick"`
}

// UpdateTrackingDefaultsParams update the organization tracking defaults.
// Nil fields are left unchanged.
type UpdateTrackingDefaultsParams struct {
	OpenTrackingEnabled  *bool `json:"openTrackingEnabled,omitempty"`
	ClickTrackingEnabled *bool `json:"clickTrackingEnabled,omitempty"`
	PrivacyMode          *bool `json:"privacyMode,omitempty"`
	WebhookOnEveryOpen   *bool `json:"webhookOnEveryOpen,omitempty"`
	WebhookOnEveryClick  *bool `json:"webhookOnEveryClick,omitempty"`
}

// TrackingService manages organization tracking defaults.
type TrackingService struct {
	client *api.Client
}

// GetDefaults returns the current tracking defaults.
func (s *TrackingService) GetDefaults(ctx context.Context) Result[*TrackingDefaults] {
	return execute[TrackingDefaults](ctx, s.client, http.MethodGet, "/v1/tracking/defaults", nil, nil)
}

// UpdateDefaults updates the tracking defaults.
func (s *TrackingService) UpdateDefaults(ctx context.Context, params *UpdateTrackingDefaultsParams) Result[*TrackingDefaults] {
	return execute[TrackingDefaults](ctx, s.client, http.MethodPatch, "/v1/tracking/defaults", params, nil)
}
