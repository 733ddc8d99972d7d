package sendpigeon

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sendpigeon/sendpigeon-go/internal/api"
)

// Suppression is a recipient address the service will not send to, usually
// added after a bounce or complaint.
type Suppression struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Reason        string `json:"reason"`
	CreatedAt     string `json:"createdAt"`
	SourceEmailID string `json:"sourceEmailId,omitempty"`
}

// SuppressionListResponse is a page of suppressions.
type SuppressionListResponse struct {
	Data  []Suppression `json:"data"`
	Total int           `json:"total"`
}

// ListSuppressionsParams page through the suppression list. Zero values use
// the service defaults (limit 50, offset 0).
type ListSuppressionsParams struct {
	Limit  int
	Offset int
}

// SuppressionsService manages the do-not-send list.
type SuppressionsService struct {
	client *api.Client
}

// List returns a page of suppressed addresses.
func (s *SuppressionsService) List(ctx context.Context, params *ListSuppressionsParams) Result[*SuppressionListResponse] {
	q := url.Values{}
	if params != nil {
		if params.Limit > 0 {
			q.Set("limit", strconv.Itoa(params.Limit))
		}
		if params.Offset > 0 {
			q.Set("offset", strconv.Itoa(params.Offset))
		}
	}
	path := "/v1/suppressions"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	return execute[SuppressionListResponse](ctx, s.client, http.MethodGet, path, nil, nil)
}

// Delete removes an address from the suppression list, allowing sends to it
// again.
func (s *SuppressionsService) Delete(ctx context.Context, email string) Result[Empty] {
	if email == "" {
		return Fail[Empty](validationError("email address is required"))
	}
	return executeEmpty(ctx, s.client, http.MethodDelete, "/v1/suppressions/"+url.PathEscape(email), nil)
}
