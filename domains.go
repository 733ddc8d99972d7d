package sendpigeon

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sendpigeon/sendpigeon-go/internal/api"
)

// DomainStatus is the verification state of a sending domain.
type DomainStatus string

const (
	DomainStatusPending          DomainStatus = "pending"
	DomainStatusVerified         DomainStatus = "verified"
	DomainStatusTemporaryFailure DomainStatus = "temporary_failure"
	DomainStatusFailed           DomainStatus = "failed"
)

// DNSRecord is a record the caller must provision with their DNS provider
// to verify a domain.
type DNSRecord struct {
	Type     string `json:"type"`
	Name     string `json:"name"`
	Value    string `json:"value"`
	Priority *int   `json:"priority,omitempty"`
}

// Domain is a sending domain.
type Domain struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Status        DomainStatus `json:"status"`
	CreatedAt     string       `json:"createdAt"`
	VerifiedAt    string       `json:"verifiedAt,omitempty"`
	LastCheckedAt string       `json:"lastCheckedAt,omitempty"`
	FailingSince  string       `json:"failingSince,omitempty"`
}

// DomainWithDNSRecords is a domain plus the records needed to verify it.
type DomainWithDNSRecords struct {
	Domain
	DNSRecords []DNSRecord `json:"dnsRecords,omitempty"`
}

// DomainVerificationResult is the current verification state reported by
// the service.
type DomainVerificationResult struct {
	Verified   bool         `json:"verified"`
	Status     DomainStatus `json:"status"`
	DNSRecords []DNSRecord  `json:"dnsRecords,omitempty"`
}

// DomainsService manages sending domains.
type DomainsService struct {
	client *api.Client
}

// List returns all domains.
func (s *DomainsService) List(ctx context.Context) Result[[]Domain] {
	return executeSlice[Domain](ctx, s.client, http.MethodGet, "/v1/domains", nil)
}

// Get returns a domain by ID, including its DNS records.
func (s *DomainsService) Get(ctx context.Context, id string) Result[*DomainWithDNSRecords] {
	return execute[DomainWithDNSRecords](ctx, s.client, http.MethodGet, "/v1/domains/"+url.PathEscape(id), nil, nil)
}

// Create registers a domain. The response carries the DNS records to
// provision out-of-band before calling Verify.
func (s *DomainsService) Create(ctx context.Context, name string) Result[*DomainWithDNSRecords] {
	if name == "" {
		return Fail[*DomainWithDNSRecords](validationError("domain name is required"))
	}
	body := map[string]string{"name": name}
	return execute[DomainWithDNSRecords](ctx, s.client, http.MethodPost, "/v1/domains", body, nil)
}

// Verify re-checks the domain's DNS records and returns the current state.
// The call is idempotent; the client never polls on its own.
func (s *DomainsService) Verify(ctx context.Context, id string) Result[*DomainVerificationResult] {
	return execute[DomainVerificationResult](ctx, s.client, http.MethodPost, "/v1/domains/"+url.PathEscape(id)+"/verify", nil, nil)
}

// Delete removes a domain.
func (s *DomainsService) Delete(ctx context.Context, id string) Result[Empty] {
	return executeEmpty(ctx, s.client, http.MethodDelete, "/v1/domains/"+url.PathEscape(id), nil)
}
