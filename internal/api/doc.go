// Package api provides HTTP client functionality for communicating with the
// SendPigeon API. It handles authentication, request/response serialization,
// and automatic retry with exponential backoff for transient failures.
//
// # Retry Behavior
//
// Requests are retried for transport failures, timeouts, HTTP 429, and any
// HTTP status >= 500. Other 4xx responses are client errors and are never
// retried. The delay between attempts follows min(500ms * 2^attempt, 8s)
// with jitter; a Retry-After header (in seconds) overrides the computed
// delay. Total attempts are MaxRetries+1, with MaxRetries bounded to [0, 5].
//
// The request timeout applies per attempt. Retries can therefore multiply
// the total wall-clock time of a call; use a context deadline to bound the
// call as a whole.
//
// # Error Handling
//
// Failures are reported through a small taxonomy:
//
//   - [APIError]: the service returned a non-2xx response. Carries the HTTP
//     status, the service message, and the service's own error code.
//   - [NetworkError]: no usable HTTP response was ever received.
//   - [TimeoutError]: the per-attempt deadline was exceeded on every attempt.
//   - [ValidationError]: input rejected before any network call.
//
// Sentinel errors ([ErrUnauthorized], [ErrNotFound], [ErrRateLimited]) match
// APIError values via errors.Is.
//
// A 2xx response whose body does not decode into the expected shape is a
// contract violation between client and service, not an API error; Do panics
// in that case rather than mapping it into the taxonomy.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may call
// methods on a single Client simultaneously.
package api
