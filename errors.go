package sendpigeon

import (
	"errors"
	"fmt"

	"github.com/sendpigeon/sendpigeon-go/internal/api"
)

// ErrorCode classifies where a failure originated.
type ErrorCode string

const (
	// ErrorCodeAPI means the service returned a non-2xx response.
	ErrorCodeAPI ErrorCode = "api_error"
	// ErrorCodeNetwork means no usable HTTP response was ever received.
	ErrorCodeNetwork ErrorCode = "network_error"
	// ErrorCodeTimeout means the request deadline was exceeded on every attempt.
	ErrorCodeTimeout ErrorCode = "timeout_error"
	// ErrorCodeValidation means the input was rejected before any network call.
	ErrorCodeValidation ErrorCode = "validation_error"
)

// Sentinel errors for errors.Is() checks against *Error values.
var (
	// ErrUnauthorized is matched by API errors with status 401.
	ErrUnauthorized = errors.New("invalid or expired API key")
	// ErrNotFound is matched by API errors with status 404.
	ErrNotFound = errors.New("resource not found")
	// ErrRateLimited is matched by API errors with status 429.
	ErrRateLimited = errors.New("rate limit exceeded")
	// ErrValidation is matched by errors rejected before any network call.
	ErrValidation = errors.New("validation failed")
)

// Error is the failure branch of every Result.
type Error struct {
	// Code classifies the failure origin.
	Code ErrorCode
	// Message is a human-readable description.
	Message string
	// APICode is the service's own error identifier (set only for api_error).
	APICode string
	// Status is the HTTP status code (set only when a response was received).
	Status int
}

func (e *Error) Error() string {
	if e.APICode != "" {
		return fmt.Sprintf("[%s] %s", e.APICode, e.Message)
	}
	return e.Message
}

// Is implements errors.Is for sentinel error matching.
func (e *Error) Is(target error) bool {
	if target == ErrValidation {
		return e.Code == ErrorCodeValidation
	}
	switch e.Status {
	case 401:
		return target == ErrUnauthorized
	case 404:
		return target == ErrNotFound
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// wrapError converts internal API errors into the public taxonomy.
func wrapError(err error) *Error {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &Error{
			Code:    ErrorCodeAPI,
			Message: apiErr.Message,
			APICode: apiErr.APICode,
			Status:  apiErr.Status,
		}
	}

	var timeoutErr *api.TimeoutError
	if errors.As(err, &timeoutErr) {
		return &Error{
			Code:    ErrorCodeTimeout,
			Message: "request timed out",
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &Error{
			Code:    ErrorCodeNetwork,
			Message: netErr.Err.Error(),
		}
	}

	var valErr *api.ValidationError
	if errors.As(err, &valErr) {
		return &Error{
			Code:    ErrorCodeValidation,
			Message: valErr.Message,
		}
	}

	return &Error{
		Code:    ErrorCodeNetwork,
		Message: err.Error(),
	}
}

// validationError builds a validation_error detected client-side.
func validationError(message string) *Error {
	return &Error{
		Code:    ErrorCodeValidation,
		Message: message,
	}
}
