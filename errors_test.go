package sendpigeon

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sendpigeon/sendpigeon-go/internal/api"
)

func TestWrapError(t *testing.T) {
	tests := []struct {
		name     string
		in       error
		wantCode ErrorCode
	}{
		{
			name:     "api error",
			in:       &api.APIError{Status: 422, Message: "bad recipient", APICode: "invalid_recipient"},
			wantCode: ErrorCodeAPI,
		},
		{
			name:     "timeout",
			in:       &api.TimeoutError{Err: errors.New("deadline exceeded"), Attempts: 3},
			wantCode: ErrorCodeTimeout,
		},
		{
			name:     "network",
			in:       &api.NetworkError{Err: errors.New("connection refused"), Attempts: 3},
			wantCode: ErrorCodeNetwork,
		},
		{
			name:     "validation",
			in:       &api.ValidationError{Message: "API key is required"},
			wantCode: ErrorCodeValidation,
		},
		{
			name:     "unknown",
			in:       errors.New("something else"),
			wantCode: ErrorCodeNetwork,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapError(tt.in)
			if got.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", got.Code, tt.wantCode)
			}
		})
	}
}

func TestWrapErrorKeepsAPIDetails(t *testing.T) {
	got := wrapError(&api.APIError{Status: 404, Message: "template not found", APICode: "not_found"})
	if got.Status != 404 {
		t.Errorf("status = %d, want 404", got.Status)
	}
	if got.Message != "template not found" {
		t.Errorf("message = %q", got.Message)
	}
	if got.APICode != "not_found" {
		t.Errorf("api code = %q", got.APICode)
	}
}

func TestErrorString(t *testing.T) {
	withCode := &Error{Code: ErrorCodeAPI, Message: "domain not verified", APICode: "domain_not_verified"}
	if got := withCode.Error(); got != "[domain_not_verified] domain not verified" {
		t.Errorf("Error() = %q", got)
	}
	plain := &Error{Code: ErrorCodeNetwork, Message: "connection refused"}
	if got := plain.Error(); got != "connection refused" {
		t.Errorf("Error() = %q", got)
	}
}

func TestErrorSentinels(t *testing.T) {
	tests := []struct {
		err      *Error
		sentinel error
		want     bool
	}{
		{&Error{Code: ErrorCodeAPI, Status: 401}, ErrUnauthorized, true},
		{&Error{Code: ErrorCodeAPI, Status: 404}, ErrNotFound, true},
		{&Error{Code: ErrorCodeAPI, Status: 429}, ErrRateLimited, true},
		{&Error{Code: ErrorCodeValidation}, ErrValidation, true},
		{&Error{Code: ErrorCodeAPI, Status: 500}, ErrNotFound, false},
		{&Error{Code: ErrorCodeNetwork}, ErrValidation, false},
	}
	for i, tt := range tests {
		if got := errors.Is(tt.err, tt.sentinel); got != tt.want {
			t.Errorf("case %d: errors.Is(%v, %v) = %v, want %v", i, tt.err, tt.sentinel, got, tt.want)
		}
	}
}

func TestErrorWorksWithFmtW(t *testing.T) {
	inner := &Error{Code: ErrorCodeAPI, Status: 429, Message: "rate limit exceeded"}
	wrapped := fmt.Errorf("sending welcome email: %w", inner)
	if !errors.Is(wrapped, ErrRateLimited) {
		t.Error("sentinel matching lost through fmt.Errorf wrapping")
	}
	var e *Error
	if !errors.As(wrapped, &e) {
		t.Error("errors.As failed through fmt.Errorf wrapping")
	}
}
