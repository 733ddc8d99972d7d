package sendpigeon

import (
	"errors"
	"strings"
	"testing"
)

func TestResultOk(t *testing.T) {
	r := Ok("em_123")
	if !r.OK() {
		t.Error("OK() = false")
	}
	if r.Err() != nil {
		t.Errorf("Err() = %v, want nil", r.Err())
	}
	if r.Data() != "em_123" {
		t.Errorf("Data() = %q", r.Data())
	}

	data, err := r.Unwrap()
	if err != nil || data != "em_123" {
		t.Errorf("Unwrap() = (%q, %v)", data, err)
	}
	if got := r.Must(); got != "em_123" {
		t.Errorf("Must() = %q", got)
	}
}

func TestResultFail(t *testing.T) {
	failure := validationError("bad input")
	r := Fail[string](failure)
	if r.OK() {
		t.Error("OK() = true")
	}
	if r.Err() != failure {
		t.Errorf("Err() = %v, want the original error", r.Err())
	}
	if r.Data() != "" {
		t.Errorf("Data() = %q, want zero value", r.Data())
	}

	data, err := r.Unwrap()
	if data != "" {
		t.Errorf("Unwrap data = %q, want zero value", data)
	}
	if !errors.Is(err, ErrValidation) {
		t.Errorf("Unwrap err = %v, want validation error", err)
	}
}

func TestResultMustPanicsOnFailure(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "bad input") {
			t.Errorf("panic value = %v, want message containing the error", r)
		}
	}()
	Fail[int](validationError("bad input")).Must()
}

func TestFailPanicsOnNilError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil error")
		}
	}()
	Fail[int](nil)
}
