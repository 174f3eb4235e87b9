package errors

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestCommonErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrInvalidConfiguration", ErrInvalidConfiguration, "invalid configuration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "without hint",
			err: &ValidationError{
				Module: "concurrency",
				Field:  "capacity",
				Value:  -1,
				Reason: "must be positive",
			},
			want: "concurrency: invalid capacity=-1 (must be positive)",
		},
		{
			name: "with hint",
			err: &ValidationError{
				Module: "concurrency",
				Field:  "capacity",
				Value:  0,
				Reason: "must be positive",
				Hint:   "use a value greater than 0",
			},
			want: "concurrency: invalid capacity=0 (must be positive) - use a value greater than 0",
		},
		{
			name: "string value",
			err: &ValidationError{
				Module: "metrics",
				Field:  "name",
				Value:  "",
				Reason: "cannot be empty",
			},
			want: "metrics: invalid name= (cannot be empty)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Unwrap(t *testing.T) {
	verr := NewValidationError("test", "field", 0, "test")

	if verr.Unwrap() != ErrInvalidConfiguration {
		t.Errorf("Unwrap() = %v, want ErrInvalidConfiguration", verr.Unwrap())
	}
	if !errors.Is(verr, ErrInvalidConfiguration) {
		t.Error("ValidationError should wrap ErrInvalidConfiguration")
	}
}

func TestValidationError_WithHint(t *testing.T) {
	err := NewValidationError("test", "field", 0, "invalid").
		WithHint("try using a positive value")

	if err.Hint != "try using a positive value" {
		t.Errorf("Hint = %q, want %q", err.Hint, "try using a positive value")
	}
	if result := err.WithHint("new hint"); result != err {
		t.Error("WithHint should return the same instance")
	}
}

func TestOperationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *OperationError
		want string
	}{
		{
			name: "without context",
			err:  NewOperationError("transport", "RoundTrip", context.Canceled),
			want: "transport.RoundTrip failed: context canceled",
		},
		{
			name: "with context",
			err: NewOperationError("transport", "RoundTrip", context.DeadlineExceeded).
				WithContext("waiting for gate slot"),
			want: "transport.RoundTrip failed: context deadline exceeded (waiting for gate slot)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOperationError_Unwrap(t *testing.T) {
	opErr := NewOperationError("gate", "Acquire", context.Canceled)

	if !errors.Is(opErr, context.Canceled) {
		t.Error("OperationError should wrap the cause error")
	}
}

func TestIsValidationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"validation error", NewValidationError("test", "field", 0, "test"), true},
		{"wrapped validation error", &OperationError{Cause: NewValidationError("test", "field", 0, "test")}, true},
		{"operation error", &OperationError{Cause: errors.New("test")}, false},
		{"standard error", errors.New("test"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidationError(tt.err); got != tt.want {
				t.Errorf("IsValidationError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	err := NewValidationError("mymodule", "myfield", 42, "must be less than 10").
		WithHint("use a value between 0 and 10")

	msg := err.Error()
	for _, part := range []string{"mymodule", "myfield", "42", "must be less than 10", "use a value between 0 and 10"} {
		if !strings.Contains(msg, part) {
			t.Errorf("error message should contain %q, got %q", part, msg)
		}
	}
}
