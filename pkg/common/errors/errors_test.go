package errors

import (
	"errors"
	"testing"
)

func TestCommonErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrDeadlineExceeded", ErrDeadlineExceeded, "deadline exceeded"},
		{"ErrInvalidConfiguration", ErrInvalidConfiguration, "invalid configuration"},
		{"ErrInjectionFault", ErrInjectionFault, "cancellation injection failed"},
		{"ErrClosed", ErrClosed, "resource is closed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatal("error should not be nil")
			}
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
				Module: "enforce",
				Field:  "timeout",
				Value:  -1,
				Reason: "must be non-negative or absent",
			},
			want: "enforce: invalid timeout=-1 (must be non-negative or absent)",
		},
		{
			name: "with hint",
			err: &ValidationError{
				Module: "enforce",
				Field:  "grace",
				Value:  0,
				Reason: "must be positive",
				Hint:   "use a value greater than 0",
			},
			want: "enforce: invalid grace=0 (must be positive) - use a value greater than 0",
		},
		{
			name: "string value",
			err: &ValidationError{
				Module: "recurring",
				Field:  "cron",
				Value:  "",
				Reason: "cannot be empty",
			},
			want: "recurring: invalid cron= (cannot be empty)",
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
	verr := &ValidationError{
		Module: "test",
		Field:  "field",
		Value:  0,
		Reason: "test",
	}

	unwrapped := verr.Unwrap()
	if unwrapped != ErrInvalidConfiguration {
		t.Errorf("Unwrap() = %v, want ErrInvalidConfiguration", unwrapped)
	}

	if !errors.Is(verr, ErrInvalidConfiguration) {
		t.Error("ValidationError should wrap ErrInvalidConfiguration")
	}

	if !IsInvalidConfiguration(verr) {
		t.Error("IsInvalidConfiguration should match a ValidationError")
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("module", "field", 123, "test reason")

	if err.Module != "module" {
		t.Errorf("Module = %q, want %q", err.Module, "module")
	}
	if err.Field != "field" {
		t.Errorf("Field = %q, want %q", err.Field, "field")
	}
	if err.Value != 123 {
		t.Errorf("Value = %v, want %v", err.Value, 123)
	}
	if err.Reason != "test reason" {
		t.Errorf("Reason = %q, want %q", err.Reason, "test reason")
	}
	if err.Hint != "" {
		t.Errorf("Hint = %q, want empty string", err.Hint)
	}
}

func TestValidationError_WithHint(t *testing.T) {
	err := NewValidationError("test", "field", 0, "invalid").
		WithHint("try using a positive value")

	if err.Hint != "try using a positive value" {
		t.Errorf("Hint = %q, want %q", err.Hint, "try using a positive value")
	}

	// Should return same instance for chaining
	result := err.WithHint("new hint")
	if result != err {
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
			err: &OperationError{
				Module:    "advisor",
				Operation: "Record",
				Cause:     errors.New("write failed"),
			},
			want: "advisor.Record failed: write failed",
		},
		{
			name: "with context",
			err: &OperationError{
				Module:    "advisor",
				Operation: "Recommend",
				Cause:     errors.New("connection refused"),
				Context:   "redis backend unreachable",
			},
			want: "advisor.Recommend failed: connection refused (redis backend unreachable)",
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
	cause := errors.New("underlying")
	err := &OperationError{Module: "m", Operation: "Op", Cause: cause}

	if !errors.Is(err, cause) {
		t.Error("OperationError should unwrap to its cause")
	}
}

func TestIsDeadlineExceeded(t *testing.T) {
	if !IsDeadlineExceeded(ErrDeadlineExceeded) {
		t.Error("sentinel should match itself")
	}
	if IsDeadlineExceeded(ErrInvalidConfiguration) {
		t.Error("unrelated sentinel should not match")
	}
	if IsDeadlineExceeded(nil) {
		t.Error("nil should not match")
	}
}
