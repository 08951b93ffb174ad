package deadline

import (
	"errors"
	"testing"
	"time"

	gderrors "github.com/vnykmshr/godeadline/pkg/common/errors"
)

func TestNone(t *testing.T) {
	d := None()

	if d.IsSet() {
		t.Error("None should not be set")
	}
	if d.Enforced() {
		t.Error("None should not be enforced")
	}
	if d.Duration() != 0 {
		t.Errorf("Duration() = %v, want 0", d.Duration())
	}
	if err := d.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestFor(t *testing.T) {
	tests := []struct {
		name     string
		d        time.Duration
		enforced bool
		valid    bool
	}{
		{"positive", time.Second, true, true},
		{"sub-second", 100 * time.Millisecond, true, true},
		{"zero", 0, false, true},
		{"negative", -time.Second, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := For(tt.d)
			if !d.IsSet() {
				t.Error("For should produce a set deadline")
			}
			if d.Enforced() != tt.enforced {
				t.Errorf("Enforced() = %v, want %v", d.Enforced(), tt.enforced)
			}
			err := d.Validate()
			if tt.valid && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.valid {
				if err == nil {
					t.Fatal("Validate() = nil, want error")
				}
				if !errors.Is(err, gderrors.ErrInvalidConfiguration) {
					t.Error("invalid deadline should wrap ErrInvalidConfiguration")
				}
			}
		})
	}
}

func TestZeroValueIsAbsent(t *testing.T) {
	var d Deadline
	if d.IsSet() || d.Enforced() {
		t.Error("zero value should behave as None")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		d    Deadline
		want string
	}{
		{"none", None(), "none"},
		{"second", For(time.Second), "1s"},
		{"zero", For(0), "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
