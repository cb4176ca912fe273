package utils

import (
	"testing"
	"time"
)

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "0.00 seconds"},
		{"sub-second", 250 * time.Millisecond, "0.25 seconds"},
		{"whole seconds", 3 * time.Second, "3.00 seconds"},
		{"rounds to two decimals", 1234 * time.Millisecond, "1.23 seconds"},
		{"minutes stay in seconds", 90 * time.Second, "90.00 seconds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSeconds(tt.d); got != tt.want {
				t.Errorf("FormatSeconds(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}
