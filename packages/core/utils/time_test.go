package utils

import (
	"strings"
	"testing"
	"time"
)

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 30, 45, 7, time.UTC)
	got := FormatTimestamp(ts)
	want := "2025-06-01T12:30:45.000000007Z"
	if got != want {
		t.Fatalf("FormatTimestamp() = %q, want %q", got, want)
	}

	// The fractional part is always exactly nine digits
	idx := strings.LastIndex(got, ".")
	frac := got[idx+1 : len(got)-1]
	if len(frac) != 9 {
		t.Fatalf("fractional part %q has %d digits, want 9", frac, len(frac))
	}
}

func TestConvertToTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"rfc3339", "2025-06-01T12:30:45Z", "2025-06-01T12:30:45.000000000Z", false},
		{"rfc3339 nano", "2025-06-01T12:30:45.5Z", "2025-06-01T12:30:45.500000000Z", false},
		{"bare seconds", "2025-06-01T12:30:45", "2025-06-01T12:30:45.000000000Z", false},
		{"garbage", "yesterday", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertToTimestamp(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ConvertToTimestamp(%q) = %q, want error", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ConvertToTimestamp(%q) error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Fatalf("ConvertToTimestamp(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCanonicalTimestampsSortLexicographically(t *testing.T) {
	earlier := FormatTimestamp(time.Date(2025, 6, 1, 12, 0, 0, 999999999, time.UTC))
	later := FormatTimestamp(time.Date(2025, 6, 1, 12, 0, 1, 0, time.UTC))
	if !(earlier < later) {
		t.Fatalf("expected %q < %q", earlier, later)
	}
}

func TestValidateDate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"future rfc3339", "2025-07-01T12:00:00Z", true},
		{"future canonical", "2025-07-01T12:00:00.000000000Z", true},
		{"past date", "2025-05-01T12:00:00Z", false},
		{"short fraction", "2025-07-01T12:00:00.123Z", false},
		{"fraction without zulu", "2025-07-01T12:00:00.000000000", false},
		{"garbage", "not-a-date", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateDate(tt.raw, now); got != tt.want {
				t.Fatalf("ValidateDate(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
