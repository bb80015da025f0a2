package utils

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the canonical persisted form of every date in the
// system: seconds precision plus a fixed 9-digit fractional part and a
// trailing Z. Matches are compared for scheduling conflicts on this
// exact string, so every write has to go through the same normalizer.
const TimestampLayout = "2006-01-02T15:04:05"

// GenerateTimeStamp returns the current time in the canonical format.
func GenerateTimeStamp() string {
	return FormatTimestamp(time.Now())
}

// FormatTimestamp renders t in the canonical format.
func FormatTimestamp(t time.Time) string {
	return fmt.Sprintf("%s.%09dZ", t.Format(TimestampLayout), t.Nanosecond())
}

// ConvertToTimestamp normalizes a human-entered RFC3339-ish date string
// into the canonical persisted format.
func ConvertToTimestamp(raw string) (string, error) {
	t, err := ParseFlexible(raw)
	if err != nil {
		return "", err
	}
	return FormatTimestamp(t), nil
}

// ParseFlexible accepts the date forms clients actually send: RFC3339,
// RFC3339 with nanoseconds, or a bare seconds-precision timestamp.
func ParseFlexible(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, TimestampLayout} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date format: %q", raw)
}

// ValidateDate reports whether raw is a well-formed future date. When a
// fractional part is present it must be exactly 9 digits and the value
// must end with Z, mirroring the canonical format.
func ValidateDate(raw string, now time.Time) bool {
	t, err := ParseFlexible(raw)
	if err != nil {
		return false
	}

	if idx := strings.LastIndex(raw, "."); idx != -1 {
		frac := raw[idx+1:]
		if !strings.HasSuffix(frac, "Z") || len(frac) != 10 {
			return false
		}
	}

	return t.After(now)
}
