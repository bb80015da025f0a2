package utils

import (
	"fmt"
	"time"
)

const timestampLayout = "2006-01-02T15:04:05"

// OTPValidity is how long a one-time code stays usable.
const OTPValidity = 10 * time.Minute

// GenerateTimeStamp returns the current time in the canonical stored
// form: seconds precision, a 9-digit fractional part and a trailing Z.
func GenerateTimeStamp() string {
	return FormatTimestamp(time.Now())
}

// FormatTimestamp renders t in the canonical stored form.
func FormatTimestamp(t time.Time) string {
	return fmt.Sprintf("%s.%09dZ", t.Format(timestampLayout), t.Nanosecond())
}

// OTPExpiry returns the canonical expiry stamp for a code issued now.
func OTPExpiry() string {
	return FormatTimestamp(time.Now().Add(OTPValidity))
}

// IsExpired reports whether the canonical stamp lies in the past.
// Canonical stamps sort lexicographically, so a string compare suffices.
func IsExpired(stamp string) bool {
	return stamp < GenerateTimeStamp()
}
