package utils

import (
	"testing"
	"time"
)

func TestOTPExpiryIsInTheFuture(t *testing.T) {
	expiry := OTPExpiry()
	if IsExpired(expiry) {
		t.Fatalf("OTPExpiry() = %q is already expired", expiry)
	}
}

func TestIsExpired(t *testing.T) {
	past := FormatTimestamp(time.Now().Add(-time.Minute))
	if !IsExpired(past) {
		t.Errorf("IsExpired(%q) = false, want true", past)
	}

	future := FormatTimestamp(time.Now().Add(time.Minute))
	if IsExpired(future) {
		t.Errorf("IsExpired(%q) = true, want false", future)
	}
}
