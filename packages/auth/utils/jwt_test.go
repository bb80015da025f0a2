package utils

import (
	"testing"
	"time"

	"auth/models"
)

const testSecret = "test-secret"

func TestGenerateAndParseToken(t *testing.T) {
	user := models.User{
		Email:    "ravi@scoreliklo.test",
		UserName: "ravi_s",
		Role:     models.RoleUser,
	}

	token, err := GenerateToken(user, testSecret)
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	claims, err := ParseToken(token, testSecret)
	if err != nil {
		t.Fatalf("ParseToken() error: %v", err)
	}

	if claims.Email != user.Email {
		t.Errorf("claims.Email = %q, want %q", claims.Email, user.Email)
	}
	if claims.UserName != user.UserName {
		t.Errorf("claims.UserName = %q, want %q", claims.UserName, user.UserName)
	}
	if claims.Role != models.RoleUser {
		t.Errorf("claims.Role = %q, want %q", claims.Role, models.RoleUser)
	}

	expiry := claims.ExpiresAt.Time
	expected := time.Now().Add(TokenExpiry)
	if expiry.Before(expected.Add(-time.Minute)) || expiry.After(expected.Add(time.Minute)) {
		t.Errorf("token expiry %v not within a minute of %v", expiry, expected)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	user := models.User{Email: "a@b.test", UserName: "ab", Role: models.RoleUser}

	token, err := GenerateToken(user, testSecret)
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	if _, err := ParseToken(token, "another-secret"); err == nil {
		t.Fatal("ParseToken() accepted a token signed with a different secret")
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	if _, err := ParseToken("not.a.token", testSecret); err == nil {
		t.Fatal("ParseToken() accepted a malformed token")
	}
}
