package util

import (
	"testing"
	"time"

	"quizhub_backend/internal/model"
)

func testAdmin() *model.Admin {
	admin := &model.Admin{
		Name:  "Alice",
		Email: "alice@example.com",
	}
	admin.ID = 42
	return admin
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(testAdmin(), "secret", time.Hour)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := ParseJWT(token, "secret")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.AdminID != 42 {
		t.Fatalf("expected admin id 42, got %d", claims.AdminID)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("expected email claim, got %q", claims.Email)
	}
}

func TestJWTExpired(t *testing.T) {
	token, err := GenerateJWT(testAdmin(), "secret", -time.Minute)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := ParseJWT(token, "secret"); err == nil {
		t.Fatalf("expired token must be rejected")
	}
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(testAdmin(), "secret", time.Hour)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := ParseJWT(token, "other-secret"); err == nil {
		t.Fatalf("token signed with a different secret must be rejected")
	}
}

func TestJWTGarbage(t *testing.T) {
	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := ParseJWT(token, "secret"); err == nil {
			t.Fatalf("token %q must be rejected", token)
		}
	}
}
