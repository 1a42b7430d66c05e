package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	a := NewJWTAuthenticator("secret", "GRLLA", "GRLLA")

	token, err := a.GenerateToken("admin", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := a.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub != "admin" {
		t.Fatalf("subject: %q err=%v", sub, err)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	a := NewJWTAuthenticator("secret", "GRLLA", "GRLLA")

	token, err := a.GenerateToken("admin", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := a.ValidateToken(token); err == nil {
		t.Fatal("expired token must not validate")
	}
}

func TestWrongSecretRejected(t *testing.T) {
	a := NewJWTAuthenticator("secret", "GRLLA", "GRLLA")
	b := NewJWTAuthenticator("other", "GRLLA", "GRLLA")

	token, err := a.GenerateToken("admin", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := b.ValidateToken(token); err == nil {
		t.Fatal("token signed with a different secret must not validate")
	}
}
