package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/atypikhouse/atypikhouse-api/internal/core/domain"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	issued := domain.Claims{Subject: "u1", Email: "alice@example.com", Role: domain.RoleAdmin}
	token, err := svc.Issue(issued)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	got, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if *got != issued {
		t.Fatalf("claims mismatch: issued %+v, got %+v", issued, *got)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret", DefaultTokenTTL)

	// Craft a token whose expiry predates the 7-day window.
	past := time.Now().Add(-8 * 24 * time.Hour)
	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "u1",
		"email": "alice@example.com",
		"role":  "user",
		"iat":   past.Add(-DefaultTokenTTL).Unix(),
		"exp":   past.Unix(),
	})
	signed, err := tkn.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(signed); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated for expired token, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue(domain.Claims{Subject: "u1", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := verifier.Verify(token); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated for forged token, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Verify(raw); err != domain.ErrUnauthenticated {
			t.Fatalf("expected ErrUnauthenticated for %q, got %v", raw, err)
		}
	}
}

func TestTokenService_UnknownRoleRejected(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "u1",
		"role": "superuser",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tkn.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if _, err := svc.Verify(signed); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated for unknown role, got %v", err)
	}
}
