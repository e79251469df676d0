package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/atypikhouse/atypikhouse-api/internal/core/domain"
	"github.com/atypikhouse/atypikhouse-api/internal/core/ports"
)

func newAuthService(repo *stubUserRepo) *AuthService {
	tokens := NewTokenService("secret", time.Hour)
	return NewAuthService(repo, tokens, zerolog.Nop())
}

func TestAuthService_Register_User(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:     "alice@example.com",
		Password:  "s3cret-pass",
		FirstName: "Alice",
		LastName:  "Martin",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role user, got %s", user.Role)
	}
	if !user.IsActive {
		t.Fatalf("expected new account to be active")
	}
	if user.PasswordHash == "s3cret-pass" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_OwnerStartsPending(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	owner, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:       "bob@example.com",
		Password:    "s3cret-pass",
		FirstName:   "Bob",
		LastName:    "Durand",
		Role:        domain.RoleOwner,
		CompanyName: "Cabanes SARL",
		Siret:       "12345678901234",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if owner.HostStatus != domain.HostPending {
		t.Fatalf("expected hostStatus pending, got %s", owner.HostStatus)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	cases := []ports.RegisterInput{
		{Email: "", Password: "p", FirstName: "A", LastName: "B"},
		{Email: "a@b.c", Password: "p", FirstName: "A", LastName: "B", Role: domain.RoleAdmin},
		// owner without company details
		{Email: "a@b.c", Password: "p", FirstName: "A", LastName: "B", Role: domain.RoleOwner},
	}
	for i, input := range cases {
		if _, err := svc.Register(context.Background(), input); err != domain.ErrInvalidCredentials {
			t.Fatalf("case %d: expected ErrInvalidCredentials, got %v", i, err)
		}
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	input := ports.RegisterInput{Email: "bob@example.com", Password: "pass1234", FirstName: "Bob", LastName: "D"}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), input); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "alice@example.com", Password: "s3cret-pass", FirstName: "Alice", LastName: "M",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "alice@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.PasswordHash != "" {
		t.Fatalf("expected password hash to be stripped from login response")
	}

	claims, err := NewTokenService("secret", time.Hour).Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Subject != user.ID || claims.Role != domain.RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	_, _ = svc.Register(context.Background(), ports.RegisterInput{
		Email: "alice@example.com", Password: "goodpass1", FirstName: "Alice", LastName: "M",
	})
	if _, _, err := svc.Login(context.Background(), "alice@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	// Unknown account reads the same as a bad password.
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Disabled(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "carol@example.com", Password: "s3cret-pass", FirstName: "Carol", LastName: "L",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := repo.SetActive(context.Background(), user.ID, false); err != nil {
		t.Fatalf("suspend failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "carol@example.com", "s3cret-pass"); err != domain.ErrAccountDisabled {
		t.Fatalf("expected ErrAccountDisabled, got %v", err)
	}
}

func TestAuthService_Me(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	user, _ := svc.Register(context.Background(), ports.RegisterInput{
		Email: "alice@example.com", Password: "s3cret-pass", FirstName: "Alice", LastName: "M",
	})

	got, err := svc.Me(context.Background(), &domain.Claims{Subject: user.ID, Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("Me returned error: %v", err)
	}
	if got.Email != "alice@example.com" || got.PasswordHash != "" {
		t.Fatalf("unexpected record: %+v", got)
	}

	if _, err := svc.Me(context.Background(), nil); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
