package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/atypikhouse/atypikhouse-api/internal/core/domain"
	"github.com/atypikhouse/atypikhouse-api/internal/core/ports"
)

// AuthService implements registration, login, and current-user lookup.
type AuthService struct {
	repo   ports.UserRepository
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, logger: logger}
}

// Register creates a user or owner account. Owner accounts start in
// hostStatus=pending and stay usable (isActive=true) until moderated; their
// listings only become effective once approved. Admin accounts cannot be
// self-registered.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" || input.FirstName == "" || input.LastName == "" {
		return nil, domain.ErrInvalidCredentials
	}

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if role != domain.RoleUser && role != domain.RoleOwner {
		return nil, domain.ErrInvalidCredentials
	}
	if role == domain.RoleOwner && (input.CompanyName == "" || input.Siret == "") {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if role == domain.RoleOwner {
		user.HostStatus = domain.HostPending
		user.CompanyName = input.CompanyName
		user.Siret = input.Siret
		user.BusinessDescription = input.BusinessDescription
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", created.Email).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

// Login verifies credentials and issues a session token. Suspended accounts
// are rejected even with correct credentials; admins are always treated as
// active.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive && user.Role != domain.RoleAdmin {
		return "", nil, domain.ErrAccountDisabled
	}

	token, err := s.tokens.Issue(domain.Claims{
		Subject: user.ID,
		Email:   user.Email,
		Role:    user.Role,
	})
	if err != nil {
		return "", nil, err
	}

	user.PasswordHash = ""
	return token, user, nil
}

// Me resolves the caller's claims to a fresh directory record.
func (s *AuthService) Me(ctx context.Context, claims *domain.Claims) (*domain.User, error) {
	if claims == nil {
		return nil, domain.ErrUnauthenticated
	}
	user, err := s.repo.FindByID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}
