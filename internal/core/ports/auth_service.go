package ports

import (
	"context"

	"github.com/atypikhouse/atypikhouse-api/internal/core/domain"
)

// RegisterInput carries all data accepted at registration. The host fields
// are required when Role is owner and ignored otherwise.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Role      domain.Role

	CompanyName         string
	Siret               string
	BusinessDescription string
}

// AuthService implements registration, login, and current-user lookup.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies credentials and returns a signed session token plus the
	// user record.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Me resolves the caller's claims to a fresh directory record.
	Me(ctx context.Context, claims *domain.Claims) (*domain.User, error)
}
