package ports

import (
	"context"

	"github.com/atypikhouse/atypikhouse-api/internal/core/domain"
)

// UserFilter carries the directory listing parameters. Filters combine with
// logical AND; Search expands to a case-insensitive OR across first name,
// last name, email, and company name.
type UserFilter struct {
	Search     string
	Role       domain.Role       // optional
	HostStatus domain.HostStatus // optional
	Active     *bool             // optional
	Page       int               // 1-based
	Limit      int               // capped by the service
}

// UserRepository defines persistence for the user directory. Every read
// excludes the password hash unless the method says otherwise.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrUserExists when the email
	// is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail returns the user including the password hash; it is the
	// only read used for credential checks.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// UpdateHostStatus atomically sets hostStatus and isActive on one user
	// document and returns the post-update record.
	UpdateHostStatus(ctx context.Context, id string, status domain.HostStatus, active bool) (*domain.User, error)
	// SetActive atomically sets isActive, leaving hostStatus untouched.
	SetActive(ctx context.Context, id string, active bool) (*domain.User, error)
	// List returns a page of users matching filter, newest first, and the
	// total match count.
	List(ctx context.Context, filter UserFilter) ([]*domain.User, int64, error)
	// Count counts users matching filter (pagination fields are ignored).
	Count(ctx context.Context, filter UserFilter) (int64, error)
}
