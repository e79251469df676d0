package ports

import (
	"context"

	"github.com/atypikhouse/atypikhouse-api/internal/core/domain"
)

// Stats is the admin dashboard snapshot. The eight counts are taken
// concurrently with no isolation across them.
type Stats struct {
	TotalUsers         int64 `json:"total_users"`
	TotalProperties    int64 `json:"total_properties"`
	TotalBookings      int64 `json:"total_bookings"`
	PendingOwners      int64 `json:"pending_owners"`
	ActiveProperties   int64 `json:"active_properties"`
	InactiveProperties int64 `json:"inactive_properties"`
	ConfirmedBookings  int64 `json:"confirmed_bookings"`
	PendingBookings    int64 `json:"pending_bookings"`
}

// OwnerSummary is an owner directory row enriched with its listing count.
type OwnerSummary struct {
	User          *domain.User `json:"user"`
	PropertyCount int64        `json:"property_count"`
}

// UserPage is one page of directory results.
type UserPage struct {
	Items      []*domain.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// OwnerPage is one page of enriched owner results.
type OwnerPage struct {
	Items      []OwnerSummary
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// AdminService groups the admin-only moderation, statistics, and directory
// operations. Every method enforces the admin role on the caller's claims
// before touching the store.
type AdminService interface {
	// ApproveHost sets hostStatus=approved, isActive=true on an owner.
	// Idempotent: approving an approved owner is a no-op success.
	ApproveHost(ctx context.Context, claims *domain.Claims, ownerID string) (*domain.User, error)
	// RejectHost sets hostStatus=rejected, isActive=false on an owner.
	RejectHost(ctx context.Context, claims *domain.Claims, ownerID string) (*domain.User, error)
	// ToggleActive suspends or reinstates a user without altering the
	// approval decision.
	ToggleActive(ctx context.Context, claims *domain.Claims, userID string, active bool) (*domain.User, error)

	Stats(ctx context.Context, claims *domain.Claims) (*Stats, error)

	ListUsers(ctx context.Context, claims *domain.Claims, filter UserFilter) (*UserPage, error)
	// ListOwners pages through owner accounts and enriches each row with its
	// property count; the counts are fetched concurrently.
	ListOwners(ctx context.Context, claims *domain.Claims, filter UserFilter) (*OwnerPage, error)
}
