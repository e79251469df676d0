package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/atypikhouse/atypikhouse-api/internal/core/domain"
	"github.com/atypikhouse/atypikhouse-api/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// AdminService implements host moderation, dashboard statistics, and the
// directory query surface. Every operation requires the admin role.
type AdminService struct {
	users      ports.UserRepository
	properties ports.PropertyRepository
	bookings   ports.BookingRepository
	notifier   ports.Notifier
	logger     zerolog.Logger
}

func NewAdminService(
	users ports.UserRepository,
	properties ports.PropertyRepository,
	bookings ports.BookingRepository,
	notifier ports.Notifier,
	logger zerolog.Logger,
) *AdminService {
	return &AdminService{
		users:      users,
		properties: properties,
		bookings:   bookings,
		notifier:   notifier,
		logger:     logger,
	}
}

// ApproveHost transitions an owner to hostStatus=approved, isActive=true.
// Re-approving an approved owner is a no-op success.
func (s *AdminService) ApproveHost(ctx context.Context, claims *domain.Claims, ownerID string) (*domain.User, error) {
	return s.moderate(ctx, claims, ownerID, domain.HostApproved)
}

// RejectHost transitions an owner to hostStatus=rejected, isActive=false.
func (s *AdminService) RejectHost(ctx context.Context, claims *domain.Claims, ownerID string) (*domain.User, error) {
	return s.moderate(ctx, claims, ownerID, domain.HostRejected)
}

// moderate applies one host-approval transition. The transition itself is a
// single-document atomic update; the preceding role check is a separate read,
// so two concurrent moderations race last-write-wins at the store level.
func (s *AdminService) moderate(ctx context.Context, claims *domain.Claims, ownerID string, status domain.HostStatus) (*domain.User, error) {
	if err := Authorize(claims, domain.RoleAdmin, ""); err != nil {
		return nil, err
	}

	target, err := s.users.FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if target.Role != domain.RoleOwner {
		return nil, domain.ErrInvalidTarget
	}

	active := status == domain.HostApproved
	updated, err := s.users.UpdateHostStatus(ctx, ownerID, status, active)
	if err != nil {
		return nil, fmt.Errorf("moderate host: %w", err)
	}
	updated.PasswordHash = ""

	s.logger.Info().
		Str("owner_id", ownerID).
		Str("host_status", string(status)).
		Str("admin", claims.Subject).
		Msg("host moderated")

	// A repeated decision is a no-op; don't message the owner again.
	if target.HostStatus != status {
		s.notifyModeration(updated, status)
	}
	return updated, nil
}

func (s *AdminService) notifyModeration(owner *domain.User, status domain.HostStatus) {
	if s.notifier == nil {
		return
	}
	kind := domain.MessageHostApproved
	body := "Your host account has been approved. Your listings are now live."
	if status == domain.HostRejected {
		kind = domain.MessageHostRejected
		body = "Your host application has been rejected."
	}
	s.notifier.Enqueue(ports.NotificationInput{
		RecipientID: owner.ID,
		Kind:        kind,
		Body:        body,
	})
}

// ToggleActive suspends or reinstates a user without altering the approval
// decision.
func (s *AdminService) ToggleActive(ctx context.Context, claims *domain.Claims, userID string, active bool) (*domain.User, error) {
	if err := Authorize(claims, domain.RoleAdmin, ""); err != nil {
		return nil, err
	}

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	updated, err := s.users.SetActive(ctx, userID, active)
	if err != nil {
		return nil, fmt.Errorf("toggle active: %w", err)
	}
	updated.PasswordHash = ""

	s.logger.Info().
		Str("user_id", userID).
		Bool("active", active).
		Str("admin", claims.Subject).
		Msg("account toggled")
	return updated, nil
}

// Stats counts across the User, Property, and Booking collections
// concurrently. The counts are independent snapshots with no isolation, so
// they may be mutually inconsistent under concurrent writes.
func (s *AdminService) Stats(ctx context.Context, claims *domain.Claims) (*ports.Stats, error) {
	if err := Authorize(claims, domain.RoleAdmin, ""); err != nil {
		return nil, err
	}

	var stats ports.Stats
	active, inactive := true, false

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.TotalUsers, err = s.users.Count(ctx, ports.UserFilter{})
		return
	})
	g.Go(func() (err error) {
		stats.PendingOwners, err = s.users.Count(ctx, ports.UserFilter{Role: domain.RoleOwner, HostStatus: domain.HostPending})
		return
	})
	g.Go(func() (err error) {
		stats.TotalProperties, err = s.properties.Count(ctx, ports.PropertyFilter{})
		return
	})
	g.Go(func() (err error) {
		stats.ActiveProperties, err = s.properties.Count(ctx, ports.PropertyFilter{Active: &active})
		return
	})
	g.Go(func() (err error) {
		stats.InactiveProperties, err = s.properties.Count(ctx, ports.PropertyFilter{Active: &inactive})
		return
	})
	g.Go(func() (err error) {
		stats.TotalBookings, err = s.bookings.CountAll(ctx)
		return
	})
	g.Go(func() (err error) {
		stats.ConfirmedBookings, err = s.bookings.CountByStatus(ctx, domain.BookingConfirmed)
		return
	})
	g.Go(func() (err error) {
		stats.PendingBookings, err = s.bookings.CountByStatus(ctx, domain.BookingPending)
		return
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("compute stats: %w", err)
	}
	return &stats, nil
}

// ListUsers pages through the directory. Password hashes are stripped by the
// repository projection; the service clears the field again as a belt.
func (s *AdminService) ListUsers(ctx context.Context, claims *domain.Claims, filter ports.UserFilter) (*ports.UserPage, error) {
	if err := Authorize(claims, domain.RoleAdmin, ""); err != nil {
		return nil, err
	}

	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	items, total, err := s.users.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	for _, u := range items {
		u.PasswordHash = ""
	}

	return &ports.UserPage{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

// ListOwners pages owner accounts and enriches each row with its property
// count. The counts run concurrently and join positionally.
func (s *AdminService) ListOwners(ctx context.Context, claims *domain.Claims, filter ports.UserFilter) (*ports.OwnerPage, error) {
	filter.Role = domain.RoleOwner
	page, err := s.ListUsers(ctx, claims, filter)
	if err != nil {
		return nil, err
	}

	summaries := make([]ports.OwnerSummary, len(page.Items))
	g, ctx := errgroup.WithContext(ctx)
	for i, owner := range page.Items {
		i, owner := i, owner
		summaries[i].User = owner
		g.Go(func() (err error) {
			summaries[i].PropertyCount, err = s.properties.CountByOwner(ctx, owner.ID)
			return
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("list owners: %w", err)
	}

	return &ports.OwnerPage{
		Items:      summaries,
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	}, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	switch {
	case limit <= 0:
		limit = defaultPageLimit
	case limit > maxPageLimit:
		limit = maxPageLimit
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
