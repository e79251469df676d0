package domain

import "errors"

// Sentinel errors shared across services. The HTTP layer maps each to a
// status code in exactly one place (internal/api/error_handler.go).
var (
	// ErrUnauthenticated: no valid token presented. Token verification
	// returns it for malformed, forged, and expired tokens alike; callers
	// cannot distinguish why.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbiddenRole: valid identity, insufficient role.
	ErrForbiddenRole = errors.New("insufficient role")

	// ErrForbiddenOwner: valid identity, not the resource owner and not admin.
	ErrForbiddenOwner = errors.New("not the resource owner")

	// ErrInvalidCredentials: unknown email or wrong password at login, or a
	// malformed registration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountDisabled: credentials are correct but the account has been
	// suspended (isActive = false).
	ErrAccountDisabled = errors.New("account disabled")

	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidTarget: the resource exists but is not eligible for the
	// requested operation, e.g. moderating a non-owner account.
	ErrInvalidTarget = errors.New("invalid target for operation")

	// ErrHostNotApproved: the owner account has not been approved, so it may
	// not publish listings yet.
	ErrHostNotApproved = errors.New("host not approved")

	ErrPropertyNotFound = errors.New("property not found")
	ErrBookingNotFound  = errors.New("booking not found")
)
