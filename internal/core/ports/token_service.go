package ports

import "github.com/atypikhouse/atypikhouse-api/internal/core/domain"

// TokenService issues and verifies signed session tokens.
type TokenService interface {
	// Issue produces a signed bearer token embedding the claims and an
	// expiration timestamp.
	Issue(claims domain.Claims) (string, error)
	// Verify validates signature and expiry. It returns
	// domain.ErrUnauthenticated for any malformed, forged, or expired token;
	// callers treat that uniformly as "unauthenticated".
	Verify(token string) (*domain.Claims, error)
}
