package service

import "github.com/atypikhouse/atypikhouse-api/internal/core/domain"

// Authorize decides whether the caller may perform an operation. It is pure:
// no store access, no side effects. The zero values of requiredRole and
// resourceOwnerID mean "no such requirement".
//
// Admins always pass both the role gate and the ownership gate.
func Authorize(claims *domain.Claims, requiredRole domain.Role, resourceOwnerID string) error {
	if claims == nil || !claims.Role.Valid() {
		return domain.ErrUnauthenticated
	}
	if claims.IsAdmin() {
		return nil
	}
	if requiredRole != "" && claims.Role != requiredRole {
		return domain.ErrForbiddenRole
	}
	if resourceOwnerID != "" && claims.Subject != resourceOwnerID {
		return domain.ErrForbiddenOwner
	}
	return nil
}
