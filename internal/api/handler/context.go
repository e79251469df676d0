package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atypikhouse/atypikhouse-api/internal/api/middleware"
	"github.com/atypikhouse/atypikhouse-api/internal/core/domain"
)

// ctxClaims extracts the typed auth context injected by the Auth middleware.
// Presence proves the middleware ran; a missing value on a protected route is
// a wiring bug surfaced as 401 rather than a panic.
func ctxClaims(c echo.Context) (*domain.Claims, error) {
	claims, ok := c.Get(middleware.ClaimsKey).(*domain.Claims)
	if !ok || claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
