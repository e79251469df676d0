package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/atypikhouse/atypikhouse-api/internal/core/domain"
)

func runRBAC(t *testing.T, claims *domain.Claims, roles ...domain.Role) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if claims != nil {
		c.Set(ClaimsKey, claims)
	}

	handler := RequireRole(roles...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestRequireRole_Allows(t *testing.T) {
	rec := runRBAC(t, &domain.Claims{Subject: "o1", Role: domain.RoleOwner}, domain.RoleOwner)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_WrongRole(t *testing.T) {
	rec := runRBAC(t, &domain.Claims{Subject: "u1", Role: domain.RoleUser}, domain.RoleOwner)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRole_AdminAlwaysPasses(t *testing.T) {
	admin := &domain.Claims{Subject: "a1", Role: domain.RoleAdmin}
	for _, roles := range [][]domain.Role{
		{domain.RoleOwner},
		{domain.RoleUser},
		{},
	} {
		rec := runRBAC(t, admin, roles...)
		if rec.Code != http.StatusOK {
			t.Fatalf("roles %v: expected 200 for admin, got %d", roles, rec.Code)
		}
	}
}

func TestRequireRole_MissingClaims(t *testing.T) {
	rec := runRBAC(t, nil, domain.RoleOwner)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
