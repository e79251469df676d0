package service

import (
	"context"
	"testing"

	"github.com/atypikhouse/atypikhouse-api/internal/core/domain"
)

func newFavoriteFixture(t *testing.T) (*FavoriteService, *domain.Property) {
	t.Helper()
	properties := newStubPropertyRepo()
	property, err := properties.Create(context.Background(), &domain.Property{
		Title: "Dôme étoilé", OwnerID: "owner-1", Type: domain.TypeDome, IsActive: true,
	})
	if err != nil {
		t.Fatalf("seed property: %v", err)
	}
	return NewFavoriteService(newStubFavoriteRepo(), properties), property
}

func TestFavoriteService_Toggle(t *testing.T) {
	svc, property := newFavoriteFixture(t)
	claims := &domain.Claims{Subject: "guest-1", Role: domain.RoleUser}

	on, err := svc.Toggle(context.Background(), claims, property.ID)
	if err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}
	if !on {
		t.Fatalf("expected first toggle to favorite")
	}

	off, err := svc.Toggle(context.Background(), claims, property.ID)
	if err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}
	if off {
		t.Fatalf("expected second toggle to unfavorite")
	}

	mine, err := svc.ListMine(context.Background(), claims)
	if err != nil {
		t.Fatalf("ListMine returned error: %v", err)
	}
	if len(mine) != 0 {
		t.Fatalf("expected empty favorites, got %+v", mine)
	}
}

func TestFavoriteService_ToggleUnknownProperty(t *testing.T) {
	svc, _ := newFavoriteFixture(t)
	claims := &domain.Claims{Subject: "guest-1", Role: domain.RoleUser}

	if _, err := svc.Toggle(context.Background(), claims, "missing"); err != domain.ErrPropertyNotFound {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
}

func TestFavoriteService_ListMineScopedToCaller(t *testing.T) {
	svc, property := newFavoriteFixture(t)
	alice := &domain.Claims{Subject: "alice", Role: domain.RoleUser}
	bob := &domain.Claims{Subject: "bob", Role: domain.RoleUser}

	if _, err := svc.Toggle(context.Background(), alice, property.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if _, err := svc.Toggle(context.Background(), bob, property.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	mine, err := svc.ListMine(context.Background(), alice)
	if err != nil {
		t.Fatalf("ListMine returned error: %v", err)
	}
	if len(mine) != 1 || mine[0].UserID != "alice" || mine[0].PropertyID != property.ID {
		t.Fatalf("unexpected favorites: %+v", mine)
	}
}

func TestFavoriteService_RequiresAuth(t *testing.T) {
	svc, property := newFavoriteFixture(t)

	if _, err := svc.Toggle(context.Background(), nil, property.ID); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if _, err := svc.ListMine(context.Background(), nil); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
