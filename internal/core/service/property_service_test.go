package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/atypikhouse/atypikhouse-api/internal/core/domain"
	"github.com/atypikhouse/atypikhouse-api/internal/core/ports"
)

// memFeaturedCache is a FeaturedCache backed by a map, sufficient for
// asserting hit/miss behaviour.
type memFeaturedCache struct {
	entries map[int][]*domain.Property
	sets    int
}

func newMemFeaturedCache() *memFeaturedCache {
	return &memFeaturedCache{entries: make(map[int][]*domain.Property)}
}

func (c *memFeaturedCache) Get(_ context.Context, n int) ([]*domain.Property, bool) {
	items, ok := c.entries[n]
	return items, ok
}

func (c *memFeaturedCache) Set(_ context.Context, n int, items []*domain.Property) {
	c.sets++
	c.entries[n] = items
}

func newPropertyFixture() (*PropertyService, *stubPropertyRepo, *stubUserRepo, *memFeaturedCache) {
	users := newStubUserRepo()
	repo := newStubPropertyRepo()
	cache := newMemFeaturedCache()
	svc := NewPropertyService(repo, users, &stubUploader{}, cache, zerolog.Nop())
	return svc, repo, users, cache
}

func approvedOwnerClaims(t *testing.T, users *stubUserRepo) *domain.Claims {
	t.Helper()
	owner := seedOwner(t, users, domain.HostApproved, true)
	return &domain.Claims{Subject: owner.ID, Email: owner.Email, Role: domain.RoleOwner}
}

func cabinInput() ports.CreatePropertyInput {
	return ports.CreatePropertyInput{
		Title:         "Cabane perchée",
		Description:   "Une cabane dans les arbres.",
		Type:          domain.TypeCabin,
		PricePerNight: 120,
		Capacity:      4,
		Location:      domain.Location{City: "Annecy", Country: "France"},
		Amenities:     []string{"wifi"},
	}
}

func TestPropertyService_Create(t *testing.T) {
	svc, _, users, _ := newPropertyFixture()
	claims := approvedOwnerClaims(t, users)

	created, err := svc.Create(context.Background(), claims, cabinInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.OwnerID != claims.Subject {
		t.Fatalf("expected owner %s, got %s", claims.Subject, created.OwnerID)
	}
	if !created.IsActive {
		t.Fatalf("expected new listing to be active")
	}
}

func TestPropertyService_CreateRejectsUnapprovedOwner(t *testing.T) {
	for _, tc := range []struct {
		name   string
		status domain.HostStatus
		active bool
	}{
		{"pending", domain.HostPending, true},
		{"rejected", domain.HostRejected, false},
		{"suspended", domain.HostApproved, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, users, _ := newPropertyFixture()
			owner := seedOwner(t, users, tc.status, tc.active)
			claims := &domain.Claims{Subject: owner.ID, Role: domain.RoleOwner}

			if _, err := svc.Create(context.Background(), claims, cabinInput()); err != domain.ErrHostNotApproved {
				t.Fatalf("expected ErrHostNotApproved, got %v", err)
			}
		})
	}
}

func TestPropertyService_CreateRoleGate(t *testing.T) {
	svc, _, _, _ := newPropertyFixture()

	if _, err := svc.Create(context.Background(), &domain.Claims{Subject: "u1", Role: domain.RoleUser}, cabinInput()); err != domain.ErrForbiddenRole {
		t.Fatalf("expected ErrForbiddenRole, got %v", err)
	}
	if _, err := svc.Create(context.Background(), nil, cabinInput()); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestPropertyService_CreateAdminBypassesApproval(t *testing.T) {
	svc, _, _, _ := newPropertyFixture()

	// the admin id has no user record at all; the approval lookup is skipped
	created, err := svc.Create(context.Background(), adminClaims, cabinInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.OwnerID != adminClaims.Subject {
		t.Fatalf("expected owner %s, got %s", adminClaims.Subject, created.OwnerID)
	}
}

func TestPropertyService_CreateInvalidType(t *testing.T) {
	svc, _, users, _ := newPropertyFixture()
	claims := approvedOwnerClaims(t, users)

	input := cabinInput()
	input.Type = "castle"
	if _, err := svc.Create(context.Background(), claims, input); err != domain.ErrInvalidTarget {
		t.Fatalf("expected ErrInvalidTarget, got %v", err)
	}
}

func TestPropertyService_UpdateOwnerGate(t *testing.T) {
	svc, _, users, _ := newPropertyFixture()
	claims := approvedOwnerClaims(t, users)
	created, err := svc.Create(context.Background(), claims, cabinInput())
	if err != nil {
		t.Fatalf("seed property: %v", err)
	}

	title := "Cabane rénovée"
	input := ports.UpdatePropertyInput{Title: &title}

	// another owner gets a distinct forbidden error
	other := &domain.Claims{Subject: "someone-else", Role: domain.RoleOwner}
	if _, err := svc.Update(context.Background(), other, created.ID, input); err != domain.ErrForbiddenOwner {
		t.Fatalf("expected ErrForbiddenOwner, got %v", err)
	}

	// the owner succeeds
	updated, err := svc.Update(context.Background(), claims, created.ID, input)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Title != title {
		t.Fatalf("expected title %q, got %q", title, updated.Title)
	}
	if updated.Capacity != created.Capacity {
		t.Fatalf("nil input fields must leave values unchanged")
	}

	// and so does an admin who owns nothing
	price := 150.0
	updated, err = svc.Update(context.Background(), adminClaims, created.ID, ports.UpdatePropertyInput{PricePerNight: &price})
	if err != nil {
		t.Fatalf("admin update returned error: %v", err)
	}
	if updated.PricePerNight != price {
		t.Fatalf("expected price %v, got %v", price, updated.PricePerNight)
	}
}

func TestPropertyService_UpdateUnknownProperty(t *testing.T) {
	svc, _, users, _ := newPropertyFixture()
	claims := approvedOwnerClaims(t, users)

	if _, err := svc.Update(context.Background(), claims, "missing", ports.UpdatePropertyInput{}); err != domain.ErrPropertyNotFound {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
}

func TestPropertyService_Delete(t *testing.T) {
	svc, _, users, _ := newPropertyFixture()
	claims := approvedOwnerClaims(t, users)
	created, _ := svc.Create(context.Background(), claims, cabinInput())

	stranger := &domain.Claims{Subject: "intruder", Role: domain.RoleUser}
	if err := svc.Delete(context.Background(), stranger, created.ID); err != domain.ErrForbiddenOwner {
		t.Fatalf("expected ErrForbiddenOwner, got %v", err)
	}

	if err := svc.Delete(context.Background(), claims, created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); err != domain.ErrPropertyNotFound {
		t.Fatalf("expected ErrPropertyNotFound after delete, got %v", err)
	}
}

func TestPropertyService_UploadImages(t *testing.T) {
	svc, _, users, _ := newPropertyFixture()
	claims := approvedOwnerClaims(t, users)
	created, _ := svc.Create(context.Background(), claims, cabinInput())

	files := []ports.FileUpload{
		{Filename: "front.jpg", ContentType: "image/jpeg", Data: []byte("jpeg-bytes")},
		{Filename: "inside.jpg", ContentType: "image/jpeg", Data: []byte("jpeg-bytes")},
	}
	updated, err := svc.UploadImages(context.Background(), claims, created.ID, files)
	if err != nil {
		t.Fatalf("UploadImages returned error: %v", err)
	}
	if len(updated.Images) != 2 {
		t.Fatalf("expected 2 images, got %d", len(updated.Images))
	}
	if updated.Images[0].URL == "" || updated.Images[0].PublicID == "" {
		t.Fatalf("expected stored references, got %+v", updated.Images[0])
	}
}

func TestPropertyService_FeaturedUsesCache(t *testing.T) {
	svc, repo, users, cache := newPropertyFixture()
	claims := approvedOwnerClaims(t, users)

	created, err := svc.Create(context.Background(), claims, cabinInput())
	if err != nil {
		t.Fatalf("seed property: %v", err)
	}

	// cold: served from the store, then written through
	items, err := svc.Featured(context.Background(), 4)
	if err != nil {
		t.Fatalf("Featured returned error: %v", err)
	}
	if len(items) != 1 || items[0].ID != created.ID {
		t.Fatalf("unexpected featured set: %+v", items)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache fill, got %d", cache.sets)
	}

	// warm: the store is no longer consulted
	if err := repo.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	items, err = svc.Featured(context.Background(), 4)
	if err != nil {
		t.Fatalf("Featured returned error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected cached result, got %+v", items)
	}
	if cache.sets != 1 {
		t.Fatalf("cache hit must not refill, sets=%d", cache.sets)
	}
}

func TestPropertyService_FeaturedDefaultCount(t *testing.T) {
	svc, _, _, cache := newPropertyFixture()

	if _, err := svc.Featured(context.Background(), 0); err != nil {
		t.Fatalf("Featured returned error: %v", err)
	}
	if _, ok := cache.entries[featuredDefault]; !ok {
		t.Fatalf("expected default count %d to be cached", featuredDefault)
	}
}
