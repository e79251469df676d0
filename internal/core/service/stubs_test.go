package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/atypikhouse/atypikhouse-api/internal/core/domain"
	"github.com/atypikhouse/atypikhouse-api/internal/core/ports"
)

// In-memory repository stubs shared by the service tests.

type stubUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		r.seq++
		copy.ID = fmt.Sprintf("u%d", r.seq)
	}
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := cloneUser(u)
	out.PasswordHash = ""
	return out, nil
}

func (r *stubUserRepo) UpdateHostStatus(_ context.Context, id string, status domain.HostStatus, active bool) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.HostStatus = status
	u.IsActive = active
	u.UpdatedAt = time.Now().UTC()
	out := cloneUser(u)
	out.PasswordHash = "stub-hash" // repositories redact; services must strip
	return out, nil
}

func (r *stubUserRepo) SetActive(_ context.Context, id string, active bool) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.IsActive = active
	u.UpdatedAt = time.Now().UTC()
	return cloneUser(u), nil
}

func (r *stubUserRepo) matches(u *domain.User, f ports.UserFilter) bool {
	if f.Role != "" && u.Role != f.Role {
		return false
	}
	if f.HostStatus != "" && u.HostStatus != f.HostStatus {
		return false
	}
	if f.Active != nil && u.IsActive != *f.Active {
		return false
	}
	return true
}

func (r *stubUserRepo) List(_ context.Context, f ports.UserFilter) ([]*domain.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.User
	for _, u := range r.users {
		if r.matches(u, f) {
			out = append(out, cloneUser(u))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, int64(len(out)), nil
}

func (r *stubUserRepo) Count(_ context.Context, f ports.UserFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.users {
		if r.matches(u, f) {
			n++
		}
	}
	return n, nil
}

type stubPropertyRepo struct {
	mu         sync.Mutex
	properties map[string]*domain.Property
	seq        int
}

func newStubPropertyRepo() *stubPropertyRepo {
	return &stubPropertyRepo{properties: make(map[string]*domain.Property)}
}

func cloneProperty(p *domain.Property) *domain.Property {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubPropertyRepo) Create(_ context.Context, p *domain.Property) (*domain.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := cloneProperty(p)
	if copy.ID == "" {
		r.seq++
		copy.ID = fmt.Sprintf("p%d", r.seq)
	}
	r.properties[copy.ID] = cloneProperty(copy)
	return cloneProperty(copy), nil
}

func (r *stubPropertyRepo) FindByID(_ context.Context, id string) (*domain.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.properties[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	return cloneProperty(p), nil
}

func (r *stubPropertyRepo) Update(_ context.Context, p *domain.Property) (*domain.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.properties[p.ID]; !ok {
		return nil, domain.ErrPropertyNotFound
	}
	r.properties[p.ID] = cloneProperty(p)
	return cloneProperty(p), nil
}

func (r *stubPropertyRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.properties[id]; !ok {
		return domain.ErrPropertyNotFound
	}
	delete(r.properties, id)
	return nil
}

func (r *stubPropertyRepo) AddImages(_ context.Context, id string, images []domain.Image) (*domain.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.properties[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	p.Images = append(p.Images, images...)
	return cloneProperty(p), nil
}

func (r *stubPropertyRepo) matches(p *domain.Property, f ports.PropertyFilter) bool {
	if f.Type != "" && p.Type != f.Type {
		return false
	}
	if f.OwnerID != "" && p.OwnerID != f.OwnerID {
		return false
	}
	if f.Active != nil && p.IsActive != *f.Active {
		return false
	}
	return true
}

func (r *stubPropertyRepo) List(_ context.Context, f ports.PropertyFilter) ([]*domain.Property, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Property
	for _, p := range r.properties {
		if r.matches(p, f) {
			out = append(out, cloneProperty(p))
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubPropertyRepo) Count(_ context.Context, f ports.PropertyFilter) (int64, error) {
	_, n, _ := r.List(context.Background(), f)
	return n, nil
}

func (r *stubPropertyRepo) CountByOwner(_ context.Context, ownerID string) (int64, error) {
	return r.Count(context.Background(), ports.PropertyFilter{OwnerID: ownerID})
}

func (r *stubPropertyRepo) Featured(_ context.Context, n int) ([]*domain.Property, error) {
	active := true
	items, _, _ := r.List(context.Background(), ports.PropertyFilter{Active: &active})
	if len(items) > n {
		items = items[:n]
	}
	return items, nil
}

type stubBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*domain.Booking
	seq      int
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{bookings: make(map[string]*domain.Booking)}
}

func (r *stubBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := *b
	if copy.ID == "" {
		r.seq++
		copy.ID = fmt.Sprintf("b%d", r.seq)
	}
	stored := copy
	r.bookings[copy.ID] = &stored
	return &copy, nil
}

func (r *stubBookingRepo) FindByID(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	copy := *b
	return &copy, nil
}

func (r *stubBookingRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	b.Status = status
	copy := *b
	return &copy, nil
}

func (r *stubBookingRepo) ListByUser(_ context.Context, userID string) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			copy := *b
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (r *stubBookingRepo) CountByStatus(_ context.Context, status domain.BookingStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, b := range r.bookings {
		if b.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *stubBookingRepo) CountAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.bookings)), nil
}

type stubFavoriteRepo struct {
	mu    sync.Mutex
	pairs map[string]time.Time // userID|propertyID
}

func newStubFavoriteRepo() *stubFavoriteRepo {
	return &stubFavoriteRepo{pairs: make(map[string]time.Time)}
}

func favKey(userID, propertyID string) string { return userID + "|" + propertyID }

func (r *stubFavoriteRepo) Add(_ context.Context, userID, propertyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pairs[favKey(userID, propertyID)] = time.Now()
	return nil
}

func (r *stubFavoriteRepo) Remove(_ context.Context, userID, propertyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pairs, favKey(userID, propertyID))
	return nil
}

func (r *stubFavoriteRepo) Exists(_ context.Context, userID, propertyID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.pairs[favKey(userID, propertyID)]
	return ok, nil
}

func (r *stubFavoriteRepo) ListByUser(_ context.Context, userID string) ([]*domain.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Favorite
	for key, at := range r.pairs {
		for i := 0; i < len(key); i++ {
			if key[i] == '|' {
				if key[:i] == userID {
					out = append(out, &domain.Favorite{UserID: key[:i], PropertyID: key[i+1:], CreatedAt: at})
				}
				break
			}
		}
	}
	return out, nil
}

// stubNotifier records enqueued notifications.
type stubNotifier struct {
	mu   sync.Mutex
	sent []ports.NotificationInput
}

func (n *stubNotifier) Enqueue(in ports.NotificationInput) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, in)
}

func (n *stubNotifier) all() []ports.NotificationInput {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]ports.NotificationInput(nil), n.sent...)
}

// stubUploader returns deterministic references.
type stubUploader struct {
	mu    sync.Mutex
	count int
}

func (u *stubUploader) Upload(_ context.Context, file ports.FileUpload) (*ports.UploadResult, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.count++
	id := fmt.Sprintf("img%d", u.count)
	return &ports.UploadResult{URL: "https://cdn.test/" + id, PublicID: id}, nil
}
