package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/atypikhouse/atypikhouse-api/internal/core/domain"
	"github.com/atypikhouse/atypikhouse-api/internal/core/ports"
)

type stubMessageRepo struct {
	inserted []*domain.Message
	fail     bool
}

func (r *stubMessageRepo) Insert(_ context.Context, m *domain.Message) error {
	if r.fail {
		return errors.New("insert failed")
	}
	r.inserted = append(r.inserted, m)
	return nil
}

func (r *stubMessageRepo) ListByRecipient(_ context.Context, recipientID string) ([]*domain.Message, error) {
	var out []*domain.Message
	for _, m := range r.inserted {
		if m.RecipientID == recipientID {
			out = append(out, m)
		}
	}
	return out, nil
}

func TestNotificationService_Process(t *testing.T) {
	repo := &stubMessageRepo{}
	svc := NewNotificationService(repo, zerolog.Nop())

	err := svc.Process(context.Background(), ports.NotificationInput{
		RecipientID: "owner-1",
		Kind:        domain.MessageHostApproved,
		Body:        "Your host account has been approved.",
	})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}

	if len(repo.inserted) != 1 {
		t.Fatalf("expected 1 message, got %d", len(repo.inserted))
	}
	msg := repo.inserted[0]
	if msg.RecipientID != "owner-1" || msg.Kind != domain.MessageHostApproved {
		t.Fatalf("unexpected message: %+v", msg)
	}
	if msg.CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt to be stamped")
	}
}

func TestNotificationService_ProcessInsertFailure(t *testing.T) {
	repo := &stubMessageRepo{fail: true}
	svc := NewNotificationService(repo, zerolog.Nop())

	err := svc.Process(context.Background(), ports.NotificationInput{
		RecipientID: "owner-1",
		Kind:        domain.MessageHostRejected,
	})
	if err == nil {
		t.Fatalf("expected error from failed insert")
	}
}
