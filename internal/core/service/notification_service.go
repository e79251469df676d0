package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/atypikhouse/atypikhouse-api/internal/core/domain"
	"github.com/atypikhouse/atypikhouse-api/internal/core/ports"
)

// notificationService persists notifications into the recipient's inbox. It
// is invoked by the dispatcher workers, never by request handlers directly.
type notificationService struct {
	messages ports.MessageRepository
	log      zerolog.Logger
}

// NewNotificationService returns a NotificationService implementation.
func NewNotificationService(messages ports.MessageRepository, log zerolog.Logger) ports.NotificationService {
	return &notificationService{messages: messages, log: log}
}

// Process writes one notification message.
func (s *notificationService) Process(ctx context.Context, n ports.NotificationInput) error {
	msg := &domain.Message{
		RecipientID: n.RecipientID,
		Kind:        n.Kind,
		Body:        n.Body,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.messages.Insert(ctx, msg); err != nil {
		return fmt.Errorf("persist notification: %w", err)
	}

	s.log.Debug().
		Str("recipient_id", n.RecipientID).
		Str("kind", string(n.Kind)).
		Msg("notification delivered")
	return nil
}
