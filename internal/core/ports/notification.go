package ports

import (
	"context"

	"github.com/atypikhouse/atypikhouse-api/internal/core/domain"
)

// NotificationInput is one notification awaiting delivery to a user's inbox.
type NotificationInput struct {
	RecipientID string
	Kind        domain.MessageKind
	Body        string
}

// Notifier accepts notifications for asynchronous delivery. Enqueueing never
// fails the triggering request.
type Notifier interface {
	Enqueue(n NotificationInput)
}

// NotificationService persists a single notification. It is the consumer
// side of the dispatcher's worker channels.
type NotificationService interface {
	Process(ctx context.Context, n NotificationInput) error
}

// MessageRepository defines persistence for inbox messages.
type MessageRepository interface {
	Insert(ctx context.Context, m *domain.Message) error
	ListByRecipient(ctx context.Context, recipientID string) ([]*domain.Message, error)
}
