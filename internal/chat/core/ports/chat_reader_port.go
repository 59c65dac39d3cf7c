package ports

import (
	"context"

	"support-analytics-service/internal/chat/core/domain"

	"github.com/google/uuid"
)

// ConversationFilter narrows list and count queries. Nil fields are ignored.
type ConversationFilter struct {
	Status   *string
	Platform *string
}

type ChatReaderPort interface {
	ListConversations(ctx context.Context, f ConversationFilter, limit, offset int) ([]domain.Conversation, error)
	CountConversations(ctx context.Context, f ConversationFilter) (int64, error)

	// GetConversation returns domain.ErrConversationNotFound for unknown ids.
	GetConversation(ctx context.Context, id uuid.UUID) (*domain.Conversation, error)
	ConversationMessages(ctx context.Context, id uuid.UUID) ([]domain.Message, error)

	RecentMessages(ctx context.Context, limit int) ([]domain.MessageHistoryEntry, error)

	SearchConversations(ctx context.Context, pattern string, limit int) ([]domain.ConversationMatch, error)
	SearchMessages(ctx context.Context, pattern string, limit int) ([]domain.MessageMatch, error)
}
