package usecase

import (
	"context"
	"fmt"
	"strings"

	"support-analytics-service/internal/chat/core/domain"
	"support-analytics-service/internal/chat/core/ports"
	"support-analytics-service/internal/fanout"
)

type MessagesUseCase struct {
	reader ports.ChatReaderPort
}

func NewMessagesUseCase(reader ports.ChatReaderPort) *MessagesUseCase {
	return &MessagesUseCase{reader: reader}
}

// Recent returns the latest message history entries across conversations.
func (uc *MessagesUseCase) Recent(ctx context.Context, limit int) ([]domain.MessageHistoryEntry, error) {
	if limit <= 0 {
		limit = domain.DefaultMessageLimit
	}

	rows, err := uc.reader.RecentMessages(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("recent messages: %w", err)
	}
	if rows == nil {
		rows = []domain.MessageHistoryEntry{}
	}
	return rows, nil
}

// Search matches term as a case-insensitive substring against customer
// fields and message content. Both lookups run concurrently.
func (uc *MessagesUseCase) Search(ctx context.Context, term string) (*domain.SearchResult, error) {
	if strings.TrimSpace(term) == "" {
		return nil, ErrEmptySearchTerm
	}
	pattern := likePattern(term)

	res := &domain.SearchResult{}
	err := fanout.Run(ctx,
		func(ctx context.Context) error {
			rows, err := uc.reader.SearchConversations(ctx, pattern, domain.SearchConversationsN)
			if err != nil {
				return fmt.Errorf("search conversations: %w", err)
			}
			res.Conversations = rows
			return nil
		},
		func(ctx context.Context) error {
			rows, err := uc.reader.SearchMessages(ctx, pattern, domain.SearchMessagesN)
			if err != nil {
				return fmt.Errorf("search messages: %w", err)
			}
			res.Messages = rows
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	if res.Conversations == nil {
		res.Conversations = []domain.ConversationMatch{}
	}
	if res.Messages == nil {
		res.Messages = []domain.MessageMatch{}
	}
	return res, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern wraps term for ILIKE, escaping the LIKE wildcards it contains.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
