package usecase

import (
	"context"
	"fmt"

	"support-analytics-service/internal/chat/core/domain"
	"support-analytics-service/internal/chat/core/ports"
	"support-analytics-service/internal/fanout"

	"github.com/google/uuid"
)

type ListConversationsInput struct {
	Page     int // <= 0 means domain.DefaultPage
	Limit    int // <= 0 means domain.DefaultPageSize, capped at domain.MaxPageSize
	Status   *string
	Platform *string
}

type ConversationsUseCase struct {
	reader ports.ChatReaderPort
}

func NewConversationsUseCase(reader ports.ChatReaderPort) *ConversationsUseCase {
	return &ConversationsUseCase{reader: reader}
}

// List returns one page of conversations, newest first, with the total
// number of matching rows.
func (uc *ConversationsUseCase) List(ctx context.Context, in ListConversationsInput) (*domain.ConversationPage, error) {
	page := in.Page
	if page <= 0 {
		page = domain.DefaultPage
	}
	limit := in.Limit
	if limit <= 0 {
		limit = domain.DefaultPageSize
	}
	if limit > domain.MaxPageSize {
		limit = domain.MaxPageSize
	}

	filter := ports.ConversationFilter{
		Status:   nonEmpty(in.Status),
		Platform: nonEmpty(in.Platform),
	}
	offset := domain.Pagination{Page: page, Limit: limit}.Offset()

	var (
		items []domain.Conversation
		total int64
	)
	err := fanout.Run(ctx,
		func(ctx context.Context) error {
			rows, err := uc.reader.ListConversations(ctx, filter, limit, offset)
			if err != nil {
				return fmt.Errorf("list conversations: %w", err)
			}
			items = rows
			return nil
		},
		func(ctx context.Context) error {
			n, err := uc.reader.CountConversations(ctx, filter)
			if err != nil {
				return fmt.Errorf("count conversations: %w", err)
			}
			total = n
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	if items == nil {
		items = []domain.Conversation{}
	}

	return &domain.ConversationPage{
		Items:      items,
		Pagination: domain.NewPagination(page, limit, total),
	}, nil
}

// Get returns a conversation with its messages in chronological order.
func (uc *ConversationsUseCase) Get(ctx context.Context, rawID string) (*domain.ConversationDetail, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrInvalidConversationID
	}

	conv, err := uc.reader.GetConversation(ctx, id)
	if err != nil {
		return nil, err
	}

	msgs, err := uc.reader.ConversationMessages(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("conversation messages: %w", err)
	}
	if msgs == nil {
		msgs = []domain.Message{}
	}

	return &domain.ConversationDetail{Conversation: *conv, Messages: msgs}, nil
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
