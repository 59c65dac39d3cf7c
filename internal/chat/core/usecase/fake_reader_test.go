package usecase_test

import (
	"context"
	"sync"

	"support-analytics-service/internal/chat/core/domain"
	"support-analytics-service/internal/chat/core/ports"

	"github.com/google/uuid"
)

// fakeChatReader records the arguments of every call. Methods may run
// concurrently, so captured state is guarded.
type fakeChatReader struct {
	ListConversationsFn    func(ctx context.Context, f ports.ConversationFilter, limit, offset int) ([]domain.Conversation, error)
	CountConversationsFn   func(ctx context.Context, f ports.ConversationFilter) (int64, error)
	GetConversationFn      func(ctx context.Context, id uuid.UUID) (*domain.Conversation, error)
	ConversationMessagesFn func(ctx context.Context, id uuid.UUID) ([]domain.Message, error)
	RecentMessagesFn       func(ctx context.Context, limit int) ([]domain.MessageHistoryEntry, error)
	SearchConversationsFn  func(ctx context.Context, pattern string, limit int) ([]domain.ConversationMatch, error)
	SearchMessagesFn       func(ctx context.Context, pattern string, limit int) ([]domain.MessageMatch, error)

	mu    sync.Mutex
	calls []string
}

var _ ports.ChatReaderPort = (*fakeChatReader)(nil)

func (f *fakeChatReader) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeChatReader) called(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c == name {
			return true
		}
	}
	return false
}

func (f *fakeChatReader) ListConversations(ctx context.Context, fl ports.ConversationFilter, limit, offset int) ([]domain.Conversation, error) {
	f.record("ListConversations")
	if f.ListConversationsFn != nil {
		return f.ListConversationsFn(ctx, fl, limit, offset)
	}
	return nil, nil
}

func (f *fakeChatReader) CountConversations(ctx context.Context, fl ports.ConversationFilter) (int64, error) {
	f.record("CountConversations")
	if f.CountConversationsFn != nil {
		return f.CountConversationsFn(ctx, fl)
	}
	return 0, nil
}

func (f *fakeChatReader) GetConversation(ctx context.Context, id uuid.UUID) (*domain.Conversation, error) {
	f.record("GetConversation")
	if f.GetConversationFn != nil {
		return f.GetConversationFn(ctx, id)
	}
	return nil, domain.ErrConversationNotFound
}

func (f *fakeChatReader) ConversationMessages(ctx context.Context, id uuid.UUID) ([]domain.Message, error) {
	f.record("ConversationMessages")
	if f.ConversationMessagesFn != nil {
		return f.ConversationMessagesFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeChatReader) RecentMessages(ctx context.Context, limit int) ([]domain.MessageHistoryEntry, error) {
	f.record("RecentMessages")
	if f.RecentMessagesFn != nil {
		return f.RecentMessagesFn(ctx, limit)
	}
	return nil, nil
}

func (f *fakeChatReader) SearchConversations(ctx context.Context, pattern string, limit int) ([]domain.ConversationMatch, error) {
	f.record("SearchConversations")
	if f.SearchConversationsFn != nil {
		return f.SearchConversationsFn(ctx, pattern, limit)
	}
	return nil, nil
}

func (f *fakeChatReader) SearchMessages(ctx context.Context, pattern string, limit int) ([]domain.MessageMatch, error) {
	f.record("SearchMessages")
	if f.SearchMessagesFn != nil {
		return f.SearchMessagesFn(ctx, pattern, limit)
	}
	return nil, nil
}

func ptr[T any](v T) *T { return &v }
