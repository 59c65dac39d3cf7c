package postgres

import (
	"context"
	"fmt"
	"strings"

	"support-analytics-service/internal/chat/core/domain"
	"support-analytics-service/internal/chat/core/ports"

	"github.com/google/uuid"
)

type ChatRepository struct {
	db DB
}

func NewChatRepository(db DB) *ChatRepository {
	return &ChatRepository{db: db}
}

var _ ports.ChatReaderPort = (*ChatRepository)(nil)

const conversationColumns = `
    conversation_id::text,
    customer_name,
    customer_contact,
    customer_email,
    platform,
    category,
    subcategory,
    status,
    priority,
    sentiment,
    satisfaction_score,
    COALESCE(total_messages, 0),
    first_response_time_seconds,
    avg_response_time_seconds,
    start_time,
    end_time,
    created_at`

const (
	getConversationSQL = `SELECT` + conversationColumns + `
FROM conversations
WHERE conversation_id = $1::uuid`

	conversationMessagesSQL = `
SELECT
    id::text,
    role,
    content,
    content_type,
    model_used,
    tokens_used,
    response_time_ms,
    to_jsonb(rag_context),
    to_jsonb(sources_used),
    to_jsonb(metadata),
    timestamp
FROM messages
WHERE conversation_id = $1::uuid
ORDER BY timestamp ASC`

	recentMessagesSQL = `
SELECT
    id::text,
    conversation_id::text,
    customer_name,
    platform,
    role,
    content,
    timestamp
FROM v_message_history
ORDER BY timestamp DESC
LIMIT $1`

	searchConversationsSQL = `
SELECT
    conversation_id::text,
    customer_name,
    customer_contact,
    platform,
    category,
    status,
    start_time
FROM conversations
WHERE customer_name ILIKE $1
   OR customer_contact ILIKE $1
   OR customer_email ILIKE $1
   OR category ILIKE $1
ORDER BY created_at DESC
LIMIT $2`

	searchMessagesSQL = `
SELECT
    m.id::text,
    m.conversation_id::text,
    c.customer_name,
    m.role,
    m.content,
    m.timestamp
FROM messages m
JOIN conversations c ON m.conversation_id = c.conversation_id
WHERE m.content ILIKE $1
ORDER BY m.timestamp DESC
LIMIT $2`
)

// conversationWhere renders the optional filters starting at $1.
func conversationWhere(f ports.ConversationFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.Status != nil {
		args = append(args, *f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.Platform != nil {
		args = append(args, *f.Platform)
		conds = append(conds, fmt.Sprintf("platform = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return "\nWHERE " + strings.Join(conds, " AND "), args
}

func (r *ChatRepository) ListConversations(ctx context.Context, f ports.ConversationFilter, limit, offset int) ([]domain.Conversation, error) {
	where, args := conversationWhere(f)
	query := "SELECT" + conversationColumns + "\nFROM conversations" + where +
		fmt.Sprintf("\nORDER BY created_at DESC\nLIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Conversation{}
	for rows.Next() {
		c, err := scanConversation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *ChatRepository) CountConversations(ctx context.Context, f ports.ConversationFilter) (int64, error) {
	where, args := conversationWhere(f)

	rows, err := r.db.QueryContext(ctx, "SELECT COUNT(*) FROM conversations"+where, args...)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var n int64
	if rows.Next() {
		if err := rows.Scan(&n); err != nil {
			return 0, err
		}
	}

	return n, rows.Err()
}

func (r *ChatRepository) GetConversation(ctx context.Context, id uuid.UUID) (*domain.Conversation, error) {
	rows, err := r.db.QueryContext(ctx, getConversationSQL, id.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, domain.ErrConversationNotFound
	}

	c, err := scanConversation(rows)
	if err != nil {
		return nil, err
	}
	return &c, rows.Err()
}

func (r *ChatRepository) ConversationMessages(ctx context.Context, id uuid.UUID) ([]domain.Message, error) {
	rows, err := r.db.QueryContext(ctx, conversationMessagesSQL, id.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Message{}
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(
			&m.ID,
			&m.Role,
			&m.Content,
			&m.ContentType,
			&m.ModelUsed,
			&m.TokensUsed,
			&m.ResponseTimeMs,
			&m.RAGContext,
			&m.SourcesUsed,
			&m.Metadata,
			&m.Timestamp,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *ChatRepository) RecentMessages(ctx context.Context, limit int) ([]domain.MessageHistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx, recentMessagesSQL, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.MessageHistoryEntry{}
	for rows.Next() {
		var e domain.MessageHistoryEntry
		if err := rows.Scan(
			&e.ID,
			&e.ConversationID,
			&e.CustomerName,
			&e.Platform,
			&e.Role,
			&e.Content,
			&e.Timestamp,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *ChatRepository) SearchConversations(ctx context.Context, pattern string, limit int) ([]domain.ConversationMatch, error) {
	rows, err := r.db.QueryContext(ctx, searchConversationsSQL, pattern, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.ConversationMatch{}
	for rows.Next() {
		var c domain.ConversationMatch
		if err := rows.Scan(
			&c.ID,
			&c.CustomerName,
			&c.CustomerContact,
			&c.Platform,
			&c.Category,
			&c.Status,
			&c.StartTime,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *ChatRepository) SearchMessages(ctx context.Context, pattern string, limit int) ([]domain.MessageMatch, error) {
	rows, err := r.db.QueryContext(ctx, searchMessagesSQL, pattern, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.MessageMatch{}
	for rows.Next() {
		var m domain.MessageMatch
		if err := rows.Scan(
			&m.ID,
			&m.ConversationID,
			&m.CustomerName,
			&m.Role,
			&m.Content,
			&m.Timestamp,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func scanConversation(rows RowScanner) (domain.Conversation, error) {
	var c domain.Conversation
	err := rows.Scan(
		&c.ID,
		&c.CustomerName,
		&c.CustomerContact,
		&c.CustomerEmail,
		&c.Platform,
		&c.Category,
		&c.Subcategory,
		&c.Status,
		&c.Priority,
		&c.Sentiment,
		&c.SatisfactionScore,
		&c.TotalMessages,
		&c.FirstResponseTimeSeconds,
		&c.AvgResponseTimeSeconds,
		&c.StartTime,
		&c.EndTime,
		&c.CreatedAt,
	)
	return c, err
}
