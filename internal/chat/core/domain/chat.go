package domain

import (
	"errors"
	"math"
	"time"
)

const (
	DefaultPage          = 1
	DefaultPageSize      = 20
	MaxPageSize          = 100
	DefaultMessageLimit  = 50
	SearchConversationsN = 20
	SearchMessagesN      = 50
)

var ErrConversationNotFound = errors.New("conversation not found")

type Conversation struct {
	ID                       string
	CustomerName             *string
	CustomerContact          *string
	CustomerEmail            *string
	Platform                 *string
	Category                 *string
	Subcategory              *string
	Status                   *string
	Priority                 *string
	Sentiment                *string
	SatisfactionScore        *float64
	TotalMessages            int64
	FirstResponseTimeSeconds *float64
	AvgResponseTimeSeconds   *float64
	StartTime                *time.Time
	EndTime                  *time.Time
	CreatedAt                time.Time
}

// Message is one turn of a conversation. The JSON columns are kept raw.
type Message struct {
	ID             string
	Role           string
	Content        string
	ContentType    *string
	ModelUsed      *string
	TokensUsed     *int64
	ResponseTimeMs *int64
	RAGContext     []byte
	SourcesUsed    []byte
	Metadata       []byte
	Timestamp      time.Time
}

type ConversationDetail struct {
	Conversation Conversation
	Messages     []Message
}

type MessageHistoryEntry struct {
	ID             string
	ConversationID string
	CustomerName   *string
	Platform       *string
	Role           string
	Content        string
	Timestamp      time.Time
}

type ConversationMatch struct {
	ID              string
	CustomerName    *string
	CustomerContact *string
	Platform        *string
	Category        *string
	Status          *string
	StartTime       *time.Time
}

type MessageMatch struct {
	ID             string
	ConversationID string
	CustomerName   *string
	Role           string
	Content        string
	Timestamp      time.Time
}

type SearchResult struct {
	Conversations []ConversationMatch
	Messages      []MessageMatch
}

type Pagination struct {
	Page       int
	Limit      int
	Total      int64
	TotalPages int64
}

// NewPagination fills TotalPages as ceil(total/limit).
func NewPagination(page, limit int, total int64) Pagination {
	p := Pagination{Page: page, Limit: limit, Total: total}
	if limit > 0 {
		p.TotalPages = (total + int64(limit) - 1) / int64(limit)
	}
	return p
}

// Offset is the row offset of the page. It saturates at math.MaxInt, which
// still yields an empty page rather than a negative OFFSET.
func (p Pagination) Offset() int {
	if p.Page < 1 || p.Limit < 1 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

type ConversationPage struct {
	Items      []Conversation
	Pagination Pagination
}
