package fiber

import (
	"encoding/json"
	"time"

	"support-analytics-service/internal/chat/core/domain"
)

type ConversationResponse struct {
	ConversationID           string     `json:"conversation_id"`
	CustomerName             *string    `json:"customer_name"`
	CustomerContact          *string    `json:"customer_contact"`
	CustomerEmail            *string    `json:"customer_email"`
	Platform                 *string    `json:"platform"`
	Category                 *string    `json:"category"`
	Subcategory              *string    `json:"subcategory"`
	Status                   *string    `json:"status"`
	Priority                 *string    `json:"priority"`
	Sentiment                *string    `json:"sentiment"`
	SatisfactionScore        *float64   `json:"satisfaction_score"`
	TotalMessages            int64      `json:"total_messages"`
	FirstResponseTimeSeconds *float64   `json:"first_response_time_seconds"`
	AvgResponseTimeSeconds   *float64   `json:"avg_response_time_seconds"`
	StartTime                *time.Time `json:"start_time"`
	EndTime                  *time.Time `json:"end_time"`
	CreatedAt                time.Time  `json:"created_at"`
}

type MessageResponse struct {
	ID             string          `json:"id"`
	Role           string          `json:"role"`
	Content        string          `json:"content"`
	ContentType    *string         `json:"content_type"`
	ModelUsed      *string         `json:"model_used"`
	TokensUsed     *int64          `json:"tokens_used"`
	ResponseTimeMs *int64          `json:"response_time_ms"`
	RAGContext     json.RawMessage `json:"rag_context" swaggertype:"object"`
	SourcesUsed    json.RawMessage `json:"sources_used" swaggertype:"object"`
	Metadata       json.RawMessage `json:"metadata" swaggertype:"object"`
	Timestamp      time.Time       `json:"timestamp"`
}

type MessageHistoryResponse struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	CustomerName   *string   `json:"customer_name"`
	Platform       *string   `json:"platform"`
	Role           string    `json:"role"`
	Content        string    `json:"content"`
	Timestamp      time.Time `json:"timestamp"`
}

type ConversationMatchResponse struct {
	ConversationID  string     `json:"conversation_id"`
	CustomerName    *string    `json:"customer_name"`
	CustomerContact *string    `json:"customer_contact"`
	Platform        *string    `json:"platform"`
	Category        *string    `json:"category"`
	Status          *string    `json:"status"`
	StartTime       *time.Time `json:"start_time"`
}

type MessageMatchResponse struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	CustomerName   *string   `json:"customer_name"`
	Role           string    `json:"role"`
	Content        string    `json:"content"`
	Timestamp      time.Time `json:"timestamp"`
}

type PaginationResponse struct {
	Page       int   `json:"page" example:"1"`
	Limit      int   `json:"limit" example:"20"`
	Total      int64 `json:"total" example:"57"`
	TotalPages int64 `json:"totalPages" example:"3"`
}

type ConversationListEnvelope struct {
	Success    bool                   `json:"success" example:"true"`
	Data       []ConversationResponse `json:"data"`
	Pagination PaginationResponse     `json:"pagination"`
}

type ConversationDetailResponse struct {
	Conversation ConversationResponse `json:"conversation"`
	Messages     []MessageResponse    `json:"messages"`
}

type ConversationDetailEnvelope struct {
	Success bool                       `json:"success" example:"true"`
	Data    ConversationDetailResponse `json:"data"`
}

type MessageHistoryEnvelope struct {
	Success bool                     `json:"success" example:"true"`
	Data    []MessageHistoryResponse `json:"data"`
}

type SearchResponse struct {
	Conversations []ConversationMatchResponse `json:"conversations"`
	Messages      []MessageMatchResponse      `json:"messages"`
}

type SearchEnvelope struct {
	Success bool           `json:"success" example:"true"`
	Data    SearchResponse `json:"data"`
}

type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"Conversation not found"`
	Message string `json:"message,omitempty"`
}

// rawJSON keeps absent JSON columns as null instead of an empty document.
func rawJSON(b []byte) json.RawMessage {
	if len(b) == 0 {
		return json.RawMessage("null")
	}
	return json.RawMessage(b)
}

func toConversationResponse(c domain.Conversation) ConversationResponse {
	return ConversationResponse{
		ConversationID:           c.ID,
		CustomerName:             c.CustomerName,
		CustomerContact:          c.CustomerContact,
		CustomerEmail:            c.CustomerEmail,
		Platform:                 c.Platform,
		Category:                 c.Category,
		Subcategory:              c.Subcategory,
		Status:                   c.Status,
		Priority:                 c.Priority,
		Sentiment:                c.Sentiment,
		SatisfactionScore:        c.SatisfactionScore,
		TotalMessages:            c.TotalMessages,
		FirstResponseTimeSeconds: c.FirstResponseTimeSeconds,
		AvgResponseTimeSeconds:   c.AvgResponseTimeSeconds,
		StartTime:                c.StartTime,
		EndTime:                  c.EndTime,
		CreatedAt:                c.CreatedAt,
	}
}

func toConversationList(items []domain.Conversation) []ConversationResponse {
	out := make([]ConversationResponse, 0, len(items))
	for _, c := range items {
		out = append(out, toConversationResponse(c))
	}
	return out
}

func toPaginationResponse(p domain.Pagination) PaginationResponse {
	return PaginationResponse{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}

func toConversationDetail(d *domain.ConversationDetail) ConversationDetailResponse {
	msgs := make([]MessageResponse, 0, len(d.Messages))
	for _, m := range d.Messages {
		msgs = append(msgs, MessageResponse{
			ID:             m.ID,
			Role:           m.Role,
			Content:        m.Content,
			ContentType:    m.ContentType,
			ModelUsed:      m.ModelUsed,
			TokensUsed:     m.TokensUsed,
			ResponseTimeMs: m.ResponseTimeMs,
			RAGContext:     rawJSON(m.RAGContext),
			SourcesUsed:    rawJSON(m.SourcesUsed),
			Metadata:       rawJSON(m.Metadata),
			Timestamp:      m.Timestamp,
		})
	}
	return ConversationDetailResponse{
		Conversation: toConversationResponse(d.Conversation),
		Messages:     msgs,
	}
}

func toMessageHistory(rows []domain.MessageHistoryEntry) []MessageHistoryResponse {
	out := make([]MessageHistoryResponse, 0, len(rows))
	for _, e := range rows {
		out = append(out, MessageHistoryResponse{
			ID:             e.ID,
			ConversationID: e.ConversationID,
			CustomerName:   e.CustomerName,
			Platform:       e.Platform,
			Role:           e.Role,
			Content:        e.Content,
			Timestamp:      e.Timestamp,
		})
	}
	return out
}

func toSearchResponse(r *domain.SearchResult) SearchResponse {
	convs := make([]ConversationMatchResponse, 0, len(r.Conversations))
	for _, c := range r.Conversations {
		convs = append(convs, ConversationMatchResponse{
			ConversationID:  c.ID,
			CustomerName:    c.CustomerName,
			CustomerContact: c.CustomerContact,
			Platform:        c.Platform,
			Category:        c.Category,
			Status:          c.Status,
			StartTime:       c.StartTime,
		})
	}

	msgs := make([]MessageMatchResponse, 0, len(r.Messages))
	for _, m := range r.Messages {
		msgs = append(msgs, MessageMatchResponse{
			ID:             m.ID,
			ConversationID: m.ConversationID,
			CustomerName:   m.CustomerName,
			Role:           m.Role,
			Content:        m.Content,
			Timestamp:      m.Timestamp,
		})
	}

	return SearchResponse{Conversations: convs, Messages: msgs}
}
