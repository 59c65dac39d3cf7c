package fiber

import (
	"strconv"
	"time"

	"support-analytics-service/internal/analytics/core/domain"
)

const dateLayout = "2006-01-02"

type DistributionEntryResponse struct {
	Key   string `json:"key" example:"web"`
	Count int64  `json:"count" example:"42"`
}

// SummaryResponse carries averages as strings with exactly two decimals.
type SummaryResponse struct {
	TotalConversations    int64                       `json:"totalConversations"`
	ActiveConversations   int64                       `json:"activeConversations"`
	TotalMessages         int64                       `json:"totalMessages"`
	AvgSatisfactionScore  string                      `json:"avgSatisfactionScore" example:"4.25"`
	AvgFirstResponseTime  string                      `json:"avgFirstResponseTime" example:"12.50"`
	AvgResponseTime       string                      `json:"avgResponseTime" example:"30.00"`
	TokensUsedToday       int64                       `json:"tokensUsedToday"`
	SentimentDistribution []DistributionEntryResponse `json:"sentimentDistribution"`
	PlatformDistribution  []DistributionEntryResponse `json:"platformDistribution"`
	CategoryDistribution  []DistributionEntryResponse `json:"categoryDistribution"`
}

type DailyStatResponse struct {
	Date                   string   `json:"date" example:"2025-12-07"`
	Platform               *string  `json:"platform"`
	TotalConversations     int64    `json:"total_conversations"`
	TotalMessages          int64    `json:"total_messages"`
	TotalTokensUsed        int64    `json:"total_tokens_used"`
	PositiveSentimentCount int64    `json:"positive_sentiment_count"`
	NegativeSentimentCount int64    `json:"negative_sentiment_count"`
	NeutralSentimentCount  int64    `json:"neutral_sentiment_count"`
	AvgSatisfactionScore   *float64 `json:"avg_satisfaction_score"`
}

type PerformanceRowResponse struct {
	Date              string   `json:"date" example:"2025-12-07"`
	MessageCount      int64    `json:"message_count"`
	AvgResponseTimeMs float64  `json:"avg_response_time_ms"`
	MinResponseTimeMs int64    `json:"min_response_time_ms"`
	MaxResponseTimeMs int64    `json:"max_response_time_ms"`
	AvgTokensUsed     *float64 `json:"avg_tokens_used"`
	TotalTokensUsed   *int64   `json:"total_tokens_used"`
}

type TrendPointResponse struct {
	Date                   string   `json:"date" example:"2025-12-07"`
	TotalConversations     int64    `json:"total_conversations"`
	TotalMessages          int64    `json:"total_messages"`
	TotalTokensUsed        int64    `json:"total_tokens_used"`
	PositiveSentimentCount int64    `json:"positive_sentiment_count"`
	NegativeSentimentCount int64    `json:"negative_sentiment_count"`
	NeutralSentimentCount  int64    `json:"neutral_sentiment_count"`
	AvgSatisfactionScore   *float64 `json:"avg_satisfaction_score"`
}

type SummaryEnvelope struct {
	Success bool            `json:"success" example:"true"`
	Data    SummaryResponse `json:"data"`
}

type DailyEnvelope struct {
	Success bool                `json:"success" example:"true"`
	Data    []DailyStatResponse `json:"data"`
}

type PerformanceEnvelope struct {
	Success bool                     `json:"success" example:"true"`
	Data    []PerformanceRowResponse `json:"data"`
}

type TrendsEnvelope struct {
	Success bool                 `json:"success" example:"true"`
	Data    []TrendPointResponse `json:"data"`
}

type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"Failed to fetch summary analytics"`
	Message string `json:"message" example:"connection refused"`
}

func formatFixed2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func toDistribution(entries []domain.DistributionEntry) []DistributionEntryResponse {
	out := make([]DistributionEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, DistributionEntryResponse{Key: e.Key, Count: e.Count})
	}
	return out
}

func toSummaryResponse(s *domain.Summary) SummaryResponse {
	return SummaryResponse{
		TotalConversations:    s.TotalConversations,
		ActiveConversations:   s.ActiveConversations,
		TotalMessages:         s.TotalMessages,
		AvgSatisfactionScore:  formatFixed2(s.AvgSatisfactionScore),
		AvgFirstResponseTime:  formatFixed2(s.AvgFirstResponseTime),
		AvgResponseTime:       formatFixed2(s.AvgResponseTime),
		TokensUsedToday:       s.TokensUsedToday,
		SentimentDistribution: toDistribution(s.SentimentDistribution),
		PlatformDistribution:  toDistribution(s.PlatformDistribution),
		CategoryDistribution:  toDistribution(s.CategoryDistribution),
	}
}

func toDailyResponse(rows []domain.DailyStat) []DailyStatResponse {
	out := make([]DailyStatResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, DailyStatResponse{
			Date:                   formatDate(r.Date),
			Platform:               r.Platform,
			TotalConversations:     r.TotalConversations,
			TotalMessages:          r.TotalMessages,
			TotalTokensUsed:        r.TotalTokensUsed,
			PositiveSentimentCount: r.PositiveSentimentCount,
			NegativeSentimentCount: r.NegativeSentimentCount,
			NeutralSentimentCount:  r.NeutralSentimentCount,
			AvgSatisfactionScore:   r.AvgSatisfactionScore,
		})
	}
	return out
}

func toPerformanceResponse(rows []domain.PerformanceRow) []PerformanceRowResponse {
	out := make([]PerformanceRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, PerformanceRowResponse{
			Date:              formatDate(r.Date),
			MessageCount:      r.MessageCount,
			AvgResponseTimeMs: r.AvgResponseTimeMs,
			MinResponseTimeMs: r.MinResponseTimeMs,
			MaxResponseTimeMs: r.MaxResponseTimeMs,
			AvgTokensUsed:     r.AvgTokensUsed,
			TotalTokensUsed:   r.TotalTokensUsed,
		})
	}
	return out
}

func toTrendsResponse(rows []domain.TrendPoint) []TrendPointResponse {
	out := make([]TrendPointResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, TrendPointResponse{
			Date:                   formatDate(r.Date),
			TotalConversations:     r.TotalConversations,
			TotalMessages:          r.TotalMessages,
			TotalTokensUsed:        r.TotalTokensUsed,
			PositiveSentimentCount: r.PositiveSentimentCount,
			NegativeSentimentCount: r.NegativeSentimentCount,
			NeutralSentimentCount:  r.NeutralSentimentCount,
			AvgSatisfactionScore:   r.AvgSatisfactionScore,
		})
	}
	return out
}
