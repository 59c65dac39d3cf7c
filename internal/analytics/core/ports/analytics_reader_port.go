package ports

import (
	"context"
	"time"

	"support-analytics-service/internal/analytics/core/domain"
)

type DailyFilter struct {
	Range    domain.DateRange
	Platform *string // optional exact match
}

// SummaryReader exposes the independent reads composed into a Summary.
// Every method is a single query and safe to call concurrently.
type SummaryReader interface {
	CountConversations(ctx context.Context) (int64, error)
	CountActiveConversations(ctx context.Context) (int64, error)
	CountMessages(ctx context.Context) (int64, error)
	AvgSatisfaction(ctx context.Context) (*float64, error)
	SentimentDistribution(ctx context.Context) ([]domain.DistributionEntry, error)
	PlatformDistribution(ctx context.Context) ([]domain.DistributionEntry, error)
	CategoryDistribution(ctx context.Context, limit int) ([]domain.DistributionEntry, error)
	AvgResponseTimes(ctx context.Context) (domain.ResponseTimes, error)
	TokensUsedOn(ctx context.Context, day time.Time) (int64, error)
}

type AnalyticsReaderPort interface {
	SummaryReader

	DailyStats(ctx context.Context, f DailyFilter) ([]domain.DailyStat, error)
	Performance(ctx context.Context, r domain.DateRange) ([]domain.PerformanceRow, error)
	Trends(ctx context.Context, r domain.DateRange) ([]domain.TrendPoint, error)
}
