package usecase_test

import (
	"context"
	"sync"
	"time"

	"support-analytics-service/internal/analytics/core/domain"
	"support-analytics-service/internal/analytics/core/ports"
)

// fakeAnalyticsReader fakes AnalyticsReaderPort for tests. Every Fn field
// left nil returns the zero value, which models an empty store.
type fakeAnalyticsReader struct {
	mu sync.Mutex

	CountConversationsFn       func(ctx context.Context) (int64, error)
	CountActiveConversationsFn func(ctx context.Context) (int64, error)
	CountMessagesFn            func(ctx context.Context) (int64, error)
	AvgSatisfactionFn          func(ctx context.Context) (*float64, error)
	SentimentFn                func(ctx context.Context) ([]domain.DistributionEntry, error)
	PlatformFn                 func(ctx context.Context) ([]domain.DistributionEntry, error)
	CategoryFn                 func(ctx context.Context, limit int) ([]domain.DistributionEntry, error)
	ResponseTimesFn            func(ctx context.Context) (domain.ResponseTimes, error)
	TokensUsedOnFn             func(ctx context.Context, day time.Time) (int64, error)

	DailyStatsFn  func(ctx context.Context, f ports.DailyFilter) ([]domain.DailyStat, error)
	PerformanceFn func(ctx context.Context, r domain.DateRange) ([]domain.PerformanceRow, error)
	TrendsFn      func(ctx context.Context, r domain.DateRange) ([]domain.TrendPoint, error)

	calls []string
}

func (f *fakeAnalyticsReader) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeAnalyticsReader) called(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c == name {
			return true
		}
	}
	return false
}

func (f *fakeAnalyticsReader) CountConversations(ctx context.Context) (int64, error) {
	f.record("CountConversations")
	if f.CountConversationsFn != nil {
		return f.CountConversationsFn(ctx)
	}
	return 0, nil
}

func (f *fakeAnalyticsReader) CountActiveConversations(ctx context.Context) (int64, error) {
	f.record("CountActiveConversations")
	if f.CountActiveConversationsFn != nil {
		return f.CountActiveConversationsFn(ctx)
	}
	return 0, nil
}

func (f *fakeAnalyticsReader) CountMessages(ctx context.Context) (int64, error) {
	f.record("CountMessages")
	if f.CountMessagesFn != nil {
		return f.CountMessagesFn(ctx)
	}
	return 0, nil
}

func (f *fakeAnalyticsReader) AvgSatisfaction(ctx context.Context) (*float64, error) {
	f.record("AvgSatisfaction")
	if f.AvgSatisfactionFn != nil {
		return f.AvgSatisfactionFn(ctx)
	}
	return nil, nil
}

func (f *fakeAnalyticsReader) SentimentDistribution(ctx context.Context) ([]domain.DistributionEntry, error) {
	f.record("SentimentDistribution")
	if f.SentimentFn != nil {
		return f.SentimentFn(ctx)
	}
	return nil, nil
}

func (f *fakeAnalyticsReader) PlatformDistribution(ctx context.Context) ([]domain.DistributionEntry, error) {
	f.record("PlatformDistribution")
	if f.PlatformFn != nil {
		return f.PlatformFn(ctx)
	}
	return nil, nil
}

func (f *fakeAnalyticsReader) CategoryDistribution(ctx context.Context, limit int) ([]domain.DistributionEntry, error) {
	f.record("CategoryDistribution")
	if f.CategoryFn != nil {
		return f.CategoryFn(ctx, limit)
	}
	return nil, nil
}

func (f *fakeAnalyticsReader) AvgResponseTimes(ctx context.Context) (domain.ResponseTimes, error) {
	f.record("AvgResponseTimes")
	if f.ResponseTimesFn != nil {
		return f.ResponseTimesFn(ctx)
	}
	return domain.ResponseTimes{}, nil
}

func (f *fakeAnalyticsReader) TokensUsedOn(ctx context.Context, day time.Time) (int64, error) {
	f.record("TokensUsedOn")
	if f.TokensUsedOnFn != nil {
		return f.TokensUsedOnFn(ctx, day)
	}
	return 0, nil
}

func (f *fakeAnalyticsReader) DailyStats(ctx context.Context, flt ports.DailyFilter) ([]domain.DailyStat, error) {
	f.record("DailyStats")
	if f.DailyStatsFn != nil {
		return f.DailyStatsFn(ctx, flt)
	}
	return nil, nil
}

func (f *fakeAnalyticsReader) Performance(ctx context.Context, r domain.DateRange) ([]domain.PerformanceRow, error) {
	f.record("Performance")
	if f.PerformanceFn != nil {
		return f.PerformanceFn(ctx, r)
	}
	return nil, nil
}

func (f *fakeAnalyticsReader) Trends(ctx context.Context, r domain.DateRange) ([]domain.TrendPoint, error) {
	f.record("Trends")
	if f.TrendsFn != nil {
		return f.TrendsFn(ctx, r)
	}
	return nil, nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func ptr[T any](v T) *T { return &v }
