package usecase

import (
	"cmp"
	"context"
	"slices"
	"time"

	"support-analytics-service/internal/analytics/core/domain"
	"support-analytics-service/internal/analytics/core/ports"
	"support-analytics-service/internal/fanout"
)

type GetSummaryUseCase struct {
	reader ports.SummaryReader
	now    func() time.Time
}

// NewGetSummaryUseCase builds the summary aggregator. A nil clock means time.Now.
func NewGetSummaryUseCase(reader ports.SummaryReader, now func() time.Time) *GetSummaryUseCase {
	if now == nil {
		now = time.Now
	}
	return &GetSummaryUseCase{reader: reader, now: now}
}

// Execute runs every summary read concurrently and returns the combined
// snapshot. The reads share no transaction, so metrics may be skewed by
// writes that land between them. Any failed read fails the whole summary.
func (uc *GetSummaryUseCase) Execute(ctx context.Context) (*domain.Summary, error) {
	var (
		total, active, messages, tokens int64
		satisfaction                    *float64
		times                           domain.ResponseTimes
		sentiment, platform, category   []domain.DistributionEntry
	)

	today := domain.StartOfDay(uc.now())

	err := fanout.Run(ctx,
		func(ctx context.Context) (err error) {
			total, err = uc.reader.CountConversations(ctx)
			return queryError("total_conversations", err)
		},
		func(ctx context.Context) (err error) {
			active, err = uc.reader.CountActiveConversations(ctx)
			return queryError("active_conversations", err)
		},
		func(ctx context.Context) (err error) {
			messages, err = uc.reader.CountMessages(ctx)
			return queryError("total_messages", err)
		},
		func(ctx context.Context) (err error) {
			satisfaction, err = uc.reader.AvgSatisfaction(ctx)
			return queryError("avg_satisfaction", err)
		},
		func(ctx context.Context) (err error) {
			sentiment, err = uc.reader.SentimentDistribution(ctx)
			return queryError("sentiment_distribution", err)
		},
		func(ctx context.Context) (err error) {
			platform, err = uc.reader.PlatformDistribution(ctx)
			return queryError("platform_distribution", err)
		},
		func(ctx context.Context) (err error) {
			category, err = uc.reader.CategoryDistribution(ctx, domain.CategoryLimit)
			return queryError("category_distribution", err)
		},
		func(ctx context.Context) (err error) {
			times, err = uc.reader.AvgResponseTimes(ctx)
			return queryError("avg_response_time", err)
		},
		func(ctx context.Context) (err error) {
			tokens, err = uc.reader.TokensUsedOn(ctx, today)
			return queryError("tokens_today", err)
		},
	)
	if err != nil {
		return nil, err
	}

	return &domain.Summary{
		TotalConversations:    total,
		ActiveConversations:   active,
		TotalMessages:         messages,
		AvgSatisfactionScore:  roundOrZero(satisfaction),
		AvgFirstResponseTime:  roundOrZero(times.AvgFirstResponse),
		AvgResponseTime:       roundOrZero(times.AvgResponse),
		TokensUsedToday:       tokens,
		SentimentDistribution: nonNil(sentiment),
		PlatformDistribution:  nonNil(platform),
		CategoryDistribution:  topCategories(category, domain.CategoryLimit),
	}, nil
}

func roundOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return domain.Round2(*v)
}

func nonNil(entries []domain.DistributionEntry) []domain.DistributionEntry {
	if entries == nil {
		return []domain.DistributionEntry{}
	}
	return entries
}

// topCategories keeps the store order for equal counts.
func topCategories(entries []domain.DistributionEntry, limit int) []domain.DistributionEntry {
	out := slices.Clone(nonNil(entries))
	slices.SortStableFunc(out, func(a, b domain.DistributionEntry) int {
		return cmp.Compare(b.Count, a.Count)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
