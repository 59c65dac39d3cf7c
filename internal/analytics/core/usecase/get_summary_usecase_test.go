package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"support-analytics-service/internal/analytics/core/domain"
	"support-analytics-service/internal/analytics/core/usecase"
)

var now = time.Date(2025, 12, 7, 15, 30, 0, 0, time.UTC)

// ------------------------------------------------------------
// SUCCESS
// ------------------------------------------------------------

func TestGetSummary_Success(t *testing.T) {
	reader := &fakeAnalyticsReader{
		CountConversationsFn:       func(ctx context.Context) (int64, error) { return 120, nil },
		CountActiveConversationsFn: func(ctx context.Context) (int64, error) { return 7, nil },
		CountMessagesFn:            func(ctx context.Context) (int64, error) { return 950, nil },
		AvgSatisfactionFn: func(ctx context.Context) (*float64, error) {
			return ptr(4.23456), nil
		},
		SentimentFn: func(ctx context.Context) ([]domain.DistributionEntry, error) {
			return []domain.DistributionEntry{{Key: "positive", Count: 80}, {Key: "negative", Count: 10}}, nil
		},
		PlatformFn: func(ctx context.Context) ([]domain.DistributionEntry, error) {
			return []domain.DistributionEntry{{Key: "web", Count: 100}, {Key: "whatsapp", Count: 20}}, nil
		},
		CategoryFn: func(ctx context.Context, limit int) ([]domain.DistributionEntry, error) {
			if limit != domain.CategoryLimit {
				t.Fatalf("expected limit=%d, got %d", domain.CategoryLimit, limit)
			}
			return []domain.DistributionEntry{{Key: "billing", Count: 60}, {Key: "shipping", Count: 40}}, nil
		},
		ResponseTimesFn: func(ctx context.Context) (domain.ResponseTimes, error) {
			return domain.ResponseTimes{AvgFirstResponse: ptr(12.346), AvgResponse: ptr(30.0)}, nil
		},
		TokensUsedOnFn: func(ctx context.Context, day time.Time) (int64, error) {
			want := time.Date(2025, 12, 7, 0, 0, 0, 0, time.UTC)
			if !day.Equal(want) {
				t.Fatalf("expected tokens day=%s, got %s", want, day)
			}
			return 15000, nil
		},
	}

	uc := usecase.NewGetSummaryUseCase(reader, fixedClock(now))

	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.TotalConversations != 120 || out.ActiveConversations != 7 || out.TotalMessages != 950 {
		t.Fatalf("unexpected counts: %+v", out)
	}
	if out.AvgSatisfactionScore != 4.23 {
		t.Fatalf("expected avg satisfaction 4.23, got %v", out.AvgSatisfactionScore)
	}
	if out.AvgFirstResponseTime != 12.35 {
		t.Fatalf("expected avg first response 12.35, got %v", out.AvgFirstResponseTime)
	}
	if out.AvgResponseTime != 30 {
		t.Fatalf("expected avg response 30, got %v", out.AvgResponseTime)
	}
	if out.TokensUsedToday != 15000 {
		t.Fatalf("expected tokens 15000, got %d", out.TokensUsedToday)
	}
	if len(out.SentimentDistribution) != 2 || out.SentimentDistribution[0].Key != "positive" {
		t.Fatalf("unexpected sentiment distribution: %+v", out.SentimentDistribution)
	}
	if len(out.PlatformDistribution) != 2 || out.PlatformDistribution[1].Key != "whatsapp" {
		t.Fatalf("unexpected platform distribution: %+v", out.PlatformDistribution)
	}
}

// ------------------------------------------------------------
// EMPTY STORE
// ------------------------------------------------------------

func TestGetSummary_EmptyStore(t *testing.T) {
	reader := &fakeAnalyticsReader{}
	uc := usecase.NewGetSummaryUseCase(reader, fixedClock(now))

	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.TotalConversations != 0 || out.ActiveConversations != 0 || out.TotalMessages != 0 || out.TokensUsedToday != 0 {
		t.Fatalf("expected zero counts, got %+v", out)
	}
	if out.AvgSatisfactionScore != 0 || out.AvgFirstResponseTime != 0 || out.AvgResponseTime != 0 {
		t.Fatalf("expected zero averages, got %+v", out)
	}
	if out.SentimentDistribution == nil || len(out.SentimentDistribution) != 0 {
		t.Fatalf("expected empty sentiment list, got %#v", out.SentimentDistribution)
	}
	if out.PlatformDistribution == nil || len(out.PlatformDistribution) != 0 {
		t.Fatalf("expected empty platform list, got %#v", out.PlatformDistribution)
	}
	if out.CategoryDistribution == nil || len(out.CategoryDistribution) != 0 {
		t.Fatalf("expected empty category list, got %#v", out.CategoryDistribution)
	}
}

// ------------------------------------------------------------
// EVERY READ IS ISSUED
// ------------------------------------------------------------

func TestGetSummary_IssuesAllReads(t *testing.T) {
	reader := &fakeAnalyticsReader{}
	uc := usecase.NewGetSummaryUseCase(reader, fixedClock(now))

	if _, err := uc.Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, name := range []string{
		"CountConversations", "CountActiveConversations", "CountMessages",
		"AvgSatisfaction", "SentimentDistribution", "PlatformDistribution",
		"CategoryDistribution", "AvgResponseTimes", "TokensUsedOn",
	} {
		if !reader.called(name) {
			t.Fatalf("expected %s to be called", name)
		}
	}
}

// ------------------------------------------------------------
// CATEGORY DISTRIBUTION: truncated to 10, count descending
// ------------------------------------------------------------

func TestGetSummary_CategoryDistributionTopTen(t *testing.T) {
	reader := &fakeAnalyticsReader{
		CategoryFn: func(ctx context.Context, limit int) ([]domain.DistributionEntry, error) {
			// Deliberately unordered and longer than the limit.
			var out []domain.DistributionEntry
			for i := int64(1); i <= 12; i++ {
				out = append(out, domain.DistributionEntry{Key: string(rune('a' + i)), Count: i})
			}
			out = append(out, domain.DistributionEntry{Key: "tie-first", Count: 12})
			return out, nil
		},
	}

	uc := usecase.NewGetSummaryUseCase(reader, fixedClock(now))

	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cats := out.CategoryDistribution
	if len(cats) != domain.CategoryLimit {
		t.Fatalf("expected %d categories, got %d", domain.CategoryLimit, len(cats))
	}
	for i := 1; i < len(cats); i++ {
		if cats[i-1].Count < cats[i].Count {
			t.Fatalf("categories not sorted by count desc: %+v", cats)
		}
	}
	// Equal counts keep store order.
	if cats[0].Count != 12 || cats[1].Key != "tie-first" {
		t.Fatalf("expected stable order for ties, got %+v", cats[:2])
	}
}

// ------------------------------------------------------------
// ONE FAILING READ FAILS THE WHOLE SUMMARY
// ------------------------------------------------------------

func TestGetSummary_SubQueryFailure(t *testing.T) {
	reader := &fakeAnalyticsReader{
		CountConversationsFn: func(ctx context.Context) (int64, error) { return 10, nil },
		SentimentFn: func(ctx context.Context) ([]domain.DistributionEntry, error) {
			return nil, errors.New("relation \"conversations\" does not exist")
		},
	}

	uc := usecase.NewGetSummaryUseCase(reader, fixedClock(now))

	out, err := uc.Execute(context.Background())
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if out != nil {
		t.Fatalf("expected nil result on error, got %+v", out)
	}
	if !errors.Is(err, usecase.ErrQueryFailure) {
		t.Fatalf("expected ErrQueryFailure, got %v", err)
	}

	var qe *usecase.QueryError
	if !errors.As(err, &qe) {
		t.Fatalf("expected *QueryError, got %T", err)
	}
	if qe.Query != "sentiment_distribution" {
		t.Fatalf("expected failing query sentiment_distribution, got %s", qe.Query)
	}
	if qe.Cause() != "relation \"conversations\" does not exist" {
		t.Fatalf("unexpected cause: %s", qe.Cause())
	}
}

func TestGetSummary_ContextCancelled(t *testing.T) {
	reader := &fakeAnalyticsReader{
		CountMessagesFn: func(ctx context.Context) (int64, error) { return 0, ctx.Err() },
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uc := usecase.NewGetSummaryUseCase(reader, fixedClock(now))
	out, err := uc.Execute(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if out != nil {
		t.Fatalf("expected nil result")
	}
}
