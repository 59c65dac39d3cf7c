package usecase

import (
	"context"
	"time"

	"support-analytics-service/internal/analytics/core/domain"
	"support-analytics-service/internal/analytics/core/ports"
)

type GetDailyInput struct {
	Days     int     // <= 0 means domain.DefaultWindowDays
	Platform *string // optional
}

type GetTrendsInput struct {
	Days int // <= 0 means domain.DefaultWindowDays
}

// ReportsUseCase serves the window-based reads: daily rollups, trends and
// assistant performance. Windows are computed from the injected clock.
type ReportsUseCase struct {
	reader ports.AnalyticsReaderPort
	now    func() time.Time
}

func NewReportsUseCase(reader ports.AnalyticsReaderPort, now func() time.Time) *ReportsUseCase {
	if now == nil {
		now = time.Now
	}
	return &ReportsUseCase{reader: reader, now: now}
}

// Daily returns rollups for the trailing window, newest first.
func (uc *ReportsUseCase) Daily(ctx context.Context, in GetDailyInput) ([]domain.DailyStat, error) {
	filter := ports.DailyFilter{
		Range: domain.TrailingDays(uc.now(), in.Days),
	}
	if in.Platform != nil && *in.Platform != "" {
		filter.Platform = in.Platform
	}

	rows, err := uc.reader.DailyStats(ctx, filter)
	if err != nil {
		return nil, queryError("daily_stats", err)
	}
	if rows == nil {
		rows = []domain.DailyStat{}
	}
	return rows, nil
}

// Performance returns per-day assistant response metrics for the last
// PerformanceWindowDays days, newest first. Days without assistant messages
// are absent.
func (uc *ReportsUseCase) Performance(ctx context.Context) ([]domain.PerformanceRow, error) {
	r := domain.TrailingDays(uc.now(), domain.PerformanceWindowDays)

	rows, err := uc.reader.Performance(ctx, r)
	if err != nil {
		return nil, queryError("performance", err)
	}
	if rows == nil {
		rows = []domain.PerformanceRow{}
	}
	return rows, nil
}

// Trends returns rollups for the trailing window, oldest first.
func (uc *ReportsUseCase) Trends(ctx context.Context, in GetTrendsInput) ([]domain.TrendPoint, error) {
	r := domain.TrailingDays(uc.now(), in.Days)

	rows, err := uc.reader.Trends(ctx, r)
	if err != nil {
		return nil, queryError("trends", err)
	}
	if rows == nil {
		rows = []domain.TrendPoint{}
	}
	return rows, nil
}
