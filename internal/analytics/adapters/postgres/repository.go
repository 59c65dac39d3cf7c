package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"support-analytics-service/internal/analytics/core/domain"
	"support-analytics-service/internal/analytics/core/ports"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type AnalyticsRepository struct {
	db DB
}

func NewAnalyticsRepository(db DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

var _ ports.AnalyticsReaderPort = (*AnalyticsRepository)(nil)

const (
	countConversationsSQL = `SELECT COUNT(*) AS count FROM conversations`

	countActiveConversationsSQL = `SELECT COUNT(*) AS count FROM conversations WHERE status = 'active'`

	countMessagesSQL = `SELECT COUNT(*) AS count FROM messages`

	avgSatisfactionSQL = `
SELECT AVG(satisfaction_score) AS avg_score
FROM conversations
WHERE satisfaction_score IS NOT NULL`

	sentimentDistributionSQL = `
SELECT sentiment, COUNT(*) AS count
FROM conversations
WHERE sentiment IS NOT NULL
GROUP BY sentiment`

	platformDistributionSQL = `
SELECT platform, COUNT(*) AS count
FROM conversations
GROUP BY platform`

	categoryDistributionSQL = `
SELECT category, COUNT(*) AS count
FROM conversations
GROUP BY category
ORDER BY count DESC
LIMIT $1`

	avgResponseTimesSQL = `
SELECT
    AVG(first_response_time_seconds) AS avg_first_response,
    AVG(avg_response_time_seconds) AS avg_response_time
FROM conversations
WHERE first_response_time_seconds IS NOT NULL`

	tokensUsedOnSQL = `
SELECT COALESCE(SUM(total_tokens_used), 0) AS tokens_used
FROM daily_stats
WHERE date = $1::date`

	performanceSQL = `
SELECT
    DATE(timestamp) AS date,
    COUNT(*) AS message_count,
    AVG(response_time_ms) AS avg_response_time_ms,
    MIN(response_time_ms) AS min_response_time_ms,
    MAX(response_time_ms) AS max_response_time_ms,
    AVG(tokens_used) AS avg_tokens_used,
    SUM(tokens_used) AS total_tokens_used
FROM messages
WHERE role = 'assistant'
  AND response_time_ms IS NOT NULL
  AND timestamp >= $1
  AND timestamp < $2
GROUP BY DATE(timestamp)
ORDER BY date DESC`

	trendsSQL = `
SELECT
    date,
    total_conversations,
    total_messages,
    total_tokens_used,
    positive_sentiment_count,
    negative_sentiment_count,
    neutral_sentiment_count,
    avg_satisfaction_score
FROM daily_stats
WHERE date BETWEEN $1::date AND $2::date
ORDER BY date ASC`
)

const dailyStatsSelect = `
SELECT
    date,
    platform,
    total_conversations,
    total_messages,
    total_tokens_used,
    positive_sentiment_count,
    negative_sentiment_count,
    neutral_sentiment_count,
    avg_satisfaction_score
FROM v_daily_analytics
WHERE date BETWEEN $1::date AND $2::date`

func (r *AnalyticsRepository) CountConversations(ctx context.Context) (int64, error) {
	var n int64
	err := r.queryRow(ctx, countConversationsSQL, nil, &n)
	return n, err
}

func (r *AnalyticsRepository) CountActiveConversations(ctx context.Context) (int64, error) {
	var n int64
	err := r.queryRow(ctx, countActiveConversationsSQL, nil, &n)
	return n, err
}

func (r *AnalyticsRepository) CountMessages(ctx context.Context) (int64, error) {
	var n int64
	err := r.queryRow(ctx, countMessagesSQL, nil, &n)
	return n, err
}

func (r *AnalyticsRepository) AvgSatisfaction(ctx context.Context) (*float64, error) {
	var avg sql.NullFloat64
	if err := r.queryRow(ctx, avgSatisfactionSQL, nil, &avg); err != nil {
		return nil, err
	}
	return nullFloat(avg), nil
}

func (r *AnalyticsRepository) SentimentDistribution(ctx context.Context) ([]domain.DistributionEntry, error) {
	return r.queryDistribution(ctx, sentimentDistributionSQL)
}

func (r *AnalyticsRepository) PlatformDistribution(ctx context.Context) ([]domain.DistributionEntry, error) {
	return r.queryDistribution(ctx, platformDistributionSQL)
}

func (r *AnalyticsRepository) CategoryDistribution(ctx context.Context, limit int) ([]domain.DistributionEntry, error) {
	return r.queryDistribution(ctx, categoryDistributionSQL, limit)
}

func (r *AnalyticsRepository) AvgResponseTimes(ctx context.Context) (domain.ResponseTimes, error) {
	var first, avg sql.NullFloat64
	if err := r.queryRow(ctx, avgResponseTimesSQL, nil, &first, &avg); err != nil {
		return domain.ResponseTimes{}, err
	}
	return domain.ResponseTimes{
		AvgFirstResponse: nullFloat(first),
		AvgResponse:      nullFloat(avg),
	}, nil
}

func (r *AnalyticsRepository) TokensUsedOn(ctx context.Context, day time.Time) (int64, error) {
	var n int64
	err := r.queryRow(ctx, tokensUsedOnSQL, []any{day}, &n)
	return n, err
}

func (r *AnalyticsRepository) DailyStats(ctx context.Context, f ports.DailyFilter) ([]domain.DailyStat, error) {
	query := dailyStatsSelect
	args := []any{f.Range.From, f.Range.To}
	argIndex := 3

	if f.Platform != nil {
		query += fmt.Sprintf(" AND platform = $%d", argIndex)
		args = append(args, *f.Platform)
	}
	query += "\nORDER BY date DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.DailyStat{}
	for rows.Next() {
		var (
			s        domain.DailyStat
			platform sql.NullString
			avg      sql.NullFloat64
		)
		if err := rows.Scan(
			&s.Date,
			&platform,
			&s.TotalConversations,
			&s.TotalMessages,
			&s.TotalTokensUsed,
			&s.PositiveSentimentCount,
			&s.NegativeSentimentCount,
			&s.NeutralSentimentCount,
			&avg,
		); err != nil {
			return nil, err
		}
		s.Platform = nullString(platform)
		s.AvgSatisfactionScore = nullFloat(avg)
		out = append(out, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *AnalyticsRepository) Performance(ctx context.Context, rng domain.DateRange) ([]domain.PerformanceRow, error) {
	// Half-open timestamp bounds keep the whole last day and stay index friendly.
	rows, err := r.db.QueryContext(ctx, performanceSQL, rng.From, rng.To.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.PerformanceRow{}
	for rows.Next() {
		var (
			p         domain.PerformanceRow
			avgTokens sql.NullFloat64
			sumTokens sql.NullInt64
		)
		if err := rows.Scan(
			&p.Date,
			&p.MessageCount,
			&p.AvgResponseTimeMs,
			&p.MinResponseTimeMs,
			&p.MaxResponseTimeMs,
			&avgTokens,
			&sumTokens,
		); err != nil {
			return nil, err
		}
		p.AvgTokensUsed = nullFloat(avgTokens)
		p.TotalTokensUsed = nullInt(sumTokens)
		out = append(out, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *AnalyticsRepository) Trends(ctx context.Context, rng domain.DateRange) ([]domain.TrendPoint, error) {
	rows, err := r.db.QueryContext(ctx, trendsSQL, rng.From, rng.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.TrendPoint{}
	for rows.Next() {
		var (
			p   domain.TrendPoint
			avg sql.NullFloat64
		)
		if err := rows.Scan(
			&p.Date,
			&p.TotalConversations,
			&p.TotalMessages,
			&p.TotalTokensUsed,
			&p.PositiveSentimentCount,
			&p.NegativeSentimentCount,
			&p.NeutralSentimentCount,
			&avg,
		); err != nil {
			return nil, err
		}
		p.AvgSatisfactionScore = nullFloat(avg)
		out = append(out, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// queryRow scans the first row into dest; an empty result leaves dest untouched.
func (r *AnalyticsRepository) queryRow(ctx context.Context, query string, args []any, dest ...any) error {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return err
		}
	}

	return rows.Err()
}

func (r *AnalyticsRepository) queryDistribution(ctx context.Context, query string, args ...any) ([]domain.DistributionEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.DistributionEntry{}
	for rows.Next() {
		var (
			key   sql.NullString
			count int64
		)
		if err := rows.Scan(&key, &count); err != nil {
			return nil, err
		}
		out = append(out, domain.DistributionEntry{Key: key.String, Count: count})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func nullInt(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
