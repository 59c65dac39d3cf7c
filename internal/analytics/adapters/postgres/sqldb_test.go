package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"support-analytics-service/internal/analytics/core/domain"
	"support-analytics-service/internal/analytics/core/ports"
)

func TestSQLDB_DailyStatsThroughDriver(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	from := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 12, 7, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"date", "platform", "total_conversations", "total_messages", "total_tokens_used",
		"positive_sentiment_count", "negative_sentiment_count", "neutral_sentiment_count",
		"avg_satisfaction_score",
	}).
		AddRow(to, "web", int64(3), int64(30), int64(900), int64(2), int64(0), int64(1), []byte("4.33")).
		AddRow(from, "web", int64(1), int64(5), int64(100), int64(0), int64(1), int64(0), nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM v_daily_analytics")).
		WithArgs(from, to, "web").
		WillReturnRows(rows)

	repo := NewAnalyticsRepository(NewSQLDB(db))

	platform := "web"
	out, err := repo.DailyStats(context.Background(), ports.DailyFilter{
		Range:    domain.DateRange{From: from, To: to},
		Platform: &platform,
	})
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.True(t, out[0].Date.Equal(to))
	require.NotNil(t, out[0].AvgSatisfactionScore)
	assert.InDelta(t, 4.33, *out[0].AvgSatisfactionScore, 1e-9)
	assert.Nil(t, out[1].AvgSatisfactionScore)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLDB_SummaryCountThroughDriver(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(countMessagesSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))

	repo := NewAnalyticsRepository(NewSQLDB(db))

	n, err := repo.CountMessages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
