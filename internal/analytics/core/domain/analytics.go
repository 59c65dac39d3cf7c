package domain

import (
	"math"
	"time"
)

// DefaultWindowDays is used when the caller asks for a non-positive window.
const DefaultWindowDays = 30

// PerformanceWindowDays is the fixed lookback of the performance report.
const PerformanceWindowDays = 30

// MaxWindowDays bounds the window size; larger values are treated as malformed.
const MaxWindowDays = 36500

// CategoryLimit caps the category distribution of the summary.
const CategoryLimit = 10

// DateRange is an inclusive calendar-day window.
type DateRange struct {
	From time.Time
	To   time.Time
}

// TrailingDays returns [today-days+1, today]. Days outside
// [1, MaxWindowDays] fall back to DefaultWindowDays.
func TrailingDays(today time.Time, days int) DateRange {
	if days <= 0 || days > MaxWindowDays {
		days = DefaultWindowDays
	}
	to := StartOfDay(today)
	return DateRange{
		From: to.AddDate(0, 0, -(days - 1)),
		To:   to,
	}
}

// Contains reports whether the calendar day of t lies in the range.
func (r DateRange) Contains(t time.Time) bool {
	d := StartOfDay(t)
	return !d.Before(r.From) && !d.After(r.To)
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type DistributionEntry struct {
	Key   string // NULL keys are reported as ""
	Count int64
}

type Summary struct {
	TotalConversations  int64
	ActiveConversations int64
	TotalMessages       int64

	// Averages are rounded to two decimals; no qualifying rows yields 0.
	AvgSatisfactionScore float64
	AvgFirstResponseTime float64
	AvgResponseTime      float64

	TokensUsedToday int64

	SentimentDistribution []DistributionEntry
	PlatformDistribution  []DistributionEntry
	CategoryDistribution  []DistributionEntry
}

// ResponseTimes is the pair of averages read by one summary query.
type ResponseTimes struct {
	AvgFirstResponse *float64
	AvgResponse      *float64
}

// DailyStat is one row of the per-day rollup. Platform is nil for rollups
// that are not split by platform.
type DailyStat struct {
	Date                   time.Time
	Platform               *string
	TotalConversations     int64
	TotalMessages          int64
	TotalTokensUsed        int64
	PositiveSentimentCount int64
	NegativeSentimentCount int64
	NeutralSentimentCount  int64
	AvgSatisfactionScore   *float64
}

type PerformanceRow struct {
	Date              time.Time
	MessageCount      int64
	AvgResponseTimeMs float64
	MinResponseTimeMs int64
	MaxResponseTimeMs int64
	AvgTokensUsed     *float64
	TotalTokensUsed   *int64
}

// TrendPoint exposes the stored daily aggregates without further derivation.
type TrendPoint struct {
	Date                   time.Time
	TotalConversations     int64
	TotalMessages          int64
	TotalTokensUsed        int64
	PositiveSentimentCount int64
	NegativeSentimentCount int64
	NeutralSentimentCount  int64
	AvgSatisfactionScore   *float64
}
