package fiber

import (
	"context"
	"errors"
	"net/http"

	"support-analytics-service/internal/analytics/core/domain"
	"support-analytics-service/internal/analytics/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type GetSummaryUseCase interface {
	Execute(ctx context.Context) (*domain.Summary, error)
}

type ReportsUseCase interface {
	Daily(ctx context.Context, in usecase.GetDailyInput) ([]domain.DailyStat, error)
	Performance(ctx context.Context) ([]domain.PerformanceRow, error)
	Trends(ctx context.Context, in usecase.GetTrendsInput) ([]domain.TrendPoint, error)
}

type AnalyticsHandler struct {
	summary GetSummaryUseCase
	reports ReportsUseCase
	log     *logrus.Entry
}

func NewAnalyticsHandler(summary GetSummaryUseCase, reports ReportsUseCase, log *logrus.Entry) *AnalyticsHandler {
	return &AnalyticsHandler{summary: summary, reports: reports, log: log}
}

// Register mounts the analytics routes on r.
func (h *AnalyticsHandler) Register(r fiber.Router) {
	r.Get("/daily", h.GetDaily)
	r.Get("/summary", h.GetSummary)
	r.Get("/performance", h.GetPerformance)
	r.Get("/trends", h.GetTrends)
}

// GetDaily godoc
// @Summary Daily statistics
// @Description Returns the per-day rollups of the trailing window, newest first
// @Tags Analytics
// @Produce json
// @Param days query int false "Window size in days" default(30)
// @Param platform query string false "Exact platform filter"
// @Success 200 {object} DailyEnvelope
// @Failure 500 {object} ErrorResponse
// @Router /api/analytics/daily [get]
func (h *AnalyticsHandler) GetDaily(c *fiber.Ctx) error {
	in := usecase.GetDailyInput{
		Days: c.QueryInt("days", domain.DefaultWindowDays),
	}
	if platform := c.Query("platform"); platform != "" {
		in.Platform = &platform
	}

	rows, err := h.reports.Daily(c.UserContext(), in)
	if err != nil {
		return h.fail(c, "Failed to fetch daily analytics", err)
	}

	return c.Status(http.StatusOK).JSON(DailyEnvelope{
		Success: true,
		Data:    toDailyResponse(rows),
	})
}

// GetSummary godoc
// @Summary Overall summary
// @Description Combines counts, averages and distributions into one snapshot
// @Tags Analytics
// @Produce json
// @Success 200 {object} SummaryEnvelope
// @Failure 500 {object} ErrorResponse
// @Router /api/analytics/summary [get]
func (h *AnalyticsHandler) GetSummary(c *fiber.Ctx) error {
	s, err := h.summary.Execute(c.UserContext())
	if err != nil {
		return h.fail(c, "Failed to fetch summary analytics", err)
	}

	return c.Status(http.StatusOK).JSON(SummaryEnvelope{
		Success: true,
		Data:    toSummaryResponse(s),
	})
}

// GetPerformance godoc
// @Summary Assistant performance
// @Description Per-day assistant response times and token usage for the last 30 days
// @Tags Analytics
// @Produce json
// @Success 200 {object} PerformanceEnvelope
// @Failure 500 {object} ErrorResponse
// @Router /api/analytics/performance [get]
func (h *AnalyticsHandler) GetPerformance(c *fiber.Ctx) error {
	rows, err := h.reports.Performance(c.UserContext())
	if err != nil {
		return h.fail(c, "Failed to fetch performance metrics", err)
	}

	return c.Status(http.StatusOK).JSON(PerformanceEnvelope{
		Success: true,
		Data:    toPerformanceResponse(rows),
	})
}

// GetTrends godoc
// @Summary Trend data
// @Description Per-day rollups of the trailing window, oldest first
// @Tags Analytics
// @Produce json
// @Param days query int false "Window size in days" default(30)
// @Success 200 {object} TrendsEnvelope
// @Failure 500 {object} ErrorResponse
// @Router /api/analytics/trends [get]
func (h *AnalyticsHandler) GetTrends(c *fiber.Ctx) error {
	in := usecase.GetTrendsInput{
		Days: c.QueryInt("days", domain.DefaultWindowDays),
	}

	rows, err := h.reports.Trends(c.UserContext(), in)
	if err != nil {
		return h.fail(c, "Failed to fetch trends", err)
	}

	return c.Status(http.StatusOK).JSON(TrendsEnvelope{
		Success: true,
		Data:    toTrendsResponse(rows),
	})
}

// fail reports every analytics failure as a 500 carrying the store message.
func (h *AnalyticsHandler) fail(c *fiber.Ctx, label string, err error) error {
	message := err.Error()
	var qe *usecase.QueryError
	if errors.As(err, &qe) {
		message = qe.Cause()
	}

	if h.log != nil {
		h.log.WithError(err).WithField("path", c.Path()).Error(label)
	}

	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Success: false,
		Error:   label,
		Message: message,
	})
}
