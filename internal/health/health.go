// Package health serves the liveness report, the service index and the
// JSON 404 fallback.
package health

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"support-analytics-service/internal/fanout"

	"github.com/gofiber/fiber/v2"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
	StatusDisabled  = "disabled"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

// Dependency is one backing store reported by /health. A nil Pinger is
// reported as disabled and does not affect the overall status.
type Dependency struct {
	Name   string
	Pinger Pinger
}

type DependencyStatus struct {
	Status string `json:"status" example:"healthy"`
	Error  string `json:"error,omitempty"`
}

type Report struct {
	Status       string                      `json:"status" example:"healthy"`
	Timestamp    time.Time                   `json:"timestamp"`
	Uptime       float64                     `json:"uptime" example:"42.5"`
	Environment  string                      `json:"environment" example:"development"`
	Dependencies map[string]DependencyStatus `json:"dependencies"`
}

type ServiceInfo struct {
	Name      string            `json:"name" example:"Customer Assistant Backend API"`
	Version   string            `json:"version" example:"1.0.0"`
	Endpoints map[string]string `json:"endpoints"`
}

type NotFoundResponse struct {
	Error     string    `json:"error" example:"Not Found"`
	Message   string    `json:"message" example:"Route GET /nope not found"`
	Timestamp time.Time `json:"timestamp"`
}

type Options struct {
	ServiceName string
	Version     string
	Environment string
	Timeout     time.Duration
	Now         func() time.Time
}

type Handler struct {
	opts    Options
	deps    []Dependency
	started time.Time
}

func NewHandler(opts Options, deps ...Dependency) *Handler {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 2 * time.Second
	}
	return &Handler{opts: opts, deps: deps, started: opts.Now()}
}

// Check pings every dependency concurrently and waits for all of them.
func (h *Handler) Check(ctx context.Context) Report {
	ctx, cancel := context.WithTimeout(ctx, h.opts.Timeout)
	defer cancel()

	results := make([]DependencyStatus, len(h.deps))
	tasks := make([]fanout.Task, 0, len(h.deps))
	for i, dep := range h.deps {
		i, dep := i, dep
		tasks = append(tasks, func(ctx context.Context) error {
			results[i] = ping(ctx, dep.Pinger)
			return nil
		})
	}
	_ = fanout.Run(ctx, tasks...)

	now := h.opts.Now()
	report := Report{
		Status:       StatusHealthy,
		Timestamp:    now.UTC(),
		Uptime:       now.Sub(h.started).Seconds(),
		Environment:  h.opts.Environment,
		Dependencies: make(map[string]DependencyStatus, len(h.deps)),
	}
	for i, dep := range h.deps {
		report.Dependencies[dep.Name] = results[i]
		if results[i].Status == StatusUnhealthy {
			report.Status = StatusUnhealthy
		}
	}
	return report
}

func ping(ctx context.Context, p Pinger) DependencyStatus {
	if p == nil {
		return DependencyStatus{Status: StatusDisabled}
	}
	if err := p.PingContext(ctx); err != nil {
		return DependencyStatus{Status: StatusUnhealthy, Error: err.Error()}
	}
	return DependencyStatus{Status: StatusHealthy}
}

// Health godoc
// @Summary Health check
// @Description Pings the backing stores; 503 when any of them is unreachable
// @Tags Platform
// @Produce json
// @Success 200 {object} Report
// @Failure 503 {object} Report
// @Router /health [get]
func (h *Handler) Health(c *fiber.Ctx) error {
	report := h.Check(c.UserContext())

	status := http.StatusOK
	if report.Status != StatusHealthy {
		status = http.StatusServiceUnavailable
	}
	return c.Status(status).JSON(report)
}

// Root godoc
// @Summary Service index
// @Tags Platform
// @Produce json
// @Success 200 {object} ServiceInfo
// @Router / [get]
func (h *Handler) Root(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(ServiceInfo{
		Name:    h.opts.ServiceName,
		Version: h.opts.Version,
		Endpoints: map[string]string{
			"health":    "/health",
			"chat":      "/api/chat/*",
			"analytics": "/api/analytics/*",
			"metrics":   "/metrics",
			"docs":      "/docs/index.html",
		},
	})
}

// NotFound is mounted last and answers every unmatched route.
func (h *Handler) NotFound(c *fiber.Ctx) error {
	return c.Status(http.StatusNotFound).JSON(NotFoundResponse{
		Error:     "Not Found",
		Message:   fmt.Sprintf("Route %s %s not found", c.Method(), c.Path()),
		Timestamp: h.opts.Now().UTC(),
	})
}
