package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/catalog-api/internal/config"
	"github.com/deppfellow/catalog-api/internal/middleware"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// HealthResponse is the body of the liveness endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// StatusResponse is the body of the deep health check.
type StatusResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]CheckResult `json:"checks"`
}

type CheckResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

// pingFunc probes a single dependency.
type pingFunc func(ctx context.Context) error

// HealthHandler serves the liveness endpoint and the dependency check behind /status.
type HealthHandler struct {
	Handler
	checks map[string]pingFunc
}

func NewHealthHandler(h Handler) *HealthHandler {
	checks := make(map[string]pingFunc)
	obs := h.server.Config.Observability

	if h.server.DB != nil && obs.HasCheck("database") {
		checks["database"] = h.server.DB.Ping
	}
	if h.server.Redis != nil && obs.HasCheck("redis") {
		checks["redis"] = func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		}
	}

	return &HealthHandler{Handler: h, checks: checks}
}

// Healthcheck only reports that the process is serving requests.
func (h *HealthHandler) Healthcheck(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Message: config.ServiceName,
	})
}

// CheckStatus pings every configured dependency. It answers 503 when any of
// them fails.
func (h *HealthHandler) CheckStatus(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := StatusResponse{
		Status:      statusHealthy,
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      make(map[string]CheckResult, len(h.checks)),
	}

	healthChecks := h.server.Config.Observability.HealthChecks
	if healthChecks.Enabled {
		for name, ping := range h.checks {
			result := runCheck(c.Request().Context(), ping, healthChecks.Timeout)
			response.Checks[name] = result

			if result.Status == statusHealthy {
				logger.Info().Str("check", name).Str("response_time", result.ResponseTime).Msg("health check passed")
				continue
			}

			response.Status = statusUnhealthy
			logger.Error().Str("check", name).Str("error", result.Error).Msg("health check failed")
			h.recordFailure(name, result.Error)
		}
	}

	if response.Status != statusHealthy {
		logger.Warn().Dur("total_duration", time.Since(start)).Msg("health check failed")
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Info().Dur("total_duration", time.Since(start)).Msg("health check passed")
	return c.JSON(http.StatusOK, response)
}

func runCheck(parent context.Context, ping pingFunc, timeout time.Duration) CheckResult {
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	start := time.Now()
	err := ping(ctx)

	result := CheckResult{
		Status:       statusHealthy,
		ResponseTime: time.Since(start).String(),
	}
	if err != nil {
		result.Status = statusUnhealthy
		result.Error = err.Error()
	}
	return result
}

func (h *HealthHandler) recordFailure(check, message string) {
	app := h.server.LoggerService.GetApplication()
	if app == nil {
		return
	}

	app.RecordCustomEvent("HealthCheckError", map[string]any{
		"check_type":    check,
		"operation":     "health_check",
		"error_type":    check + "_unhealthy",
		"error_message": message,
	})
}

