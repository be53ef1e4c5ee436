package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/localization-service/internal/circuitbreaker"
)

// HealthChecker verifies one dependency, e.g. a database ping.
type HealthChecker func(ctx context.Context) error

// HealthHandler provides liveness and readiness endpoints.
type HealthHandler struct {
	checkers        map[string]HealthChecker
	circuitBreakers map[string]*circuitbreaker.CircuitBreaker
}

// NewHealthHandler creates a new HealthHandler instance.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		checkers:        make(map[string]HealthChecker),
		circuitBreakers: make(map[string]*circuitbreaker.CircuitBreaker),
	}
}

// AddChecker registers a named dependency check for readiness probing.
func (h *HealthHandler) AddChecker(name string, checker HealthChecker) {
	h.checkers[name] = checker
}

// RegisterCircuitBreaker adds a circuit breaker to readiness reporting.
func (h *HealthHandler) RegisterCircuitBreaker(name string, cb *circuitbreaker.CircuitBreaker) {
	h.circuitBreakers[name] = cb
}

// Register mounts the health endpoints on the router.
func (h *HealthHandler) Register(router *gin.Engine) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness reports that the process is up. It never checks dependencies.
//
// @Summary      Liveness probe
// @Tags         Health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Readiness runs all dependency checks and reports circuit breaker state.
// Any failing check makes the endpoint return 503.
//
// @Summary      Readiness probe
// @Tags         Health
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Failure      503 {object} map[string]interface{}
// @Router       /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	healthy := true
	checks := make(map[string]string, len(h.checkers))
	for name, checker := range h.checkers {
		if err := checker(ctx); err != nil {
			healthy = false
			checks[name] = "unhealthy: " + err.Error()
			continue
		}
		checks[name] = "healthy"
	}

	breakers := make(map[string]interface{}, len(h.circuitBreakers))
	for name, cb := range h.circuitBreakers {
		stats := cb.GetStats()
		breakers[name] = gin.H{
			"state":   stats.State,
			"healthy": stats.IsHealthy,
		}
	}

	status := http.StatusOK
	statusText := "ready"
	if !healthy {
		status = http.StatusServiceUnavailable
		statusText = "not ready"
	}

	response := gin.H{
		"status": statusText,
		"checks": checks,
		"time":   time.Now().UTC().Format(time.RFC3339),
	}
	if len(breakers) > 0 {
		response["circuit_breakers"] = breakers
	}

	c.JSON(status, response)
}
