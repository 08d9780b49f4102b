package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a plain function to the Pinger interface
type PingerFunc func(ctx context.Context) error

// Ping calls the wrapped function
func (f PingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	*BaseHandler
	serviceName  string
	version      string
	dependencies map[string]Pinger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(serviceName, version string) *HealthHandler {
	return &HealthHandler{
		BaseHandler:  NewBaseHandler(),
		serviceName:  serviceName,
		version:      version,
		dependencies: make(map[string]Pinger),
	}
}

// WithDependency registers a named dependency for readiness checks
func (h *HealthHandler) WithDependency(name string, p Pinger) *HealthHandler {
	h.dependencies[name] = p
	return h
}

// Register mounts the probe endpoints on the engine root
func (h *HealthHandler) Register(engine *gin.Engine) {
	engine.GET("/health", h.Health)
	engine.GET("/ready", h.Ready)
}

// Health returns liveness status
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready checks every registered dependency. Any unreachable dependency
// reports 503 with the per-dependency status.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status := http.StatusOK
	overall := "ready"
	checks := make(gin.H, len(h.dependencies))
	for name, dep := range h.dependencies {
		if err := dep.Ping(ctx); err != nil {
			checks[name] = "unreachable"
			status = http.StatusServiceUnavailable
			overall = "degraded"
			continue
		}
		checks[name] = "ok"
	}

	c.JSON(status, gin.H{
		"status": overall,
		"checks": checks,
	})
}
