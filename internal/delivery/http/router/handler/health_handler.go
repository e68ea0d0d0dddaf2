// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"chapel/config"
	"chapel/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthHandler serves the liveness and service metadata endpoints.
type HealthHandler struct {
	cfg *config.Config
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Root returns basic service metadata.
func (h *HealthHandler) Root(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"service": h.cfg.Env.ServiceName,
		"version": h.cfg.Env.Version,
		"env":     h.cfg.Env.Env,
	}, "Service metadata retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
