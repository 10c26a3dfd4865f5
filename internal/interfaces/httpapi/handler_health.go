package httpapi

import (
	"net/http"
	"time"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusUnhealthy = "unhealthy"
)

type healthDTO struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Uptime    float64   `json:"uptime"`
	Database  string    `json:"database"`
	Error     string    `json:"error,omitempty"`
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// Health pings the database. A failed ping answers 503 with the unhealthy body.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Health")
	defer span.End()

	status, err := h.healthService.Check(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "health check failed", "error", err)
		writeSuccess(ctx, w, http.StatusServiceUnavailable, healthDTO{
			Status:    healthStatusUnhealthy,
			Timestamp: status.Timestamp,
			Uptime:    status.Uptime.Seconds(),
			Database:  "disconnected",
			Error:     err.Error(),
		})
		return
	}

	writeSuccess(ctx, w, http.StatusOK, healthDTO{
		Status:    healthStatusHealthy,
		Timestamp: status.Timestamp,
		Uptime:    status.Uptime.Seconds(),
		Database:  "connected",
	})
}
