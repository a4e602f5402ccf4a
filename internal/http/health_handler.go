package http

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pixeltrack/pixeltrack/internal/service"
)

// HealthChecker pings the dependencies of the API
type HealthChecker interface {
	Check(ctx context.Context) service.HealthReport
}

type HealthHandler struct {
	checker HealthChecker
}

func NewHealthHandler(checker HealthChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

func (h *HealthHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/healthz", h.handleHealth).Methods(http.MethodGet, http.MethodHead)
}

func (h *HealthHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := h.checker.Check(r.Context())

	status := http.StatusOK
	if report.Status != service.HealthStatusOK {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, report)
}
