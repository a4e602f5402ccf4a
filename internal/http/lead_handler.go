package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pixeltrack/pixeltrack/internal/domain"
	"github.com/pixeltrack/pixeltrack/internal/http/middleware"
	"github.com/pixeltrack/pixeltrack/pkg/logger"
)

type LeadHandler struct {
	service domain.LeadService
	logger  logger.Logger
}

func NewLeadHandler(service domain.LeadService, logger logger.Logger) *LeadHandler {
	return &LeadHandler{
		service: service,
		logger:  logger,
	}
}

func (h *LeadHandler) RegisterRoutes(router *mux.Router, auth *middleware.AuthMiddleware) {
	protected := func(fn http.HandlerFunc) http.Handler { return auth.RequireAuth(fn) }

	router.Handle("/api/leads", protected(h.handleUpsert)).Methods(http.MethodPost)
	router.Handle("/api/leads/domain/{domainId}", protected(h.handleListByDomain)).Methods(http.MethodGet)
	router.Handle("/api/leads/{id}", protected(h.handleGet)).Methods(http.MethodGet)
	router.Handle("/api/leads/{id}", protected(h.handleUpsert)).Methods(http.MethodPut)
}

// handleUpsert serves both POST /api/leads and PUT /api/leads/{id}. The path id wins over the body.
func (h *LeadHandler) handleUpsert(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var lead domain.Lead
	if !decodeJSON(w, r, h.logger, &lead) {
		return
	}
	if id := pathVar(r, "id"); id != "" {
		lead.ID = id
	}

	stored, err := h.service.UpsertLead(r.Context(), userID, &lead)
	if err != nil {
		writeError(w, r, h.logger, "upsert lead", err)
		return
	}

	status := http.StatusOK
	if r.Method == http.MethodPost {
		status = http.StatusCreated
	}
	writeJSON(w, status, stored)
}

func (h *LeadHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	lead, err := h.service.GetLead(r.Context(), userID, pathVar(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, "get lead", err)
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) handleListByDomain(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	leads, err := h.service.ListLeadsByDomain(r.Context(), userID, pathVar(r, "domainId"))
	if err != nil {
		writeError(w, r, h.logger, "list leads", err)
		return
	}
	if leads == nil {
		leads = []*domain.Lead{}
	}

	writeJSON(w, http.StatusOK, leads)
}
