package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pixeltrack/pixeltrack/internal/domain"
	"github.com/pixeltrack/pixeltrack/internal/http/middleware"
	"github.com/pixeltrack/pixeltrack/pkg/logger"
)

type DomainHandler struct {
	service domain.DomainService
	logger  logger.Logger
}

func NewDomainHandler(service domain.DomainService, logger logger.Logger) *DomainHandler {
	return &DomainHandler{
		service: service,
		logger:  logger,
	}
}

func (h *DomainHandler) RegisterRoutes(router *mux.Router, auth *middleware.AuthMiddleware) {
	protected := func(fn http.HandlerFunc) http.Handler { return auth.RequireAuth(fn) }

	router.Handle("/api/domains", protected(h.handleCreate)).Methods(http.MethodPost)
	router.Handle("/api/domains", protected(h.handleList)).Methods(http.MethodGet)
	router.Handle("/api/domains/{id}", protected(h.handleGet)).Methods(http.MethodGet)
	router.Handle("/api/domains/{id}", protected(h.handleUpdate)).Methods(http.MethodPut)
	router.Handle("/api/domains/{id}", protected(h.handleDelete)).Methods(http.MethodDelete)
	router.Handle("/api/domains/{id}/validate-cname", protected(h.handleValidateCname)).Methods(http.MethodPost)
}

func (h *DomainHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req domain.DomainRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	created, err := h.service.CreateDomain(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, h.logger, "create domain", err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *DomainHandler) handleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	domains, err := h.service.ListDomains(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, "list domains", err)
		return
	}
	if domains == nil {
		domains = []*domain.Domain{}
	}

	writeJSON(w, http.StatusOK, domains)
}

func (h *DomainHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	d, err := h.service.GetDomain(r.Context(), userID, pathVar(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, "get domain", err)
		return
	}

	writeJSON(w, http.StatusOK, d)
}

func (h *DomainHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req domain.DomainRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	updated, err := h.service.UpdateDomain(r.Context(), userID, pathVar(r, "id"), req)
	if err != nil {
		writeError(w, r, h.logger, "update domain", err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *DomainHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteDomain(r.Context(), userID, pathVar(r, "id")); err != nil {
		writeError(w, r, h.logger, "delete domain", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *DomainHandler) handleValidateCname(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	validated, err := h.service.ValidateCname(r.Context(), pathVar(r, "id"), userID)
	if err != nil {
		writeError(w, r, h.logger, "validate cname", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"validated": validated})
}
