package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pixeltrack/pixeltrack/internal/domain"
	"github.com/pixeltrack/pixeltrack/internal/http/middleware"
	"github.com/pixeltrack/pixeltrack/pkg/logger"
)

type ConversionHandler struct {
	service domain.ConversionService
	logger  logger.Logger
}

func NewConversionHandler(service domain.ConversionService, logger logger.Logger) *ConversionHandler {
	return &ConversionHandler{
		service: service,
		logger:  logger,
	}
}

func (h *ConversionHandler) RegisterRoutes(router *mux.Router, auth *middleware.AuthMiddleware) {
	protected := func(fn http.HandlerFunc) http.Handler { return auth.RequireAuth(fn) }

	router.Handle("/api/conversions", protected(h.handleCreate)).Methods(http.MethodPost)
	router.Handle("/api/conversions", protected(h.handleList)).Methods(http.MethodGet)
	router.Handle("/api/conversions/domain/{domainId}", protected(h.handleListByDomain)).Methods(http.MethodGet)
	router.Handle("/api/conversions/{id}", protected(h.handleGet)).Methods(http.MethodGet)
	router.Handle("/api/conversions/{id}", protected(h.handleUpdate)).Methods(http.MethodPut)
	router.Handle("/api/conversions/{id}", protected(h.handleDelete)).Methods(http.MethodDelete)
}

func (h *ConversionHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var conversion domain.Conversion
	if !decodeJSON(w, r, h.logger, &conversion) {
		return
	}

	created, err := h.service.CreateConversion(r.Context(), userID, &conversion)
	if err != nil {
		writeError(w, r, h.logger, "create conversion", err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *ConversionHandler) handleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	conversions, err := h.service.ListConversions(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, "list conversions", err)
		return
	}

	writeJSON(w, http.StatusOK, nonNilConversions(conversions))
}

func (h *ConversionHandler) handleListByDomain(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	conversions, err := h.service.ListConversionsByDomain(r.Context(), userID, pathVar(r, "domainId"))
	if err != nil {
		writeError(w, r, h.logger, "list conversions by domain", err)
		return
	}

	writeJSON(w, http.StatusOK, nonNilConversions(conversions))
}

func (h *ConversionHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	conversion, err := h.service.GetConversion(r.Context(), userID, pathVar(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, "get conversion", err)
		return
	}

	writeJSON(w, http.StatusOK, conversion)
}

func (h *ConversionHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var conversion domain.Conversion
	if !decodeJSON(w, r, h.logger, &conversion) {
		return
	}
	conversion.ID = pathVar(r, "id")

	updated, err := h.service.UpdateConversion(r.Context(), userID, &conversion)
	if err != nil {
		writeError(w, r, h.logger, "update conversion", err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *ConversionHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteConversion(r.Context(), userID, pathVar(r, "id")); err != nil {
		writeError(w, r, h.logger, "delete conversion", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func nonNilConversions(conversions []*domain.Conversion) []*domain.Conversion {
	if conversions == nil {
		return []*domain.Conversion{}
	}
	return conversions
}
