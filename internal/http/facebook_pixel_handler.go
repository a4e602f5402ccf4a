package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pixeltrack/pixeltrack/internal/domain"
	"github.com/pixeltrack/pixeltrack/internal/http/middleware"
	"github.com/pixeltrack/pixeltrack/pkg/logger"
)

type FacebookPixelHandler struct {
	service domain.FacebookPixelService
	logger  logger.Logger
}

func NewFacebookPixelHandler(service domain.FacebookPixelService, logger logger.Logger) *FacebookPixelHandler {
	return &FacebookPixelHandler{
		service: service,
		logger:  logger,
	}
}

func (h *FacebookPixelHandler) RegisterRoutes(router *mux.Router, auth *middleware.AuthMiddleware) {
	protected := func(fn http.HandlerFunc) http.Handler { return auth.RequireAuth(fn) }

	router.Handle("/api/facebook-pixels", protected(h.handleCreate)).Methods(http.MethodPost)
	router.Handle("/api/facebook-pixels", protected(h.handleList)).Methods(http.MethodGet)
	router.Handle("/api/facebook-pixels/domain/{domainId}", protected(h.handleListByDomain)).Methods(http.MethodGet)
	router.Handle("/api/facebook-pixels/{id}", protected(h.handleGet)).Methods(http.MethodGet)
	router.Handle("/api/facebook-pixels/{id}", protected(h.handleUpdate)).Methods(http.MethodPut)
	router.Handle("/api/facebook-pixels/{id}", protected(h.handleDelete)).Methods(http.MethodDelete)
}

func (h *FacebookPixelHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var pixel domain.FacebookPixel
	if !decodeJSON(w, r, h.logger, &pixel) {
		return
	}

	created, err := h.service.CreatePixel(r.Context(), userID, &pixel)
	if err != nil {
		writeError(w, r, h.logger, "create facebook pixel", err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *FacebookPixelHandler) handleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	pixels, err := h.service.ListPixels(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, "list facebook pixels", err)
		return
	}

	writeJSON(w, http.StatusOK, nonNilPixels(pixels))
}

func (h *FacebookPixelHandler) handleListByDomain(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	pixels, err := h.service.ListPixelsByDomain(r.Context(), userID, pathVar(r, "domainId"))
	if err != nil {
		writeError(w, r, h.logger, "list facebook pixels by domain", err)
		return
	}

	writeJSON(w, http.StatusOK, nonNilPixels(pixels))
}

func (h *FacebookPixelHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	pixel, err := h.service.GetPixel(r.Context(), userID, pathVar(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, "get facebook pixel", err)
		return
	}

	writeJSON(w, http.StatusOK, pixel)
}

func (h *FacebookPixelHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var pixel domain.FacebookPixel
	if !decodeJSON(w, r, h.logger, &pixel) {
		return
	}
	pixel.ID = pathVar(r, "id")

	updated, err := h.service.UpdatePixel(r.Context(), userID, &pixel)
	if err != nil {
		writeError(w, r, h.logger, "update facebook pixel", err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *FacebookPixelHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.service.DeletePixel(r.Context(), userID, pathVar(r, "id")); err != nil {
		writeError(w, r, h.logger, "delete facebook pixel", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func nonNilPixels(pixels []*domain.FacebookPixel) []*domain.FacebookPixel {
	if pixels == nil {
		return []*domain.FacebookPixel{}
	}
	return pixels
}
