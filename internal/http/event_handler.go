package http

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pixeltrack/pixeltrack/internal/domain"
	"github.com/pixeltrack/pixeltrack/internal/http/middleware"
	"github.com/pixeltrack/pixeltrack/pkg/logger"
)

const msgForwardFailed = "Falha ao enviar o evento para o Facebook"

type EventHandler struct {
	service domain.EventService
	logger  logger.Logger
}

func NewEventHandler(service domain.EventService, logger logger.Logger) *EventHandler {
	return &EventHandler{
		service: service,
		logger:  logger,
	}
}

// forwardFailedResponse carries the stored event of a rejected forward
type forwardFailedResponse struct {
	Event *domain.Event          `json:"event"`
	Error middleware.ErrorDetail `json:"error"`
}

func (h *EventHandler) RegisterRoutes(router *mux.Router, auth *middleware.AuthMiddleware) {
	protected := func(fn http.HandlerFunc) http.Handler { return auth.RequireAuth(fn) }

	router.Handle("/api/events", protected(h.handleCreate)).Methods(http.MethodPost)
	router.Handle("/api/events/domain/{domainId}", protected(h.handleListByDomain)).Methods(http.MethodGet)
	router.Handle("/api/events/{id}", protected(h.handleGet)).Methods(http.MethodGet)
	router.Handle("/api/facebook/send-event", protected(h.handleSendEvent)).Methods(http.MethodPost)
}

func (h *EventHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var event domain.Event
	if !decodeJSON(w, r, h.logger, &event) {
		return
	}

	meta := domain.RequestMeta{
		ClientIP:  middleware.ClientIP(r),
		UserAgent: r.UserAgent(),
	}

	stored, err := h.service.CreateEvent(r.Context(), userID, &event, meta)
	h.writeForwardResult(w, r, http.StatusCreated, "create event", stored, err)
}

func (h *EventHandler) handleSendEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req domain.SendEventRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	stored, err := h.service.SendEvent(r.Context(), userID, req)
	h.writeForwardResult(w, r, http.StatusOK, "send event", stored, err)
}

// writeForwardResult answers 200 with the stored event and the error when only
// the Facebook call failed, so the recorded failure stays visible to the caller
func (h *EventHandler) writeForwardResult(w http.ResponseWriter, r *http.Request, okStatus int, action string, stored *domain.Event, err error) {
	if err == nil {
		writeJSON(w, okStatus, stored)
		return
	}

	var upstream *domain.UpstreamError
	if errors.As(err, &upstream) && stored != nil {
		h.logger.WithFields(map[string]interface{}{
			"event_id":    stored.ID,
			"domain_id":   stored.DomainID,
			"status_code": upstream.StatusCode,
			"error":       upstream.Error(),
		}).Warn("Event stored but not accepted by Facebook")

		status := upstream.StatusCode
		if status == 0 {
			status = http.StatusBadGateway
		}
		writeJSON(w, http.StatusOK, forwardFailedResponse{
			Event: stored,
			Error: middleware.NewErrorDetail(r, msgForwardFailed, status),
		})
		return
	}

	writeError(w, r, h.logger, action, err)
}

func (h *EventHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	event, err := h.service.GetEvent(r.Context(), userID, pathVar(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, "get event", err)
		return
	}

	writeJSON(w, http.StatusOK, event)
}

func (h *EventHandler) handleListByDomain(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	events, err := h.service.ListEventsByDomain(r.Context(), userID, pathVar(r, "domainId"))
	if err != nil {
		writeError(w, r, h.logger, "list events", err)
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}

	writeJSON(w, http.StatusOK, events)
}
