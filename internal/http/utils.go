package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pixeltrack/pixeltrack/internal/domain"
	"github.com/pixeltrack/pixeltrack/internal/http/middleware"
	"github.com/pixeltrack/pixeltrack/pkg/logger"
)

const (
	maxBodyBytes = 1 << 20

	msgInvalidBody   = "Corpo da requisição inválido"
	msgInternalError = "Erro interno do servidor"
	msgUnauthorized  = "Não autorizado"
	msgForbidden     = "Acesso negado"
)

// notFoundMessages maps ErrNotFound.Entity to the message returned to clients
var notFoundMessages = map[string]string{
	"user":           "Usuário não encontrado",
	"domain":         "Domínio não encontrado",
	"facebook pixel": "Facebook Pixel não encontrado",
	"conversion":     "Conversão não encontrada",
	"lead":           "Lead não encontrado",
	"event":          "Evento não encontrado",
}

// WriteJSONError writes the uniform {"error": {...}} body
func WriteJSONError(w http.ResponseWriter, r *http.Request, message string, statusCode int) {
	middleware.WriteError(w, r, message, statusCode)
}

// writeJSON writes a JSON response with the given status code and data.
// It sets the Content-Type header to application/json.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusAndMessage maps a service error to the HTTP status and client message
func statusAndMessage(err error) (int, string) {
	var validationErr domain.ValidationError
	var duplicateErr *domain.ErrDuplicateKey
	var notFoundErr *domain.ErrNotFound

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Message
	case errors.As(err, &duplicateErr):
		return http.StatusBadRequest, duplicateErr.Error()
	case errors.As(err, &notFoundErr):
		if msg, ok := notFoundMessages[notFoundErr.Entity]; ok {
			return http.StatusNotFound, msg
		}
		return http.StatusNotFound, "Recurso não encontrado"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, domain.ErrInvalidCredentials.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, msgUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, msgForbidden
	default:
		return http.StatusInternalServerError, msgInternalError
	}
}

// writeError logs unexpected failures and writes the mapped error response
func writeError(w http.ResponseWriter, r *http.Request, log logger.Logger, action string, err error) {
	status, message := statusAndMessage(err)
	if status >= http.StatusInternalServerError {
		log.WithFields(map[string]interface{}{
			"error":      err.Error(),
			"request_id": middleware.RequestIDFromContext(r.Context()),
		}).Error("Failed to " + action)
	}
	WriteJSONError(w, r, message, status)
}

// decodeJSON reads a request body of at most 1MB into v
func decodeJSON(w http.ResponseWriter, r *http.Request, log logger.Logger, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			WriteJSONError(w, r, msgInvalidBody, http.StatusBadRequest)
			return false
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteJSONError(w, r, "Corpo da requisição muito grande", http.StatusRequestEntityTooLarge)
			return false
		}
		log.WithField("error", err.Error()).Debug("Failed to decode request body")
		WriteJSONError(w, r, msgInvalidBody, http.StatusBadRequest)
		return false
	}
	return true
}

// currentUser returns the authenticated user id, writing a 401 when missing
func currentUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteJSONError(w, r, msgUnauthorized, http.StatusUnauthorized)
	}
	return userID, ok
}

func pathVar(r *http.Request, name string) string {
	return mux.Vars(r)[name]
}
