package middleware

import (
	"encoding/json"
	"net/http"
	"time"
)

// ErrorBody is the uniform failure payload of every route
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Message   string `json:"message"`
	Status    int    `json:"status"`
	RequestID string `json:"requestId,omitempty"`
	Timestamp string `json:"timestamp"`
}

// NewErrorDetail builds the error object, stamped with the request id carried by r
func NewErrorDetail(r *http.Request, message string, status int) ErrorDetail {
	detail := ErrorDetail{
		Message:   message,
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if r != nil {
		detail.RequestID = RequestIDFromContext(r.Context())
	}
	return detail
}

// WriteError writes {"error": {message, status, requestId, timestamp}}
func WriteError(w http.ResponseWriter, r *http.Request, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorBody{Error: NewErrorDetail(r, message, status)})
}
