package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pixeltrack/pixeltrack/internal/domain"
	"github.com/pixeltrack/pixeltrack/pkg/logger"
)

func TestStatusAndMessage(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", domain.NewValidationError("title é obrigatório"), http.StatusBadRequest, "title é obrigatório"},
		{"wrapped validation", fmt.Errorf("create: %w", domain.NewValidationError("x")), http.StatusBadRequest, "x"},
		{"duplicate", &domain.ErrDuplicateKey{Entity: "user", Field: "email", Message: domain.MsgDuplicateEmail}, http.StatusBadRequest, domain.MsgDuplicateEmail},
		{"domain not found", &domain.ErrNotFound{Entity: "domain", ID: "d1"}, http.StatusNotFound, "Domínio não encontrado"},
		{"pixel not found", &domain.ErrNotFound{Entity: "facebook pixel", ID: "p1"}, http.StatusNotFound, "Facebook Pixel não encontrado"},
		{"conversion not found", &domain.ErrNotFound{Entity: "conversion", ID: "c1"}, http.StatusNotFound, "Conversão não encontrada"},
		{"unknown entity", &domain.ErrNotFound{Entity: "widget", ID: "w1"}, http.StatusNotFound, "Recurso não encontrado"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "Credenciais inválidas"},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, msgUnauthorized},
		{"forbidden", fmt.Errorf("authorize: %w", domain.ErrForbidden), http.StatusForbidden, msgForbidden},
		{"upstream", &domain.UpstreamError{StatusCode: 400}, http.StatusInternalServerError, msgInternalError},
		{"anything else", errors.New("connection refused"), http.StatusInternalServerError, msgInternalError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, message := statusAndMessage(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.message, message)
		})
	}
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	writeError(w, r, logger.NewTestLogger(t), "get domain", errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	detail := decodeErrorBody(t, w)
	assert.Equal(t, msgInternalError, detail.Message)
	assert.NotContains(t, w.Body.String(), "pq:")
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	testCases := []struct {
		name   string
		body   string
		ok     bool
		status int
	}{
		{"valid", `{"name":"ana"}`, true, http.StatusOK},
		{"empty body", ``, false, http.StatusBadRequest},
		{"malformed", `{"name":`, false, http.StatusBadRequest},
		{"too large", `{"name":"` + strings.Repeat("a", maxBodyBytes) + `"}`, false, http.StatusRequestEntityTooLarge},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))

			var p payload
			ok := decodeJSON(w, r, logger.NewTestLogger(t), &p)

			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.status, w.Code)
			if ok {
				assert.Equal(t, "ana", p.Name)
			}
		})
	}
}
