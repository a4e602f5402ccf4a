package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pixeltrack/pixeltrack/internal/domain"
	"github.com/pixeltrack/pixeltrack/internal/http/middleware"
	"github.com/pixeltrack/pixeltrack/pkg/logger"
	"github.com/pixeltrack/pixeltrack/pkg/ratelimiter"
)

// msgResetSent is returned whether or not the address exists
const msgResetSent = "Se o email estiver cadastrado, você receberá um link para redefinir sua senha."

type AuthHandler struct {
	service domain.AuthService
	limiter *ratelimiter.RateLimiter
	logger  logger.Logger
}

// NewAuthHandler creates the auth handler. limiter may be nil to disable throttling.
func NewAuthHandler(service domain.AuthService, limiter *ratelimiter.RateLimiter, logger logger.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		limiter: limiter,
		logger:  logger,
	}
}

type logoutRequest struct {
	RefreshToken string `json:"refresh_token,omitempty"`
}

func (h *AuthHandler) RegisterRoutes(router *mux.Router, auth *middleware.AuthMiddleware) {
	router.Handle("/api/auth/register", h.throttle(ratelimiter.NamespaceRegister, h.handleRegister)).Methods(http.MethodPost)
	router.Handle("/api/auth/login", h.throttle(ratelimiter.NamespaceLogin, h.handleLogin)).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/refresh", h.handleRefresh).Methods(http.MethodPost)
	router.Handle("/api/auth/forgot-password", h.throttle(ratelimiter.NamespaceForgotPassword, h.handleForgotPassword)).Methods(http.MethodPost)
	router.Handle("/api/auth/reset-password", h.throttle(ratelimiter.NamespaceResetPassword, h.handleResetPassword)).Methods(http.MethodPost)

	router.Handle("/api/auth/logout", auth.RequireAuth(http.HandlerFunc(h.handleLogout))).Methods(http.MethodPost)
	router.Handle("/api/auth/me", auth.RequireAuth(http.HandlerFunc(h.handleMe))).Methods(http.MethodGet)
	router.Handle("/api/auth/me", auth.RequireAuth(http.HandlerFunc(h.handleUpdateProfile))).Methods(http.MethodPut)
	router.Handle("/api/auth/me", auth.RequireAuth(http.HandlerFunc(h.handleDeleteAccount))).Methods(http.MethodDelete)
}

func (h *AuthHandler) throttle(namespace string, fn http.HandlerFunc) http.Handler {
	if h.limiter == nil {
		return fn
	}
	return middleware.RateLimit(h.limiter, namespace)(fn)
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, h.logger, "register user", err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, h.logger, "log in", err)
		return
	}

	// a successful login clears the failed attempts of this address
	if h.limiter != nil {
		h.limiter.Reset(ratelimiter.NamespaceLogin, middleware.ClientIP(r))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var req domain.RefreshRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}
	if req.RefreshToken == "" {
		WriteJSONError(w, r, "refresh_token é obrigatório", http.StatusBadRequest)
		return
	}

	pair, err := h.service.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeError(w, r, h.logger, "refresh token", err)
		return
	}

	writeJSON(w, http.StatusOK, pair)
}

func (h *AuthHandler) handleLogout(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	// the body is optional: without a token every session of the user ends
	var req logoutRequest
	if r.ContentLength != 0 && !decodeJSON(w, r, h.logger, &req) {
		return
	}

	if err := h.service.Logout(r.Context(), userID, req.RefreshToken); err != nil {
		writeError(w, r, h.logger, "log out", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Logout realizado com sucesso"})
}

func (h *AuthHandler) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req domain.ForgotPasswordRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	if err := h.service.ForgotPassword(r.Context(), req.Email); err != nil {
		if status, _ := statusAndMessage(err); status == http.StatusBadRequest {
			writeError(w, r, h.logger, "request password reset", err)
			return
		}
		// mail delivery problems are not disclosed to the caller
		h.logger.WithField("error", err.Error()).Warn("Password reset request failed")
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": msgResetSent})
}

func (h *AuthHandler) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req domain.ResetPasswordRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	if err := h.service.ResetPassword(r.Context(), req); err != nil {
		writeError(w, r, h.logger, "reset password", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Senha redefinida com sucesso"})
}

func (h *AuthHandler) handleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	user, err := h.service.Me(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, "get profile", err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req domain.UpdateProfileRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, h.logger, "update profile", err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteAccount(r.Context(), userID); err != nil {
		writeError(w, r, h.logger, "delete account", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
