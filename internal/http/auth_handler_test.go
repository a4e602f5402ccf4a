package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixeltrack/pixeltrack/internal/domain"
	"github.com/pixeltrack/pixeltrack/internal/domain/mocks"
	"github.com/pixeltrack/pixeltrack/internal/http/middleware"
	"github.com/pixeltrack/pixeltrack/pkg/logger"
	"github.com/pixeltrack/pixeltrack/pkg/ratelimiter"
)

func TestAuthHandler_Register(t *testing.T) {
	router, m := setupRouterTest(t)

	t.Run("created", func(t *testing.T) {
		req := domain.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "Senha123"}
		m.auth.EXPECT().Register(gomock.Any(), req).Return(&domain.AuthResponse{
			TokenPair: domain.TokenPair{Token: "access", RefreshToken: "refresh"},
			User:      &domain.User{ID: testUserID, Name: "Ana", Email: "ana@example.com", PasswordHash: "hash"},
		}, nil)

		w := doRequest(t, router, http.MethodPost, "/api/auth/register", req, "")

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "access", resp["token"])
		assert.Equal(t, "refresh", resp["refresh_token"])
		assert.NotContains(t, w.Body.String(), "hash")
	})

	t.Run("duplicate email", func(t *testing.T) {
		m.auth.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, &domain.ErrDuplicateKey{Entity: "user", Field: "email", Message: domain.MsgDuplicateEmail})

		w := doRequest(t, router, http.MethodPost, "/api/auth/register", domain.RegisterRequest{Email: "ana@example.com"}, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domain.MsgDuplicateEmail, decodeErrorBody(t, w).Message)
	})

	t.Run("invalid body", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/auth/register", "{not json", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, msgInvalidBody, decodeErrorBody(t, w).Message)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	router, m := setupRouterTest(t)

	t.Run("success", func(t *testing.T) {
		m.auth.EXPECT().Login(gomock.Any(), domain.LoginRequest{Email: "ana@example.com", Password: "Senha123"}).
			Return(&domain.AuthResponse{TokenPair: domain.TokenPair{Token: "access"}}, nil)

		w := doRequest(t, router, http.MethodPost, "/api/auth/login",
			domain.LoginRequest{Email: "ana@example.com", Password: "Senha123"}, "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"token":"access"`)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, domain.ErrInvalidCredentials)

		w := doRequest(t, router, http.MethodPost, "/api/auth/login",
			domain.LoginRequest{Email: "ana@example.com", Password: "wrong"}, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		detail := decodeErrorBody(t, w)
		assert.Equal(t, "Credenciais inválidas", detail.Message)
		assert.Equal(t, http.StatusUnauthorized, detail.Status)
		assert.NotEmpty(t, detail.RequestID)
	})
}

func TestAuthHandler_LoginIsRateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	authSvc := mocks.NewMockAuthService(ctrl)

	limiter := ratelimiter.NewRateLimiter()
	defer limiter.Stop()
	limiter.SetPolicy(ratelimiter.NamespaceLogin, 2, time.Minute)

	router := mux.NewRouter()
	NewAuthHandler(authSvc, limiter, logger.NewTestLogger(t)).RegisterRoutes(router, middleware.NewAuthMiddleware(authSvc))

	authSvc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, domain.ErrInvalidCredentials).Times(2)

	body := domain.LoginRequest{Email: "ana@example.com", Password: "wrong"}
	assert.Equal(t, http.StatusUnauthorized, doRequest(t, router, http.MethodPost, "/api/auth/login", body, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(t, router, http.MethodPost, "/api/auth/login", body, "").Code)

	w := doRequest(t, router, http.MethodPost, "/api/auth/login", body, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestAuthHandler_SuccessfulLoginResetsLimiter(t *testing.T) {
	ctrl := gomock.NewController(t)
	authSvc := mocks.NewMockAuthService(ctrl)

	limiter := ratelimiter.NewRateLimiter()
	defer limiter.Stop()
	limiter.SetPolicy(ratelimiter.NamespaceLogin, 2, time.Minute)

	router := mux.NewRouter()
	NewAuthHandler(authSvc, limiter, logger.NewTestLogger(t)).RegisterRoutes(router, middleware.NewAuthMiddleware(authSvc))

	authSvc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(&domain.AuthResponse{}, nil).Times(3)

	for i := 0; i < 3; i++ {
		w := doRequest(t, router, http.MethodPost, "/api/auth/login", domain.LoginRequest{}, "")
		assert.Equal(t, http.StatusOK, w.Code, "attempt %d", i+1)
	}
}

func TestAuthHandler_Refresh(t *testing.T) {
	router, m := setupRouterTest(t)

	t.Run("missing token", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/auth/refresh", domain.RefreshRequest{}, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rotated", func(t *testing.T) {
		m.auth.EXPECT().Refresh(gomock.Any(), "old-refresh").
			Return(&domain.TokenPair{Token: "new-access", RefreshToken: "new-refresh"}, nil)

		w := doRequest(t, router, http.MethodPost, "/api/auth/refresh", domain.RefreshRequest{RefreshToken: "old-refresh"}, "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "new-refresh")
	})

	t.Run("revoked", func(t *testing.T) {
		m.auth.EXPECT().Refresh(gomock.Any(), "revoked").Return(nil, domain.ErrUnauthorized)

		w := doRequest(t, router, http.MethodPost, "/api/auth/refresh", domain.RefreshRequest{RefreshToken: "revoked"}, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	router, m := setupRouterTest(t)

	t.Run("requires auth", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/auth/logout", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("single session", func(t *testing.T) {
		m.auth.EXPECT().Logout(gomock.Any(), testUserID, "refresh-1").Return(nil)

		w := doRequest(t, router, http.MethodPost, "/api/auth/logout", logoutRequest{RefreshToken: "refresh-1"}, testToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("every session without body", func(t *testing.T) {
		m.auth.EXPECT().Logout(gomock.Any(), testUserID, "").Return(nil)

		w := doRequest(t, router, http.MethodPost, "/api/auth/logout", nil, testToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("token of another user", func(t *testing.T) {
		m.auth.EXPECT().Logout(gomock.Any(), testUserID, "foreign").Return(domain.ErrForbidden)

		w := doRequest(t, router, http.MethodPost, "/api/auth/logout", logoutRequest{RefreshToken: "foreign"}, testToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAuthHandler_ForgotPassword(t *testing.T) {
	router, m := setupRouterTest(t)

	t.Run("known and unknown addresses answer the same", func(t *testing.T) {
		m.auth.EXPECT().ForgotPassword(gomock.Any(), "ana@example.com").Return(nil)

		w := doRequest(t, router, http.MethodPost, "/api/auth/forgot-password", domain.ForgotPasswordRequest{Email: "ana@example.com"}, "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), msgResetSent)
	})

	t.Run("mail failure is not disclosed", func(t *testing.T) {
		m.auth.EXPECT().ForgotPassword(gomock.Any(), "ana@example.com").Return(errors.New("smtp: connection refused"))

		w := doRequest(t, router, http.MethodPost, "/api/auth/forgot-password", domain.ForgotPasswordRequest{Email: "ana@example.com"}, "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "smtp")
	})

	t.Run("invalid email", func(t *testing.T) {
		m.auth.EXPECT().ForgotPassword(gomock.Any(), "nope").Return(domain.NewValidationError("email inválido"))

		w := doRequest(t, router, http.MethodPost, "/api/auth/forgot-password", domain.ForgotPasswordRequest{Email: "nope"}, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	router, m := setupRouterTest(t)

	req := domain.ResetPasswordRequest{Token: "reset-token", Password: "NovaSenha1"}

	m.auth.EXPECT().ResetPassword(gomock.Any(), req).Return(nil)
	w := doRequest(t, router, http.MethodPost, "/api/auth/reset-password", req, "")
	assert.Equal(t, http.StatusOK, w.Code)

	m.auth.EXPECT().ResetPassword(gomock.Any(), req).Return(domain.NewValidationError("token inválido ou expirado"))
	w = doRequest(t, router, http.MethodPost, "/api/auth/reset-password", req, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "token inválido ou expirado", decodeErrorBody(t, w).Message)
}

func TestAuthHandler_Profile(t *testing.T) {
	router, m := setupRouterTest(t)

	t.Run("me", func(t *testing.T) {
		m.auth.EXPECT().Me(gomock.Any(), testUserID).Return(&domain.User{ID: testUserID, Name: "Ana"}, nil)

		w := doRequest(t, router, http.MethodGet, "/api/auth/me", nil, testToken)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Ana"`)
	})

	t.Run("me without token", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/auth/me", nil, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Token não fornecido", decodeErrorBody(t, w).Message)
	})

	t.Run("update", func(t *testing.T) {
		name := "Ana Maria"
		m.auth.EXPECT().UpdateProfile(gomock.Any(), testUserID, domain.UpdateProfileRequest{Name: &name}).
			Return(&domain.User{ID: testUserID, Name: name}, nil)

		w := doRequest(t, router, http.MethodPut, "/api/auth/me", map[string]string{"name": name}, testToken)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), name)
	})

	t.Run("delete", func(t *testing.T) {
		m.auth.EXPECT().DeleteAccount(gomock.Any(), testUserID).Return(nil)

		w := doRequest(t, router, http.MethodDelete, "/api/auth/me", nil, testToken)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestAuthHandler_RefreshTokenRejectedAsAccessToken(t *testing.T) {
	router, m := setupRouterTest(t)
	m.auth.EXPECT().ParseAccessToken("a-refresh-token").Return(nil, domain.ErrUnauthorized)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer a-refresh-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
