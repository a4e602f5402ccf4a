package domain

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

//go:generate mockgen -destination mocks/mock_auth.go -package mocks github.com/pixeltrack/pixeltrack/internal/domain AuthService,RefreshTokenRepository,PasswordResetTokenRepository

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// UserClaims is the JWT payload for both access and refresh tokens
type UserClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
	Type   string `json:"type"`
	jwt.RegisteredClaims
}

// TokenPair is returned by register, login and refresh
type TokenPair struct {
	Token        string    `json:"token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type AuthResponse struct {
	TokenPair
	User *User `json:"user"`
}

type RegisterRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
	Password string  `json:"password"`
}

func (r *RegisterRequest) Validate() error {
	r.Email = NormalizeEmail(r.Email)
	if err := ValidateName(r.Name); err != nil {
		return err
	}
	if err := ValidateEmail(r.Email); err != nil {
		return err
	}
	return ValidatePassword(r.Password)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	r.Email = NormalizeEmail(r.Email)
	if r.Email == "" || r.Password == "" {
		return NewValidationError("email e senha são obrigatórios")
	}
	return nil
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (r *ResetPasswordRequest) Validate() error {
	if r.Token == "" {
		return NewValidationError("token é obrigatório")
	}
	return ValidatePassword(r.Password)
}

// UpdateProfileRequest carries optional profile changes, nil fields are left untouched
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Password *string `json:"password,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	if r.Name != nil {
		if err := ValidateName(*r.Name); err != nil {
			return err
		}
	}
	if r.Email != nil {
		normalized := NormalizeEmail(*r.Email)
		r.Email = &normalized
		if err := ValidateEmail(normalized); err != nil {
			return err
		}
	}
	if r.Password != nil {
		if err := ValidatePassword(*r.Password); err != nil {
			return err
		}
	}
	return nil
}

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, userID, refreshToken string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
	Me(ctx context.Context, userID string) (*User, error)
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*User, error)
	DeleteAccount(ctx context.Context, userID string) error
	// ParseAccessToken validates an access token and returns its claims
	ParseAccessToken(token string) (*UserClaims, error)
}

// StoredToken is a persisted refresh or reset token. Only the SHA-256 of the token is kept.
type StoredToken struct {
	TokenHash string
	// Subject is the user id for refresh tokens and the email for reset tokens
	Subject   string
	ExpiresAt time.Time
}

func (t *StoredToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// RefreshTokenRepository is the server side revocation list for refresh tokens
type RefreshTokenRepository interface {
	CreateRefreshToken(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error
	GetRefreshToken(ctx context.Context, tokenHash string) (*StoredToken, error)
	DeleteRefreshToken(ctx context.Context, tokenHash string) error
	DeleteRefreshTokensByUser(ctx context.Context, userID string) error
	DeleteExpiredRefreshTokens(ctx context.Context, now time.Time) (int64, error)
}

type PasswordResetTokenRepository interface {
	CreateResetToken(ctx context.Context, tokenHash, email string, expiresAt time.Time) error
	GetResetToken(ctx context.Context, tokenHash string) (*StoredToken, error)
	DeleteResetToken(ctx context.Context, tokenHash string) error
	DeleteExpiredResetTokens(ctx context.Context, now time.Time) (int64, error)
}
