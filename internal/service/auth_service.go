package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pixeltrack/pixeltrack/internal/domain"
	"github.com/pixeltrack/pixeltrack/pkg/logger"
	"github.com/pixeltrack/pixeltrack/pkg/mailer"
	"github.com/pixeltrack/pixeltrack/pkg/tracing"
)

var errInvalidResetToken = domain.NewValidationError("token inválido ou expirado")

// AuthService issues HS256 access and refresh tokens. Refresh tokens are rotated on
// use and kept server side as SHA-256 digests so they can be revoked.
type AuthService struct {
	users         domain.UserRepository
	refreshTokens domain.RefreshTokenRepository
	resetTokens   domain.PasswordResetTokenRepository
	mailer        mailer.Mailer
	secret        []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	resetTTL      time.Duration
	apiEndpoint   string
	bcryptCost    int
	logger        logger.Logger
	tracer        tracing.Tracer
	now           func() time.Time
}

type AuthServiceConfig struct {
	UserRepository         domain.UserRepository
	RefreshTokenRepository domain.RefreshTokenRepository
	ResetTokenRepository   domain.PasswordResetTokenRepository
	Mailer                 mailer.Mailer
	JWTSecret              []byte
	AccessTokenTTL         time.Duration
	RefreshTokenTTL        time.Duration
	ResetTokenTTL          time.Duration
	// APIEndpoint is the public base URL used in password reset links
	APIEndpoint string
	Logger      logger.Logger
	Tracer      tracing.Tracer
}

func NewAuthService(cfg AuthServiceConfig) (*AuthService, error) {
	if len(cfg.JWTSecret) == 0 {
		return nil, errors.New("jwt secret is required")
	}

	tracer := cfg.Tracer
	if tracer == nil {
		tracer = tracing.GetTracer()
	}

	svc := &AuthService{
		users:         cfg.UserRepository,
		refreshTokens: cfg.RefreshTokenRepository,
		resetTokens:   cfg.ResetTokenRepository,
		mailer:        cfg.Mailer,
		secret:        cfg.JWTSecret,
		accessTTL:     cfg.AccessTokenTTL,
		refreshTTL:    cfg.RefreshTokenTTL,
		resetTTL:      cfg.ResetTokenTTL,
		apiEndpoint:   cfg.APIEndpoint,
		bcryptCost:    bcrypt.DefaultCost,
		logger:        cfg.Logger,
		tracer:        tracer,
		now:           time.Now,
	}
	if svc.accessTTL == 0 {
		svc.accessTTL = 24 * time.Hour
	}
	if svc.refreshTTL == 0 {
		svc.refreshTTL = 7 * 24 * time.Hour
	}
	if svc.resetTTL == 0 {
		svc.resetTTL = time.Hour
	}
	return svc, nil
}

var _ domain.AuthService = (*AuthService)(nil)

func (s *AuthService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	ctx, span := s.tracer.StartServiceSpan(ctx, "AuthService", "Register")
	defer span.End()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now().UTC()
	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if dup := duplicateEmail(err); dup != nil {
			return nil, dup
		}
		s.logger.WithField("email", user.Email).WithField("error", err.Error()).Error("Failed to create user")
		s.tracer.MarkSpanError(ctx, err)
		return nil, err
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.WithField("user_id", user.ID).Info("User registered")
	return &domain.AuthResponse{TokenPair: *pair, User: user}, nil
}

func (s *AuthService) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	ctx, span := s.tracer.StartServiceSpan(ctx, "AuthService", "Login")
	defer span.End()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.ErrInvalidCredentials
		}
		s.tracer.MarkSpanError(ctx, err)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.WithField("user_id", user.ID).Warn("Login with wrong password")
		return nil, domain.ErrInvalidCredentials
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}
	return &domain.AuthResponse{TokenPair: *pair, User: user}, nil
}

// Refresh exchanges a refresh token for a new pair. The presented token is revoked.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	ctx, span := s.tracer.StartServiceSpan(ctx, "AuthService", "Refresh")
	defer span.End()

	claims, err := s.parseToken(refreshToken, domain.TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	hash := hashToken(refreshToken)
	stored, err := s.refreshTokens.GetRefreshToken(ctx, hash)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if stored.Subject != claims.UserID {
		return nil, domain.ErrUnauthorized
	}
	if err := s.refreshTokens.DeleteRefreshToken(ctx, hash); err != nil {
		return nil, err
	}
	if stored.Expired(s.now()) {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes one refresh token, or every token of the user when refreshToken is empty
func (s *AuthService) Logout(ctx context.Context, userID, refreshToken string) error {
	if refreshToken == "" {
		return s.refreshTokens.DeleteRefreshTokensByUser(ctx, userID)
	}

	hash := hashToken(refreshToken)
	stored, err := s.refreshTokens.GetRefreshToken(ctx, hash)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil
		}
		return err
	}
	if stored.Subject != userID {
		return domain.ErrForbidden
	}
	return s.refreshTokens.DeleteRefreshToken(ctx, hash)
}

// ForgotPassword mails a reset link. Unknown addresses succeed silently.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	ctx, span := s.tracer.StartServiceSpan(ctx, "AuthService", "ForgotPassword")
	defer span.End()

	email = domain.NormalizeEmail(email)
	if err := domain.ValidateEmail(email); err != nil {
		return err
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if domain.IsNotFound(err) {
			s.logger.WithField("email", email).Info("Password reset requested for unknown email")
			return nil
		}
		return err
	}

	token, err := randomToken()
	if err != nil {
		return err
	}
	if err := s.resetTokens.CreateResetToken(ctx, hashToken(token), user.Email, s.now().Add(s.resetTTL)); err != nil {
		s.logger.WithField("user_id", user.ID).WithField("error", err.Error()).Error("Failed to store reset token")
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.apiEndpoint, url.QueryEscape(token))
	if err := s.mailer.SendPasswordReset(user.Email, user.Name, resetURL, s.resetTTL); err != nil {
		s.logger.WithField("user_id", user.ID).WithField("error", err.Error()).Error("Failed to send password reset email")
		s.tracer.MarkSpanError(ctx, err)
		return err
	}

	s.logger.WithField("user_id", user.ID).Info("Password reset email sent")
	return nil
}

// ResetPassword sets a new password from a reset token. Every session of the user is revoked.
func (s *AuthService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	ctx, span := s.tracer.StartServiceSpan(ctx, "AuthService", "ResetPassword")
	defer span.End()

	if err := req.Validate(); err != nil {
		return err
	}

	hash := hashToken(req.Token)
	stored, err := s.resetTokens.GetResetToken(ctx, hash)
	if err != nil {
		if domain.IsNotFound(err) {
			return errInvalidResetToken
		}
		return err
	}
	if stored.Expired(s.now()) {
		if err := s.resetTokens.DeleteResetToken(ctx, hash); err != nil {
			s.logger.WithField("error", err.Error()).Warn("Failed to delete expired reset token")
		}
		return errInvalidResetToken
	}

	user, err := s.users.GetUserByEmail(ctx, stored.Subject)
	if err != nil {
		if domain.IsNotFound(err) {
			return errInvalidResetToken
		}
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(passwordHash)
	user.UpdatedAt = s.now().UTC()

	if err := s.users.UpdateUser(ctx, user); err != nil {
		return err
	}
	if err := s.resetTokens.DeleteResetToken(ctx, hash); err != nil {
		return err
	}
	if err := s.refreshTokens.DeleteRefreshTokensByUser(ctx, user.ID); err != nil {
		return err
	}

	s.logger.WithField("user_id", user.ID).Info("Password reset")
	return nil
}

func (s *AuthService) Me(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.GetUserByID(ctx, userID)
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (*domain.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), s.bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = s.now().UTC()

	if err := s.users.UpdateUser(ctx, user); err != nil {
		if dup := duplicateEmail(err); dup != nil {
			return nil, dup
		}
		return nil, err
	}
	return user, nil
}

// DeleteAccount removes the user. Domains and their children go with it through foreign keys.
func (s *AuthService) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.refreshTokens.DeleteRefreshTokensByUser(ctx, userID); err != nil {
		return err
	}
	if err := s.users.DeleteUser(ctx, userID); err != nil {
		return err
	}
	s.logger.WithField("user_id", userID).Info("Account deleted")
	return nil
}

func (s *AuthService) ParseAccessToken(token string) (*domain.UserClaims, error) {
	return s.parseToken(token, domain.TokenTypeAccess)
}

func (s *AuthService) parseToken(token, tokenType string) (*domain.UserClaims, error) {
	claims := &domain.UserClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil, domain.ErrUnauthorized
	}
	if claims.Type != tokenType || claims.UserID == "" {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *domain.User) (*domain.TokenPair, error) {
	now := s.now()
	accessExpiry := now.Add(s.accessTTL)
	refreshExpiry := now.Add(s.refreshTTL)

	access, err := s.sign(user, domain.TokenTypeAccess, now, accessExpiry)
	if err != nil {
		return nil, err
	}
	refresh, err := s.sign(user, domain.TokenTypeRefresh, now, refreshExpiry)
	if err != nil {
		return nil, err
	}

	if err := s.refreshTokens.CreateRefreshToken(ctx, user.ID, hashToken(refresh), refreshExpiry); err != nil {
		s.logger.WithField("user_id", user.ID).WithField("error", err.Error()).Error("Failed to store refresh token")
		return nil, err
	}

	return &domain.TokenPair{
		Token:        access,
		RefreshToken: refresh,
		ExpiresAt:    accessExpiry.UTC(),
	}, nil
}

func (s *AuthService) sign(user *domain.User, tokenType string, issuedAt, expiresAt time.Time) (string, error) {
	claims := domain.UserClaims{
		UserID: user.ID,
		Email:  user.Email,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

// hashToken is the storage key of refresh and reset tokens
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func duplicateEmail(err error) error {
	var dup *domain.ErrDuplicateKey
	if errors.As(err, &dup) {
		return &domain.ErrDuplicateKey{Entity: dup.Entity, Field: dup.Field, Message: domain.MsgDuplicateEmail}
	}
	return nil
}
