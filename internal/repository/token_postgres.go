package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pixeltrack/pixeltrack/internal/domain"
)

type refreshTokenRepository struct {
	systemDB *sql.DB
}

// NewRefreshTokenRepository creates the PostgreSQL store of issued refresh tokens
func NewRefreshTokenRepository(db *sql.DB) domain.RefreshTokenRepository {
	return &refreshTokenRepository{systemDB: db}
}

func (r *refreshTokenRepository) CreateRefreshToken(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error {
	query := `
		INSERT INTO refresh_tokens (refresh_token, user_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.systemDB.ExecContext(ctx, query, tokenHash, userID, expiresAt.UTC(), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to create refresh token: %w", err)
	}
	return nil
}

func (r *refreshTokenRepository) GetRefreshToken(ctx context.Context, tokenHash string) (*domain.StoredToken, error) {
	var token domain.StoredToken
	err := r.systemDB.QueryRowContext(ctx,
		`SELECT refresh_token, user_id, expires_at FROM refresh_tokens WHERE refresh_token = $1`,
		tokenHash,
	).Scan(&token.TokenHash, &token.Subject, &token.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.ErrNotFound{Entity: "refresh token", ID: "-"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}
	return &token, nil
}

func (r *refreshTokenRepository) DeleteRefreshToken(ctx context.Context, tokenHash string) error {
	if _, err := r.systemDB.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE refresh_token = $1`, tokenHash); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}

func (r *refreshTokenRepository) DeleteRefreshTokensByUser(ctx context.Context, userID string) error {
	if _, err := r.systemDB.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to delete refresh tokens: %w", err)
	}
	return nil
}

func (r *refreshTokenRepository) DeleteExpiredRefreshTokens(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.systemDB.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE expires_at <= $1`, now.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired refresh tokens: %w", err)
	}
	return result.RowsAffected()
}

type passwordResetTokenRepository struct {
	systemDB *sql.DB
}

// NewPasswordResetTokenRepository creates the PostgreSQL store of pending password resets
func NewPasswordResetTokenRepository(db *sql.DB) domain.PasswordResetTokenRepository {
	return &passwordResetTokenRepository{systemDB: db}
}

func (r *passwordResetTokenRepository) CreateResetToken(ctx context.Context, tokenHash, email string, expiresAt time.Time) error {
	query := `
		INSERT INTO password_reset_tokens (token, email, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.systemDB.ExecContext(ctx, query, tokenHash, email, expiresAt.UTC(), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to create reset token: %w", err)
	}
	return nil
}

func (r *passwordResetTokenRepository) GetResetToken(ctx context.Context, tokenHash string) (*domain.StoredToken, error) {
	var token domain.StoredToken
	err := r.systemDB.QueryRowContext(ctx,
		`SELECT token, email, expires_at FROM password_reset_tokens WHERE token = $1`,
		tokenHash,
	).Scan(&token.TokenHash, &token.Subject, &token.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.ErrNotFound{Entity: "reset token", ID: "-"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reset token: %w", err)
	}
	return &token, nil
}

func (r *passwordResetTokenRepository) DeleteResetToken(ctx context.Context, tokenHash string) error {
	if _, err := r.systemDB.ExecContext(ctx, `DELETE FROM password_reset_tokens WHERE token = $1`, tokenHash); err != nil {
		return fmt.Errorf("failed to delete reset token: %w", err)
	}
	return nil
}

func (r *passwordResetTokenRepository) DeleteExpiredResetTokens(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.systemDB.ExecContext(ctx, `DELETE FROM password_reset_tokens WHERE expires_at <= $1`, now.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired reset tokens: %w", err)
	}
	return result.RowsAffected()
}
