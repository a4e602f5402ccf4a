package service

import (
	"context"
	"time"

	"github.com/pixeltrack/pixeltrack/internal/domain"
	"github.com/pixeltrack/pixeltrack/pkg/logger"
	"github.com/pixeltrack/pixeltrack/pkg/tracing"
)

// TokenSweeper periodically deletes expired refresh and reset tokens
type TokenSweeper struct {
	refreshTokens domain.RefreshTokenRepository
	resetTokens   domain.PasswordResetTokenRepository
	interval      time.Duration
	logger        logger.Logger
	now           func() time.Time
}

func NewTokenSweeper(refresh domain.RefreshTokenRepository, reset domain.PasswordResetTokenRepository, interval time.Duration, logger logger.Logger) *TokenSweeper {
	if interval <= 0 {
		interval = time.Hour
	}
	return &TokenSweeper{
		refreshTokens: refresh,
		resetTokens:   reset,
		interval:      interval,
		logger:        logger,
		now:           time.Now,
	}
}

// Run sweeps once immediately, then on every tick until ctx is done
func (s *TokenSweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweepAndLog(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Token sweeper stopped")
			return nil
		case <-ticker.C:
			s.sweepAndLog(ctx)
		}
	}
}

// Sweep returns how many refresh and reset tokens were removed
func (s *TokenSweeper) Sweep(ctx context.Context) (refreshed int64, reset int64, err error) {
	ctx, span := tracing.StartServiceSpan(ctx, "TokenSweeper", "Sweep")
	defer func() { tracing.EndSpan(span, err) }()

	now := s.now()
	refreshed, err = s.refreshTokens.DeleteExpiredRefreshTokens(ctx, now)
	if err != nil {
		return 0, 0, err
	}
	reset, err = s.resetTokens.DeleteExpiredResetTokens(ctx, now)
	if err != nil {
		return refreshed, 0, err
	}
	return refreshed, reset, nil
}

func (s *TokenSweeper) sweepAndLog(ctx context.Context) {
	refreshed, reset, err := s.Sweep(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.WithField("error", err.Error()).Error("Failed to delete expired tokens")
		}
		return
	}
	if refreshed+reset > 0 {
		s.logger.WithFields(map[string]interface{}{
			"refresh_tokens": refreshed,
			"reset_tokens":   reset,
		}).Info("Expired tokens deleted")
	}
}
