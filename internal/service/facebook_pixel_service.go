package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pixeltrack/pixeltrack/internal/domain"
	"github.com/pixeltrack/pixeltrack/pkg/logger"
)

// FacebookPixelService manages pixel credentials. Every call is authorised through the owning domain.
type FacebookPixelService struct {
	repo    domain.FacebookPixelRepository
	domains domain.DomainService
	logger  logger.Logger
	now     func() time.Time
}

func NewFacebookPixelService(repo domain.FacebookPixelRepository, domains domain.DomainService, logger logger.Logger) *FacebookPixelService {
	return &FacebookPixelService{
		repo:    repo,
		domains: domains,
		logger:  logger,
		now:     time.Now,
	}
}

var _ domain.FacebookPixelService = (*FacebookPixelService)(nil)

func (s *FacebookPixelService) CreatePixel(ctx context.Context, userID string, pixel *domain.FacebookPixel) (*domain.FacebookPixel, error) {
	if pixel == nil {
		return nil, domain.NewValidationError("pixel é obrigatório")
	}
	if err := pixel.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.domains.Authorize(ctx, pixel.DomainID, userID); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	pixel.ID = uuid.New().String()
	pixel.CreatedAt = now
	pixel.UpdatedAt = now

	if err := s.repo.CreatePixel(ctx, pixel); err != nil {
		s.logger.WithField("domain_id", pixel.DomainID).WithField("error", err.Error()).Error("Failed to create facebook pixel")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"id":        pixel.ID,
		"domain_id": pixel.DomainID,
		"pixel_id":  pixel.PixelID,
	}).Info("Facebook pixel created")

	return pixel, nil
}

func (s *FacebookPixelService) GetPixel(ctx context.Context, userID, id string) (*domain.FacebookPixel, error) {
	pixel, err := s.repo.GetPixel(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.domains.Authorize(ctx, pixel.DomainID, userID); err != nil {
		return nil, err
	}
	return pixel, nil
}

func (s *FacebookPixelService) ListPixels(ctx context.Context, userID string) ([]*domain.FacebookPixel, error) {
	return s.repo.ListPixelsByUser(ctx, userID)
}

func (s *FacebookPixelService) ListPixelsByDomain(ctx context.Context, userID, domainID string) ([]*domain.FacebookPixel, error) {
	if _, err := s.domains.Authorize(ctx, domainID, userID); err != nil {
		return nil, err
	}
	return s.repo.ListPixelsByDomain(ctx, domainID)
}

// UpdatePixel replaces a pixel. Moving it to another domain requires owning both.
func (s *FacebookPixelService) UpdatePixel(ctx context.Context, userID string, pixel *domain.FacebookPixel) (*domain.FacebookPixel, error) {
	if pixel == nil {
		return nil, domain.NewValidationError("pixel é obrigatório")
	}

	existing, err := s.GetPixel(ctx, userID, pixel.ID)
	if err != nil {
		return nil, err
	}

	if pixel.DomainID == "" {
		pixel.DomainID = existing.DomainID
	}
	if err := pixel.Validate(); err != nil {
		return nil, err
	}
	if pixel.DomainID != existing.DomainID {
		if _, err := s.domains.Authorize(ctx, pixel.DomainID, userID); err != nil {
			return nil, err
		}
	}

	pixel.CreatedAt = existing.CreatedAt
	pixel.UpdatedAt = s.now().UTC()

	if err := s.repo.UpdatePixel(ctx, pixel); err != nil {
		return nil, err
	}
	return pixel, nil
}

func (s *FacebookPixelService) DeletePixel(ctx context.Context, userID, id string) error {
	if _, err := s.GetPixel(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.DeletePixel(ctx, id)
}
