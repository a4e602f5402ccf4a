package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pixeltrack/pixeltrack/internal/domain"
	"github.com/pixeltrack/pixeltrack/pkg/logger"
)

// ConversionService manages conversion trigger definitions of a domain
type ConversionService struct {
	repo    domain.ConversionRepository
	domains domain.DomainService
	logger  logger.Logger
	now     func() time.Time
}

func NewConversionService(repo domain.ConversionRepository, domains domain.DomainService, logger logger.Logger) *ConversionService {
	return &ConversionService{
		repo:    repo,
		domains: domains,
		logger:  logger,
		now:     time.Now,
	}
}

var _ domain.ConversionService = (*ConversionService)(nil)

func (s *ConversionService) CreateConversion(ctx context.Context, userID string, conversion *domain.Conversion) (*domain.Conversion, error) {
	if conversion == nil {
		return nil, domain.NewValidationError("conversão é obrigatória")
	}
	if err := conversion.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.domains.Authorize(ctx, conversion.DomainID, userID); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	conversion.ID = uuid.New().String()
	conversion.CreatedAt = now
	conversion.UpdatedAt = now

	if err := s.repo.CreateConversion(ctx, conversion); err != nil {
		s.logger.WithField("domain_id", conversion.DomainID).WithField("error", err.Error()).Error("Failed to create conversion")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"id":         conversion.ID,
		"domain_id":  conversion.DomainID,
		"event_name": conversion.EventName,
		"trigger":    string(conversion.Trigger),
	}).Info("Conversion created")

	return conversion, nil
}

func (s *ConversionService) GetConversion(ctx context.Context, userID, id string) (*domain.Conversion, error) {
	conversion, err := s.repo.GetConversion(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.domains.Authorize(ctx, conversion.DomainID, userID); err != nil {
		return nil, err
	}
	return conversion, nil
}

func (s *ConversionService) ListConversions(ctx context.Context, userID string) ([]*domain.Conversion, error) {
	return s.repo.ListConversionsByUser(ctx, userID)
}

func (s *ConversionService) ListConversionsByDomain(ctx context.Context, userID, domainID string) ([]*domain.Conversion, error) {
	if _, err := s.domains.Authorize(ctx, domainID, userID); err != nil {
		return nil, err
	}
	return s.repo.ListConversionsByDomain(ctx, domainID)
}

func (s *ConversionService) UpdateConversion(ctx context.Context, userID string, conversion *domain.Conversion) (*domain.Conversion, error) {
	if conversion == nil {
		return nil, domain.NewValidationError("conversão é obrigatória")
	}

	existing, err := s.GetConversion(ctx, userID, conversion.ID)
	if err != nil {
		return nil, err
	}

	if conversion.DomainID == "" {
		conversion.DomainID = existing.DomainID
	}
	if err := conversion.Validate(); err != nil {
		return nil, err
	}
	if conversion.DomainID != existing.DomainID {
		if _, err := s.domains.Authorize(ctx, conversion.DomainID, userID); err != nil {
			return nil, err
		}
	}

	conversion.CreatedAt = existing.CreatedAt
	conversion.UpdatedAt = s.now().UTC()

	if err := s.repo.UpdateConversion(ctx, conversion); err != nil {
		return nil, err
	}
	return conversion, nil
}

func (s *ConversionService) DeleteConversion(ctx context.Context, userID, id string) error {
	if _, err := s.GetConversion(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.DeleteConversion(ctx, id)
}
