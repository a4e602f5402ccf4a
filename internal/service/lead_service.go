package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pixeltrack/pixeltrack/internal/domain"
	"github.com/pixeltrack/pixeltrack/pkg/logger"
	"github.com/pixeltrack/pixeltrack/pkg/tracing"
)

// LeadService upserts leads into the column store. A known attribute is never
// replaced by an unknown one.
type LeadService struct {
	repo    domain.LeadRepository
	domains domain.DomainService
	locker  LeadLocker
	logger  logger.Logger
	now     func() time.Time
}

type LeadServiceConfig struct {
	Repository    domain.LeadRepository
	DomainService domain.DomainService
	Locker        LeadLocker
	Logger        logger.Logger
}

func NewLeadService(cfg LeadServiceConfig) *LeadService {
	locker := cfg.Locker
	if locker == nil {
		locker = NewKeyedMutex()
	}
	return &LeadService{
		repo:    cfg.Repository,
		domains: cfg.DomainService,
		locker:  locker,
		logger:  cfg.Logger,
		now:     time.Now,
	}
}

var _ domain.LeadService = (*LeadService)(nil)

// Upsert merges lead into the stored record with the same id, creating it when absent
func (s *LeadService) Upsert(ctx context.Context, lead *domain.Lead) (*domain.Lead, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "LeadService", "Upsert")
	defer span.End()

	if lead == nil {
		return nil, domain.NewValidationError("lead é obrigatório")
	}
	if err := lead.Validate(); err != nil {
		return nil, err
	}
	if lead.ID == "" {
		lead.ID = uuid.New().String()
	}
	tracing.AddAttribute(ctx, "lead.id", lead.ID)

	unlock, err := s.locker.Lock(ctx, lead.ID)
	if err != nil {
		tracing.MarkSpanError(ctx, err)
		return nil, fmt.Errorf("failed to lock lead %s: %w", lead.ID, err)
	}
	defer unlock()

	now := s.now().UTC()
	record, err := s.repo.GetLead(ctx, lead.ID)
	switch {
	case err == nil:
		if record.DomainID != lead.DomainID {
			s.logger.WithFields(map[string]interface{}{
				"lead_id":   lead.ID,
				"domain_id": lead.DomainID,
			}).Warn("Lead id belongs to another domain")
			return nil, domain.ErrForbidden
		}
		record.Merge(lead)
		record.UpdatedAt = now
	case domain.IsNotFound(err):
		record = &domain.Lead{ID: lead.ID, DomainID: lead.DomainID}
		record.Merge(lead)
		record.CreatedAt = now
		record.UpdatedAt = now
	default:
		tracing.MarkSpanError(ctx, err)
		return nil, err
	}

	record.FillFirstTouch()

	if err := s.repo.SaveLead(ctx, record); err != nil {
		s.logger.WithField("lead_id", record.ID).WithField("error", err.Error()).Error("Failed to save lead")
		tracing.MarkSpanError(ctx, err)
		return nil, err
	}

	stored, err := s.repo.GetLead(ctx, record.ID)
	if err != nil {
		tracing.MarkSpanError(ctx, err)
		return nil, err
	}
	return stored, nil
}

// UpsertLead is Upsert for leads of a domain owned by userID
func (s *LeadService) UpsertLead(ctx context.Context, userID string, lead *domain.Lead) (*domain.Lead, error) {
	if lead == nil {
		return nil, domain.NewValidationError("lead é obrigatório")
	}
	if _, err := s.domains.Authorize(ctx, lead.DomainID, userID); err != nil {
		return nil, err
	}
	return s.Upsert(ctx, lead)
}

func (s *LeadService) GetLead(ctx context.Context, userID, id string) (*domain.Lead, error) {
	lead, err := s.repo.GetLead(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.domains.Authorize(ctx, lead.DomainID, userID); err != nil {
		return nil, err
	}
	return lead, nil
}

func (s *LeadService) ListLeadsByDomain(ctx context.Context, userID, domainID string) ([]*domain.Lead, error) {
	if _, err := s.domains.Authorize(ctx, domainID, userID); err != nil {
		return nil, err
	}
	return s.repo.ListLeadsByDomain(ctx, domainID)
}
