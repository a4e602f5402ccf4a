package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pixeltrack/pixeltrack/internal/domain"
	"github.com/pixeltrack/pixeltrack/pkg/logger"
	"github.com/pixeltrack/pixeltrack/pkg/tracing"
)

// DomainService manages customer domains and their CNAME validation
type DomainService struct {
	repo         domain.DomainRepository
	resolver     domain.CnameResolver
	proxyTarget  string
	recordPrefix string
	logger       logger.Logger
	now          func() time.Time
}

type DomainServiceConfig struct {
	Repository   domain.DomainRepository
	Resolver     domain.CnameResolver
	ProxyTarget  string
	RecordPrefix string
	Logger       logger.Logger
}

func NewDomainService(cfg DomainServiceConfig) *DomainService {
	prefix := cfg.RecordPrefix
	if prefix == "" {
		prefix = "pxt"
	}
	return &DomainService{
		repo:         cfg.Repository,
		resolver:     cfg.Resolver,
		proxyTarget:  strings.TrimSuffix(strings.ToLower(cfg.ProxyTarget), "."),
		recordPrefix: prefix,
		logger:       cfg.Logger,
		now:          time.Now,
	}
}

var _ domain.DomainService = (*DomainService)(nil)

func (s *DomainService) CreateDomain(ctx context.Context, userID string, req domain.DomainRequest) (*domain.Domain, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	d := &domain.Domain{
		ID:          uuid.New().String(),
		UserID:      userID,
		DomainName:  req.DomainName,
		IsValidated: false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.CreateDomain(ctx, d); err != nil {
		if dup := duplicateDomain(err); dup != nil {
			return nil, dup
		}
		s.logger.WithField("domain_name", d.DomainName).WithField("error", err.Error()).Error("Failed to create domain")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"domain_id":   d.ID,
		"domain_name": d.DomainName,
		"user_id":     userID,
	}).Info("Domain created")

	return d, nil
}

func (s *DomainService) GetDomain(ctx context.Context, userID, id string) (*domain.Domain, error) {
	return s.repo.GetDomain(ctx, id, userID)
}

func (s *DomainService) ListDomains(ctx context.Context, userID string) ([]*domain.Domain, error) {
	return s.repo.ListDomainsByUser(ctx, userID)
}

// UpdateDomain renames a domain. A new name has to be validated again.
func (s *DomainService) UpdateDomain(ctx context.Context, userID, id string, req domain.DomainRequest) (*domain.Domain, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	d, err := s.repo.GetDomain(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if d.DomainName != req.DomainName {
		d.DomainName = req.DomainName
		d.IsValidated = false
	}
	d.UpdatedAt = s.now().UTC()

	if err := s.repo.UpdateDomain(ctx, d); err != nil {
		if dup := duplicateDomain(err); dup != nil {
			return nil, dup
		}
		return nil, err
	}
	return d, nil
}

func (s *DomainService) DeleteDomain(ctx context.Context, userID, id string) error {
	if err := s.repo.DeleteDomain(ctx, id, userID); err != nil {
		return err
	}
	s.logger.WithField("domain_id", id).WithField("user_id", userID).Info("Domain deleted")
	return nil
}

// ValidateCname checks that <prefix>.<domain_name> is a CNAME of the proxy target.
// Targets are compared exactly once trailing dots are removed.
func (s *DomainService) ValidateCname(ctx context.Context, domainID, userID string) (bool, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "DomainService", "ValidateCname")
	defer span.End()
	tracing.AddAttribute(ctx, "domain.id", domainID)

	d, err := s.repo.GetDomain(ctx, domainID, userID)
	if err != nil {
		tracing.MarkSpanError(ctx, err)
		return false, err
	}

	record := s.RecordName(d.DomainName)
	log := s.logger.WithFields(map[string]interface{}{
		"domain_id":       d.ID,
		"record":          record,
		"expected_target": s.proxyTarget,
	})

	target, found, err := s.resolver.ResolveCname(ctx, record)
	if err != nil {
		log.WithField("error", err.Error()).Warn("CNAME lookup failed")
		tracing.MarkSpanError(ctx, err)
		return false, domain.NewValidationError(fmt.Sprintf(
			"não foi possível consultar o CNAME de %s. Crie um registro CNAME %s apontando para %s",
			record, record, s.proxyTarget))
	}
	if !found {
		log.Info("No CNAME record found")
		return false, domain.NewValidationError(fmt.Sprintf(
			"nenhum registro CNAME encontrado. Crie um registro CNAME %s apontando para %s",
			record, s.proxyTarget))
	}

	target = strings.ToLower(strings.TrimSuffix(target, "."))
	if target != s.proxyTarget {
		log.WithField("cname", target).Info("CNAME points to the wrong target")
		return false, domain.NewValidationError(fmt.Sprintf(
			"o CNAME %s aponta para %s, esperado %s", record, target, s.proxyTarget))
	}

	if !d.IsValidated {
		d.IsValidated = true
		d.UpdatedAt = s.now().UTC()
		if err := s.repo.UpdateDomain(ctx, d); err != nil {
			log.WithField("error", err.Error()).Error("Failed to flag domain as validated")
			tracing.MarkSpanError(ctx, err)
			return false, err
		}
	}

	log.Info("Domain CNAME validated")
	return true, nil
}

// RecordName is the CNAME record customers create for a domain
func (s *DomainService) RecordName(domainName string) string {
	return s.recordPrefix + "." + strings.TrimSuffix(domainName, ".")
}

// Authorize tells a missing domain (ErrNotFound) from one owned by someone else (ErrForbidden)
func (s *DomainService) Authorize(ctx context.Context, domainID, userID string) (*domain.Domain, error) {
	if domainID == "" {
		return nil, domain.NewValidationError("domain_id é obrigatório")
	}

	owner, err := s.repo.GetDomainOwner(ctx, domainID)
	if err != nil {
		return nil, err
	}
	if owner != userID {
		s.logger.WithField("domain_id", domainID).WithField("user_id", userID).Warn("Access to a domain owned by another user")
		return nil, domain.ErrForbidden
	}

	return s.repo.GetDomain(ctx, domainID, userID)
}

func duplicateDomain(err error) error {
	var dup *domain.ErrDuplicateKey
	if errors.As(err, &dup) {
		return &domain.ErrDuplicateKey{Entity: dup.Entity, Field: dup.Field, Message: domain.MsgDuplicateDomain}
	}
	return nil
}
