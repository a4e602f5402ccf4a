package domain

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_domain.go -package mocks github.com/pixeltrack/pixeltrack/internal/domain DomainRepository,DomainService,CnameResolver

// Domain is a customer website. It is owned by exactly one user and
// becomes validated once pxt.<domain_name> is a CNAME of the tracking proxy.
type Domain struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	DomainName  string    `json:"domain_name" db:"domain_name"`
	IsValidated bool      `json:"is_validated" db:"is_validated"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// NormalizeDomainName accepts a bare host or a URL and returns the lower-cased host
func NormalizeDomainName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	if strings.Contains(name, "://") {
		if parsed, err := url.Parse(name); err == nil {
			name = parsed.Hostname()
		}
	}
	if i := strings.IndexAny(name, "/?#"); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSuffix(name, ".")
}

func ValidateDomainName(name string) error {
	if name == "" {
		return NewValidationError("o nome do domínio é obrigatório")
	}
	if !strings.Contains(name, ".") || !govalidator.IsDNSName(name) {
		return NewValidationError("nome de domínio inválido")
	}
	return nil
}

type DomainRequest struct {
	DomainName string `json:"domain_name"`
}

func (r *DomainRequest) Validate() error {
	r.DomainName = NormalizeDomainName(r.DomainName)
	return ValidateDomainName(r.DomainName)
}

// DomainRepository persists domains. Reads and writes by id are always scoped to the owner.
type DomainRepository interface {
	// CreateDomain returns *ErrDuplicateKey when the domain name is taken
	CreateDomain(ctx context.Context, domain *Domain) error
	GetDomain(ctx context.Context, id, userID string) (*Domain, error)
	// GetDomainOwner returns the owner id of any domain, used to tell not found from forbidden
	GetDomainOwner(ctx context.Context, id string) (string, error)
	GetDomainByName(ctx context.Context, name string) (*Domain, error)
	ListDomainsByUser(ctx context.Context, userID string) ([]*Domain, error)
	UpdateDomain(ctx context.Context, domain *Domain) error
	DeleteDomain(ctx context.Context, id, userID string) error
}

type DomainService interface {
	CreateDomain(ctx context.Context, userID string, req DomainRequest) (*Domain, error)
	GetDomain(ctx context.Context, userID, id string) (*Domain, error)
	ListDomains(ctx context.Context, userID string) ([]*Domain, error)
	UpdateDomain(ctx context.Context, userID, id string, req DomainRequest) (*Domain, error)
	DeleteDomain(ctx context.Context, userID, id string) error
	// ValidateCname checks pxt.<domain_name> against the proxy target and flags the domain as validated
	ValidateCname(ctx context.Context, domainID, userID string) (bool, error)
	// Authorize returns the domain when userID owns it, ErrForbidden when someone else does
	Authorize(ctx context.Context, domainID, userID string) (*Domain, error)
}

// CnameResolver looks up the CNAME target of a record name.
// found is false when the record has no CNAME.
type CnameResolver interface {
	ResolveCname(ctx context.Context, name string) (target string, found bool, err error)
}
