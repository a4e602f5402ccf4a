package domain

import (
	"context"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_facebook_pixel.go -package mocks github.com/pixeltrack/pixeltrack/internal/domain FacebookPixelRepository,FacebookPixelService

// FacebookPixel holds the credentials used to forward events of a domain
type FacebookPixel struct {
	ID            string    `json:"id" db:"id"`
	DomainID      string    `json:"domain_id" db:"domain_id"`
	PixelID       string    `json:"pixel_id" db:"pixel_id"`
	APIToken      string    `json:"api_token" db:"api_token"`
	TestTag       *string   `json:"test_tag,omitempty" db:"test_tag"`
	TestTagActive bool      `json:"test_tag_active" db:"test_tag_active"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// TestEventCode returns the test tag when test mode is switched on
func (p *FacebookPixel) TestEventCode() string {
	if p.TestTagActive && p.TestTag != nil {
		return strings.TrimSpace(*p.TestTag)
	}
	return ""
}

func (p *FacebookPixel) Validate() error {
	p.PixelID = strings.TrimSpace(p.PixelID)
	p.APIToken = strings.TrimSpace(p.APIToken)

	if p.DomainID == "" {
		return NewValidationError("domain_id é obrigatório")
	}
	if p.PixelID == "" {
		return NewValidationError("pixel_id é obrigatório")
	}
	if !govalidator.IsNumeric(p.PixelID) {
		return NewValidationError("pixel_id deve conter apenas números")
	}
	if p.APIToken == "" {
		return NewValidationError("api_token é obrigatório")
	}
	if p.TestTagActive && p.TestEventCode() == "" {
		return NewValidationError("test_tag é obrigatório quando test_tag_active está ativo")
	}
	return nil
}

type FacebookPixelRepository interface {
	CreatePixel(ctx context.Context, pixel *FacebookPixel) error
	GetPixel(ctx context.Context, id string) (*FacebookPixel, error)
	ListPixelsByDomain(ctx context.Context, domainID string) ([]*FacebookPixel, error)
	ListPixelsByUser(ctx context.Context, userID string) ([]*FacebookPixel, error)
	UpdatePixel(ctx context.Context, pixel *FacebookPixel) error
	DeletePixel(ctx context.Context, id string) error
}

type FacebookPixelService interface {
	CreatePixel(ctx context.Context, userID string, pixel *FacebookPixel) (*FacebookPixel, error)
	GetPixel(ctx context.Context, userID, id string) (*FacebookPixel, error)
	ListPixels(ctx context.Context, userID string) ([]*FacebookPixel, error)
	ListPixelsByDomain(ctx context.Context, userID, domainID string) ([]*FacebookPixel, error)
	UpdatePixel(ctx context.Context, userID string, pixel *FacebookPixel) (*FacebookPixel, error)
	DeletePixel(ctx context.Context, userID, id string) error
}
