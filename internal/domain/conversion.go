package domain

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
)

//go:generate mockgen -destination mocks/mock_conversion.go -package mocks github.com/pixeltrack/pixeltrack/internal/domain ConversionRepository,ConversionService

type ConversionScope string

const (
	ScopeWebsite      ConversionScope = "website"
	ScopeSpecificPage ConversionScope = "specific_page"
	ScopeRegex        ConversionScope = "regex"
)

type ConversionTrigger string

const (
	TriggerPageAccess ConversionTrigger = "page_access"
	TriggerTimeOnPage ConversionTrigger = "time_on_page"
	TriggerVideoTime  ConversionTrigger = "video_time"
	TriggerFormSubmit ConversionTrigger = "form_submit"
	TriggerClick      ConversionTrigger = "click"
	TriggerView       ConversionTrigger = "view"
	TriggerHover      ConversionTrigger = "hover"
	TriggerScroll     ConversionTrigger = "scroll"
)

var validTriggers = map[ConversionTrigger]bool{
	TriggerPageAccess: true,
	TriggerTimeOnPage: true,
	TriggerVideoTime:  true,
	TriggerFormSubmit: true,
	TriggerClick:      true,
	TriggerView:       true,
	TriggerHover:      true,
	TriggerScroll:     true,
}

const DefaultCurrency = "BRL"

// Conversion describes when a tracked page interaction is reported to Facebook and as what
type Conversion struct {
	ID           string            `json:"id" db:"id"`
	DomainID     string            `json:"domain_id" db:"domain_id"`
	Title        string            `json:"title" db:"title"`
	Scope        ConversionScope   `json:"scope" db:"scope"`
	ScopeValue   *string           `json:"scope_value,omitempty" db:"scope_value"`
	Trigger      ConversionTrigger `json:"trigger" db:"trigger"`
	TriggerValue *string           `json:"trigger_value,omitempty" db:"trigger_value"`
	EventName    string            `json:"event_name" db:"event_name"`
	ProductName  *string           `json:"product_name,omitempty" db:"product_name"`
	ProductID    *string           `json:"product_id,omitempty" db:"product_id"`
	OfferIDs     *string           `json:"offer_ids,omitempty" db:"offer_ids"`
	ProductValue *float64          `json:"product_value,omitempty" db:"product_value"`
	Currency     string            `json:"currency" db:"currency"`
	Active       *bool             `json:"active,omitempty" db:"active"`
	CreatedAt    time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at" db:"updated_at"`
}

// IsActive treats an unset flag as active
func (c *Conversion) IsActive() bool {
	return c.Active == nil || *c.Active
}

func (c *Conversion) Validate() error {
	c.Title = strings.TrimSpace(c.Title)
	c.EventName = strings.TrimSpace(c.EventName)
	c.Currency = strings.ToUpper(strings.TrimSpace(c.Currency))

	if c.DomainID == "" {
		return NewValidationError("domain_id é obrigatório")
	}
	if c.Title == "" {
		return NewValidationError("title é obrigatório")
	}
	if c.EventName == "" {
		return NewValidationError("event_name é obrigatório")
	}

	switch c.Scope {
	case ScopeWebsite:
	case ScopeSpecificPage:
		if c.ScopeValue == nil || strings.TrimSpace(*c.ScopeValue) == "" {
			return NewValidationError("scope_value é obrigatório para o escopo specific_page")
		}
	case ScopeRegex:
		if c.ScopeValue == nil || *c.ScopeValue == "" {
			return NewValidationError("scope_value é obrigatório para o escopo regex")
		}
		if _, err := regexp.Compile(*c.ScopeValue); err != nil {
			return NewValidationError(fmt.Sprintf("scope_value não é uma expressão regular válida: %v", err))
		}
	default:
		return NewValidationError(fmt.Sprintf("scope inválido: %q", c.Scope))
	}

	if !validTriggers[c.Trigger] {
		return NewValidationError(fmt.Sprintf("trigger inválido: %q", c.Trigger))
	}

	if c.ProductValue != nil && *c.ProductValue < 0 {
		return NewValidationError("product_value não pode ser negativo")
	}

	if c.Currency == "" {
		c.Currency = DefaultCurrency
	}
	if len(c.Currency) != 3 {
		return NewValidationError("currency deve ser um código ISO 4217 de 3 letras")
	}
	if c.Active == nil {
		active := true
		c.Active = &active
	}
	return nil
}

type ConversionRepository interface {
	CreateConversion(ctx context.Context, conversion *Conversion) error
	GetConversion(ctx context.Context, id string) (*Conversion, error)
	ListConversionsByDomain(ctx context.Context, domainID string) ([]*Conversion, error)
	ListConversionsByUser(ctx context.Context, userID string) ([]*Conversion, error)
	UpdateConversion(ctx context.Context, conversion *Conversion) error
	DeleteConversion(ctx context.Context, id string) error
}

type ConversionService interface {
	CreateConversion(ctx context.Context, userID string, conversion *Conversion) (*Conversion, error)
	GetConversion(ctx context.Context, userID, id string) (*Conversion, error)
	ListConversions(ctx context.Context, userID string) ([]*Conversion, error)
	ListConversionsByDomain(ctx context.Context, userID, domainID string) ([]*Conversion, error)
	UpdateConversion(ctx context.Context, userID string, conversion *Conversion) (*Conversion, error)
	DeleteConversion(ctx context.Context, userID, id string) error
}
