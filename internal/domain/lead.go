package domain

import (
	"context"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_lead.go -package mocks github.com/pixeltrack/pixeltrack/internal/domain LeadRepository,LeadService

// Lead is a visitor known to a domain. Every attribution field is optional:
// a nil pointer means "unknown" and never overwrites a stored value on upsert.
type Lead struct {
	ID       string `json:"id"`
	DomainID string `json:"domain_id"`

	Name      *string `json:"name,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	IP        *string `json:"ip,omitempty"`
	UserAgent *string `json:"user_agent,omitempty"`

	City        *string `json:"city,omitempty"`
	State       *string `json:"state,omitempty"`
	Zipcode     *string `json:"zipcode,omitempty"`
	CountryName *string `json:"country_name,omitempty"`
	CountryCode *string `json:"country_code,omitempty"`

	FirstFbc *string `json:"first_fbc,omitempty"`
	Fbc      *string `json:"fbc,omitempty"`
	Fbp      *string `json:"fbp,omitempty"`

	UtmSource   *string `json:"utm_source,omitempty"`
	UtmMedium   *string `json:"utm_medium,omitempty"`
	UtmCampaign *string `json:"utm_campaign,omitempty"`
	UtmID       *string `json:"utm_id,omitempty"`
	UtmTerm     *string `json:"utm_term,omitempty"`
	UtmContent  *string `json:"utm_content,omitempty"`

	FirstUtmSource   *string `json:"first_utm_source,omitempty"`
	FirstUtmMedium   *string `json:"first_utm_medium,omitempty"`
	FirstUtmCampaign *string `json:"first_utm_campaign,omitempty"`
	FirstUtmID       *string `json:"first_utm_id,omitempty"`
	FirstUtmTerm     *string `json:"first_utm_term,omitempty"`
	FirstUtmContent  *string `json:"first_utm_content,omitempty"`

	Gender     *string `json:"gender,omitempty"`
	Dob        *string `json:"dob,omitempty"`
	ExternalID *string `json:"external_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LeadAttribute binds a column name to the field holding it
type LeadAttribute struct {
	Column string
	Value  **string
}

// Attributes returns the nullable columns of a lead in storage order.
// The store and Merge both walk this list, so adding a field here is enough.
func (l *Lead) Attributes() []LeadAttribute {
	return []LeadAttribute{
		{"name", &l.Name},
		{"first_name", &l.FirstName},
		{"last_name", &l.LastName},
		{"email", &l.Email},
		{"phone", &l.Phone},
		{"ip", &l.IP},
		{"user_agent", &l.UserAgent},
		{"city", &l.City},
		{"state", &l.State},
		{"zipcode", &l.Zipcode},
		{"country_name", &l.CountryName},
		{"country_code", &l.CountryCode},
		{"first_fbc", &l.FirstFbc},
		{"fbc", &l.Fbc},
		{"fbp", &l.Fbp},
		{"utm_source", &l.UtmSource},
		{"utm_medium", &l.UtmMedium},
		{"utm_campaign", &l.UtmCampaign},
		{"utm_id", &l.UtmID},
		{"utm_term", &l.UtmTerm},
		{"utm_content", &l.UtmContent},
		{"first_utm_source", &l.FirstUtmSource},
		{"first_utm_medium", &l.FirstUtmMedium},
		{"first_utm_campaign", &l.FirstUtmCampaign},
		{"first_utm_id", &l.FirstUtmID},
		{"first_utm_term", &l.FirstUtmTerm},
		{"first_utm_content", &l.FirstUtmContent},
		{"gender", &l.Gender},
		{"dob", &l.Dob},
		{"external_id", &l.ExternalID},
	}
}

// Merge copies every non-nil attribute of other over l
func (l *Lead) Merge(other *Lead) {
	if other == nil {
		return
	}

	mine := l.Attributes()
	theirs := other.Attributes()
	for i := range mine {
		if v := *theirs[i].Value; v != nil {
			value := *v
			*mine[i].Value = &value
		}
	}
}

// FillFirstTouch sets each first-touch field from its current counterpart while it is still unknown
func (l *Lead) FillFirstTouch() {
	pairs := [][2]**string{
		{&l.FirstFbc, &l.Fbc},
		{&l.FirstUtmSource, &l.UtmSource},
		{&l.FirstUtmMedium, &l.UtmMedium},
		{&l.FirstUtmCampaign, &l.UtmCampaign},
		{&l.FirstUtmID, &l.UtmID},
		{&l.FirstUtmTerm, &l.UtmTerm},
		{&l.FirstUtmContent, &l.UtmContent},
	}
	for _, p := range pairs {
		if *p[0] == nil && *p[1] != nil {
			value := **p[1]
			*p[0] = &value
		}
	}
}

func (l *Lead) Validate() error {
	if l.DomainID == "" {
		return NewValidationError("domain_id é obrigatório")
	}
	if l.ID != "" && !govalidator.IsUUID(l.ID) {
		return NewValidationError("id deve ser um UUID")
	}
	if l.Email != nil {
		normalized := NormalizeEmail(*l.Email)
		l.Email = &normalized
		if normalized != "" && !govalidator.IsEmail(normalized) {
			return NewValidationError("email inválido")
		}
	}
	return nil
}

// LeadRepository is the column store for leads. SaveLead writes a new version of the row.
type LeadRepository interface {
	SaveLead(ctx context.Context, lead *Lead) error
	GetLead(ctx context.Context, id string) (*Lead, error)
	ListLeadsByDomain(ctx context.Context, domainID string) ([]*Lead, error)
}

type LeadService interface {
	// Upsert merges lead into the stored record with the same id and returns the stored result
	Upsert(ctx context.Context, lead *Lead) (*Lead, error)
	// UpsertLead is Upsert restricted to domains owned by userID
	UpsertLead(ctx context.Context, userID string, lead *Lead) (*Lead, error)
	GetLead(ctx context.Context, userID, id string) (*Lead, error)
	ListLeadsByDomain(ctx context.Context, userID, domainID string) ([]*Lead, error)
}
