package domain

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_event.go -package mocks github.com/pixeltrack/pixeltrack/internal/domain EventRepository,EventService,FacebookForwarder

// Event is a tracked interaction. Once stored only FacebookRequest and
// FacebookResponse change, after the forwarding attempt.
type Event struct {
	ID           string  `json:"id"`
	DomainID     string  `json:"domain_id"`
	LeadID       *string `json:"lead_id,omitempty"`
	ConversionID *string `json:"conversion_id,omitempty"`
	// EventID is the browser side id Facebook uses to deduplicate pixel and server events
	EventID   *string   `json:"event_id,omitempty"`
	EventName string    `json:"event_name"`
	EventTime time.Time `json:"event_time"`
	EventURL  *string   `json:"event_url,omitempty"`

	PageID        *string  `json:"page_id,omitempty"`
	PageTitle     *string  `json:"page_title,omitempty"`
	ProductID     *string  `json:"product_id,omitempty"`
	ProductName   *string  `json:"product_name,omitempty"`
	ProductValue  *float64 `json:"product_value,omitempty"`
	PredictedLTV  *float64 `json:"predicted_ltv,omitempty"`
	OfferIDs      *string  `json:"offer_ids,omitempty"`
	ContentName   *string  `json:"content_name,omitempty"`
	ContentIDs    []string `json:"content_ids,omitempty"`
	Currency      *string  `json:"currency,omitempty"`
	Value         *float64 `json:"value,omitempty"`
	TrafficSource *string  `json:"traffic_source,omitempty"`

	UtmSource   *string `json:"utm_source,omitempty"`
	UtmMedium   *string `json:"utm_medium,omitempty"`
	UtmCampaign *string `json:"utm_campaign,omitempty"`
	UtmID       *string `json:"utm_id,omitempty"`
	UtmTerm     *string `json:"utm_term,omitempty"`
	UtmContent  *string `json:"utm_content,omitempty"`
	Src         *string `json:"src,omitempty"`
	Sck         *string `json:"sck,omitempty"`

	GeoIP       *string `json:"geo_ip,omitempty"`
	GeoDevice   *string `json:"geo_device,omitempty"`
	GeoCountry  *string `json:"geo_country,omitempty"`
	GeoState    *string `json:"geo_state,omitempty"`
	GeoCity     *string `json:"geo_city,omitempty"`
	GeoZipcode  *string `json:"geo_zipcode,omitempty"`
	GeoCurrency *string `json:"geo_currency,omitempty"`

	FirstFbc *string `json:"first_fbc,omitempty"`
	Fbc      *string `json:"fbc,omitempty"`
	Fbp      *string `json:"fbp,omitempty"`

	FacebookRequest  json.RawMessage `json:"facebook_request,omitempty"`
	FacebookResponse json.RawMessage `json:"facebook_response,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// EventAttribute binds a nullable string column to its field
type EventAttribute struct {
	Column string
	Value  **string
}

// Attributes returns the nullable string columns of an event in storage order
func (e *Event) Attributes() []EventAttribute {
	return []EventAttribute{
		{"lead_id", &e.LeadID},
		{"conversion_id", &e.ConversionID},
		{"event_id", &e.EventID},
		{"event_url", &e.EventURL},
		{"page_id", &e.PageID},
		{"page_title", &e.PageTitle},
		{"product_id", &e.ProductID},
		{"product_name", &e.ProductName},
		{"offer_ids", &e.OfferIDs},
		{"content_name", &e.ContentName},
		{"currency", &e.Currency},
		{"traffic_source", &e.TrafficSource},
		{"utm_source", &e.UtmSource},
		{"utm_medium", &e.UtmMedium},
		{"utm_campaign", &e.UtmCampaign},
		{"utm_id", &e.UtmID},
		{"utm_term", &e.UtmTerm},
		{"utm_content", &e.UtmContent},
		{"src", &e.Src},
		{"sck", &e.Sck},
		{"geo_ip", &e.GeoIP},
		{"geo_device", &e.GeoDevice},
		{"geo_country", &e.GeoCountry},
		{"geo_state", &e.GeoState},
		{"geo_city", &e.GeoCity},
		{"geo_zipcode", &e.GeoZipcode},
		{"geo_currency", &e.GeoCurrency},
		{"first_fbc", &e.FirstFbc},
		{"fbc", &e.Fbc},
		{"fbp", &e.Fbp},
	}
}

func (e *Event) Validate() error {
	e.EventName = strings.TrimSpace(e.EventName)

	if e.DomainID == "" {
		return NewValidationError("domain_id é obrigatório")
	}
	if e.EventName == "" {
		return NewValidationError("event_name é obrigatório")
	}
	if e.LeadID != nil && !govalidator.IsUUID(*e.LeadID) {
		return NewValidationError("lead_id deve ser um UUID")
	}
	if e.EventURL != nil && *e.EventURL != "" && !govalidator.IsURL(*e.EventURL) {
		return NewValidationError("event_url inválida")
	}
	if e.Value != nil && *e.Value < 0 {
		return NewValidationError("value não pode ser negativo")
	}
	return nil
}

// ApplyConversion fills absent event fields from the conversion definition
func (e *Event) ApplyConversion(c *Conversion) {
	if c == nil {
		return
	}
	if e.EventName == "" {
		e.EventName = c.EventName
	}
	if e.ProductID == nil {
		e.ProductID = c.ProductID
	}
	if e.ProductName == nil {
		e.ProductName = c.ProductName
	}
	if e.ProductValue == nil {
		e.ProductValue = c.ProductValue
	}
	if e.OfferIDs == nil {
		e.OfferIDs = c.OfferIDs
	}
	if e.Currency == nil && c.Currency != "" {
		currency := c.Currency
		e.Currency = &currency
	}
}

// RequestMeta is what the HTTP layer knows about the caller of an ingestion request
type RequestMeta struct {
	ClientIP  string
	UserAgent string
}

// SendEventRequest forwards one event through a stored pixel
type SendEventRequest struct {
	PixelID string `json:"pixel_id"`
	Event   *Event `json:"event"`
}

func (r *SendEventRequest) Validate() error {
	if r.PixelID == "" {
		return NewValidationError("pixel_id é obrigatório")
	}
	if r.Event == nil {
		return NewValidationError("event é obrigatório")
	}
	return nil
}

// EventRepository is the column store for events. SaveEvent writes a new version of the row.
type EventRepository interface {
	SaveEvent(ctx context.Context, event *Event) error
	GetEvent(ctx context.Context, id string) (*Event, error)
	ListEventsByDomain(ctx context.Context, domainID string) ([]*Event, error)
}

type EventService interface {
	CreateEvent(ctx context.Context, userID string, event *Event, meta RequestMeta) (*Event, error)
	SendEvent(ctx context.Context, userID string, req SendEventRequest) (*Event, error)
	// ProcessAndSendEvent builds, records, forwards and records again. On an upstream
	// failure the stored event is returned together with the *UpstreamError.
	ProcessAndSendEvent(ctx context.Context, event *Event, pixelID, accessToken, testEventCode string) (*Event, error)
	GetEvent(ctx context.Context, userID, id string) (*Event, error)
	ListEventsByDomain(ctx context.Context, userID, domainID string) ([]*Event, error)
}

// FacebookForwarder posts server events to the Conversions API and returns the raw response body
type FacebookForwarder interface {
	SendEvents(ctx context.Context, pixelID, accessToken string, events []ServerEvent, testEventCode string) (json.RawMessage, error)
}
