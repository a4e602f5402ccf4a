package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pixeltrack/pixeltrack/internal/domain"
	"github.com/pixeltrack/pixeltrack/pkg/botdetection"
	"github.com/pixeltrack/pixeltrack/pkg/geoip"
	"github.com/pixeltrack/pixeltrack/pkg/logger"
	"github.com/pixeltrack/pixeltrack/pkg/tracing"
)

// EventService records tracked events and forwards them to the Conversions API
type EventService struct {
	repo        domain.EventRepository
	leads       domain.LeadRepository
	pixels      domain.FacebookPixelRepository
	conversions domain.ConversionRepository
	domains     domain.DomainService
	forwarder   domain.FacebookForwarder
	locator     geoip.Locator
	logger      logger.Logger
	now         func() time.Time
}

type EventServiceConfig struct {
	Repository     domain.EventRepository
	LeadRepository domain.LeadRepository
	Pixels         domain.FacebookPixelRepository
	Conversions    domain.ConversionRepository
	DomainService  domain.DomainService
	Forwarder      domain.FacebookForwarder
	// Locator is optional, events are stored without geo enrichment when nil
	Locator geoip.Locator
	Logger  logger.Logger
}

func NewEventService(cfg EventServiceConfig) *EventService {
	locator := cfg.Locator
	if locator == nil {
		locator = geoip.NoopLocator{}
	}
	return &EventService{
		repo:        cfg.Repository,
		leads:       cfg.LeadRepository,
		pixels:      cfg.Pixels,
		conversions: cfg.Conversions,
		domains:     cfg.DomainService,
		forwarder:   cfg.Forwarder,
		locator:     locator,
		logger:      cfg.Logger,
		now:         time.Now,
	}
}

var _ domain.EventService = (*EventService)(nil)

// CreateEvent stores an event of a domain owned by userID and forwards it through every pixel of the domain.
// Events from bots are stored but never forwarded. Every pixel attempt is stored under its own id; when a
// send fails, the first failed attempt is returned with its upstream error.
func (s *EventService) CreateEvent(ctx context.Context, userID string, event *domain.Event, meta domain.RequestMeta) (*domain.Event, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "EventService", "CreateEvent")
	defer span.End()

	if event == nil {
		return nil, domain.NewValidationError("event é obrigatório")
	}
	if _, err := s.domains.Authorize(ctx, event.DomainID, userID); err != nil {
		tracing.MarkSpanError(ctx, err)
		return nil, err
	}
	if err := s.applyConversion(ctx, event); err != nil {
		return nil, err
	}
	if err := event.Validate(); err != nil {
		return nil, err
	}
	s.prepare(event, meta)

	tracing.AddAttribute(ctx, "event.domain_id", event.DomainID)
	tracing.AddAttribute(ctx, "event.name", event.EventName)

	// geo_device is the visitor's user agent, relayed by the tracking script or taken from the request
	if ua := deref(event.GeoDevice); ua != "" && botdetection.IsBotUserAgent(ua) {
		s.logger.WithFields(map[string]interface{}{
			"domain_id":  event.DomainID,
			"user_agent": ua,
		}).Debug("Bot traffic, event stored without forwarding")
		return s.store(ctx, event)
	}

	pixels, err := s.pixels.ListPixelsByDomain(ctx, event.DomainID)
	if err != nil {
		return nil, err
	}
	if len(pixels) == 0 {
		return s.store(ctx, event)
	}

	// each pixel gets its own row so every attempt keeps its request and response
	base := *event
	var (
		stored   *domain.Event
		failed   *domain.Event
		firstErr error
	)
	for i, pixel := range pixels {
		attempt := event
		if i > 0 {
			clone := base
			clone.ID = uuid.New().String()
			attempt = &clone
		}

		result, err := s.ProcessAndSendEvent(ctx, attempt, pixel.PixelID, pixel.APIToken, pixel.TestEventCode())
		var upstream *domain.UpstreamError
		if err != nil && !errors.As(err, &upstream) {
			return nil, err
		}
		if err != nil && firstErr == nil {
			failed, firstErr = result, err
		}
		if stored == nil {
			stored = result
		}
	}

	if firstErr != nil {
		return failed, firstErr
	}
	return stored, nil
}

// SendEvent forwards one event through a stored pixel of the caller
func (s *EventService) SendEvent(ctx context.Context, userID string, req domain.SendEventRequest) (*domain.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	pixel, err := s.pixels.GetPixel(ctx, req.PixelID)
	if err != nil {
		return nil, err
	}
	if _, err := s.domains.Authorize(ctx, pixel.DomainID, userID); err != nil {
		return nil, err
	}

	event := req.Event
	if event.DomainID == "" {
		event.DomainID = pixel.DomainID
	}
	if event.DomainID != pixel.DomainID {
		return nil, domain.NewValidationError("o evento pertence a outro domínio")
	}
	if err := s.applyConversion(ctx, event); err != nil {
		return nil, err
	}
	if err := event.Validate(); err != nil {
		return nil, err
	}
	s.prepare(event, domain.RequestMeta{})

	return s.ProcessAndSendEvent(ctx, event, pixel.PixelID, pixel.APIToken, pixel.TestEventCode())
}

// ProcessAndSendEvent persists the event with the outbound payload, forwards it and persists
// the outcome. The forwarder runs detached from ctx cancellation.
func (s *EventService) ProcessAndSendEvent(ctx context.Context, event *domain.Event, pixelID, accessToken, testEventCode string) (*domain.Event, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "EventService", "ProcessAndSendEvent")
	defer span.End()

	lead := s.lookupLead(ctx, event)
	serverEvent := BuildServerEvent(event, lead)

	payload, err := json.Marshal(domain.FacebookEventsRequest{
		Data:          []domain.ServerEvent{serverEvent},
		TestEventCode: testEventCode,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal facebook request: %w", err)
	}

	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = s.now().UTC()
	}
	event.FacebookRequest = payload
	event.FacebookResponse = nil

	if err := s.repo.SaveEvent(ctx, event); err != nil {
		s.logger.WithField("event_id", event.ID).WithField("error", err.Error()).Error("Failed to store event")
		tracing.MarkSpanError(ctx, err)
		return nil, err
	}

	detached := context.WithoutCancel(ctx)
	response, sendErr := s.forwarder.SendEvents(detached, pixelID, accessToken, []domain.ServerEvent{serverEvent}, testEventCode)
	if sendErr != nil {
		upstream := asUpstream(sendErr)
		event.FacebookResponse = failureResponse(upstream)

		log := s.logger.WithFields(map[string]interface{}{
			"event_id": event.ID,
			"pixel_id": pixelID,
		})
		log.WithField("error", upstream.Error()).Warn("Facebook forwarding failed")

		if err := s.repo.SaveEvent(detached, event); err != nil {
			log.WithField("error", err.Error()).Error("Failed to store facebook failure")
			return nil, err
		}
		tracing.MarkSpanError(ctx, upstream)
		return event, upstream
	}

	event.FacebookResponse = response
	if err := s.repo.SaveEvent(detached, event); err != nil {
		s.logger.WithField("event_id", event.ID).WithField("error", err.Error()).Error("Failed to store facebook response")
		return nil, err
	}

	return event, nil
}

func (s *EventService) GetEvent(ctx context.Context, userID, id string) (*domain.Event, error) {
	event, err := s.repo.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.domains.Authorize(ctx, event.DomainID, userID); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) ListEventsByDomain(ctx context.Context, userID, domainID string) ([]*domain.Event, error) {
	if _, err := s.domains.Authorize(ctx, domainID, userID); err != nil {
		return nil, err
	}
	return s.repo.ListEventsByDomain(ctx, domainID)
}

func (s *EventService) applyConversion(ctx context.Context, event *domain.Event) error {
	if event.ConversionID == nil || *event.ConversionID == "" {
		event.ConversionID = nil
		return nil
	}

	conversion, err := s.conversions.GetConversion(ctx, *event.ConversionID)
	if err != nil {
		if domain.IsNotFound(err) {
			return domain.NewValidationError("conversão não encontrada")
		}
		return err
	}
	if conversion.DomainID != event.DomainID {
		return domain.NewValidationError("a conversão pertence a outro domínio")
	}
	if !conversion.IsActive() {
		return domain.NewValidationError("a conversão está inativa")
	}

	event.ApplyConversion(conversion)
	return nil
}

// prepare fills server side defaults: id, event time, caller data and location.
// The id is always issued here; client deduplication goes through event_id.
func (s *EventService) prepare(event *domain.Event, meta domain.RequestMeta) {
	now := s.now().UTC()
	event.ID = uuid.New().String()
	event.CreatedAt = time.Time{}
	event.FacebookRequest = nil
	event.FacebookResponse = nil
	if event.EventTime.IsZero() {
		event.EventTime = now
	}
	if event.GeoIP == nil && meta.ClientIP != "" {
		ip := meta.ClientIP
		event.GeoIP = &ip
	}
	if event.GeoDevice == nil && meta.UserAgent != "" {
		ua := meta.UserAgent
		event.GeoDevice = &ua
	}

	if event.GeoIP == nil || (event.GeoCountry != nil && event.GeoCity != nil) {
		return
	}
	location, err := s.locator.Lookup(*event.GeoIP)
	if err != nil {
		s.logger.WithField("ip", *event.GeoIP).WithField("error", err.Error()).Debug("GeoIP lookup failed")
		return
	}
	if location == nil {
		return
	}
	setIfAbsent(&event.GeoCountry, strings.ToLower(location.CountryCode))
	setIfAbsent(&event.GeoState, location.State)
	setIfAbsent(&event.GeoCity, location.City)
	setIfAbsent(&event.GeoZipcode, location.Zipcode)
}

// store persists an event that is not forwarded
func (s *EventService) store(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = s.now().UTC()
	}
	if err := s.repo.SaveEvent(ctx, event); err != nil {
		s.logger.WithField("event_id", event.ID).WithField("error", err.Error()).Error("Failed to store event")
		return nil, err
	}
	return event, nil
}

// lookupLead returns the lead referenced by the event. Failures only cost match quality.
func (s *EventService) lookupLead(ctx context.Context, event *domain.Event) *domain.Lead {
	if event.LeadID == nil || *event.LeadID == "" {
		return nil
	}

	lead, err := s.leads.GetLead(ctx, *event.LeadID)
	if err != nil {
		if !domain.IsNotFound(err) {
			s.logger.WithField("lead_id", *event.LeadID).WithField("error", err.Error()).Warn("Failed to load lead for event")
		}
		return nil
	}
	if lead.DomainID != event.DomainID {
		s.logger.WithField("lead_id", lead.ID).Warn("Lead belongs to another domain, ignored")
		return nil
	}
	return lead
}

func asUpstream(err error) *domain.UpstreamError {
	var upstream *domain.UpstreamError
	if errors.As(err, &upstream) {
		return upstream
	}
	return &domain.UpstreamError{Err: err}
}

// failureResponse is the facebook_response recorded for a failed send
func failureResponse(upstream *domain.UpstreamError) json.RawMessage {
	detail := upstream.Detail()

	var body struct {
		Error interface{} `json:"error"`
	}
	if json.Valid([]byte(detail)) {
		body.Error = json.RawMessage(detail)
	} else {
		body.Error = detail
	}

	data, err := json.Marshal(body)
	if err != nil {
		return json.RawMessage(`{"error":"unknown"}`)
	}
	return data
}

func setIfAbsent(field **string, value string) {
	if *field != nil || value == "" {
		return
	}
	*field = &value
}
