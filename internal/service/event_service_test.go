package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixeltrack/pixeltrack/internal/domain"
	"github.com/pixeltrack/pixeltrack/internal/domain/mocks"
	"github.com/pixeltrack/pixeltrack/pkg/geoip"
	pkgmocks "github.com/pixeltrack/pixeltrack/pkg/mocks"
)

const browserUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

type eventServiceMocks struct {
	events      *mocks.MockEventRepository
	leads       *mocks.MockLeadRepository
	pixels      *mocks.MockFacebookPixelRepository
	conversions *mocks.MockConversionRepository
	domains     *mocks.MockDomainService
	forwarder   *mocks.MockFacebookForwarder
	locator     *pkgmocks.MockLocator
}

func setupEventServiceTest(t *testing.T) (*EventService, *eventServiceMocks) {
	ctrl := gomock.NewController(t)
	m := &eventServiceMocks{
		events:      mocks.NewMockEventRepository(ctrl),
		leads:       mocks.NewMockLeadRepository(ctrl),
		pixels:      mocks.NewMockFacebookPixelRepository(ctrl),
		conversions: mocks.NewMockConversionRepository(ctrl),
		domains:     mocks.NewMockDomainService(ctrl),
		forwarder:   mocks.NewMockFacebookForwarder(ctrl),
		locator:     pkgmocks.NewMockLocator(ctrl),
	}

	svc := NewEventService(EventServiceConfig{
		Repository:     m.events,
		LeadRepository: m.leads,
		Pixels:         m.pixels,
		Conversions:    m.conversions,
		DomainService:  m.domains,
		Forwarder:      m.forwarder,
		Locator:        m.locator,
		Logger:         newMockLogger(ctrl),
	})
	svc.now = fixedClock
	return svc, m
}

// snapshot records a copy of every saved version of an event
func snapshot(saved *[]domain.Event) func(context.Context, *domain.Event) error {
	return func(_ context.Context, e *domain.Event) error {
		*saved = append(*saved, *e)
		return nil
	}
}

func TestEventService_ProcessAndSendEvent_Success(t *testing.T) {
	svc, m := setupEventServiceTest(t)

	event := &domain.Event{
		DomainID:  "d1",
		LeadID:    strPtr(leadID),
		EventName: "Lead",
		EventTime: fixedNow,
	}
	lead := &domain.Lead{ID: leadID, DomainID: "d1", Email: strPtr("test@example.com")}
	fbResponse := json.RawMessage(`{"events_received":1,"fbtrace_id":"AbC"}`)

	var saved []domain.Event
	m.leads.EXPECT().GetLead(gomock.Any(), leadID).Return(lead, nil)
	m.events.EXPECT().SaveEvent(gomock.Any(), gomock.Any()).DoAndReturn(snapshot(&saved)).Times(2)
	m.forwarder.EXPECT().
		SendEvents(gomock.Any(), "123", "tok", gomock.Any(), "TEST1").
		DoAndReturn(func(ctx context.Context, _, _ string, events []domain.ServerEvent, _ string) (json.RawMessage, error) {
			require.Len(t, events, 1)
			assert.Equal(t, []string{HashPII("test@example.com")}, events[0].UserData.Em)
			assert.Equal(t, []string{leadID}, events[0].UserData.ExternalID)
			return fbResponse, nil
		})

	result, err := svc.ProcessAndSendEvent(context.Background(), event, "123", "tok", "TEST1")
	require.NoError(t, err)

	require.Len(t, saved, 2)
	assert.NotEmpty(t, saved[0].ID)
	assert.Equal(t, saved[0].ID, saved[1].ID)
	assert.Nil(t, saved[0].FacebookResponse)
	assert.Contains(t, string(saved[0].FacebookRequest), `"test_event_code":"TEST1"`)
	assert.Contains(t, string(saved[0].FacebookRequest), HashPII("test@example.com"))
	assert.NotContains(t, string(saved[0].FacebookRequest), "test@example.com")

	assert.JSONEq(t, string(fbResponse), string(result.FacebookResponse))
	assert.Equal(t, fixedNow, result.CreatedAt)
}

func TestEventService_ProcessAndSendEvent_UpstreamFailureIsRecorded(t *testing.T) {
	svc, m := setupEventServiceTest(t)

	event := &domain.Event{ID: "e1", DomainID: "d1", EventName: "Purchase", EventTime: fixedNow}
	upstream := &domain.UpstreamError{
		StatusCode: 400,
		Body:       `{"error":{"message":"Invalid parameter","code":100}}`,
	}

	var saved []domain.Event
	m.events.EXPECT().SaveEvent(gomock.Any(), gomock.Any()).DoAndReturn(snapshot(&saved)).Times(2)
	m.forwarder.EXPECT().SendEvents(gomock.Any(), "123", "tok", gomock.Any(), "").Return(nil, upstream)

	result, err := svc.ProcessAndSendEvent(context.Background(), event, "123", "tok", "")

	var got *domain.UpstreamError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, 400, got.StatusCode)

	require.NotNil(t, result)
	require.Len(t, saved, 2)
	assert.JSONEq(t, `{"error":{"error":{"message":"Invalid parameter","code":100}}}`, string(saved[1].FacebookResponse))
	assert.Equal(t, saved[1].FacebookResponse, result.FacebookResponse)
}

func TestEventService_ProcessAndSendEvent_TransportFailureDetail(t *testing.T) {
	svc, m := setupEventServiceTest(t)

	var saved []domain.Event
	m.events.EXPECT().SaveEvent(gomock.Any(), gomock.Any()).DoAndReturn(snapshot(&saved)).Times(2)
	m.forwarder.EXPECT().SendEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("dial tcp: connection refused"))

	_, err := svc.ProcessAndSendEvent(context.Background(), &domain.Event{DomainID: "d1", EventName: "Lead", EventTime: fixedNow}, "1", "t", "")

	var upstream *domain.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.JSONEq(t, `{"error":"dial tcp: connection refused"}`, string(saved[1].FacebookResponse))
}

func TestEventService_ProcessAndSendEvent_ForwardingSurvivesCancellation(t *testing.T) {
	svc, m := setupEventServiceTest(t)

	ctx, cancel := context.WithCancel(context.Background())

	m.events.EXPECT().SaveEvent(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, *domain.Event) error {
		// the inbound request goes away right after the first write
		cancel()
		return nil
	})
	m.forwarder.EXPECT().SendEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, _ string, _ []domain.ServerEvent, _ string) (json.RawMessage, error) {
			assert.NoError(t, ctx.Err())
			return json.RawMessage(`{"events_received":1}`), nil
		})
	m.events.EXPECT().SaveEvent(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ *domain.Event) error {
		assert.NoError(t, ctx.Err())
		return nil
	})

	_, err := svc.ProcessAndSendEvent(ctx, &domain.Event{DomainID: "d1", EventName: "Lead", EventTime: fixedNow}, "1", "t", "")
	require.NoError(t, err)
}

func TestEventService_ProcessAndSendEvent_LocalFailures(t *testing.T) {
	t.Run("first write fails, nothing is sent", func(t *testing.T) {
		svc, m := setupEventServiceTest(t)

		m.events.EXPECT().SaveEvent(gomock.Any(), gomock.Any()).Return(errors.New("clickhouse down"))

		_, err := svc.ProcessAndSendEvent(context.Background(), &domain.Event{DomainID: "d1", EventName: "Lead"}, "1", "t", "")
		assert.EqualError(t, err, "clickhouse down")
	})

	t.Run("response write fails", func(t *testing.T) {
		svc, m := setupEventServiceTest(t)

		gomock.InOrder(
			m.events.EXPECT().SaveEvent(gomock.Any(), gomock.Any()).Return(nil),
			m.forwarder.EXPECT().SendEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(json.RawMessage(`{}`), nil),
			m.events.EXPECT().SaveEvent(gomock.Any(), gomock.Any()).Return(errors.New("insert failed")),
		)

		_, err := svc.ProcessAndSendEvent(context.Background(), &domain.Event{DomainID: "d1", EventName: "Lead"}, "1", "t", "")
		assert.EqualError(t, err, "insert failed")
	})

	t.Run("lead lookup failure is not fatal", func(t *testing.T) {
		svc, m := setupEventServiceTest(t)

		m.leads.EXPECT().GetLead(gomock.Any(), leadID).Return(nil, errors.New("timeout"))
		m.events.EXPECT().SaveEvent(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		m.forwarder.EXPECT().SendEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, events []domain.ServerEvent, _ string) (json.RawMessage, error) {
				assert.Empty(t, events[0].UserData.Em)
				return json.RawMessage(`{}`), nil
			})

		_, err := svc.ProcessAndSendEvent(context.Background(), &domain.Event{DomainID: "d1", LeadID: strPtr(leadID), EventName: "Lead"}, "1", "t", "")
		require.NoError(t, err)
	})

	t.Run("lead of another domain is ignored", func(t *testing.T) {
		svc, m := setupEventServiceTest(t)

		m.leads.EXPECT().GetLead(gomock.Any(), leadID).Return(&domain.Lead{ID: leadID, DomainID: "d2", Email: strPtr("x@x.com")}, nil)
		m.events.EXPECT().SaveEvent(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		m.forwarder.EXPECT().SendEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, events []domain.ServerEvent, _ string) (json.RawMessage, error) {
				assert.Empty(t, events[0].UserData.Em)
				return json.RawMessage(`{}`), nil
			})

		_, err := svc.ProcessAndSendEvent(context.Background(), &domain.Event{DomainID: "d1", LeadID: strPtr(leadID), EventName: "Lead"}, "1", "t", "")
		require.NoError(t, err)
	})
}

func TestEventService_CreateEvent_ForwardsThroughEveryPixel(t *testing.T) {
	svc, m := setupEventServiceTest(t)
	ctx := context.Background()

	pixels := []*domain.FacebookPixel{
		{ID: "p1", DomainID: "d1", PixelID: "111", APIToken: "t1"},
		{ID: "p2", DomainID: "d1", PixelID: "222", APIToken: "t2", TestTag: strPtr("TEST9"), TestTagActive: true},
	}

	m.domains.EXPECT().Authorize(ctx, "d1", "user-1").Return(&domain.Domain{ID: "d1"}, nil)
	m.locator.EXPECT().Lookup("177.10.10.10").Return(&geoip.Location{CountryCode: "BR", State: "PE", City: "Recife"}, nil)
	m.pixels.EXPECT().ListPixelsByDomain(gomock.Any(), "d1").Return(pixels, nil)
	var saved []domain.Event
	m.events.EXPECT().SaveEvent(gomock.Any(), gomock.Any()).DoAndReturn(snapshot(&saved)).Times(4)
	m.forwarder.EXPECT().SendEvents(gomock.Any(), "111", "t1", gomock.Any(), "").Return(json.RawMessage(`{"events_received":1}`), nil)
	m.forwarder.EXPECT().SendEvents(gomock.Any(), "222", "t2", gomock.Any(), "TEST9").Return(json.RawMessage(`{"events_received":1}`), nil)

	event := &domain.Event{DomainID: "d1", EventName: "PageView"}
	result, err := svc.CreateEvent(ctx, "user-1", event, domain.RequestMeta{ClientIP: "177.10.10.10", UserAgent: browserUA})
	require.NoError(t, err)
	assert.Same(t, event, result)

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, fixedNow, result.EventTime)
	assert.Equal(t, "177.10.10.10", *result.GeoIP)
	assert.Equal(t, browserUA, *result.GeoDevice)
	assert.Equal(t, "br", *result.GeoCountry)
	assert.Equal(t, "PE", *result.GeoState)
	assert.Equal(t, "Recife", *result.GeoCity)
	assert.Nil(t, result.GeoZipcode)

	// one row per pixel, both enriched
	require.Len(t, saved, 4)
	assert.Equal(t, saved[0].ID, saved[1].ID)
	assert.Equal(t, saved[2].ID, saved[3].ID)
	assert.NotEqual(t, saved[0].ID, saved[2].ID)
	assert.Equal(t, "br", *saved[3].GeoCountry)
	assert.Contains(t, string(saved[3].FacebookRequest), "TEST9")
}

func TestEventService_CreateEvent_StoresOnly(t *testing.T) {
	t.Run("bot traffic", func(t *testing.T) {
		svc, m := setupEventServiceTest(t)
		ctx := context.Background()

		m.domains.EXPECT().Authorize(ctx, "d1", "user-1").Return(&domain.Domain{ID: "d1"}, nil)
		m.locator.EXPECT().Lookup(gomock.Any()).Return(nil, nil)
		m.events.EXPECT().SaveEvent(gomock.Any(), gomock.Any()).Return(nil)

		ua := "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
		result, err := svc.CreateEvent(ctx, "user-1", &domain.Event{DomainID: "d1", EventName: "PageView"},
			domain.RequestMeta{ClientIP: "66.249.66.1", UserAgent: ua})
		require.NoError(t, err)
		assert.Nil(t, result.FacebookRequest)
		assert.Equal(t, fixedNow, result.CreatedAt)
	})

	t.Run("domain without pixels", func(t *testing.T) {
		svc, m := setupEventServiceTest(t)
		ctx := context.Background()

		m.domains.EXPECT().Authorize(ctx, "d1", "user-1").Return(&domain.Domain{ID: "d1"}, nil)
		m.pixels.EXPECT().ListPixelsByDomain(gomock.Any(), "d1").Return(nil, nil)
		m.events.EXPECT().SaveEvent(gomock.Any(), gomock.Any()).Return(nil)

		result, err := svc.CreateEvent(ctx, "user-1", &domain.Event{DomainID: "d1", EventName: "PageView"}, domain.RequestMeta{})
		require.NoError(t, err)
		assert.Nil(t, result.GeoIP)
	})
}

func TestEventService_CreateEvent_RecordsEveryPixelAttempt(t *testing.T) {
	svc, m := setupEventServiceTest(t)
	ctx := context.Background()

	m.domains.EXPECT().Authorize(ctx, "d1", "user-1").Return(&domain.Domain{ID: "d1"}, nil)
	m.pixels.EXPECT().ListPixelsByDomain(gomock.Any(), "d1").Return([]*domain.FacebookPixel{
		{PixelID: "111", APIToken: "bad"},
		{PixelID: "222", APIToken: "good"},
	}, nil)

	var saved []domain.Event
	m.events.EXPECT().SaveEvent(gomock.Any(), gomock.Any()).DoAndReturn(snapshot(&saved)).Times(4)
	m.forwarder.EXPECT().SendEvents(gomock.Any(), "111", "bad", gomock.Any(), "").
		Return(nil, &domain.UpstreamError{StatusCode: 401, Body: `{"error":{"code":190}}`})
	m.forwarder.EXPECT().SendEvents(gomock.Any(), "222", "good", gomock.Any(), "").
		Return(json.RawMessage(`{"events_received":1}`), nil)

	result, err := svc.CreateEvent(ctx, "user-1", &domain.Event{DomainID: "d1", EventName: "Lead"}, domain.RequestMeta{})

	var upstream *domain.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, 401, upstream.StatusCode)

	// the failed attempt is what the caller gets back
	require.NotNil(t, result)
	assert.JSONEq(t, `{"error":{"error":{"code":190}}}`, string(result.FacebookResponse))

	// latest stored version of every row
	latest := make(map[string]domain.Event)
	for _, e := range saved {
		latest[e.ID] = e
	}
	require.Len(t, latest, 2)
	assert.JSONEq(t, `{"error":{"error":{"code":190}}}`, string(latest[result.ID].FacebookResponse))
	for id, e := range latest {
		assert.Equal(t, "d1", e.DomainID)
		assert.Equal(t, "Lead", e.EventName)
		assert.NotEmpty(t, e.FacebookRequest)
		if id != result.ID {
			assert.JSONEq(t, `{"events_received":1}`, string(e.FacebookResponse))
		}
	}
}

func TestEventService_CreateEvent_IgnoresClientID(t *testing.T) {
	svc, m := setupEventServiceTest(t)
	ctx := context.Background()

	m.domains.EXPECT().Authorize(ctx, "domain-B", "user-B").Return(&domain.Domain{ID: "domain-B"}, nil)
	m.pixels.EXPECT().ListPixelsByDomain(gomock.Any(), "domain-B").Return(nil, nil)

	var saved []domain.Event
	m.events.EXPECT().SaveEvent(gomock.Any(), gomock.Any()).DoAndReturn(snapshot(&saved))

	result, err := svc.CreateEvent(ctx, "user-B", &domain.Event{
		ID:               "evt-A",
		DomainID:         "domain-B",
		EventName:        "PageView",
		FacebookResponse: json.RawMessage(`{"events_received":1}`),
	}, domain.RequestMeta{})
	require.NoError(t, err)

	require.Len(t, saved, 1)
	assert.NotEqual(t, "evt-A", saved[0].ID)
	assert.Len(t, saved[0].ID, 36)
	assert.Equal(t, saved[0].ID, result.ID)
	assert.Nil(t, saved[0].FacebookResponse)
}

func TestEventService_CreateEvent_Conversion(t *testing.T) {
	ctx := context.Background()
	inactive := false

	t.Run("fills the event from the conversion", func(t *testing.T) {
		svc, m := setupEventServiceTest(t)

		conversion := &domain.Conversion{
			ID: "c1", DomainID: "d1", EventName: "Purchase",
			ProductName: strPtr("Curso"), ProductValue: floatPtr(97), Currency: "BRL",
		}
		m.domains.EXPECT().Authorize(ctx, "d1", "user-1").Return(&domain.Domain{ID: "d1"}, nil)
		m.conversions.EXPECT().GetConversion(ctx, "c1").Return(conversion, nil)
		m.pixels.EXPECT().ListPixelsByDomain(gomock.Any(), "d1").Return(nil, nil)
		m.events.EXPECT().SaveEvent(gomock.Any(), gomock.Any()).Return(nil)

		result, err := svc.CreateEvent(ctx, "user-1", &domain.Event{DomainID: "d1", ConversionID: strPtr("c1")}, domain.RequestMeta{})
		require.NoError(t, err)
		assert.Equal(t, "Purchase", result.EventName)
		assert.Equal(t, "Curso", *result.ProductName)
		assert.Equal(t, 97.0, *result.ProductValue)
		assert.Equal(t, "BRL", *result.Currency)
	})

	tests := []struct {
		name       string
		conversion *domain.Conversion
		err        error
	}{
		{"unknown conversion", nil, &domain.ErrNotFound{Entity: "conversion", ID: "c1"}},
		{"conversion of another domain", &domain.Conversion{ID: "c1", DomainID: "d2", EventName: "Lead"}, nil},
		{"inactive conversion", &domain.Conversion{ID: "c1", DomainID: "d1", EventName: "Lead", Active: &inactive}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := setupEventServiceTest(t)

			m.domains.EXPECT().Authorize(ctx, "d1", "user-1").Return(&domain.Domain{ID: "d1"}, nil)
			m.conversions.EXPECT().GetConversion(ctx, "c1").Return(tt.conversion, tt.err)

			_, err := svc.CreateEvent(ctx, "user-1", &domain.Event{DomainID: "d1", ConversionID: strPtr("c1")}, domain.RequestMeta{})
			assert.IsType(t, domain.ValidationError{}, err)
		})
	}
}

func TestEventService_CreateEvent_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("foreign domain", func(t *testing.T) {
		svc, m := setupEventServiceTest(t)
		m.domains.EXPECT().Authorize(ctx, "d1", "user-2").Return(nil, domain.ErrForbidden)

		_, err := svc.CreateEvent(ctx, "user-2", &domain.Event{DomainID: "d1", EventName: "Lead"}, domain.RequestMeta{})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("missing event name", func(t *testing.T) {
		svc, m := setupEventServiceTest(t)
		m.domains.EXPECT().Authorize(ctx, "d1", "user-1").Return(&domain.Domain{ID: "d1"}, nil)

		_, err := svc.CreateEvent(ctx, "user-1", &domain.Event{DomainID: "d1"}, domain.RequestMeta{})
		assert.IsType(t, domain.ValidationError{}, err)
	})

	t.Run("nil event", func(t *testing.T) {
		svc, _ := setupEventServiceTest(t)

		_, err := svc.CreateEvent(ctx, "user-1", nil, domain.RequestMeta{})
		assert.IsType(t, domain.ValidationError{}, err)
	})
}

func TestEventService_SendEvent(t *testing.T) {
	ctx := context.Background()
	pixel := &domain.FacebookPixel{ID: "p1", DomainID: "d1", PixelID: "111", APIToken: "tok"}

	t.Run("forwards through the stored pixel", func(t *testing.T) {
		svc, m := setupEventServiceTest(t)

		m.pixels.EXPECT().GetPixel(ctx, "p1").Return(pixel, nil)
		m.domains.EXPECT().Authorize(ctx, "d1", "user-1").Return(&domain.Domain{ID: "d1"}, nil)
		m.events.EXPECT().SaveEvent(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		m.forwarder.EXPECT().SendEvents(gomock.Any(), "111", "tok", gomock.Any(), "").Return(json.RawMessage(`{"events_received":1}`), nil)

		event, err := svc.SendEvent(ctx, "user-1", domain.SendEventRequest{PixelID: "p1", Event: &domain.Event{ID: "evt-other", EventName: "Lead"}})
		require.NoError(t, err)
		assert.NotEqual(t, "evt-other", event.ID)
		assert.NotEmpty(t, event.ID)
		assert.Equal(t, "d1", event.DomainID)
		assert.Equal(t, fixedNow, event.EventTime)
	})

	t.Run("event of another domain", func(t *testing.T) {
		svc, m := setupEventServiceTest(t)

		m.pixels.EXPECT().GetPixel(ctx, "p1").Return(pixel, nil)
		m.domains.EXPECT().Authorize(ctx, "d1", "user-1").Return(&domain.Domain{ID: "d1"}, nil)

		_, err := svc.SendEvent(ctx, "user-1", domain.SendEventRequest{PixelID: "p1", Event: &domain.Event{DomainID: "d9", EventName: "Lead"}})
		assert.IsType(t, domain.ValidationError{}, err)
	})

	t.Run("pixel of another user", func(t *testing.T) {
		svc, m := setupEventServiceTest(t)

		m.pixels.EXPECT().GetPixel(ctx, "p1").Return(pixel, nil)
		m.domains.EXPECT().Authorize(ctx, "d1", "user-2").Return(nil, domain.ErrForbidden)

		_, err := svc.SendEvent(ctx, "user-2", domain.SendEventRequest{PixelID: "p1", Event: &domain.Event{EventName: "Lead"}})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("invalid request", func(t *testing.T) {
		svc, _ := setupEventServiceTest(t)

		_, err := svc.SendEvent(ctx, "user-1", domain.SendEventRequest{PixelID: "p1"})
		assert.IsType(t, domain.ValidationError{}, err)
	})
}

func TestEventService_Reads(t *testing.T) {
	ctx := context.Background()

	t.Run("GetEvent", func(t *testing.T) {
		svc, m := setupEventServiceTest(t)

		m.events.EXPECT().GetEvent(ctx, "e1").Return(&domain.Event{ID: "e1", DomainID: "d1"}, nil)
		m.domains.EXPECT().Authorize(ctx, "d1", "user-1").Return(&domain.Domain{ID: "d1"}, nil)

		event, err := svc.GetEvent(ctx, "user-1", "e1")
		require.NoError(t, err)
		assert.Equal(t, "e1", event.ID)
	})

	t.Run("GetEvent not found", func(t *testing.T) {
		svc, m := setupEventServiceTest(t)

		m.events.EXPECT().GetEvent(ctx, "e1").Return(nil, &domain.ErrNotFound{Entity: "event", ID: "e1"})

		_, err := svc.GetEvent(ctx, "user-1", "e1")
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("ListEventsByDomain", func(t *testing.T) {
		svc, m := setupEventServiceTest(t)

		m.domains.EXPECT().Authorize(ctx, "d1", "user-1").Return(&domain.Domain{ID: "d1"}, nil)
		m.events.EXPECT().ListEventsByDomain(ctx, "d1").Return([]*domain.Event{{ID: "e1"}, {ID: "e2"}}, nil)

		events, err := svc.ListEventsByDomain(ctx, "user-1", "d1")
		require.NoError(t, err)
		assert.Len(t, events, 2)
	})
}

func TestFailureResponse(t *testing.T) {
	assert.JSONEq(t, `{"error":{"message":"x"}}`,
		string(failureResponse(&domain.UpstreamError{StatusCode: 500, Body: `{"message":"x"}`})))
	assert.JSONEq(t, `{"error":"<html>bad gateway</html>"}`,
		string(failureResponse(&domain.UpstreamError{StatusCode: 502, Body: "<html>bad gateway</html>"})))
	assert.JSONEq(t, `{"error":"status 503"}`,
		string(failureResponse(&domain.UpstreamError{StatusCode: 503})))
}

func TestEventService_PrepareIssuesIDAndKeepsClientValues(t *testing.T) {
	svc, _ := setupEventServiceTest(t)

	when := fixedNow.Add(-time.Hour)
	event := &domain.Event{
		ID:         "e1",
		EventTime:  when,
		GeoIP:      strPtr("10.0.0.1"),
		GeoDevice:  strPtr("relayed-ua"),
		GeoCountry: strPtr("us"),
		GeoCity:    strPtr("Austin"),
	}
	svc.prepare(event, domain.RequestMeta{ClientIP: "177.1.1.1", UserAgent: browserUA})

	assert.NotEqual(t, "e1", event.ID)
	assert.Len(t, event.ID, 36)
	assert.Equal(t, when, event.EventTime)
	assert.Equal(t, "10.0.0.1", *event.GeoIP)
	assert.Equal(t, "relayed-ua", *event.GeoDevice)
}
