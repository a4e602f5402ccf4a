package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pixeltrack/pixeltrack/internal/domain"
	"github.com/pixeltrack/pixeltrack/internal/domain/mocks"
	"github.com/pixeltrack/pixeltrack/internal/http/middleware"
	"github.com/pixeltrack/pixeltrack/internal/service"
	"github.com/pixeltrack/pixeltrack/pkg/logger"
)

const (
	testUserID = "user-1"
	testToken  = "valid-access-token"
)

type routerMocks struct {
	auth        *mocks.MockAuthService
	domains     *mocks.MockDomainService
	pixels      *mocks.MockFacebookPixelService
	conversions *mocks.MockConversionService
	leads       *mocks.MockLeadService
	events      *mocks.MockEventService
	health      *fakeHealthChecker
}

type fakeHealthChecker struct {
	report service.HealthReport
}

func (f *fakeHealthChecker) Check(ctx context.Context) service.HealthReport {
	return f.report
}

// setupRouterTest builds the full router on top of service mocks. testToken
// authenticates as testUserID.
func setupRouterTest(t *testing.T) (http.Handler, *routerMocks) {
	ctrl := gomock.NewController(t)

	m := &routerMocks{
		auth:        mocks.NewMockAuthService(ctrl),
		domains:     mocks.NewMockDomainService(ctrl),
		pixels:      mocks.NewMockFacebookPixelService(ctrl),
		conversions: mocks.NewMockConversionService(ctrl),
		leads:       mocks.NewMockLeadService(ctrl),
		events:      mocks.NewMockEventService(ctrl),
		health:      &fakeHealthChecker{report: service.HealthReport{Status: service.HealthStatusOK}},
	}
	m.auth.EXPECT().ParseAccessToken(testToken).
		Return(&domain.UserClaims{UserID: testUserID, Email: "ana@example.com", Type: domain.TokenTypeAccess}, nil).
		AnyTimes()

	router := NewRouter(RouterConfig{
		AuthService:       m.auth,
		DomainService:     m.domains,
		PixelService:      m.pixels,
		ConversionService: m.conversions,
		LeadService:       m.leads,
		EventService:      m.events,
		Health:            m.health,
		CORSAllowOrigin:   "*",
		Logger:            logger.NewTestLogger(t),
	})
	return router, m
}

// doRequest sends body as JSON (unless it is a string, sent verbatim) with an optional bearer token
func doRequest(t *testing.T, handler http.Handler, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func decodeErrorBody(t *testing.T, w *httptest.ResponseRecorder) middleware.ErrorDetail {
	t.Helper()
	var body middleware.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body.Error
}

func strPtr(s string) *string { return &s }
