package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixeltrack/pixeltrack/internal/domain"
)

func newTestFacebookClient(t *testing.T, handler http.HandlerFunc) *FacebookClient {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	ctrl := gomock.NewController(t)
	return NewFacebookClient(FacebookClientConfig{
		BaseURL:    server.URL + "/",
		APIVersion: "v19.0",
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
		Logger:     newMockLogger(ctrl),
	})
}

func TestFacebookClient_SendEvents_Success(t *testing.T) {
	events := []domain.ServerEvent{{
		EventName:    "Purchase",
		EventTime:    fixedNow.Unix(),
		ActionSource: domain.ActionSourceWebsite,
		UserData:     domain.UserData{Em: []string{HashPII("ana@example.com")}},
	}}

	client := newTestFacebookClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v19.0/123456/events", r.URL.Path)
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var payload domain.FacebookEventsRequest
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "TEST123", payload.TestEventCode)
		require.Len(t, payload.Data, 1)
		assert.Equal(t, "Purchase", payload.Data[0].EventName)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"events_received":1,"messages":[],"fbtrace_id":"AbC"}`))
	})

	resp, err := client.SendEvents(context.Background(), "123456", "token-abc", events, "TEST123")
	require.NoError(t, err)
	assert.JSONEq(t, `{"events_received":1,"messages":[],"fbtrace_id":"AbC"}`, string(resp))
}

func TestFacebookClient_SendEvents_OmitsEmptyTestCode(t *testing.T) {
	client := newTestFacebookClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.NotContains(t, string(body), "test_event_code")
		_, _ = w.Write([]byte(`{"events_received":1}`))
	})

	_, err := client.SendEvents(context.Background(), "1", "t", []domain.ServerEvent{{EventName: "Lead"}}, "")
	require.NoError(t, err)
}

func TestFacebookClient_SendEvents_Rejected(t *testing.T) {
	const body = `{"error":{"message":"Invalid OAuth access token.","type":"OAuthException","code":190,"fbtrace_id":"X1"}}`
	client := newTestFacebookClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(body))
	})

	resp, err := client.SendEvents(context.Background(), "1", "bad", []domain.ServerEvent{{EventName: "Lead"}}, "")
	require.Error(t, err)
	assert.Nil(t, resp)

	var upstream *domain.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusBadRequest, upstream.StatusCode)
	assert.Equal(t, body, upstream.Detail())
}

func TestFacebookClient_SendEvents_InvalidJSON(t *testing.T) {
	client := newTestFacebookClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	})

	_, err := client.SendEvents(context.Background(), "1", "t", []domain.ServerEvent{{EventName: "Lead"}}, "")

	var upstream *domain.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusOK, upstream.StatusCode)
	assert.Contains(t, upstream.Error(), "invalid JSON response")
}

func TestFacebookClient_SendEvents_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	ctrl := gomock.NewController(t)
	client := NewFacebookClient(FacebookClientConfig{BaseURL: url, Logger: newMockLogger(ctrl)})

	_, err := client.SendEvents(context.Background(), "1", "t", []domain.ServerEvent{{EventName: "Lead"}}, "")

	var upstream *domain.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Zero(t, upstream.StatusCode)
	assert.NotEmpty(t, upstream.Detail())
}

func TestNewFacebookClient_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewFacebookClient(FacebookClientConfig{Logger: newMockLogger(ctrl)})

	assert.Equal(t, "https://graph.facebook.com/v20.0/42/events", client.endpoint("42"))
}
