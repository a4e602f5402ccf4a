package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/pixeltrack/pixeltrack/internal/domain"
	"github.com/pixeltrack/pixeltrack/pkg/logger"
	"github.com/pixeltrack/pixeltrack/pkg/tracing"
)

const (
	DefaultGraphBaseURL = "https://graph.facebook.com"
	DefaultGraphVersion = "v20.0"

	maxGraphResponseBytes = 1 << 20
)

// FacebookClient posts server events to the Conversions API
type FacebookClient struct {
	httpClient *http.Client
	baseURL    string
	apiVersion string
	logger     logger.Logger
}

type FacebookClientConfig struct {
	BaseURL    string
	APIVersion string
	// HTTPClient carries the dialer and timeout, it is wrapped with client spans
	HTTPClient *http.Client
	Logger     logger.Logger
}

func NewFacebookClient(cfg FacebookClientConfig) *FacebookClient {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultGraphBaseURL
	}
	version := cfg.APIVersion
	if version == "" {
		version = DefaultGraphVersion
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &FacebookClient{
		httpClient: tracing.WrapHTTPClient(httpClient),
		baseURL:    baseURL,
		apiVersion: version,
		logger:     cfg.Logger,
	}
}

var _ domain.FacebookForwarder = (*FacebookClient)(nil)

func (c *FacebookClient) endpoint(pixelID string) string {
	return fmt.Sprintf("%s/%s/%s/events", c.baseURL, c.apiVersion, url.PathEscape(pixelID))
}

// SendEvents returns the raw JSON body of a 2xx answer. Anything else is a *domain.UpstreamError.
func (c *FacebookClient) SendEvents(ctx context.Context, pixelID, accessToken string, events []domain.ServerEvent, testEventCode string) (json.RawMessage, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "FacebookClient", "SendEvents")
	defer span.End()
	tracing.AddAttribute(ctx, "facebook.pixel_id", pixelID)
	tracing.AddAttribute(ctx, "facebook.events", len(events))

	payload, err := json.Marshal(domain.FacebookEventsRequest{Data: events, TestEventCode: testEventCode})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal events: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(pixelID), bytes.NewReader(payload))
	if err != nil {
		return nil, &domain.UpstreamError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	log := c.logger.WithField("pixel_id", pixelID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithField("error", err.Error()).Error("Facebook request failed")
		tracing.MarkSpanError(ctx, err)
		return nil, &domain.UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxGraphResponseBytes))
	if err != nil {
		tracing.MarkSpanError(ctx, err)
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}
	tracing.AddAttribute(ctx, "http.status_code", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		upstream := &domain.UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
		log.WithFields(map[string]interface{}{
			"status":     resp.StatusCode,
			"message":    gjson.GetBytes(body, "error.message").String(),
			"fbtrace_id": gjson.GetBytes(body, "error.fbtrace_id").String(),
		}).Warn("Facebook rejected events")
		tracing.MarkSpanError(ctx, upstream)
		return nil, upstream
	}

	if !gjson.ValidBytes(body) {
		upstream := &domain.UpstreamError{StatusCode: resp.StatusCode, Body: string(body), Err: errors.New("invalid JSON response")}
		tracing.MarkSpanError(ctx, upstream)
		return nil, upstream
	}

	result := gjson.ParseBytes(body)
	log.WithFields(map[string]interface{}{
		"events_received": result.Get("events_received").Int(),
		"fbtrace_id":      result.Get("fbtrace_id").String(),
		"test_event_code": testEventCode,
	}).Info("Events sent to Facebook")

	return json.RawMessage(body), nil
}
