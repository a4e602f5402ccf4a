package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pixeltrack/pixeltrack/internal/domain"
	"github.com/pixeltrack/pixeltrack/pkg/tracing"
)

var eventColumns = func() []string {
	columns := []string{"id", "domain_id", "event_name", "event_time"}
	for _, attr := range (&domain.Event{}).Attributes() {
		columns = append(columns, attr.Column)
	}
	return append(columns,
		"product_value", "predicted_ltv", "value", "content_ids",
		"facebook_request", "facebook_response", "created_at",
	)
}()

type eventRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewEventRepository creates a ClickHouse event repository.
// Each save writes a row with a higher version; reads use FINAL.
func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{db: db, now: time.Now}
}

func (r *eventRepository) SaveEvent(ctx context.Context, event *domain.Event) error {
	return tracing.TraceMethod(ctx, "EventRepository", "SaveEvent", func(ctx context.Context) error {
		tracing.AddAttribute(ctx, "event.id", event.ID)

		now := r.now().UTC()
		if event.CreatedAt.IsZero() {
			event.CreatedAt = now
		}

		contentIDs := event.ContentIDs
		if contentIDs == nil {
			contentIDs = []string{}
		}

		args := make([]interface{}, 0, len(eventColumns)+1)
		args = append(args, event.ID, event.DomainID, event.EventName, event.EventTime.UTC())
		for _, attr := range event.Attributes() {
			args = append(args, *attr.Value)
		}
		args = append(args,
			event.ProductValue,
			event.PredictedLTV,
			event.Value,
			contentIDs,
			rawToNullable(event.FacebookRequest),
			rawToNullable(event.FacebookResponse),
			event.CreatedAt,
			uint64(now.UnixNano()),
		)

		query := fmt.Sprintf("INSERT INTO events (%s, version) VALUES (%s)",
			strings.Join(eventColumns, ", "),
			placeholders(len(eventColumns)+1),
		)
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to save event: %w", err)
		}
		return nil
	})
}

func (r *eventRepository) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	query := fmt.Sprintf("SELECT %s FROM events FINAL WHERE id = ? LIMIT 1", strings.Join(eventColumns, ", "))

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to get event: %w", err)
		}
		return nil, &domain.ErrNotFound{Entity: "event", ID: id}
	}

	event, err := scanEvent(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan event: %w", err)
	}
	return event, nil
}

func (r *eventRepository) ListEventsByDomain(ctx context.Context, domainID string) ([]*domain.Event, error) {
	query := fmt.Sprintf("SELECT %s FROM events FINAL WHERE domain_id = ? ORDER BY event_time DESC", strings.Join(eventColumns, ", "))

	rows, err := r.db.QueryContext(ctx, query, domainID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}
	return events, nil
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var (
		event            domain.Event
		facebookRequest  *string
		facebookResponse *string
	)

	dest := make([]interface{}, 0, len(eventColumns))
	dest = append(dest, &event.ID, &event.DomainID, &event.EventName, &event.EventTime)
	for _, attr := range event.Attributes() {
		dest = append(dest, attr.Value)
	}
	dest = append(dest,
		&event.ProductValue,
		&event.PredictedLTV,
		&event.Value,
		&event.ContentIDs,
		&facebookRequest,
		&facebookResponse,
		&event.CreatedAt,
	)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	event.FacebookRequest = nullableToRaw(facebookRequest)
	event.FacebookResponse = nullableToRaw(facebookResponse)
	return &event, nil
}

func rawToNullable(raw json.RawMessage) *string {
	if len(raw) == 0 {
		return nil
	}
	s := string(raw)
	return &s
}

func nullableToRaw(s *string) json.RawMessage {
	if s == nil || *s == "" {
		return nil
	}
	return json.RawMessage(*s)
}
