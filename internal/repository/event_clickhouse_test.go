package repository

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixeltrack/pixeltrack/internal/domain"
	"github.com/pixeltrack/pixeltrack/internal/repository/testutil"
)

func eventRow(id string, values map[string]driver.Value, contentIDs []string, request, response driver.Value, ts time.Time) []driver.Value {
	row := []driver.Value{id, "D1", "Purchase", ts}
	for _, attr := range (&domain.Event{}).Attributes() {
		row = append(row, values[attr.Column])
	}
	return append(row, 97.0, nil, nil, contentIDs, request, response, ts)
}

func TestEventRepository_SaveEvent(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockClickHouse(t)
	defer cleanup()

	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	repo := &eventRepository{db: db, now: func() time.Time { return fixed }}

	fbc := "fb.1.123.abc"
	event := &domain.Event{
		ID:              "E1",
		DomainID:        "D1",
		EventName:       "Purchase",
		EventTime:       fixed,
		Fbc:             &fbc,
		ContentIDs:      []string{"p1", "p2"},
		FacebookRequest: json.RawMessage(`{"data":[]}`),
	}

	args := []driver.Value{"E1", "D1", "Purchase", fixed}
	for _, attr := range event.Attributes() {
		if attr.Column == "fbc" {
			args = append(args, fbc)
		} else {
			args = append(args, nil)
		}
	}
	args = append(args, nil, nil, nil, []string{"p1", "p2"}, `{"data":[]}`, nil, fixed, int64(fixed.UnixNano()))

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO events (id, domain_id, event_name, event_time, lead_id,`)).
		WithArgs(args...).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveEvent(context.Background(), event))
	assert.Equal(t, fixed, event.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_SaveEventWithoutContentIDs(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockClickHouse(t)
	defer cleanup()

	repo := NewEventRepository(db)

	mock.ExpectExec(`INSERT INTO events`).WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveEvent(context.Background(), &domain.Event{ID: "E2", DomainID: "D1", EventName: "PageView"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_GetEvent(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockClickHouse(t)
	defer cleanup()

	repo := NewEventRepository(db)
	now := time.Now().UTC()
	query := `FROM events FINAL WHERE id = \? LIMIT 1`

	mock.ExpectQuery(query).WithArgs("E1").
		WillReturnRows(sqlmock.NewRows(eventColumns).AddRow(eventRow("E1",
			map[string]driver.Value{"lead_id": "L1", "geo_ip": "203.0.113.7"},
			[]string{"p1"},
			`{"data":[]}`, `{"events_received":1,"fbtrace_id":"abc"}`,
			now)...))

	event, err := repo.GetEvent(context.Background(), "E1")
	require.NoError(t, err)
	assert.Equal(t, "L1", *event.LeadID)
	assert.Equal(t, "203.0.113.7", *event.GeoIP)
	assert.Equal(t, 97.0, *event.ProductValue)
	assert.Nil(t, event.Value)
	assert.Equal(t, []string{"p1"}, event.ContentIDs)
	assert.JSONEq(t, `{"events_received":1,"fbtrace_id":"abc"}`, string(event.FacebookResponse))

	mock.ExpectQuery(query).WithArgs("E2").WillReturnRows(sqlmock.NewRows(eventColumns))
	_, err = repo.GetEvent(context.Background(), "E2")
	assert.True(t, domain.IsNotFound(err))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_ListEventsByDomain(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockClickHouse(t)
	defer cleanup()

	repo := NewEventRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(`FROM events FINAL WHERE domain_id = \? ORDER BY event_time DESC`).WithArgs("D1").
		WillReturnRows(sqlmock.NewRows(eventColumns).
			AddRow(eventRow("E1", nil, []string{}, nil, nil, now)...).
			AddRow(eventRow("E2", nil, []string{}, `{"data":[]}`, `{"error":"timeout"}`, now)...))

	events, err := repo.ListEventsByDomain(context.Background(), "D1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Nil(t, events[0].FacebookRequest)
	assert.JSONEq(t, `{"error":"timeout"}`, string(events[1].FacebookResponse))

	assert.NoError(t, mock.ExpectationsWereMet())
}
