package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/pixeltrack/pixeltrack/internal/domain"
)

var conversionColumns = []string{
	"c.id", "c.domain_id", "c.title", "c.scope", "c.scope_value", "c.trigger", "c.trigger_value", "c.event_name",
	"c.product_name", "c.product_id", "c.offer_ids", "c.product_value", "c.currency", "c.active",
	"c.created_at", "c.updated_at",
}

type conversionRepository struct {
	systemDB *sql.DB
	psql     sq.StatementBuilderType
}

// NewConversionRepository creates a new PostgreSQL conversion repository
func NewConversionRepository(db *sql.DB) domain.ConversionRepository {
	return &conversionRepository{
		systemDB: db,
		psql:     sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *conversionRepository) CreateConversion(ctx context.Context, c *domain.Conversion) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	query, args, err := r.psql.Insert("conversions").
		Columns(
			"id", "domain_id", "title", "scope", "scope_value", "trigger", "trigger_value", "event_name",
			"product_name", "product_id", "offer_ids", "product_value", "currency", "active",
			"created_at", "updated_at",
		).
		Values(
			c.ID, c.DomainID, c.Title, string(c.Scope), c.ScopeValue, string(c.Trigger), c.TriggerValue, c.EventName,
			c.ProductName, c.ProductID, c.OfferIDs, c.ProductValue, c.Currency, c.IsActive(),
			c.CreatedAt, c.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.systemDB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create conversion: %w", err)
	}
	return nil
}

func (r *conversionRepository) GetConversion(ctx context.Context, id string) (*domain.Conversion, error) {
	query, args, err := r.psql.Select(conversionColumns...).
		From("conversions c").
		Where(sq.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	c, err := scanConversion(r.systemDB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.ErrNotFound{Entity: "conversion", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get conversion: %w", err)
	}
	return c, nil
}

func (r *conversionRepository) ListConversionsByDomain(ctx context.Context, domainID string) ([]*domain.Conversion, error) {
	return r.list(ctx, r.psql.Select(conversionColumns...).
		From("conversions c").
		Where(sq.Eq{"c.domain_id": domainID}).
		OrderBy("c.created_at DESC"))
}

func (r *conversionRepository) ListConversionsByUser(ctx context.Context, userID string) ([]*domain.Conversion, error) {
	return r.list(ctx, r.psql.Select(conversionColumns...).
		From("conversions c").
		Join("domains d ON d.id = c.domain_id").
		Where(sq.Eq{"d.user_id": userID}).
		OrderBy("c.created_at DESC"))
}

func (r *conversionRepository) list(ctx context.Context, builder sq.SelectBuilder) ([]*domain.Conversion, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.systemDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversions: %w", err)
	}
	defer rows.Close()

	conversions := make([]*domain.Conversion, 0)
	for rows.Next() {
		c, err := scanConversion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan conversion: %w", err)
		}
		conversions = append(conversions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating conversions: %w", err)
	}
	return conversions, nil
}

func (r *conversionRepository) UpdateConversion(ctx context.Context, c *domain.Conversion) error {
	c.UpdatedAt = time.Now().UTC()

	query, args, err := r.psql.Update("conversions").
		SetMap(map[string]interface{}{
			"domain_id":     c.DomainID,
			"title":         c.Title,
			"scope":         string(c.Scope),
			"scope_value":   c.ScopeValue,
			"trigger":       string(c.Trigger),
			"trigger_value": c.TriggerValue,
			"event_name":    c.EventName,
			"product_name":  c.ProductName,
			"product_id":    c.ProductID,
			"offer_ids":     c.OfferIDs,
			"product_value": c.ProductValue,
			"currency":      c.Currency,
			"active":        c.IsActive(),
			"updated_at":    c.UpdatedAt,
		}).
		Where(sq.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.systemDB.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update conversion: %w", err)
	}

	found, err := checkRowsAffected(result.RowsAffected())
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if !found {
		return &domain.ErrNotFound{Entity: "conversion", ID: c.ID}
	}
	return nil
}

func (r *conversionRepository) DeleteConversion(ctx context.Context, id string) error {
	result, err := r.systemDB.ExecContext(ctx, `DELETE FROM conversions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete conversion: %w", err)
	}

	found, err := checkRowsAffected(result.RowsAffected())
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if !found {
		return &domain.ErrNotFound{Entity: "conversion", ID: id}
	}
	return nil
}

func scanConversion(row rowScanner) (*domain.Conversion, error) {
	var (
		c       domain.Conversion
		scope   string
		trigger string
		active  bool
	)
	err := row.Scan(
		&c.ID,
		&c.DomainID,
		&c.Title,
		&scope,
		&c.ScopeValue,
		&trigger,
		&c.TriggerValue,
		&c.EventName,
		&c.ProductName,
		&c.ProductID,
		&c.OfferIDs,
		&c.ProductValue,
		&c.Currency,
		&active,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Scope = domain.ConversionScope(scope)
	c.Trigger = domain.ConversionTrigger(trigger)
	c.Active = &active
	return &c, nil
}
