package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/pixeltrack/pixeltrack/internal/domain"
	"github.com/pixeltrack/pixeltrack/pkg/tracing"
)

var leadColumns = func() []string {
	columns := []string{"id", "domain_id"}
	for _, attr := range (&domain.Lead{}).Attributes() {
		columns = append(columns, attr.Column)
	}
	return append(columns, "created_at", "updated_at")
}()

type leadRepository struct {
	db *sql.DB
}

// NewLeadRepository creates a ClickHouse lead repository. Saves insert a new
// row version and ReplacingMergeTree(updated_at) keeps the latest one.
func NewLeadRepository(db *sql.DB) domain.LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) SaveLead(ctx context.Context, lead *domain.Lead) error {
	return tracing.TraceMethod(ctx, "LeadRepository", "SaveLead", func(ctx context.Context) error {
		tracing.AddAttribute(ctx, "lead.id", lead.ID)

		if lead.UpdatedAt.IsZero() {
			lead.UpdatedAt = time.Now().UTC()
		}
		if lead.CreatedAt.IsZero() {
			lead.CreatedAt = lead.UpdatedAt
		}

		args := make([]interface{}, 0, len(leadColumns))
		args = append(args, lead.ID, lead.DomainID)
		for _, attr := range lead.Attributes() {
			args = append(args, *attr.Value)
		}
		args = append(args, lead.CreatedAt, lead.UpdatedAt)

		query := fmt.Sprintf("INSERT INTO leads (%s) VALUES (%s)",
			strings.Join(leadColumns, ", "),
			placeholders(len(leadColumns)),
		)
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to save lead: %w", err)
		}
		return nil
	})
}

func (r *leadRepository) GetLead(ctx context.Context, id string) (*domain.Lead, error) {
	return tracing.TraceMethodWithResult(ctx, "LeadRepository", "GetLead", func(ctx context.Context) (*domain.Lead, error) {
		query := fmt.Sprintf("SELECT %s FROM leads FINAL WHERE id = ? LIMIT 1", strings.Join(leadColumns, ", "))

		rows, err := r.db.QueryContext(ctx, query, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get lead: %w", err)
		}
		defer rows.Close()

		if !rows.Next() {
			if err := rows.Err(); err != nil {
				return nil, fmt.Errorf("failed to get lead: %w", err)
			}
			return nil, &domain.ErrNotFound{Entity: "lead", ID: id}
		}

		lead, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		return lead, nil
	})
}

func (r *leadRepository) ListLeadsByDomain(ctx context.Context, domainID string) ([]*domain.Lead, error) {
	query := fmt.Sprintf("SELECT %s FROM leads FINAL WHERE domain_id = ? ORDER BY created_at DESC", strings.Join(leadColumns, ", "))

	rows, err := r.db.QueryContext(ctx, query, domainID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	leads := make([]*domain.Lead, 0)
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leads: %w", err)
	}
	return leads, nil
}

func scanLead(row rowScanner) (*domain.Lead, error) {
	var lead domain.Lead
	dest := make([]interface{}, 0, len(leadColumns))
	dest = append(dest, &lead.ID, &lead.DomainID)
	for _, attr := range lead.Attributes() {
		dest = append(dest, attr.Value)
	}
	dest = append(dest, &lead.CreatedAt, &lead.UpdatedAt)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &lead, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
