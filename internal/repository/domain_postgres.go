package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pixeltrack/pixeltrack/internal/domain"
)

const domainColumns = `id, user_id, domain_name, is_validated, created_at, updated_at`

type domainRepository struct {
	systemDB *sql.DB
}

// NewDomainRepository creates a new PostgreSQL domain repository
func NewDomainRepository(db *sql.DB) domain.DomainRepository {
	return &domainRepository{systemDB: db}
}

func (r *domainRepository) CreateDomain(ctx context.Context, d *domain.Domain) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now

	query := `
		INSERT INTO domains (id, user_id, domain_name, is_validated, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.systemDB.ExecContext(ctx, query,
		d.ID,
		d.UserID,
		d.DomainName,
		d.IsValidated,
		d.CreatedAt,
		d.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return &domain.ErrDuplicateKey{Entity: "domain", Field: "domain_name"}
	}
	if err != nil {
		return fmt.Errorf("failed to create domain: %w", err)
	}
	return nil
}

func (r *domainRepository) GetDomain(ctx context.Context, id, userID string) (*domain.Domain, error) {
	query := `SELECT ` + domainColumns + ` FROM domains WHERE id = $1 AND user_id = $2`
	d, err := scanDomain(r.systemDB.QueryRowContext(ctx, query, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.ErrNotFound{Entity: "domain", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get domain: %w", err)
	}
	return d, nil
}

func (r *domainRepository) GetDomainOwner(ctx context.Context, id string) (string, error) {
	var userID string
	err := r.systemDB.QueryRowContext(ctx, `SELECT user_id FROM domains WHERE id = $1`, id).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", &domain.ErrNotFound{Entity: "domain", ID: id}
	}
	if err != nil {
		return "", fmt.Errorf("failed to get domain owner: %w", err)
	}
	return userID, nil
}

func (r *domainRepository) GetDomainByName(ctx context.Context, name string) (*domain.Domain, error) {
	query := `SELECT ` + domainColumns + ` FROM domains WHERE domain_name = $1`
	d, err := scanDomain(r.systemDB.QueryRowContext(ctx, query, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.ErrNotFound{Entity: "domain", ID: name}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get domain: %w", err)
	}
	return d, nil
}

func (r *domainRepository) ListDomainsByUser(ctx context.Context, userID string) ([]*domain.Domain, error) {
	query := `SELECT ` + domainColumns + ` FROM domains WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.systemDB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list domains: %w", err)
	}
	defer rows.Close()

	domains := make([]*domain.Domain, 0)
	for rows.Next() {
		d, err := scanDomain(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan domain: %w", err)
		}
		domains = append(domains, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating domains: %w", err)
	}
	return domains, nil
}

func (r *domainRepository) UpdateDomain(ctx context.Context, d *domain.Domain) error {
	d.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE domains
		SET domain_name = $1, is_validated = $2, updated_at = $3
		WHERE id = $4 AND user_id = $5
	`
	result, err := r.systemDB.ExecContext(ctx, query,
		d.DomainName,
		d.IsValidated,
		d.UpdatedAt,
		d.ID,
		d.UserID,
	)
	if isUniqueViolation(err) {
		return &domain.ErrDuplicateKey{Entity: "domain", Field: "domain_name"}
	}
	if err != nil {
		return fmt.Errorf("failed to update domain: %w", err)
	}

	found, err := checkRowsAffected(result.RowsAffected())
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if !found {
		return &domain.ErrNotFound{Entity: "domain", ID: d.ID}
	}
	return nil
}

func (r *domainRepository) DeleteDomain(ctx context.Context, id, userID string) error {
	result, err := r.systemDB.ExecContext(ctx, `DELETE FROM domains WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete domain: %w", err)
	}

	found, err := checkRowsAffected(result.RowsAffected())
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if !found {
		return &domain.ErrNotFound{Entity: "domain", ID: id}
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDomain(row rowScanner) (*domain.Domain, error) {
	var d domain.Domain
	err := row.Scan(
		&d.ID,
		&d.UserID,
		&d.DomainName,
		&d.IsValidated,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
