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

var pixelColumns = []string{
	"p.id", "p.domain_id", "p.pixel_id", "p.api_token", "p.test_tag", "p.test_tag_active", "p.created_at", "p.updated_at",
}

type facebookPixelRepository struct {
	systemDB *sql.DB
	psql     sq.StatementBuilderType
}

// NewFacebookPixelRepository creates a new PostgreSQL pixel repository
func NewFacebookPixelRepository(db *sql.DB) domain.FacebookPixelRepository {
	return &facebookPixelRepository{
		systemDB: db,
		psql:     sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *facebookPixelRepository) CreatePixel(ctx context.Context, pixel *domain.FacebookPixel) error {
	if pixel.ID == "" {
		pixel.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	pixel.CreatedAt = now
	pixel.UpdatedAt = now

	query := `
		INSERT INTO facebook_pixels (id, domain_id, pixel_id, api_token, test_tag, test_tag_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.systemDB.ExecContext(ctx, query,
		pixel.ID,
		pixel.DomainID,
		pixel.PixelID,
		pixel.APIToken,
		pixel.TestTag,
		pixel.TestTagActive,
		pixel.CreatedAt,
		pixel.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create facebook pixel: %w", err)
	}
	return nil
}

func (r *facebookPixelRepository) GetPixel(ctx context.Context, id string) (*domain.FacebookPixel, error) {
	query, args, err := r.psql.Select(pixelColumns...).
		From("facebook_pixels p").
		Where(sq.Eq{"p.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	pixel, err := scanPixel(r.systemDB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.ErrNotFound{Entity: "facebook pixel", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get facebook pixel: %w", err)
	}
	return pixel, nil
}

func (r *facebookPixelRepository) ListPixelsByDomain(ctx context.Context, domainID string) ([]*domain.FacebookPixel, error) {
	return r.list(ctx, r.psql.Select(pixelColumns...).
		From("facebook_pixels p").
		Where(sq.Eq{"p.domain_id": domainID}).
		OrderBy("p.created_at DESC"))
}

func (r *facebookPixelRepository) ListPixelsByUser(ctx context.Context, userID string) ([]*domain.FacebookPixel, error) {
	return r.list(ctx, r.psql.Select(pixelColumns...).
		From("facebook_pixels p").
		Join("domains d ON d.id = p.domain_id").
		Where(sq.Eq{"d.user_id": userID}).
		OrderBy("p.created_at DESC"))
}

func (r *facebookPixelRepository) list(ctx context.Context, builder sq.SelectBuilder) ([]*domain.FacebookPixel, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.systemDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list facebook pixels: %w", err)
	}
	defer rows.Close()

	pixels := make([]*domain.FacebookPixel, 0)
	for rows.Next() {
		pixel, err := scanPixel(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan facebook pixel: %w", err)
		}
		pixels = append(pixels, pixel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating facebook pixels: %w", err)
	}
	return pixels, nil
}

func (r *facebookPixelRepository) UpdatePixel(ctx context.Context, pixel *domain.FacebookPixel) error {
	pixel.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE facebook_pixels
		SET domain_id = $1, pixel_id = $2, api_token = $3, test_tag = $4, test_tag_active = $5, updated_at = $6
		WHERE id = $7
	`
	result, err := r.systemDB.ExecContext(ctx, query,
		pixel.DomainID,
		pixel.PixelID,
		pixel.APIToken,
		pixel.TestTag,
		pixel.TestTagActive,
		pixel.UpdatedAt,
		pixel.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update facebook pixel: %w", err)
	}

	found, err := checkRowsAffected(result.RowsAffected())
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if !found {
		return &domain.ErrNotFound{Entity: "facebook pixel", ID: pixel.ID}
	}
	return nil
}

func (r *facebookPixelRepository) DeletePixel(ctx context.Context, id string) error {
	result, err := r.systemDB.ExecContext(ctx, `DELETE FROM facebook_pixels WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete facebook pixel: %w", err)
	}

	found, err := checkRowsAffected(result.RowsAffected())
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if !found {
		return &domain.ErrNotFound{Entity: "facebook pixel", ID: id}
	}
	return nil
}

func scanPixel(row rowScanner) (*domain.FacebookPixel, error) {
	var p domain.FacebookPixel
	err := row.Scan(
		&p.ID,
		&p.DomainID,
		&p.PixelID,
		&p.APIToken,
		&p.TestTag,
		&p.TestTagActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
