package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pixeltrack/pixeltrack/internal/database/schema"
)

// InitializeDatabase creates the relational tables if they don't exist
func InitializeDatabase(db *sql.DB) error {
	for _, query := range schema.TableDefinitions {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// InitializeClickHouse creates the column store tables if they don't exist
func InitializeClickHouse(ctx context.Context, db *sql.DB) error {
	for _, query := range schema.ClickHouseTableDefinitions {
		if _, err := db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to create clickhouse table: %w", err)
		}
	}
	return nil
}

// CleanDatabase drops all relational tables in reverse order
func CleanDatabase(db *sql.DB) error {
	for i := len(schema.TableNames) - 1; i >= 0; i-- {
		query := fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", schema.TableNames[i])
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", schema.TableNames[i], err)
		}
	}
	return nil
}
