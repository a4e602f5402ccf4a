// Package schema holds the DDL for the relational store and the column store.
// Statements are idempotent and run on every start.
package schema

// TableDefinitions contains the PostgreSQL statements creating the entity tables, in dependency order
var TableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		phone VARCHAR(50),
		password VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS domains (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		domain_name VARCHAR(255) UNIQUE NOT NULL,
		is_validated BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS facebook_pixels (
		id UUID PRIMARY KEY,
		domain_id UUID NOT NULL REFERENCES domains(id) ON DELETE CASCADE,
		pixel_id VARCHAR(64) NOT NULL,
		api_token TEXT NOT NULL,
		test_tag VARCHAR(64),
		test_tag_active BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS conversions (
		id UUID PRIMARY KEY,
		domain_id UUID NOT NULL REFERENCES domains(id) ON DELETE CASCADE,
		title VARCHAR(255) NOT NULL,
		scope VARCHAR(20) NOT NULL,
		scope_value TEXT,
		trigger VARCHAR(20) NOT NULL,
		trigger_value VARCHAR(255),
		event_name VARCHAR(100) NOT NULL,
		product_name VARCHAR(255),
		product_id VARCHAR(255),
		offer_ids TEXT,
		product_value NUMERIC(12, 2),
		currency VARCHAR(3) NOT NULL DEFAULT 'BRL',
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		refresh_token VARCHAR(64) PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		expires_at TIMESTAMP NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS password_reset_tokens (
		token VARCHAR(64) PRIMARY KEY,
		email VARCHAR(255) NOT NULL,
		expires_at TIMESTAMP NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_domains_user_id ON domains(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_facebook_pixels_domain_id ON facebook_pixels(domain_id)`,
	`CREATE INDEX IF NOT EXISTS idx_conversions_domain_id ON conversions(domain_id)`,
	`CREATE INDEX IF NOT EXISTS idx_refresh_tokens_user_id ON refresh_tokens(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_refresh_tokens_expires_at ON refresh_tokens(expires_at)`,
	`CREATE INDEX IF NOT EXISTS idx_password_reset_tokens_expires_at ON password_reset_tokens(expires_at)`,
}

// TableNames lists the PostgreSQL tables in creation order
var TableNames = []string{
	"users",
	"domains",
	"facebook_pixels",
	"conversions",
	"refresh_tokens",
	"password_reset_tokens",
}
