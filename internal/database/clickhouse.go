package database

import (
	"context"
	"crypto/tls"
	"database/sql"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/pixeltrack/pixeltrack/config"
)

// ClickHouseOptions maps the configuration onto driver options
func ClickHouseOptions(cfg *config.ClickHouseConfig) *clickhouse.Options {
	dialTimeout := cfg.DialTimeout
	if dialTimeout <= 0 {
		dialTimeout = 10 * time.Second
	}

	options := &clickhouse.Options{
		Addr: cfg.Addr,
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.User,
			Password: cfg.Password,
		},
		Settings: clickhouse.Settings{
			"max_execution_time": 60,
		},
		Compression: &clickhouse.Compression{
			Method: clickhouse.CompressionLZ4,
		},
		DialTimeout:     dialTimeout,
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: time.Hour,
	}

	if cfg.Secure {
		options.TLS = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	return options
}

// ConnectClickHouse opens the column store through the database/sql interface,
// pings it and creates the tables
func ConnectClickHouse(ctx context.Context, cfg *config.ClickHouseConfig) (*sql.DB, error) {
	if len(cfg.Addr) == 0 {
		return nil, fmt.Errorf("clickhouse address is required")
	}

	options := ClickHouseOptions(cfg)
	db := clickhouse.OpenDB(options)

	pingCtx, cancel := context.WithTimeout(ctx, options.DialTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping clickhouse: %w", err)
	}

	if err := InitializeClickHouse(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
