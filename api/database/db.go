package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	config "github.com/tbeaudouin05/paypal-trellai/api/config"
)

var db *sql.DB

// Initialize opens the Postgres pool from config.AppConfig and verifies it with a ping.
func Initialize() error {
	if config.AppConfig == nil {
		return errors.New("config not loaded")
	}
	conn, err := Open(config.AppConfig.DatabaseURL)
	if err != nil {
		return err
	}
	db = conn
	return nil
}

// Open connects to the database behind dsn and configures the pool.
func Open(dsn string) (*sql.DB, error) {
	conn, err := sql.Open("postgres", withDisablePreparedStatements(dsn))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// A single connection avoids prepared statement issues behind PgBouncer.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(5 * time.Minute)

	return conn, nil
}

// withDisablePreparedStatements appends disable_prepared_statements=true and binary_parameters=yes to the DSN if not present.
// This nudges lib/pq to avoid server-side prepared statements and binary mode, which can break with PgBouncer transaction pooling.
func withDisablePreparedStatements(dsn string) string {
	lower := strings.ToLower(dsn)
	if strings.Contains(lower, "disable_prepared_statements=") || strings.Contains(lower, "prefer_simple_protocol=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	extras := []string{"disable_prepared_statements=true"}
	if !strings.Contains(lower, "binary_parameters=") {
		extras = append(extras, "binary_parameters=yes")
	}
	return dsn + sep + strings.Join(extras, "&")
}

// GetDB returns the database connection
func GetDB() *sql.DB {
	return db
}

// SetDB replaces the package connection, e.g. with a sqlmock handle in tests.
func SetDB(conn *sql.DB) {
	db = conn
}
