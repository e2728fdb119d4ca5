// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database types
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// Open connects to the database and verifies the connection.
// dbType is TypeSQLite or TypePostgres.
func Open(dbType, url string) (*sql.DB, error) {
	driver := TypeSQLite
	if dbType == TypePostgres {
		driver = TypePostgres
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dbType, err)
	}
	if driver == TypeSQLite {
		// database/sql would otherwise hand out fresh connections, and an
		// in-memory database does not survive across them
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", dbType, err)
	}
	return conn, nil
}

// Rebind rewrites ? placeholders to $N for postgres.
// Queries in this repo are written with ? so they run on both drivers.
func Rebind(dbType, query string) string {
	if dbType != TypePostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// One statement per entry so both drivers execute them the same way.
var schema = []string{
	// Reports filed against posts
	`CREATE TABLE IF NOT EXISTS report (
    id TEXT PRIMARY KEY,
    post_id TEXT NOT NULL,
    report_category TEXT NOT NULL,
    reason TEXT NOT NULL,
    ip_hash TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE INDEX IF NOT EXISTS idx_report_post_id ON report(post_id)`,

	// Profile experience entries
	`CREATE TABLE IF NOT EXISTS experience (
    id TEXT PRIMARY KEY,
    profile_id TEXT NOT NULL,
    position TEXT NOT NULL,
    company TEXT NOT NULL,
    type TEXT NOT NULL DEFAULT '',
    logo TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE INDEX IF NOT EXISTS idx_experience_profile_id ON experience(profile_id)`,
}
