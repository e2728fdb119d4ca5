// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates its schema.

# Drivers

Two drivers are registered:

  - sqlite: modernc.org/sqlite (pure Go, the default and what tests use)
  - postgres: github.com/lib/pq

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

Queries are written with ? placeholders. Rebind converts them for postgres:

	conn.QueryRow(db.Rebind(cfg.DatabaseType, "SELECT id FROM report WHERE id = ?"), id)

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - report: Reports filed against posts (policies, reason, hashed reporter IP)
  - experience: Experience entries shown on a profile's career section

Both tables are indexed by their owning id (post_id, profile_id).
*/
package db
