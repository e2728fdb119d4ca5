// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the profilefeed API server.

profilefeed backs the social feed and profile pages: it turns login tokens
into session cookies, stores post reports filed through the two-step
report dialog, renders the profile career section and serves the site's
Gilroy font files.

# Starting the Server

With no configuration beyond the IP hash salt the server uses a local
SQLite file:

	IP_HASH_SALT=secret go run .

Or with flags against PostgreSQL:

	go run . -p 3000 -t postgres -d "postgres://..." -ip-salt secret

A .env file in the working directory is loaded first (-env-file to pick
another one). It never overrides variables already set.

# Configuration

Required settings:

  - IP_HASH_SALT (-ip-salt): Secret for reporter IP hashing
  - DATABASE_URL (-d): Only when DATABASE_TYPE is postgres

Optional settings:

  - PORT (-p): Server port (default: 3000)
  - APP_ENV (-env): development, production or test (default: development)
  - SECURE_COOKIES (-secure-cookies): Secure flag on session cookies
    (default: false in test, true otherwise)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - REPORT_OPTIONS_FILE (-options): YAML file overriding the report choices
  - FONT_DIR (-fonts): Directory holding the Gilroy .ttf files
  - ALLOWED_ORIGINS (-origins): Origins allowed credentialed CORS requests
  - READ_ONLY_PROFILES (-read-only-profiles): Reject experience writes

# Architecture

  - handlers: HTTP request handlers (cookies, reports, profiles)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Session cookies, IDs and IP hashing
  - db: Connection and schema creation
  - cliparse: Configuration parsing
  - options: Report dialog choices
  - report: Report dialog state machine and its HTTP client
  - profile: Career section HTML
  - fonts: Font family definition and file serving

See package documentation for each component.
*/
package main
