// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the profilefeed API.

# Handler Types

  - CookieHandler: Turns a login token pair into session cookies
  - ReportHandler: Stores post reports and serves the report choices
  - ProfileHandler: Career section rendering and experience entries

Handlers are created via constructor functions:

	cookieHandler := handlers.NewCookieHandler(cfg.SecureCookies)
	reportHandler := handlers.NewReportHandler(db, cfg, opts)
	profileHandler := handlers.NewProfileHandler(db, cfg)

# Session Cookies

	POST /api/setCookieToken {"jwtToken": "...", "refreshToken": "..."}

Sets jwtToken (1 hour) and, when present, refreshToken (1 week). Both are
HttpOnly, SameSite=Strict, Path=/. Any failure answers 500 with
{"success": false, "message": "Failed to set cookies"} and sets nothing.

# Reports

	POST /api/post/report        → SubmitReport (201 with report_id)
	GET  /api/post/{id}/reports  → ListReports (newest first)
	GET  /api/report/options     → GetOptions

report_category is the selected policies joined with ", "; every part must
be a configured policy and reason a configured feedback option.

# Profiles

	GET  /profiles/{id}/experience → GetExperience (HTML)
	POST /profiles/{id}/experience → AddExperience

A request carrying a non-empty jwtToken cookie counts as the signed-in
owner: the HTML gets add/edit controls and AddExperience is allowed.
Token validation stays with the auth backend.
*/
package handlers
