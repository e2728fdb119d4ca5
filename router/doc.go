// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the profilefeed API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, opts, fontFS)

# Endpoints

Health:

	GET /health

Session:

	POST /api/setCookieToken - Store tokens as HttpOnly cookies

Reports:

	POST /api/post/report       - File a report against a post
	GET  /api/post/{id}/reports - Reports filed against a post
	GET  /api/report/options    - Policy and feedback choices

Profiles:

	GET  /profiles/{id}/experience - Career section HTML
	POST /profiles/{id}/experience - Add an experience (signed in)

Fonts (read from fontFS):

	GET /fonts/gilroy.css - @font-face rules
	GET /fonts/{file}     - Gilroy face files
*/
package router
