// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth builds session cookies and record identifiers.

# Session Cookies

A token pair handed over by the login flow becomes one or two cookies:

	cookies, err := auth.SessionCookies(pair, cfg.SecureCookies)
	for _, c := range cookies {
		http.SetCookie(w, c)
	}

Both cookies are HttpOnly, SameSite=Strict and scoped to "/":

  - jwtToken: expires after 1 hour
  - refreshToken: expires after 1 week, only set when a refresh token is present

The Secure flag is an explicit input. The server derives it from its
configuration, never from the process environment at request time.

Tokens are not validated here. Signature and expiry checks belong to the
authentication backend.

# Reading the Session

	token := auth.SessionToken(r) // "" when no jwtToken cookie

# ID Generation

Random UUIDs for database records:

	id := auth.GenerateID()

# IP Hashing

For spotting repeat reporters without storing addresses:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
