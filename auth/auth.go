// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Session cookie names
const (
	JWTCookie     = "jwtToken"
	RefreshCookie = "refreshToken"
)

// Session cookie lifetimes
const (
	JWTMaxAge     = time.Hour
	RefreshMaxAge = 7 * 24 * time.Hour
)

var (
	ErrMissingJWT   = errors.New("jwt token is required")
	ErrInvalidToken = errors.New("token is not a valid cookie value")
)

// TokenPair is the body accepted by the cookie-set endpoint.
// The tokens are passed through verbatim; nothing here validates them.
type TokenPair struct {
	JWTToken     string `json:"jwtToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// SessionCookies builds the cookies for a token pair.
// The refresh cookie is only included when a refresh token was supplied.
// A token net/http would have to rewrite (";", quotes, backslashes,
// control or non-ASCII bytes) fails with ErrInvalidToken.
func SessionCookies(pair TokenPair, secure bool) ([]*http.Cookie, error) {
	if pair.JWTToken == "" {
		return nil, ErrMissingJWT
	}

	cookies := []*http.Cookie{
		sessionCookie(JWTCookie, pair.JWTToken, JWTMaxAge, secure),
	}
	if pair.RefreshToken != "" {
		cookies = append(cookies, sessionCookie(RefreshCookie, pair.RefreshToken, RefreshMaxAge, secure))
	}

	for _, c := range cookies {
		if err := c.Valid(); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidToken, c.Name, err)
		}
	}
	return cookies, nil
}

func sessionCookie(name, value string, maxAge time.Duration, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(maxAge.Seconds()),
	}
}

// SessionToken returns the jwt cookie value carried by the request, or ""
func SessionToken(r *http.Request) string {
	c, err := r.Cookie(JWTCookie)
	if err != nil {
		return ""
	}
	return c.Value
}

// GenerateID creates a random UUID for database records
func GenerateID() string {
	return uuid.NewString()
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// First 8 bytes are enough to spot repeat reporters
	return hex.EncodeToString(sum[:8])
}
