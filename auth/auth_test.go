// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestSessionCookies(t *testing.T) {
	tests := []struct {
		name      string
		pair      TokenPair
		secure    bool
		wantNames []string
	}{
		{"both tokens", TokenPair{JWTToken: "jwt", RefreshToken: "refresh"}, true, []string{JWTCookie, RefreshCookie}},
		{"jwt only", TokenPair{JWTToken: "jwt"}, true, []string{JWTCookie}},
		{"insecure transport", TokenPair{JWTToken: "jwt", RefreshToken: "refresh"}, false, []string{JWTCookie, RefreshCookie}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cookies, err := SessionCookies(tt.pair, tt.secure)
			if err != nil {
				t.Fatalf("SessionCookies() error = %v", err)
			}
			if len(cookies) != len(tt.wantNames) {
				t.Fatalf("SessionCookies() returned %d cookies, want %d", len(cookies), len(tt.wantNames))
			}

			for i, c := range cookies {
				if c.Name != tt.wantNames[i] {
					t.Errorf("cookie %d name = %q, want %q", i, c.Name, tt.wantNames[i])
				}
				if !c.HttpOnly {
					t.Errorf("cookie %s should be HttpOnly", c.Name)
				}
				if c.Secure != tt.secure {
					t.Errorf("cookie %s Secure = %v, want %v", c.Name, c.Secure, tt.secure)
				}
				if c.SameSite != http.SameSiteStrictMode {
					t.Errorf("cookie %s SameSite = %v, want Strict", c.Name, c.SameSite)
				}
				if c.Path != "/" {
					t.Errorf("cookie %s Path = %q, want /", c.Name, c.Path)
				}
			}
		})
	}
}

func TestSessionCookies_MaxAge(t *testing.T) {
	cookies, err := SessionCookies(TokenPair{JWTToken: "a", RefreshToken: "b"}, true)
	if err != nil {
		t.Fatal(err)
	}

	if cookies[0].MaxAge != 3600 {
		t.Errorf("jwt MaxAge = %d, want 3600", cookies[0].MaxAge)
	}
	if cookies[1].MaxAge != 604800 {
		t.Errorf("refresh MaxAge = %d, want 604800", cookies[1].MaxAge)
	}
	if cookies[0].Value != "a" || cookies[1].Value != "b" {
		t.Errorf("cookie values not passed through: %q, %q", cookies[0].Value, cookies[1].Value)
	}
}

func TestSessionCookies_MissingJWT(t *testing.T) {
	cookies, err := SessionCookies(TokenPair{RefreshToken: "refresh"}, true)
	if err != ErrMissingJWT {
		t.Errorf("expected ErrMissingJWT, got %v", err)
	}
	if cookies != nil {
		t.Errorf("expected no cookies, got %d", len(cookies))
	}
}

func TestSessionCookies_InvalidValue(t *testing.T) {
	tests := []struct {
		name string
		pair TokenPair
	}{
		{"semicolon", TokenPair{JWTToken: "abc;def"}},
		{"double quote", TokenPair{JWTToken: `a"b`}},
		{"backslash", TokenPair{JWTToken: `a\b`}},
		{"non-ASCII", TokenPair{JWTToken: "é"}},
		{"control byte", TokenPair{JWTToken: "a\nb"}},
		{"bad refresh", TokenPair{JWTToken: "jwt", RefreshToken: "tök"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cookies, err := SessionCookies(tt.pair, true)
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
			if cookies != nil {
				t.Errorf("expected no cookies, got %d", len(cookies))
			}
		})
	}
}

func TestSessionToken(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if got := SessionToken(req); got != "" {
		t.Errorf("SessionToken() without cookie = %q, want empty", got)
	}

	req.AddCookie(&http.Cookie{Name: JWTCookie, Value: "token-value"})
	if got := SessionToken(req); got != "token-value" {
		t.Errorf("SessionToken() = %q, want token-value", got)
	}
}

func TestGenerateID(t *testing.T) {
	id1 := GenerateID()
	id2 := GenerateID()

	if _, err := uuid.Parse(id1); err != nil {
		t.Errorf("GenerateID() is not a UUID: %v", err)
	}
	if id1 == id2 {
		t.Error("GenerateID() produced duplicate IDs (extremely unlikely)")
	}
}

func TestHashIP(t *testing.T) {
	h1 := HashIP("192.168.1.1", "salt")
	h2 := HashIP("192.168.1.1", "salt")
	h3 := HashIP("192.168.1.2", "salt")
	h4 := HashIP("192.168.1.1", "other-salt")

	if h1 != h2 {
		t.Error("HashIP() is not deterministic")
	}
	if h1 == h3 {
		t.Error("HashIP() produced same hash for different IPs")
	}
	if h1 == h4 {
		t.Error("HashIP() produced same hash for different salts")
	}
	if len(h1) != 16 {
		t.Errorf("HashIP() length = %d, want 16", len(h1))
	}
}
