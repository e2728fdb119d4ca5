// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/profilefeed/auth"
	"github.com/danielhkuo/profilefeed/middleware"
	"github.com/danielhkuo/profilefeed/models"
)

const setCookiesFailed = "Failed to set cookies"

type CookieHandler struct {
	secure bool
}

// NewCookieHandler creates the handler. secure is the Secure flag put on
// every session cookie.
func NewCookieHandler(secure bool) *CookieHandler {
	return &CookieHandler{secure: secure}
}

// SetCookieToken handles POST /api/setCookieToken
// Stores the token pair as HttpOnly session cookies. The tokens are not
// validated; any failure is a generic 500 with no cookies set.
func (h *CookieHandler) SetCookieToken(w http.ResponseWriter, r *http.Request) {
	var pair auth.TokenPair
	if err := middleware.ParseJSONBody(r, &pair); err != nil {
		slog.Error("error setting cookies", "error", err)
		middleware.JSONResponse(w, http.StatusInternalServerError, models.StatusResponse{
			Success: false,
			Message: setCookiesFailed,
		})
		return
	}

	cookies, err := auth.SessionCookies(pair, h.secure)
	if err != nil {
		slog.Error("error setting cookies", "error", err)
		middleware.JSONResponse(w, http.StatusInternalServerError, models.StatusResponse{
			Success: false,
			Message: setCookiesFailed,
		})
		return
	}

	for _, c := range cookies {
		http.SetCookie(w, c)
	}

	slog.Info("session cookies set", "count", len(cookies), "secure", h.secure)

	middleware.JSONResponse(w, http.StatusOK, models.StatusResponse{Success: true})
}
