// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/spf13/afero"

	"github.com/danielhkuo/profilefeed/cliparse"
	"github.com/danielhkuo/profilefeed/fonts"
	"github.com/danielhkuo/profilefeed/handlers"
	"github.com/danielhkuo/profilefeed/middleware"
	"github.com/danielhkuo/profilefeed/options"
)

// FontPrefix is where the font stylesheet and faces are served
const FontPrefix = "/fonts/"

func NewRouter(db *sql.DB, cfg cliparse.Config, opts options.Set, fontFS afero.Fs) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	cookieHandler := handlers.NewCookieHandler(cfg.SecureCookies)
	reportHandler := handlers.NewReportHandler(db, cfg, opts)
	profileHandler := handlers.NewProfileHandler(db, cfg)
	fontHandler := fonts.NewHandler(fonts.Gilroy, fontFS, FontPrefix)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Session cookies
	mux.HandleFunc("POST /api/setCookieToken", middleware.WithLogging(cookieHandler.SetCookieToken))

	// Post reports
	mux.HandleFunc("POST /api/post/report", middleware.WithLogging(reportHandler.SubmitReport))
	mux.HandleFunc("GET /api/post/{id}/reports", middleware.WithLogging(reportHandler.ListReports))
	mux.HandleFunc("GET /api/report/options", middleware.WithLogging(reportHandler.GetOptions))

	// Profile career section
	mux.HandleFunc("GET /profiles/{id}/experience", middleware.WithLogging(profileHandler.GetExperience))
	mux.HandleFunc("POST /profiles/{id}/experience", middleware.WithLogging(profileHandler.AddExperience))

	// Fonts
	mux.Handle("GET "+FontPrefix, http.StripPrefix(FontPrefix, middleware.WithLogging(fontHandler.ServeHTTP)))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("profilefeed API v1"))
	})

	return mux
}
