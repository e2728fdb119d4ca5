package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/afero"

	"github.com/danielhkuo/profilefeed/cliparse"
	"github.com/danielhkuo/profilefeed/db"
	"github.com/danielhkuo/profilefeed/fonts"
	"github.com/danielhkuo/profilefeed/middleware"
	"github.com/danielhkuo/profilefeed/options"
	"github.com/danielhkuo/profilefeed/router"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect and verify
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Report dialog choices
	opts, err := options.Load(cfg.OptionsFile)
	if err != nil {
		slog.Error("report options failed to load", "error", err)
		os.Exit(1)
	}
	slog.Info("Report options ready", "policies", len(opts.Policies), "feedback", len(opts.Feedback))

	// Missing font files only degrade the page, so keep serving
	fontFS := afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), cfg.FontDir))
	if err := fonts.Gilroy.Verify(fontFS); err != nil {
		slog.Warn("font files incomplete", "dir", cfg.FontDir, "error", err)
	}

	// Create router
	mux := router.NewRouter(dbConn, cfg, opts, fontFS)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(cfg.AllowedOrigins, mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "env", cfg.Environment, "secure_cookies", cfg.SecureCookies)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
