// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/profilefeed/auth"
	"github.com/danielhkuo/profilefeed/cliparse"
	"github.com/danielhkuo/profilefeed/db"
	"github.com/danielhkuo/profilefeed/middleware"
	"github.com/danielhkuo/profilefeed/models"
	"github.com/danielhkuo/profilefeed/profile"
)

type ProfileHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewProfileHandler(db *sql.DB, cfg cliparse.Config) *ProfileHandler {
	return &ProfileHandler{db: db, cfg: cfg}
}

// GetExperience handles GET /profiles/{id}/experience
// Renders the career section as HTML. Edit controls appear only when the
// request carries a session cookie and profile writes are enabled.
func (h *ProfileHandler) GetExperience(w http.ResponseWriter, r *http.Request) {
	profileID := r.PathValue("id")

	experiences, err := h.loadExperiences(r, profileID)
	if err != nil {
		slog.Error("failed to load experiences", "profile_id", profileID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	authUser := auth.SessionToken(r) != "" && !h.cfg.ReadOnlyProfiles

	// Render into a buffer so a template failure can still become a 500
	var buf bytes.Buffer
	if err := profile.RenderSection(&buf, profile.ExperienceSection(profileID, experiences, authUser)); err != nil {
		slog.Error("failed to render career section", "profile_id", profileID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render profile")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

// AddExperience handles POST /profiles/{id}/experience
// Requires the session cookie. Returns 403 when the server runs with
// read-only profiles.
func (h *ProfileHandler) AddExperience(w http.ResponseWriter, r *http.Request) {
	profileID := r.PathValue("id")

	if h.cfg.ReadOnlyProfiles {
		middleware.ErrorResponse(w, http.StatusForbidden, "Profile writes are disabled")
		return
	}

	// Only presence is checked here. Whether the token's subject owns
	// profileID is the auth backend's call; this service never decodes the JWT.
	if auth.SessionToken(r) == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not signed in")
		return
	}

	var req models.AddExperienceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Position = strings.TrimSpace(req.Position)
	req.Company = strings.TrimSpace(req.Company)
	if req.Position == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "position is required")
		return
	}
	if req.Company == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "company is required")
		return
	}

	experienceID := auth.GenerateID()
	_, err := h.db.ExecContext(r.Context(), db.Rebind(h.cfg.DatabaseType, `
		INSERT INTO experience (id, profile_id, position, company, type, logo, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`), experienceID, profileID, req.Position, req.Company, strings.TrimSpace(req.Type), req.Logo, time.Now().UTC())

	if err != nil {
		slog.Error("failed to insert experience", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add experience")
		return
	}

	slog.Info("experience added", "experience_id", experienceID, "profile_id", profileID)

	middleware.JSONResponse(w, http.StatusCreated, models.AddExperienceResponse{
		ExperienceID: experienceID,
	})
}

// loadExperiences returns a profile's experiences in the order they were added
func (h *ProfileHandler) loadExperiences(r *http.Request, profileID string) ([]models.Experience, error) {
	rows, err := h.db.QueryContext(r.Context(), db.Rebind(h.cfg.DatabaseType, `
		SELECT id, profile_id, position, company, type, logo, created_at
		FROM experience
		WHERE profile_id = ?
		ORDER BY created_at, id
	`), profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var experiences []models.Experience
	for rows.Next() {
		var e models.Experience
		if err := rows.Scan(&e.ID, &e.ProfileID, &e.Position, &e.Company, &e.Type, &e.Logo, &e.CreatedAt); err != nil {
			return nil, err
		}
		experiences = append(experiences, e)
	}
	return experiences, rows.Err()
}
