// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
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
	"github.com/danielhkuo/profilefeed/options"
)

type ReportHandler struct {
	db      *sql.DB
	cfg     cliparse.Config
	options options.Set
}

func NewReportHandler(db *sql.DB, cfg cliparse.Config, opts options.Set) *ReportHandler {
	return &ReportHandler{db: db, cfg: cfg, options: opts}
}

// SubmitReport handles POST /api/post/report
func (h *ReportHandler) SubmitReport(w http.ResponseWriter, r *http.Request) {
	var req models.ReportRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	req.ReportCategory = strings.TrimSpace(req.ReportCategory)
	if req.ReportCategory == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "report_category is required")
		return
	}
	if req.Reason == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "reason is required")
		return
	}
	if req.PostID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "postId is required")
		return
	}

	for _, policy := range strings.Split(req.ReportCategory, options.PolicySeparator) {
		if !h.options.HasPolicy(policy) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "unknown policy: "+policy)
			return
		}
	}
	if !h.options.HasFeedback(req.Reason) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "unknown reason")
		return
	}

	reportID := auth.GenerateID()
	ipHash := auth.HashIP(middleware.GetClientIP(r), h.cfg.IPHashSalt)

	_, err := h.db.ExecContext(r.Context(), db.Rebind(h.cfg.DatabaseType, `
		INSERT INTO report (id, post_id, report_category, reason, ip_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`), reportID, req.PostID, req.ReportCategory, req.Reason, ipHash, time.Now().UTC())

	if err != nil {
		slog.Error("failed to insert report", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit report")
		return
	}

	slog.Info("report stored", "report_id", reportID, "post_id", req.PostID, "report_category", req.ReportCategory)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitReportResponse{
		Success:  true,
		ReportID: reportID,
	})
}

// GetOptions handles GET /api/report/options
// Returns the policy and feedback choices in display order
func (h *ReportHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.ReportOptionsResponse{
		Policies: h.options.Policies,
		Feedback: h.options.Feedback,
	})
}

// ListReports handles GET /api/post/{id}/reports
// Returns the reports filed against a post, newest first
func (h *ReportHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	postID := r.PathValue("id")
	if postID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "post id is required")
		return
	}

	rows, err := h.db.QueryContext(r.Context(), db.Rebind(h.cfg.DatabaseType, `
		SELECT id, post_id, report_category, reason, created_at
		FROM report
		WHERE post_id = ?
		ORDER BY created_at DESC
	`), postID)
	if err != nil {
		slog.Error("failed to query reports", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	reports := []models.Report{}
	for rows.Next() {
		var rep models.Report
		if err := rows.Scan(&rep.ID, &rep.PostID, &rep.ReportCategory, &rep.Reason, &rep.CreatedAt); err != nil {
			slog.Error("failed to scan report", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate reports", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, reports)
}
