package models

import "time"

// Request types

// ReportRequest is the body of POST /api/post/report.
// ReportCategory holds the selected policies joined with ", ".
type ReportRequest struct {
	ReportCategory string `json:"report_category"`
	Reason         string `json:"reason"`
	PostID         string `json:"postId"`
}

type AddExperienceRequest struct {
	Position string `json:"position"`
	Company  string `json:"company"`
	Type     string `json:"type"`
	Logo     string `json:"logo"`
}

// Response types

// StatusResponse is the success/failure envelope used by the cookie endpoint
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type SubmitReportResponse struct {
	Success  bool   `json:"success"`
	ReportID string `json:"report_id"`
}

type ReportOptionsResponse struct {
	Policies []string `json:"policies"`
	Feedback []string `json:"feedback"`
}

type AddExperienceResponse struct {
	ExperienceID string `json:"experience_id"`
}

// Domain types

type Report struct {
	ID             string    `json:"id"`
	PostID         string    `json:"post_id"`
	ReportCategory string    `json:"report_category"`
	Reason         string    `json:"reason"`
	IPHash         *string   `json:"-"` // Never expose in JSON
	CreatedAt      time.Time `json:"created_at"`
}

type Experience struct {
	ID        string    `json:"id"`
	ProfileID string    `json:"profile_id"`
	Position  string    `json:"position"`
	Company   string    `json:"company"`
	Type      string    `json:"type,omitempty"`
	Logo      string    `json:"logo,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
