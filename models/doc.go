// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - ReportRequest: report_category, reason, postId
  - AddExperienceRequest: position, company, type, logo

The cookie endpoint body (jwtToken, refreshToken) lives in package auth
as TokenPair.

# Response Types

Types for JSON responses:

  - StatusResponse: success, message
  - SubmitReportResponse: success, report_id
  - ReportOptionsResponse: policies, feedback
  - AddExperienceResponse: experience_id
  - ErrorResponse: error, message

# Domain Types

  - Report: a stored report against a post
  - Experience: one entry of a profile's career section
*/
package models
