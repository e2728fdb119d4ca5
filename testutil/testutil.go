// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/profilefeed/auth"
	"github.com/danielhkuo/profilefeed/cliparse"
	"github.com/danielhkuo/profilefeed/db"
)

// TestDBURL is an in-memory SQLite database private to one connection
const TestDBURL = ":memory:"

// SetupTestDB creates a fresh in-memory database with the full schema.
// It is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		Environment:   cliparse.EnvTest,
		SecureCookies: false,
		DatabaseURL:   TestDBURL,
		DatabaseType:  db.TypeSQLite,
		IPHashSalt:    "test-ip-salt",
		FontDir:       "public/fonts",
	}
}

// CreateTestExperience stores an experience for a profile and returns its ID.
// Successive calls get increasing timestamps so listing order is stable.
func CreateTestExperience(t *testing.T, conn *sql.DB, profileID, position, company, kind string) string {
	t.Helper()

	experienceID := auth.GenerateID()
	_, err := conn.Exec(`
		INSERT INTO experience (id, profile_id, position, company, type, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, experienceID, profileID, position, company, kind, nextTimestamp())
	if err != nil {
		t.Fatalf("Failed to create test experience: %v", err)
	}

	return experienceID
}

// CreateTestReport stores a report against a post and returns its ID
func CreateTestReport(t *testing.T, conn *sql.DB, postID, category, reason string) string {
	t.Helper()

	reportID := auth.GenerateID()
	_, err := conn.Exec(`
		INSERT INTO report (id, post_id, report_category, reason, ip_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, reportID, postID, category, reason, "test-hash", nextTimestamp())
	if err != nil {
		t.Fatalf("Failed to create test report: %v", err)
	}

	return reportID
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s rows: %v", table, err)
	}
	return n
}

var clock = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func nextTimestamp() time.Time {
	clock = clock.Add(time.Second)
	return clock
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// WithSession attaches a session cookie to req
func WithSession(req *http.Request, token string) *http.Request {
	req.AddCookie(&http.Cookie{Name: auth.JWTCookie, Value: token})
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
