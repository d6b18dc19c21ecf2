// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/satisfaction-polygon/auth"
	"github.com/danielhkuo/satisfaction-polygon/catalog"
	"github.com/danielhkuo/satisfaction-polygon/cliparse"
	"github.com/danielhkuo/satisfaction-polygon/db"
	"github.com/danielhkuo/satisfaction-polygon/models"
	"github.com/danielhkuo/satisfaction-polygon/store"
)

// TestTokenSecret signs tokens issued by CreateTestUser
const TestTokenSecret = "test-token-secret"

// TestCatalog is the element catalog loaded by SetupTestDB
var TestCatalog = catalog.Catalog{Elements: []catalog.Element{
	{Name: "Health", Questions: []string{"h1", "h2", "h3", "h4", "h5", "h6"}},
	{Name: "Work", Questions: []string{"w1", "w2", "w3", "w4", "w5"}},
	{Name: "Family", Questions: []string{"f1", "f2", "f3", "f4", "f5", "f6", "f7"}},
}}

// SetupTestDB creates a fresh SQLite database with the full schema and the
// test catalog. The database is closed when the test finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(context.Background(), db.DialectSQLite, filepath.Join(t.TempDir(), "polygon.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.DialectSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	if err := store.NewSQLStore(conn).SyncCatalog(context.Background(), TestCatalog); err != nil {
		t.Fatalf("Failed to sync catalog: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            3318,
		DatabaseURL:     "polygon-test.db",
		DatabaseType:    db.DialectSQLite,
		TokenSecret:     TestTokenSecret,
		TokenTTL:        time.Hour,
		RequestTimeout:  5 * time.Second,
		NavigationScope: models.ScopeGlobal,
	}
}

// CreateTestUser registers a user and returns its id and a bearer token
func CreateTestUser(t *testing.T, conn *sql.DB, nickname string) (userID int64, token string) {
	t.Helper()

	user, err := store.NewSQLStore(conn).CreateUser(context.Background(), nickname)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	token, err = auth.IssueToken(user.ID, TestTokenSecret, time.Hour)
	if err != nil {
		t.Fatalf("Failed to issue test token: %v", err)
	}

	return user.ID, token
}

// ElementIDs maps catalog element names to their stored ids
func ElementIDs(t *testing.T, conn *sql.DB) map[string]int64 {
	t.Helper()

	elements, err := store.NewSQLStore(conn).ListElements(context.Background())
	if err != nil {
		t.Fatalf("Failed to list elements: %v", err)
	}

	ids := make(map[string]int64, len(elements))
	for _, e := range elements {
		ids[e.Name] = e.ID
	}
	return ids
}

// LinkTestElements adds the named catalog elements to a user's set
func LinkTestElements(t *testing.T, conn *sql.DB, userID int64, names ...string) []int64 {
	t.Helper()

	all := ElementIDs(t, conn)
	ids := make([]int64, 0, len(names))
	for _, name := range names {
		id, ok := all[name]
		if !ok {
			t.Fatalf("Unknown test element %q", name)
		}
		ids = append(ids, id)
	}

	if err := store.NewSQLStore(conn).LinkToUser(context.Background(), userID, ids); err != nil {
		t.Fatalf("Failed to link test elements: %v", err)
	}
	return ids
}

// CreateTestPolygon stores a polygon for the user with the given scores
func CreateTestPolygon(t *testing.T, conn *sql.DB, userID int64, entries ...models.ScoreEntry) models.Polygon {
	t.Helper()

	p, err := store.NewSQLStore(conn).CreatePolygon(context.Background(), userID, entries)
	if err != nil {
		t.Fatalf("Failed to create test polygon: %v", err)
	}
	return p
}

// AuthHeader returns the Authorization header map for a bearer token
func AuthHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
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
