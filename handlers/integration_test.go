// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/satisfaction-polygon/middleware"
	"github.com/danielhkuo/satisfaction-polygon/models"
	"github.com/danielhkuo/satisfaction-polygon/store"
	"github.com/danielhkuo/satisfaction-polygon/testutil"
)

// TestFullSurveyWorkflow tests the complete end-to-end workflow:
// 1. Register a user
// 2. Pick elements
// 3. Fetch questions
// 4. Submit scores
// 5. Replace the element set
// 6. Submit again
// 7. Read everything back
func TestFullSurveyWorkflow(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	s := store.NewSQLStore(conn)

	userHandler := NewUserHandler(s, cfg)
	elementHandler := NewElementHandler(s, cfg)
	polygonHandler := NewPolygonHandler(s, cfg)
	protect := middleware.RequireUser(s, cfg.TokenSecret)

	ids := testutil.ElementIDs(t, conn)

	// Step 1: Register
	w := httptest.NewRecorder()
	userHandler.Register(w, testutil.MakeRequest("POST", "/users", models.RegisterUserRequest{Nickname: "Minji"}, nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("Step 1 - Register failed: %d - %s", w.Code, w.Body.String())
	}

	var registerResp models.RegisterUserResponse
	testutil.AssertJSON(t, w, &registerResp)
	headers := testutil.AuthHeader(registerResp.Token)
	t.Logf("Step 1 - Registered user %d", registerResp.UserID)

	// Step 2: Pick Health and Work
	body := map[string][]int64{"elements": {ids["Health"], ids["Work"]}}
	w = httptest.NewRecorder()
	protect(elementHandler.SetElements)(w, testutil.MakeRequest("POST", "/set-element", body, headers))
	if w.Code != http.StatusOK {
		t.Fatalf("Step 2 - Set elements failed: %d - %s", w.Code, w.Body.String())
	}

	var setResp models.MessageResponse
	testutil.AssertJSON(t, w, &setResp)
	if setResp.Message != "Minji's elements linked" {
		t.Errorf("Step 2 - Unexpected message %q", setResp.Message)
	}

	// Step 3: Questions
	w = httptest.NewRecorder()
	protect(elementHandler.Questions)(w, testutil.MakeRequest("GET", "/questions", nil, headers))
	if w.Code != http.StatusOK {
		t.Fatalf("Step 3 - Questions failed: %d - %s", w.Code, w.Body.String())
	}

	var questionsResp models.QuestionsResponse
	testutil.AssertJSON(t, w, &questionsResp)
	if len(questionsResp.Elements["Health"]) != 5 || len(questionsResp.Elements["Work"]) != 5 {
		t.Errorf("Step 3 - Expected 5 questions per element, got %v", questionsResp.Elements)
	}

	// Step 4: Health 3, Work 5 → 8 of 10 → high
	scores := []models.ScoreEntry{{ID: ids["Health"], Score: 3}, {ID: ids["Work"], Score: 5}}
	w = httptest.NewRecorder()
	protect(polygonHandler.Create)(w, testutil.MakeRequest("POST", "/create", scores, headers))
	if w.Code != http.StatusOK {
		t.Fatalf("Step 4 - Create failed: %d - %s", w.Code, w.Body.String())
	}

	var firstResp models.CreatePolygonResponse
	testutil.AssertJSON(t, w, &firstResp)
	if firstResp.Grade != models.GradeHigh {
		t.Errorf("Step 4 - Expected grade %d, got %d", models.GradeHigh, firstResp.Grade)
	}

	// Step 5: Replace with Family only
	body = map[string][]int64{"elements": {ids["Family"]}}
	w = httptest.NewRecorder()
	protect(elementHandler.UpdateElements)(w, testutil.MakeRequest("PUT", "/update-element", body, headers))
	if w.Code != http.StatusOK {
		t.Fatalf("Step 5 - Update elements failed: %d - %s", w.Code, w.Body.String())
	}

	// Step 6: Family 1 → low, old Health entry ignored
	scores = []models.ScoreEntry{{ID: ids["Family"], Score: 1}, {ID: ids["Health"], Score: 5}}
	w = httptest.NewRecorder()
	protect(polygonHandler.Create)(w, testutil.MakeRequest("POST", "/create", scores, headers))
	if w.Code != http.StatusOK {
		t.Fatalf("Step 6 - Create failed: %d - %s", w.Code, w.Body.String())
	}

	var secondResp models.CreatePolygonResponse
	testutil.AssertJSON(t, w, &secondResp)
	if secondResp.Grade != models.GradeLow {
		t.Errorf("Step 6 - Expected grade %d, got %d", models.GradeLow, secondResp.Grade)
	}
	if secondResp.PolygonID <= firstResp.PolygonID {
		t.Errorf("Step 6 - Polygon ids not increasing: %d then %d", firstResp.PolygonID, secondResp.PolygonID)
	}

	// Step 7: Read back
	w = httptest.NewRecorder()
	protect(polygonHandler.ReadAll)(w, testutil.MakeRequest("GET", "/read-all", nil, headers))
	if w.Code != http.StatusOK {
		t.Fatalf("Step 7 - Read all failed: %d - %s", w.Code, w.Body.String())
	}

	var allResp models.ReadAllResponse
	testutil.AssertJSON(t, w, &allResp)
	if len(allResp.Polygons) != 2 {
		t.Fatalf("Step 7 - Expected 2 polygons, got %d", len(allResp.Polygons))
	}
	if n := len(allResp.Polygons[0].Elements); n != 2 {
		t.Errorf("Step 7 - First polygon should keep its 2 elements, got %d", n)
	}
	if n := len(allResp.Polygons[1].Elements); n != 1 {
		t.Errorf("Step 7 - Second polygon should have 1 element, got %d", n)
	}

	req := testutil.MakeRequest("GET", fmt.Sprintf("/read/%d", firstResp.PolygonID), nil, headers)
	req.SetPathValue("id", fmt.Sprint(firstResp.PolygonID))
	w = httptest.NewRecorder()
	protect(polygonHandler.Read)(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 7 - Read failed: %d - %s", w.Code, w.Body.String())
	}

	var readResp models.ReadPolygonResponse
	testutil.AssertJSON(t, w, &readResp)
	if !readResp.Start || readResp.End {
		t.Errorf("Step 7 - Expected start=true end=false, got start=%v end=%v", readResp.Start, readResp.End)
	}
	if readResp.Next == nil || *readResp.Next != secondResp.PolygonID {
		t.Errorf("Step 7 - Expected next %d, got %v", secondResp.PolygonID, readResp.Next)
	}

	t.Log("Integration test completed successfully!")
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	s := store.NewSQLStore(conn)
	protect := middleware.RequireUser(s, cfg.TokenSecret)

	elementHandler := NewElementHandler(s, cfg)
	polygonHandler := NewPolygonHandler(s, cfg)

	routes := []struct {
		name    string
		method  string
		path    string
		handler http.HandlerFunc
	}{
		{"set-element", "POST", "/set-element", elementHandler.SetElements},
		{"update-element", "PUT", "/update-element", elementHandler.UpdateElements},
		{"questions", "GET", "/questions", elementHandler.Questions},
		{"create", "POST", "/create", polygonHandler.Create},
		{"read-all", "GET", "/read-all", polygonHandler.ReadAll},
		{"read", "GET", "/read/1", polygonHandler.Read},
	}

	for _, rt := range routes {
		t.Run(rt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			protect(rt.handler)(w, testutil.MakeRequest(rt.method, rt.path, nil, nil))
			testutil.AssertStatus(t, w, http.StatusUnauthorized)
		})
	}
}
