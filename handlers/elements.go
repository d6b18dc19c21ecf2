// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"math/rand/v2"
	"net/http"

	"github.com/danielhkuo/satisfaction-polygon/cliparse"
	"github.com/danielhkuo/satisfaction-polygon/middleware"
	"github.com/danielhkuo/satisfaction-polygon/models"
	"github.com/danielhkuo/satisfaction-polygon/store"
	"github.com/danielhkuo/satisfaction-polygon/survey"
)

type ElementHandler struct {
	elements store.ElementRepository
	cfg      cliparse.Config
	rng      *rand.Rand
}

func NewElementHandler(elements store.ElementRepository, cfg cliparse.Config) *ElementHandler {
	return &ElementHandler{elements: elements, cfg: cfg}
}

// ListElements handles GET /elements
func (h *ElementHandler) ListElements(w http.ResponseWriter, r *http.Request) {
	elements, err := h.elements.ListElements(r.Context())
	if err != nil {
		storageError(w, r, err, "list elements")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListElementsResponse{
		Success:  true,
		Elements: elements,
	})
}

// SetElements handles POST /set-element
func (h *ElementHandler) SetElements(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	elementIDs, ok := parseElementIDs(w, r)
	if !ok {
		return
	}

	if err := h.elements.LinkToUser(r.Context(), id.UserID, elementIDs); err != nil {
		storageError(w, r, err, "link elements")
		return
	}

	slog.Info("elements linked", "user_id", id.UserID, "count", len(elementIDs))

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Success: true,
		Message: id.Nickname + "'s elements linked",
	})
}

// UpdateElements handles PUT /update-element
func (h *ElementHandler) UpdateElements(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	elementIDs, ok := parseElementIDs(w, r)
	if !ok {
		return
	}

	if err := h.elements.ReplaceForUser(r.Context(), id.UserID, elementIDs); err != nil {
		storageError(w, r, err, "replace elements")
		return
	}

	slog.Info("elements updated", "user_id", id.UserID, "count", len(elementIDs))

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Success: true,
		Message: id.Nickname + "'s elements updated",
	})
}

// Questions handles GET /questions
func (h *ElementHandler) Questions(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	pools, err := h.elements.UserQuestionPools(r.Context(), id.UserID)
	if err != nil {
		storageError(w, r, err, "load question pools")
		return
	}

	sampled := make(map[string][]string, len(pools))
	for _, pool := range pools {
		questions, err := survey.SampleQuestions(pool.Questions, survey.QuestionsPerElement, h.rng)
		if err != nil {
			slog.Error("failed to sample questions", "error", err, "element", pool.Name)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error: "+pool.Name+": "+err.Error())
			return
		}
		sampled[pool.Name] = questions
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionsResponse{
		Success:  true,
		Message:  "Questions for " + id.Nickname,
		Elements: sampled,
	})
}

// parseElementIDs decodes {"elements": [...]} and writes a 400 when the
// body is malformed, the field is missing or an id is not positive
func parseElementIDs(w http.ResponseWriter, r *http.Request) ([]int64, bool) {
	var req models.SetElementsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return nil, false
	}

	if req.Elements == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "elements is required")
		return nil, false
	}

	for _, elementID := range *req.Elements {
		if elementID <= 0 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "element ids must be positive")
			return nil, false
		}
	}

	return *req.Elements, true
}
