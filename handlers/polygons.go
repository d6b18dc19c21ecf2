// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/satisfaction-polygon/cliparse"
	"github.com/danielhkuo/satisfaction-polygon/middleware"
	"github.com/danielhkuo/satisfaction-polygon/models"
	"github.com/danielhkuo/satisfaction-polygon/store"
	"github.com/danielhkuo/satisfaction-polygon/survey"
)

type PolygonHandler struct {
	polygons store.PolygonRepository
	cfg      cliparse.Config
}

func NewPolygonHandler(polygons store.PolygonRepository, cfg cliparse.Config) *PolygonHandler {
	return &PolygonHandler{polygons: polygons, cfg: cfg}
}

// Create handles POST /create
func (h *PolygonHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var entries []models.ScoreEntry
	if err := middleware.ParseJSONBody(r, &entries); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := survey.ValidateSubmission(entries); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	polygon, err := h.polygons.CreatePolygon(r.Context(), id.UserID, entries)
	if err != nil {
		storageError(w, r, err, "create polygon")
		return
	}

	slog.Info("polygon created",
		"polygon_id", polygon.ID,
		"user_id", id.UserID,
		"grade", polygon.Grade,
		"elements", len(polygon.Elements),
	)

	middleware.JSONResponse(w, http.StatusOK, models.CreatePolygonResponse{
		Success:   true,
		Message:   "Polygon created",
		PolygonID: polygon.ID,
		Grade:     polygon.Grade,
	})
}

// ReadAll handles GET /read-all
func (h *PolygonHandler) ReadAll(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	polygons, err := h.polygons.ListPolygons(r.Context(), id.UserID)
	if err != nil {
		storageError(w, r, err, "list polygons")
		return
	}
	if polygons == nil {
		polygons = []models.Polygon{}
	}

	middleware.JSONResponse(w, http.StatusOK, models.ReadAllResponse{
		Success:  true,
		Polygons: polygons,
	})
}

// Read handles GET /read/{id}
func (h *PolygonHandler) Read(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	polygonID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || polygonID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "polygon id must be a positive integer")
		return
	}

	polygon, err := h.polygons.GetPolygon(r.Context(), id.UserID, polygonID)
	if err != nil {
		storageError(w, r, err, "read polygon")
		return
	}

	// Global navigation walks every stored polygon
	var ownerID int64
	if h.cfg.NavigationScope == models.ScopeUser {
		ownerID = id.UserID
	}

	neighbors, err := h.polygons.Neighbors(r.Context(), polygonID, ownerID)
	if err != nil {
		storageError(w, r, err, "find neighbors")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ReadPolygonResponse{
		Success:  true,
		Polygon:  polygon,
		Start:    neighbors.HasNext(),
		End:      neighbors.HasPrevious(),
		Previous: neighbors.Previous,
		Next:     neighbors.Next,
	})
}
