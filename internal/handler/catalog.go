package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dvrst/weekender/internal/model"
	"github.com/dvrst/weekender/internal/planner"
)

type CatalogHandler struct {
	planner *planner.Planner
}

func NewCatalogHandler(p *planner.Planner) *CatalogHandler {
	return &CatalogHandler{planner: p}
}

func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	activities := h.planner.Snapshot().Activities
	if activities == nil {
		activities = []model.Activity{}
	}
	writeJSON(w, http.StatusOK, activities)
}

var validCategories = map[model.ActivityCategory]bool{
	model.CategoryFood:          true,
	model.CategoryOutdoor:       true,
	model.CategoryEntertainment: true,
	model.CategoryRelax:         true,
	model.CategoryLearning:      true,
	model.CategorySocial:        true,
	model.CategoryAdventure:     true,
}

func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var activity model.Activity
	if err := json.NewDecoder(r.Body).Decode(&activity); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	activity.Name = strings.TrimSpace(activity.Name)
	if activity.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if activity.Category != "" && !validCategories[activity.Category] {
		writeError(w, http.StatusBadRequest, "unknown category")
		return
	}

	created := h.planner.AddCatalogActivity(activity)
	if created == nil {
		writeError(w, http.StatusConflict, "activity id already exists")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Delete removes a catalog activity and cascades to every scheduled
// placement of it across all days.
func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	removed, found := h.planner.RemoveCatalogActivity(r.PathValue("activityId"))
	if !found {
		writeError(w, http.StatusNotFound, "activity not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"scheduledRemoved": removed})
}
