package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dvrst/weekender/internal/auth"
	"github.com/dvrst/weekender/internal/model"
	"github.com/dvrst/weekender/internal/planner"
)

type ScheduleHandler struct {
	planner *planner.Planner
}

func NewScheduleHandler(p *planner.Planner) *ScheduleHandler {
	return &ScheduleHandler{planner: p}
}

// planResponse is the active view plus the identity the gate resolved, so
// the UI can label the plan without a second request.
type planResponse struct {
	model.ThreadSnapshot
	ThreadID string `json:"threadId"`
	Owner    string `json:"owner,omitempty"`
}

// Get returns the full active view: catalog, schedule, and settings.
func (h *ScheduleHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, planResponse{
		ThreadSnapshot: h.planner.Snapshot(),
		ThreadID:       auth.ThreadID(r.Context()),
		Owner:          auth.Owner(r.Context()),
	})
}

func dayParam(r *http.Request) (model.DayKey, bool) {
	day := model.DayKey(r.PathValue("day"))
	return day, model.ValidDay(day)
}

type addActivityRequest struct {
	Activity model.Activity `json:"activity"`
}

// AddActivity places a catalog activity onto a day. Adding the same
// catalog entry to the same day twice is declined without error.
func (h *ScheduleHandler) AddActivity(w http.ResponseWriter, r *http.Request) {
	day, ok := dayParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid day")
		return
	}

	var req addActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if strings.TrimSpace(req.Activity.ID) == "" {
		writeError(w, http.StatusBadRequest, "activity id is required")
		return
	}

	scheduled := h.planner.AddActivity(day, req.Activity)
	if scheduled == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "already scheduled"})
		return
	}
	writeJSON(w, http.StatusCreated, scheduled)
}

func (h *ScheduleHandler) RemoveActivity(w http.ResponseWriter, r *http.Request) {
	day, ok := dayParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid day")
		return
	}

	if !h.planner.RemoveActivity(day, r.PathValue("scheduledId")) {
		writeError(w, http.StatusNotFound, "scheduled activity not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type moodRequest struct {
	Mood model.Mood `json:"mood"`
}

func (h *ScheduleHandler) UpdateMood(w http.ResponseWriter, r *http.Request) {
	day, ok := dayParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid day")
		return
	}

	var req moodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if !h.planner.UpdateMood(day, r.PathValue("scheduledId"), req.Mood) {
		writeError(w, http.StatusNotFound, "scheduled activity not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

type reorderRequest struct {
	Activities []model.ScheduledActivity `json:"activities"`
}

// Reorder replaces a day's ordering. The new list must be a permutation of
// the current placements; anything else is rejected.
func (h *ScheduleHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	day, ok := dayParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid day")
		return
	}

	var req reorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if !h.planner.ReorderActivities(day, req.Activities) {
		writeError(w, http.StatusConflict, "order must be a permutation of the current day")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "reordered"})
}

func (h *ScheduleHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.planner.ClearSchedule()
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
