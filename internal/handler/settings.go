package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dvrst/weekender/internal/model"
	"github.com/dvrst/weekender/internal/planner"
)

type SettingsHandler struct {
	planner *planner.Planner
}

func NewSettingsHandler(p *planner.Planner) *SettingsHandler {
	return &SettingsHandler{planner: p}
}

var validThemes = map[model.Theme]bool{
	model.ThemeDefault:     true,
	model.ThemeLazy:        true,
	model.ThemeAdventurous: true,
	model.ThemeFamily:      true,
}

type themeRequest struct {
	Theme model.Theme `json:"theme"`
}

func (h *SettingsHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req themeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if !validThemes[req.Theme] {
		writeError(w, http.StatusBadRequest, "theme must be default, lazy, adventurous, or family")
		return
	}

	h.planner.SetTheme(req.Theme)
	writeJSON(w, http.StatusOK, map[string]string{"theme": string(req.Theme)})
}

var validLengths = map[model.WeekendLength]bool{
	model.LengthShort:    true,
	model.LengthLong:     true,
	model.LengthExtended: true,
}

type lengthRequest struct {
	Length model.WeekendLength `json:"length"`
}

// SetLength updates the weekend length and the derived available days.
// Entries on days outside the new range stay in place, dormant.
func (h *SettingsHandler) SetLength(w http.ResponseWriter, r *http.Request) {
	var req lengthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if !validLengths[req.Length] {
		writeError(w, http.StatusBadRequest, "length must be short, long, or extended")
		return
	}

	h.planner.SetWeekendLength(req.Length)
	writeJSON(w, http.StatusOK, map[string]any{
		"length":        req.Length,
		"availableDays": model.DaysFor(req.Length),
	})
}

type datesRequest struct {
	Dates []time.Time `json:"dates"`
}

func (h *SettingsHandler) SetDates(w http.ResponseWriter, r *http.Request) {
	var req datesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	h.planner.SetSelectedWeekendDates(req.Dates)
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}
