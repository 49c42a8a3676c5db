package handler

import (
	"net/http"

	"github.com/dvrst/weekender/internal/planner"
)

type ShareHandler struct {
	planner *planner.Planner
}

func NewShareHandler(p *planner.Planner) *ShareHandler {
	return &ShareHandler{planner: p}
}

// Create freezes the current plan into an immutable shared snapshot and
// returns its public URL. An empty plan still gets a link.
func (h *ShareHandler) Create(w http.ResponseWriter, r *http.Request) {
	url := h.planner.CreateShareableLink()
	writeJSON(w, http.StatusCreated, map[string]string{"url": url})
}

// Get serves a shared plan snapshot. Public, no thread gate.
func (h *ShareHandler) Get(w http.ResponseWriter, r *http.Request) {
	plan := h.planner.GetSharedPlan(r.PathValue("shareId"))
	if plan == nil {
		writeError(w, http.StatusNotFound, "shared plan not found")
		return
	}
	writeJSON(w, http.StatusOK, plan)
}
