package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dvrst/weekender/internal/planner"
)

type ThreadHandler struct {
	planner *planner.Planner
	logger  *slog.Logger
}

func NewThreadHandler(p *planner.Planner, logger *slog.Logger) *ThreadHandler {
	return &ThreadHandler{planner: p, logger: logger}
}

type signupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// normalizeThreadID turns a display username into its thread id.
func normalizeThreadID(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// Create handles signup. The thread id is the normalized username; the
// display-cased username is kept as the thread owner.
func (h *ThreadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		writeError(w, http.StatusBadRequest, "username is required")
		return
	}

	threadID := normalizeThreadID(req.Username)
	if h.planner.ExistsThread(threadID) {
		writeError(w, http.StatusConflict, "username already taken")
		return
	}

	id, err := h.planner.CreateThreadWithCredentials(threadID, req.Username, req.Password)
	if err != nil {
		h.logger.Error("failed to create thread", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create thread")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"threadId":    id,
		"hasPassword": req.Password != "",
	})
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login validates a thread password, marks the thread authenticated, and
// switches the active view to it.
func (h *ThreadHandler) Login(w http.ResponseWriter, r *http.Request) {
	threadID := r.PathValue("threadId")
	if !h.planner.ExistsThread(threadID) {
		writeError(w, http.StatusNotFound, "thread not found")
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if h.planner.ThreadHasPassword(threadID) && !h.planner.ValidateThreadPassword(threadID, req.Password) {
		writeError(w, http.StatusUnauthorized, "invalid password")
		return
	}

	h.planner.MarkThreadAuthenticated(threadID)
	h.planner.SwitchThread(threadID)

	writeJSON(w, http.StatusOK, map[string]any{
		"threadId": threadID,
		"owner":    h.planner.ThreadOwner(threadID),
	})
}

func (h *ThreadHandler) List(w http.ResponseWriter, r *http.Request) {
	ids := h.planner.ListThreads()
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"threads": ids})
}

// Probe reports whether a thread exists and whether it needs a password,
// so the UI can choose between the unlock and signup flows.
func (h *ThreadHandler) Probe(w http.ResponseWriter, r *http.Request) {
	threadID := r.PathValue("threadId")
	if !h.planner.ExistsThread(threadID) {
		writeError(w, http.StatusNotFound, "thread not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"threadId":    threadID,
		"owner":       h.planner.ThreadOwner(threadID),
		"hasPassword": h.planner.ThreadHasPassword(threadID),
	})
}

func (h *ThreadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	threadID := r.PathValue("threadId")
	if !h.planner.DeleteThread(threadID) {
		writeError(w, http.StatusNotFound, "thread not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Logout drops the current thread's authentication and detaches the active
// view from it. Thread data stays intact.
func (h *ThreadHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.planner.Logout()
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}
