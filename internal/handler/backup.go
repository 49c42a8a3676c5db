package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dvrst/weekender/internal/backup"
	"github.com/dvrst/weekender/internal/planner"
)

type BackupHandler struct {
	manager *backup.Manager
	planner *planner.Planner
	logger  *slog.Logger
}

func NewBackupHandler(m *backup.Manager, p *planner.Planner, logger *slog.Logger) *BackupHandler {
	return &BackupHandler{manager: m, planner: p, logger: logger}
}

func (h *BackupHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.manager.Status())
}

func (h *BackupHandler) Run(w http.ResponseWriter, r *http.Request) {
	if h.manager.Status().State == backup.StateDisabled {
		writeError(w, http.StatusConflict, "backups are not configured")
		return
	}

	key, err := h.manager.RunNow(r.Context())
	if err != nil {
		h.logger.Error("manual backup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "backup failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"key": key})
}

type restoreRequest struct {
	Key string `json:"key"`
}

// Restore downloads a snapshot by object key, decrypts it, and swaps it in
// for the live planner state.
func (h *BackupHandler) Restore(w http.ResponseWriter, r *http.Request) {
	if h.manager.Status().State == backup.StateDisabled {
		writeError(w, http.StatusConflict, "backups are not configured")
		return
	}

	var req restoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Key == "" {
		writeError(w, http.StatusBadRequest, "key is required")
		return
	}

	state, err := h.manager.Fetch(r.Context(), req.Key)
	if err != nil {
		h.logger.Error("restore failed", "key", req.Key, "error", err)
		writeError(w, http.StatusInternalServerError, "restore failed")
		return
	}

	h.planner.ReplaceState(*state)
	writeJSON(w, http.StatusOK, map[string]string{"status": "restored", "key": req.Key})
}
