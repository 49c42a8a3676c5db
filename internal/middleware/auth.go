package middleware

import (
	"net/http"

	"github.com/dvrst/weekender/internal/auth"
	"github.com/dvrst/weekender/internal/planner"
)

// ThreadGate is the subset of the planner the auth middleware needs.
type ThreadGate interface {
	ExistsThread(threadID string) bool
	IsThreadAuthenticated(threadID string) bool
	SwitchThread(threadID string) bool
	ThreadOwner(threadID string) string
}

var _ ThreadGate = (*planner.Planner)(nil)

// RequireThread verifies the {threadId} path segment names a known,
// session-authenticated thread, makes it the active thread, and populates
// the ThreadContext. Unknown threads are 404, locked threads 403; the
// handler behind the gate can then act on the active view directly.
func RequireThread(gate ThreadGate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			threadID := r.PathValue("threadId")
			if threadID == "" || !gate.ExistsThread(threadID) {
				http.Error(w, "Thread not found", http.StatusNotFound)
				return
			}
			if !gate.IsThreadAuthenticated(threadID) {
				http.Error(w, "Thread is locked", http.StatusForbidden)
				return
			}

			gate.SwitchThread(threadID)

			tc := auth.ThreadContext{
				ThreadID: threadID,
				Owner:    gate.ThreadOwner(threadID),
			}
			ctx := auth.WithThread(r.Context(), tc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
