package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dvrst/weekender/internal/holiday"
)

type HolidayHandler struct{}

func NewHolidayHandler() *HolidayHandler {
	return &HolidayHandler{}
}

// Upcoming lists future holidays with their suggested weekend lengths.
func (h *HolidayHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	limit := 5
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	holidays := holiday.Upcoming(time.Now(), limit)
	if holidays == nil {
		holidays = []holiday.Holiday{}
	}
	writeJSON(w, http.StatusOK, holidays)
}
