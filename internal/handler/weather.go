package handler

import (
	"net/http"

	"github.com/dvrst/weekender/internal/planner"
	"github.com/dvrst/weekender/internal/weather"
)

type WeatherHandler struct {
	planner *planner.Planner
	weather *weather.Service
}

func NewWeatherHandler(p *planner.Planner, ws *weather.Service) *WeatherHandler {
	return &WeatherHandler{planner: p, weather: ws}
}

// Forecast returns the outlook for the thread's selected weekend dates.
// Unconfigured coordinates or an unset date range degrade to an empty
// forecast rather than an error.
func (h *WeatherHandler) Forecast(w http.ResponseWriter, r *http.Request) {
	dates := h.planner.Snapshot().SelectedWeekendDates
	writeJSON(w, http.StatusOK, h.weather.GetForecast(dates))
}
