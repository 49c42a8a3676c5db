package weather

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

const cacheTTL = 30 * time.Minute

// Config holds weather service configuration from environment variables.
type Config struct {
	Latitude        string
	Longitude       string
	TemperatureUnit string // "celsius" or "fahrenheit"
}

// DayForecast is the outlook for one weekend day.
type DayForecast struct {
	Date time.Time `json:"date"`
	High float64   `json:"high"`
	Low  float64   `json:"low"`
	Code int       `json:"code"`
	Desc string    `json:"desc"`
	Icon string    `json:"icon"`
}

// Forecast covers the selected weekend dates.
type Forecast struct {
	Days       []DayForecast `json:"days"`
	Unit       string        `json:"unit"` // "F" or "C"
	Available  bool          `json:"available"`
	Configured bool          `json:"configured"`
}

// Service fetches and caches daily forecasts for weekend date ranges.
type Service struct {
	config  Config
	client  *http.Client
	baseURL string

	mu        sync.Mutex
	cached    map[string]Forecast
	fetchedAt map[string]time.Time
}

// NewService creates a weather service. Without coordinates it stays in the
// "not configured" state and every lookup degrades gracefully.
func NewService(cfg Config) *Service {
	if cfg.TemperatureUnit == "" {
		cfg.TemperatureUnit = "celsius"
	}
	return &Service{
		config:    cfg,
		client:    &http.Client{Timeout: 10 * time.Second},
		baseURL:   "https://api.open-meteo.com/v1/forecast",
		cached:    make(map[string]Forecast),
		fetchedAt: make(map[string]time.Time),
	}
}

func (s *Service) unit() string {
	if s.config.TemperatureUnit == "fahrenheit" {
		return "F"
	}
	return "C"
}

// GetForecast returns the daily forecast spanning the given dates, fetching
// from the API when the cached range is stale. An empty date list or an
// unconfigured service returns a zero forecast rather than an error.
func (s *Service) GetForecast(dates []time.Time) Forecast {
	configured := s.config.Latitude != "" && s.config.Longitude != ""
	if !configured || len(dates) == 0 {
		return Forecast{Unit: s.unit(), Configured: configured}
	}

	start, end := dateRange(dates)
	key := start.Format("2006-01-02") + "_" + end.Format("2006-01-02")

	s.mu.Lock()
	if f, ok := s.cached[key]; ok && time.Since(s.fetchedAt[key]) < cacheTTL {
		s.mu.Unlock()
		return f
	}
	s.mu.Unlock()

	// The fetch runs unlocked so a slow API call cannot stall lookups for
	// other date ranges. Concurrent misses on the same key may fetch twice;
	// the last result wins.
	f, err := s.fetch(start, end)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		// Return stale data on error rather than nothing.
		if stale, ok := s.cached[key]; ok {
			return stale
		}
		return Forecast{Unit: s.unit(), Configured: true}
	}

	s.cached[key] = f
	s.fetchedAt[key] = time.Now()
	return f
}

func dateRange(dates []time.Time) (time.Time, time.Time) {
	start, end := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(start) {
			start = d
		}
		if d.After(end) {
			end = d
		}
	}
	return start, end
}

type apiResponse struct {
	Daily struct {
		Time        []string  `json:"time"`
		TempMax     []float64 `json:"temperature_2m_max"`
		TempMin     []float64 `json:"temperature_2m_min"`
		WeatherCode []int     `json:"weather_code"`
	} `json:"daily"`
}

func (s *Service) fetch(start, end time.Time) (Forecast, error) {
	url := fmt.Sprintf(
		"%s?latitude=%s&longitude=%s&daily=temperature_2m_max,temperature_2m_min,weather_code&timezone=auto&start_date=%s&end_date=%s&temperature_unit=%s",
		s.baseURL, s.config.Latitude, s.config.Longitude,
		start.Format("2006-01-02"), end.Format("2006-01-02"), s.config.TemperatureUnit,
	)

	resp, err := s.client.Get(url)
	if err != nil {
		return Forecast{}, fmt.Errorf("weather API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Forecast{}, fmt.Errorf("weather API returned status %d", resp.StatusCode)
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return Forecast{}, fmt.Errorf("decode weather response: %w", err)
	}

	f := Forecast{Unit: s.unit(), Available: true, Configured: true}
	for i, ds := range apiResp.Daily.Time {
		day, err := time.Parse("2006-01-02", ds)
		if err != nil {
			continue
		}
		df := DayForecast{Date: day}
		if i < len(apiResp.Daily.TempMax) {
			df.High = apiResp.Daily.TempMax[i]
		}
		if i < len(apiResp.Daily.TempMin) {
			df.Low = apiResp.Daily.TempMin[i]
		}
		if i < len(apiResp.Daily.WeatherCode) {
			df.Code = apiResp.Daily.WeatherCode[i]
			df.Desc, df.Icon = WMOCodeToDescIcon(df.Code)
		}
		f.Days = append(f.Days, df)
	}
	return f, nil
}

// WMOCodeToDescIcon maps a WMO weather code to a human-readable description
// and emoji icon.
func WMOCodeToDescIcon(code int) (string, string) {
	switch code {
	case 0:
		return "Clear sky", "☀️"
	case 1:
		return "Mainly clear", "🌤️"
	case 2:
		return "Partly cloudy", "⛅"
	case 3:
		return "Overcast", "☁️"
	case 45, 48:
		return "Foggy", "🌫️"
	case 51:
		return "Light drizzle", "🌦️"
	case 53:
		return "Moderate drizzle", "🌦️"
	case 55:
		return "Dense drizzle", "🌧️"
	case 56, 57:
		return "Freezing drizzle", "🌧️"
	case 61:
		return "Slight rain", "🌦️"
	case 63:
		return "Moderate rain", "🌧️"
	case 65:
		return "Heavy rain", "🌧️"
	case 66, 67:
		return "Freezing rain", "🌧️"
	case 71:
		return "Slight snow", "🌨️"
	case 73:
		return "Moderate snow", "🌨️"
	case 75:
		return "Heavy snow", "❄️"
	case 77:
		return "Snow grains", "❄️"
	case 80:
		return "Slight showers", "🌦️"
	case 81:
		return "Moderate showers", "🌧️"
	case 82:
		return "Violent showers", "⛈️"
	case 85:
		return "Slight snow showers", "🌨️"
	case 86:
		return "Heavy snow showers", "❄️"
	case 95:
		return "Thunderstorm", "⛈️"
	case 96, 99:
		return "Thunderstorm with hail", "⛈️"
	default:
		return "Unknown", "🌡️"
	}
}
