package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dvrst/weekender/internal/backup"
	"github.com/dvrst/weekender/internal/handler"
	"github.com/dvrst/weekender/internal/middleware"
	"github.com/dvrst/weekender/internal/planner"
	"github.com/dvrst/weekender/internal/weather"
	ws "github.com/dvrst/weekender/internal/websocket"
)

type Server struct {
	planner       *planner.Planner
	hub           *ws.Hub
	threadH       *handler.ThreadHandler
	scheduleH     *handler.ScheduleHandler
	catalogH      *handler.CatalogHandler
	settingsH     *handler.SettingsHandler
	shareH        *handler.ShareHandler
	holidayH      *handler.HolidayHandler
	weatherH      *handler.WeatherHandler
	backupH       *handler.BackupHandler
	rateLimiter   *middleware.RateLimiter
	backupManager *backup.Manager
	logger        *slog.Logger
}

func New(p *planner.Planner, weatherSvc *weather.Service, backupCfg backup.Config, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))

	// Every planner event fans out to connected clients.
	p.Subscribe(func(e planner.Event) {
		hub.Broadcast(ws.NewMessage(e.Entity, e.Action, e.Title, e.Description, e.Severity))
	})

	// Backup state changes reach the UI the same way.
	backupMgr := backup.NewManager(backupCfg, p, func(st backup.Status) {
		severity := "info"
		if st.State == backup.StateError {
			severity = "warning"
		}
		hub.Broadcast(ws.NewMessage("backup", string(st.State), "", st.Error, severity))
	}, logger.With("component", "backup"))

	return &Server{
		planner:       p,
		hub:           hub,
		threadH:       handler.NewThreadHandler(p, logger.With("component", "thread")),
		scheduleH:     handler.NewScheduleHandler(p),
		catalogH:      handler.NewCatalogHandler(p),
		settingsH:     handler.NewSettingsHandler(p),
		shareH:        handler.NewShareHandler(p),
		holidayH:      handler.NewHolidayHandler(),
		weatherH:      handler.NewWeatherHandler(p, weatherSvc),
		backupH:       handler.NewBackupHandler(backupMgr, p, logger.With("component", "backup")),
		rateLimiter:   middleware.NewRateLimiter(),
		backupManager: backupMgr,
		logger:        logger,
	}
}

// Hub returns the websocket hub for lifecycle control.
func (s *Server) Hub() *ws.Hub {
	return s.hub
}

// BackupManager returns the backup manager so main can run its schedule.
func (s *Server) BackupManager() *backup.Manager {
	return s.backupManager
}

// RateLimiter returns the rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

func (s *Server) Router() http.Handler {
	outerMux := http.NewServeMux()

	// Public routes (no thread gate)
	outerMux.HandleFunc("GET /health", s.healthHandler)
	outerMux.HandleFunc("GET /shared/{shareId}", s.shareH.Get)
	outerMux.HandleFunc("POST /api/threads", s.rateLimitedHandler(s.threadH.Create))
	outerMux.HandleFunc("POST /api/threads/{threadId}/login", s.rateLimitedHandler(s.threadH.Login))
	outerMux.HandleFunc("GET /api/threads", s.threadH.List)
	outerMux.HandleFunc("GET /api/threads/{threadId}", s.threadH.Probe)
	outerMux.HandleFunc("GET /api/holidays", s.holidayH.Upcoming)
	outerMux.HandleFunc("GET /api/backup/status", s.backupH.Status)
	outerMux.HandleFunc("POST /api/backup/run", s.backupH.Run)
	outerMux.HandleFunc("POST /api/backup/restore", s.backupH.Restore)
	outerMux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub))

	// Thread-scoped routes behind the existence and authentication gate
	protectedMux := http.NewServeMux()
	s.registerThreadRoutes(protectedMux)

	threadGate := middleware.RequireThread(s.planner)
	outerMux.Handle("/api/threads/{threadId}/", threadGate(protectedMux))
	outerMux.Handle("DELETE /api/threads/{threadId}", threadGate(http.HandlerFunc(s.threadH.Delete)))

	return middleware.RequestLogger(s.logger.With("component", "http"))(outerMux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) rateLimitedHandler(h http.HandlerFunc) http.HandlerFunc {
	keyFunc := func(r *http.Request) string {
		return middleware.RealIP(r)
	}
	rl := middleware.RateLimit(s.rateLimiter, keyFunc, 10, time.Minute)
	return func(w http.ResponseWriter, r *http.Request) {
		rl(http.HandlerFunc(h)).ServeHTTP(w, r)
	}
}

func (s *Server) registerThreadRoutes(mux *http.ServeMux) {
	// Thread lifecycle
	mux.HandleFunc("POST /api/threads/{threadId}/logout", s.threadH.Logout)

	// Active view + schedule
	mux.HandleFunc("GET /api/threads/{threadId}/plan", s.scheduleH.Get)
	mux.HandleFunc("POST /api/threads/{threadId}/schedule/{day}/activities", s.scheduleH.AddActivity)
	mux.HandleFunc("DELETE /api/threads/{threadId}/schedule/{day}/activities/{scheduledId}", s.scheduleH.RemoveActivity)
	mux.HandleFunc("PUT /api/threads/{threadId}/schedule/{day}/activities/{scheduledId}/mood", s.scheduleH.UpdateMood)
	mux.HandleFunc("PUT /api/threads/{threadId}/schedule/{day}/order", s.scheduleH.Reorder)
	mux.HandleFunc("POST /api/threads/{threadId}/schedule/clear", s.scheduleH.Clear)

	// Catalog
	mux.HandleFunc("GET /api/threads/{threadId}/activities", s.catalogH.List)
	mux.HandleFunc("POST /api/threads/{threadId}/activities", s.catalogH.Create)
	mux.HandleFunc("DELETE /api/threads/{threadId}/activities/{activityId}", s.catalogH.Delete)

	// Settings
	mux.HandleFunc("PUT /api/threads/{threadId}/settings/theme", s.settingsH.SetTheme)
	mux.HandleFunc("PUT /api/threads/{threadId}/settings/length", s.settingsH.SetLength)
	mux.HandleFunc("PUT /api/threads/{threadId}/settings/dates", s.settingsH.SetDates)

	// Sharing + weather
	mux.HandleFunc("POST /api/threads/{threadId}/share", s.shareH.Create)
	mux.HandleFunc("GET /api/threads/{threadId}/weather", s.weatherH.Forecast)
}
