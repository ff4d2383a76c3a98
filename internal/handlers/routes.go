package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// conditionalHTTPLogger only logs HTTP requests when HTTP logging is enabled
func (h *Handlers) conditionalHTTPLogger(next http.Handler) http.Handler {
	logger := middleware.Logger(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.Log != nil && h.Log.IsHTTPLoggingEnabled() {
			logger.ServeHTTP(w, r)
		} else {
			next.ServeHTTP(w, r)
		}
	})
}

// Router returns a configured chi router with all routes
func (h *Handlers) Router() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.conditionalHTTPLogger) // Custom conditional HTTP logger
	r.Use(middleware.Recoverer)
	r.Use(middleware.RedirectSlashes)
	r.Use(middleware.Timeout(60 * time.Second))

	// Static files (served from embedded filesystem)
	r.Handle("/static/*", http.StripPrefix("/static/", h.staticServer))

	// Pages (public)
	r.Get("/", h.handleIndex)
	r.Get("/game", h.handleGamePage)
	r.Get("/scorecard", h.handleScorecardPage)

	// WebSocket
	r.Get("/ws", h.Hub.ServeWs)

	// Catalog and courses (public)
	r.Get("/api/pubs", h.handleGetPubs)
	r.Get("/api/courses", h.handleGetCourses)
	r.Post("/api/courses", h.handleCreateCourse)
	r.Post("/api/courses/generate", h.handleGenerateCourse)
	r.Get("/api/courses/{id}", h.handleGetCourse)

	// Roster (public)
	r.Get("/api/players", h.handleGetPlayers)
	r.Post("/api/players", h.handleCreatePlayer)
	r.Put("/api/players", h.handleReplacePlayers)
	r.Delete("/api/players/{id}", h.handleDeletePlayer)

	// Game session (public)
	r.Get("/api/game", h.handleGetGame)
	r.Post("/api/game/start", h.handleStartGame)
	r.Post("/api/game/score", h.handleRecordScore)
	r.Post("/api/game/advance", h.handleAdvanceHole)
	r.Post("/api/game/end", h.handleEndGame)
	r.Get("/api/game/leaderboard", h.handleGetLeaderboard)
	r.Get("/api/game/qr", h.handleGetShareQR)

	// Score vocabulary (public)
	r.Get("/api/score-class/{sips}", h.handleGetScoreClass)

	// Auth routes (public)
	r.Get("/admin/login", h.handleLoginPage)
	r.Post("/admin/login", h.handleLogin)
	r.Post("/admin/logout", h.handleLogout)

	// Admin pages (protected)
	r.Group(func(r chi.Router) {
		r.Use(h.Auth.RequireAuth)
		r.Get("/admin", h.handleAdminDashboard)
	})

	// Admin API (protected)
	r.Group(func(r chi.Router) {
		r.Use(h.Auth.RequireAuthAPI)

		r.Get("/api/admin/stats", h.handleGetStats)
		r.Get("/api/admin/settings", h.handleGetSettings)
		r.Post("/api/admin/settings", h.handleUpdateSettings)
		r.Put("/api/admin/settings", h.handleUpdateSettings)
		r.Post("/api/admin/reset-data", h.handleResetData)
	})

	return r
}
