package server

import (
	"database/sql"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"
)

func addRoutes(r chi.Router, logger *slog.Logger, store Store, registry *SessionRegistry, db *sql.DB, spaDir string) {
	broker := NewBroker()

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Familiada API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, db, registry))

	// Game sessions. {sessionID} is resolved by sessionMiddleware.
	r.Post("/api/sessions", handleCreateSession(store, registry, broker))
	r.Route("/api/sessions/{sessionID}", func(r chi.Router) {
		r.Use(sessionMiddleware(registry))
		r.Get("/state", handleSessionState())
		r.Delete("/", handleDeleteSession(registry))
		r.Post("/answer", handleAnswer(broker))
		r.Post("/reveal", handleReveal(broker))
		r.Post("/error", handleTeamError(broker))
		r.Put("/team", handleSelectTeam(broker))
		r.Post("/next", handleNextRound(broker))
		r.Post("/undo", handleUndo(broker))
		r.Put("/view", handlePutView())
		r.Get("/grammar", handleGrammar())
		r.Get("/events", handleEvents(broker))
		r.Get("/ws", handleWS(logger, broker))
	})

	// Admin auth.
	r.Post("/api/admin/login", handleAdminLogin(store))
	r.Post("/api/admin/logout", handleAdminLogout(store))

	// Admin question sets and session overview, behind admin auth.
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(adminAuthMiddleware(store))
		r.Get("/me", handleAdminMe())
		r.Get("/sessions", handleAdminListSessions(registry))
		r.Route("/sets", func(r chi.Router) {
			r.Get("/", handleAdminListSets(store))
			r.Post("/", handleAdminCreateSet(store))
			r.Get("/{id}", handleAdminGetSet(store))
			r.Put("/{id}", handleAdminUpdateSet(store))
			r.Delete("/{id}", handleAdminDeleteSet(store))
		})
	})

	if spaDir != "" {
		if info, err := os.Stat(spaDir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", spaDir)
			r.NotFound(handleSPA(spaDir))
		}
	}
}
