package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/v1/health", h.health)
	})

	// routes behind requester authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/v1/redeem", h.redeem)

		r.Put("/api/v1/teams/{account_id}", h.configureTeam)
		r.Get("/api/v1/teams/{account_id}", h.getTeam)
		r.Delete("/api/v1/teams/{account_id}", h.deleteTeam)
		r.Get("/api/v1/teams", h.listTeams)

		r.Post("/api/v1/identity/reset", h.resetIdentity)

		r.Get("/api/v1/accounts/{account_id}/verify", h.verifyAccount)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
