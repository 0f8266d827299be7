package routes

import (
	"github.com/chico-slowpitch/attendance-system/handlers"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SetupRoutes mounts the full API surface under /api. CORS is wide open:
// this is a small internal tool with no credentialed requests.
func SetupRoutes(
	router *chi.Mux,
	attendeeHandler *handlers.AttendeeHandler,
	gameHandler *handlers.GameHandler,
	rosterHandler *handlers.RosterHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api", func(r chi.Router) {
		r.Route("/attendees", func(r chi.Router) {
			r.Get("/", attendeeHandler.ListAttendees)
			r.Post("/", attendeeHandler.CheckIn)
			r.Delete("/", attendeeHandler.ClearAttendees)
			r.Delete("/{id}", attendeeHandler.RemoveAttendee)
		})

		r.Get("/stats", attendeeHandler.Stats)
		r.Get("/game", gameHandler.GetActiveGame)

		r.Route("/games", func(r chi.Router) {
			r.Get("/", gameHandler.ListGames)
			r.Post("/", gameHandler.CreateGame)
			r.Post("/{id}/activate", gameHandler.ActivateGame)
			r.Put("/{id}/activate", gameHandler.ActivateGame)
		})

		r.Route("/roster", func(r chi.Router) {
			r.Get("/", rosterHandler.ListRoster)
			r.Post("/", rosterHandler.AddMember)
			r.Put("/{id}", rosterHandler.UpdateMember)
			r.Delete("/{id}", rosterHandler.RemoveMember)
		})
	})
}
