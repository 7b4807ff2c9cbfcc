package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(s.logRequests)
	r.Use(chimiddleware.Recoverer)
	r.Use(s.instrument)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeAPIError(w, ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeAPIError(w, newAPIError("method_not_allowed", http.StatusMethodNotAllowed, "Method not allowed"))
	})

	r.Handle("/metrics", s.metricsHandler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.health)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", s.register)
			r.Post("/login", s.login)
			r.Post("/logout", s.logout)
			r.With(s.requireSession).Get("/me", s.me)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.requireSession)

			r.Route("/recipes", func(r chi.Router) {
				r.Get("/", s.listRecipes)
				r.Post("/", s.createRecipe)
				r.Get("/search", s.searchRecipes)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", s.getRecipe)
					r.Put("/", s.updateRecipe)
					r.Delete("/", s.deleteRecipe)
					r.Post("/image", s.imageUploadURL)
					r.Get("/image", s.imageRedirect)
				})
			})

			r.Route("/favorites", func(r chi.Router) {
				r.Get("/", s.listFavoriteIDs)
				r.Post("/toggle", s.toggleFavorite)
				r.Get("/recipes", s.listFavoriteRecipes)
			})
		})
	})

	return r
}
