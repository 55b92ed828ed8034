package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(middleware.NoCache)
	router.Use(withSecurityHeaders)
	if h.cfg.MaxBodyBytes > 0 {
		router.Use(middleware.RequestSize(h.cfg.MaxBodyBytes))
	}
	router.Use(withGZipRequest)
	router.Use(middleware.Compress(5, "application/json"))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Get("/", h.root)
	router.Get("/health", h.health)

	router.Route("/api", func(r chi.Router) {
		r.Use(h.apiRateLimit())

		r.Route("/auth", func(r chi.Router) {
			r.Use(h.authRateLimit())

			r.Post("/signup", h.signUp)
			r.Post("/login", h.login)
			r.With(h.auth).Get("/profile", h.profile)
		})

		r.Route("/applications", func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/", h.listApplications)
			r.Post("/", h.createApplication)
			r.Get("/stats", h.getStats)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.getApplication)
				r.Put("/", h.updateApplication)
				r.Patch("/", h.updateApplication)
				r.Delete("/", h.deleteApplication)
			})
		})

		r.NotFound(notFound)
		r.MethodNotAllowed(notFound)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}
