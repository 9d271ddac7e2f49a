package api

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/file-translator/file-translator/internal/api/handlers"
	"github.com/file-translator/file-translator/internal/api/middleware"
	"github.com/file-translator/file-translator/internal/secrets"
	"github.com/file-translator/file-translator/internal/workflow"
)

type Options struct {
	CORSOrigins []string
	Secrets     secrets.Provider
}

func NewRouter(controller *workflow.Controller, opts Options, log zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(cors.Handler(middleware.CORSHandler(opts.CORSOrigins)))

	// Handlers
	optionsHandler := handlers.NewOptionsHandler(controller.Engine())
	translateHandler := handlers.NewTranslateHandler(controller, log)
	settingsHandler := handlers.NewSettingsHandler(controller.Engine(), opts.Secrets)

	r.Get("/", handlers.Index)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)
		r.Get("/options", optionsHandler.GetOptions)
		r.Get("/settings", settingsHandler.GetSettings)

		// No timeout: the request lasts as long as the translation call.
		r.Post("/translate", translateHandler.Translate)
	})

	return r
}
