package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/tabelio/attendance-backend-go/internal/config"
)

func NewRouter(cfg *config.Config, analysisHandler AnalysisHandler, directoryHandler DirectoryHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	allowedOrigins := cfg.HTTP.CORSAllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/upload", analysisHandler.Upload)
			r.Get("/analysis", analysisHandler.List)
			r.Get("/export", analysisHandler.Export)
			r.Delete("/", analysisHandler.Reset)

			r.Route("/stats", func(r chi.Router) {
				r.Get("/overall", analysisHandler.Overall)
				r.Get("/companies", analysisHandler.Companies)
			})
		})

		r.Route("/directory", func(r chi.Router) {
			r.Post("/upload", directoryHandler.Upload)
			r.Get("/", directoryHandler.List)
			r.Get("/companies", directoryHandler.Companies)
			r.Get("/positions", directoryHandler.Positions)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", analysisHandler.GetShift)
			r.Put("/", analysisHandler.UpdateShift)
		})
	})
	return r
}
