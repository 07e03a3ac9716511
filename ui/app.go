package ui

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hrdash/internal"
	"hrdash/internal/dashboard"
	"hrdash/ports"
)

//go:embed templates/*.html static
var embeddedFiles embed.FS

// App represents the dashboard web application
type App struct {
	router     *chi.Mux
	loader     ports.DatasetLoaderPort
	visualizer *dashboard.Visualizer
	templates  *template.Template
	config     Config
	log        *internal.Logger
}

// Config holds UI application configuration
type Config struct {
	CORSAllowedOrigins []string
	MetricsEnabled     bool
}

// NewApp creates the dashboard application around a dataset loader and visualizer
func NewApp(config Config, loader ports.DatasetLoaderPort, visualizer *dashboard.Visualizer) (*App, error) {
	templates, err := template.New("").Funcs(templateFuncs()).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	app := &App{
		router:     chi.NewRouter(),
		loader:     loader,
		visualizer: visualizer,
		templates:  templates,
		config:     config,
		log:        internal.DefaultLogger.With("UI"),
	}

	app.setupMiddleware()
	if err := app.setupRoutes(); err != nil {
		return nil, err
	}

	return app, nil
}

// Handler returns the root HTTP handler
func (a *App) Handler() http.Handler {
	return a.router
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() error {
	staticFS, err := fs.Sub(embeddedFiles, "static")
	if err != nil {
		return fmt.Errorf("failed to mount static files: %w", err)
	}
	a.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	a.router.Get("/", a.handleIndex)
	a.router.Get("/healthz", a.handleHealth)
	if a.config.MetricsEnabled {
		a.router.Handle("/metrics", promhttp.Handler())
	}

	a.router.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: a.config.CORSAllowedOrigins,
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
		r.Get("/features", a.handleFeatures)
		r.Get("/view", a.handleView)
	})
	return nil
}
