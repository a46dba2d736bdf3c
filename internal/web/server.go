// Package web wires the page registry, crawler endpoints and operational
// routes into one HTTP handler behind the middleware stack.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/angelofallars/htmx-go"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/borrowww/web/internal/config"
	"github.com/borrowww/web/internal/log"
	"github.com/borrowww/web/internal/pages"
	"github.com/borrowww/web/internal/seo"
)

//go:embed static
var staticFS embed.FS

// Server owns the assembled router.
type Server struct {
	handler http.Handler
}

// NewServer mounts the registry and the fixed endpoints. The registry must be
// fully populated; nothing is added after this point.
func NewServer(cfg config.Config, reg *pages.Registry) (*Server, error) {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Recoverer)
	r.Use(RequestLogger)
	r.Use(Metrics)
	r.Use(SecurityHeaders)
	r.Use(RateLimit(cfg.RateLimitRPM))

	reg.Mount(pages.NewChiRouter(r))

	r.Get("/robots.txt", seo.DefaultRobots(cfg.BaseURL).Handler())

	sitemap, err := seo.SitemapHandler(cfg.BaseURL, reg.DocumentPaths())
	if err != nil {
		return nil, err
	}
	r.Get("/sitemap.xml", sitemap)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(static)))

	return &Server{handler: r}, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// RenderError is the registry error handler: log the failure, answer HTMX
// requests with a fragment and everything else with a plain 500.
func RenderError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.WithComponent("pages")
	logger.Error().
		Err(err).
		Str(log.FieldPath, r.URL.Path).
		Str(log.FieldRequestID, log.RequestIDFromContext(r.Context())).
		Msg("page render failed")

	if htmx.IsHTMX(r) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<p class="form-error">Something went wrong. Please try again.</p>`))
		return
	}
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
