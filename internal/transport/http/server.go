package http

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	sloghttp "github.com/samber/slog-http"
	siteDomain "github.com/univac-1/ai-info-rss-feed/internal/modules/site/domain"
	sourceDomain "github.com/univac-1/ai-info-rss-feed/internal/modules/source/domain"
	sourceService "github.com/univac-1/ai-info-rss-feed/internal/modules/source/service"
	"github.com/univac-1/ai-info-rss-feed/internal/shared/config"
	"github.com/univac-1/ai-info-rss-feed/internal/shared/errors"
)

// Server exposes the feed registry and site configuration read-only over HTTP.
type Server struct {
	registry *sourceDomain.Registry
	site     siteDomain.Config
	logger   *slog.Logger
	server   *http.Server
	now      func() time.Time
}

// New creates a new HTTP server
func New(cfg *config.Config, registry *sourceDomain.Registry, site siteDomain.Config) *Server {
	return &Server{
		registry: registry,
		site:     site,
		logger:   slog.Default(),
		now:      time.Now,
		server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetLogger sets the logger
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Handler returns the routed handler wrapped with access logging and panic recovery.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /sources", s.handleSources)
	mux.HandleFunc("GET /sources/{label}", s.handleSource)
	mux.HandleFunc("GET /sources.opml", s.handleOPML)
	mux.HandleFunc("GET /site", s.handleSite)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /{$}", s.handleRoot)

	handler := sloghttp.Recovery(mux)
	handler = sloghttp.New(s.logger)(handler)
	return handler
}

// Start starts the HTTP server and blocks until it stops. It returns nil after Shutdown.
func (s *Server) Start() error {
	s.logger.Info("Inspection server starting", "addr", s.server.Addr)

	s.server.Handler = s.Handler()
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops a running server, waiting for in-flight requests until ctx ends.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

type sourcesResponse struct {
	Count   int                       `json:"count"`
	Sources []sourceDomain.FeedSource `json:"sources"`
}

func (s *Server) handleSources(w http.ResponseWriter, r *http.Request) {
	sources := s.registry.Sources()
	if category := r.URL.Query().Get("category"); category != "" {
		sources = s.registry.ByCategory(category)
	}

	s.writeJSON(w, http.StatusOK, sourcesResponse{Count: len(sources), Sources: sources})
}

func (s *Server) handleSource(w http.ResponseWriter, r *http.Request) {
	label := r.PathValue("label")

	source, ok := s.registry.Lookup(label)
	if !ok {
		s.writeJSON(w, http.StatusNotFound, map[string]string{"error": errors.ErrSourceNotFound.Error(), "label": label})
		return
	}

	s.writeJSON(w, http.StatusOK, source)
}

func (s *Server) handleOPML(w http.ResponseWriter, r *http.Request) {
	opml, err := sourceService.ExportOPML(s.registry, s.site, s.now())
	if err != nil {
		s.logger.Error("Error exporting OPML", "error", err)
		http.Error(w, "Failed to export OPML", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/x-opml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(opml)
}

func (s *Server) handleSite(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.site)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

var rootTemplate = template.Must(template.New("root").Parse(`<!DOCTYPE html>
<html lang="{{ .Site.Identity.FeedLanguage }}">
<head>
    <title>{{ .Site.Identity.SiteTitle }}</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 50px auto; padding: 20px; }
        h1 { color: #333; }
        .info { background: #f5f5f5; padding: 15px; border-radius: 5px; margin: 20px 0; }
        code { background: #e8e8e8; padding: 2px 6px; border-radius: 3px; }
    </style>
</head>
<body>
    <h1>{{ .Site.Identity.SiteTitle }}</h1>
    <div class="info">
        <p>{{ .Site.Identity.SiteDescription }}</p>
        <p>Feeds: <a href="{{ .Site.FeedURLs.Atom }}">Atom</a> · <a href="{{ .Site.FeedURLs.RSS }}">RSS</a> · <a href="{{ .Site.FeedURLs.JSON }}">JSON</a></p>
        <p>Registry: <code>/sources</code>, <code>/sources.opml</code>, configuration: <code>/site</code></p>
    </div>
    <ul>
    {{- range .Sources }}
        <li><a href="{{ .URL }}">{{ .Label }}</a>{{ if .Category }} <code>{{ .Category }}</code>{{ end }}</li>
    {{- end }}
    </ul>
    <p><a href="/health">Health Check</a></p>
</body>
</html>`))

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	err := rootTemplate.Execute(w, struct {
		Site    siteDomain.Config
		Sources []sourceDomain.FeedSource
	}{Site: s.site, Sources: s.registry.Sources()})
	if err != nil {
		s.logger.Error("Error rendering index", "error", err)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("Error encoding response", "status", status, "error", err)
	}
}
