package site

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// ServerConfig holds preview server settings.
type ServerConfig struct {
	Port       int
	Dir        string // directory containing the generated page and its assets
	LiveReload bool   // inject the reload snippet and accept reload sockets
}

// PreviewServer serves the generated page locally. It never renders content
// per request; it only serves what the generator wrote to disk.
type PreviewServer struct {
	cfg        ServerConfig
	hub        *reloadHub
	files      http.Handler
	router     chi.Router
	httpServer *http.Server
}

// NewPreviewServer creates a preview server for cfg.Dir.
func NewPreviewServer(cfg ServerConfig) *PreviewServer {
	s := &PreviewServer{
		cfg:   cfg,
		hub:   newReloadHub(),
		files: http.FileServer(http.Dir(cfg.Dir)),
	}
	s.router = s.buildRouter()
	return s
}

func (s *PreviewServer) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(requestLogger)
	r.Use(middleware.NoCache)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	if s.cfg.LiveReload {
		r.Get(liveReloadPath, s.hub.handleWebSocket)
	}

	r.Get("/*", s.serveFile)
	r.Head("/*", s.serveFile)
	return r
}

// serveFile serves files from the output directory. With live reload on,
// HTML responses get the reload snippet; the file on disk is untouched.
func (s *PreviewServer) serveFile(w http.ResponseWriter, r *http.Request) {
	p := r.URL.Path
	if strings.HasSuffix(p, "/") {
		p += "index.html"
	}
	if !s.cfg.LiveReload || !strings.HasSuffix(p, ".html") {
		s.files.ServeHTTP(w, r)
		return
	}

	f, err := http.Dir(s.cfg.Dir).Open(p)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	page, err := io.ReadAll(f)
	if err != nil {
		http.Error(w, "reading page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		w.Write(injectReloadScript(page))
	}
}

// Router returns the chi router.
func (s *PreviewServer) Router() chi.Router { return s.router }

// Reload notifies connected browsers that the page changed. Returns the
// number of tabs notified.
func (s *PreviewServer) Reload() int {
	return s.hub.broadcast()
}

// Start begins listening on the configured port.
func (s *PreviewServer) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	zap.S().Infof("preview server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *PreviewServer) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		zap.S().Debugw("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}
