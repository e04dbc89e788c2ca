// Package server exposes the generation and persistence API over HTTP.
// Every route lives under /api and requires the shared token; handlers
// translate domain errors into status codes and leave everything else
// to the generator, template and storage packages.
package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"command-forge/internal/config"
	"command-forge/internal/generator"
	"command-forge/internal/storage"
)

type Server struct {
	cfg   *config.Config
	store storage.Store
	gen   *generator.Generator
}

func New(cfg *config.Config, store storage.Store) *Server {
	return &Server{
		cfg:   cfg,
		store: store,
		gen:   generator.New(),
	}
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/commands/create", s.handleCreateCommand)
	mux.HandleFunc("GET /api/commands", s.handleListCommands)
	mux.HandleFunc("GET /api/commands/{name}", s.handleGetCommand)
	mux.HandleFunc("DELETE /api/commands/{name}", s.handleDeleteCommand)

	mux.HandleFunc("GET /api/templates", s.handleListTemplates)
	mux.HandleFunc("GET /api/templates/{category}", s.handleListTemplates)
	mux.HandleFunc("POST /api/templates/preview", s.handlePreviewTemplate)

	mux.HandleFunc("GET /api/variables", s.handleListVariables)
	mux.HandleFunc("GET /api/variables/{category}", s.handleListVariables)
	mux.HandleFunc("GET /api/variables/search/{term}", s.handleSearchVariables)

	mux.HandleFunc("GET /health", s.handleHealth)

	return s.withRequestID(s.withLogging(s.withAuth(mux)))
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.ListenAddr,
		Handler:      s.routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.Println("[INFO] Shutting down API server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] Shutdown did not complete cleanly: %v", err)
		}
	}()

	log.Printf("[INFO] API server listening on %s", s.cfg.ListenAddr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
