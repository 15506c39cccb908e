package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/x1khalil1x/turbo-breaks/internal/config"
	mw "github.com/x1khalil1x/turbo-breaks/internal/middleware"
	"github.com/x1khalil1x/turbo-breaks/internal/placeholder"
	"github.com/x1khalil1x/turbo-breaks/internal/projects"
)

func main() {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:], nil)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	a, err := newApp(cfg)
	if err != nil {
		log.Fatalf("init: %v", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newRouter(a, cfg.RequestTimeout),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	log.Printf("web listening on %s (projects=%d)", cfg.Addr, a.catalog.Len())

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
		cancel()
		stop()
		os.Exit(1)
	}
}

// app holds the immutable dependencies shared by all handlers.
type app struct {
	view     *placeholder.View
	catalog  *projects.Catalog
	siteName string
	baseURL  string
}

func newApp(cfg config.Config) (*app, error) {
	view, err := placeholder.New()
	if err != nil {
		return nil, err
	}
	catalog := projects.Default()
	if cfg.CatalogPath != "" {
		catalog, err = projects.LoadFile(cfg.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
	}
	return &app{
		view:     view,
		catalog:  catalog,
		siteName: cfg.SiteName,
		baseURL:  cfg.BaseURL,
	}, nil
}

func newRouter(a *app, timeout time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP.
	r.Use(middleware.RealIP)
	r.Use(mw.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetHead)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(timeout))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Registered flat so GetHead can see the GET routes.
	cached := r.With(mw.CacheControl("public, max-age=300"))
	cached.Get("/projects", a.ProjectsIndexHandler)
	cached.Get("/projects/{slug}", a.ProjectHandler)

	return r
}
