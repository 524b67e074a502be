// Package dashboard serves the street tree health charts over HTTP.
package dashboard

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/handlers"
	"github.com/huangsam/treehealth/core"
	"github.com/huangsam/treehealth/internal/contract"
	"github.com/huangsam/treehealth/internal/observability"
)

//go:embed templates/*.html
var templateFS embed.FS

const shutdownTimeout = 10 * time.Second

// Options configures the dashboard server.
type Options struct {
	ChartCacheTTL time.Duration
	Metrics       *observability.Metrics
}

// Server is the dashboard web server. It only reads from its snapshot.
type Server struct {
	snap    *core.Snapshot
	router  *gin.Engine
	charts  *chartCache
	metrics *observability.Metrics
}

// NewServer creates a dashboard server over a loaded snapshot.
func NewServer(snap *core.Snapshot, opts Options) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse dashboard templates: %w", err)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), requestID(), observeRequests(opts.Metrics))
	router.SetHTMLTemplate(tmpl)

	s := &Server{
		snap:    snap,
		router:  router,
		charts:  newChartCache(opts.ChartCacheTTL, opts.Metrics),
		metrics: opts.Metrics,
	}
	opts.Metrics.SetSnapshot(snap.Summary())

	// Web routes
	router.GET("/", s.handleIndex)
	router.GET("/healthz", s.handleHealthz)
	router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))

	// API routes
	api := router.Group("/api")
	{
		api.GET("/species", s.handleSpecies)
		api.GET("/summary", s.handleSummary)
		api.GET("/charts/proportions", s.handleProportionChart)
		api.GET("/charts/steward", s.handleStewardChart)
	}

	return s, nil
}

// Handler returns the HTTP handler with response compression applied.
func (s *Server) Handler() http.Handler {
	return handlers.CompressHandler(s.router)
}

// Run serves the dashboard until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	contract.LogInfo("🌐 Dashboard listening on %s", addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("dashboard server: %w", err)
	case <-ctx.Done():
	}

	contract.LogInfo("🛑 Shutting down dashboard")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown dashboard server: %w", err)
	}
	s.charts.flush()
	return nil
}
