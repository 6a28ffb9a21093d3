// Package iohttp serves the read-only catalog API over HTTP. It is
// an impure I/O package wrapping gin handlers around pgx queries.
package iohttp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/privacyui/pupdb/pkg/config"
	"github.com/privacyui/pupdb/pkg/db"
	"golang.org/x/sync/errgroup"
)

// Server is the catalog HTTP API server.
type Server struct {
	cfg    *config.Config
	router *gin.Engine
}

// New creates a Server with all routes registered.
func New(cfg *config.Config, op db.Operator) *Server {
	h := &handlers{store: NewStore(op)}

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "X-Requested-With"},
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/categories", h.getCategories)
		api.GET("/categories/:slug/main-pattern", h.getMainPattern)
		api.GET("/patterns", h.getPatterns)
		api.GET("/patterns/category/:slug", h.getCategoryPatterns)
		api.GET("/patterns/:id", h.getPattern)
		api.GET("/search", h.search)
	}

	return &Server{cfg: cfg, router: router}
}

// Run starts the server and blocks until the context is canceled
// or the listener fails. On cancellation the server gets a grace
// period to finish in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d",
		s.cfg.Server.Host, s.cfg.Server.Port)

	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Starting API server", "addr", addr)
		err := srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		if err != nil {
			return StartError(addr, err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		slog.Info("Shutting down API server")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(), 10*time.Second,
		)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
