// Package devserver is an in-process implementation of the clinic backend,
// used for local development and by the client's end-to-end tests.
package devserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"gorm.io/gorm"

	"medclinic-client/internal/config"
	"medclinic-client/internal/devserver/middleware"
	"medclinic-client/internal/devserver/routes"
	"medclinic-client/internal/devserver/store"
)

// Server bundles the router and its database.
type Server struct {
	DB     *gorm.DB
	Router *gin.Engine
	cfg    config.DevServerConfig
	logger zerolog.Logger
}

// New opens the database, seeds the administrator and builds the router.
func New(cfg config.DevServerConfig, logger zerolog.Logger) (*Server, error) {
	db, err := store.Open(store.DatabaseConfig{DSN: cfg.DatabaseDSN})
	if err != nil {
		return nil, err
	}
	if err := store.SeedAdmin(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), middleware.Logger(logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	routes.SetupRoutes(router, db, &cfg)

	return &Server{DB: db, Router: router, cfg: cfg, logger: logger}, nil
}

// Handler returns the traced HTTP handler.
func (s *Server) Handler() http.Handler {
	return otelhttp.NewHandler(s.Router, "devserver")
}

// Run serves on the configured port until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", s.cfg.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", srv.Addr).Msg("devserver listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info().Msg("devserver shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
