// Package main provides the entry point for the group directory server.
package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkravchenko/groupdir/internal/config"
	"github.com/mkravchenko/groupdir/internal/database"
	groupRouter "github.com/mkravchenko/groupdir/internal/group/router"
	"github.com/mkravchenko/groupdir/internal/health"
	"github.com/mkravchenko/groupdir/internal/middleware"
	"github.com/mkravchenko/groupdir/internal/principal"
	"github.com/mkravchenko/groupdir/pkg/logger"
)

func main() {
	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	appLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer appLogger.Sync() //nolint:errcheck // flush on shutdown, nowhere to report

	db, err := database.New()
	if err != nil {
		appLogger.Fatalw("failed to connect to database", "error", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			appLogger.Warnw("failed to close database", "error", err)
		}
	}()

	if err := database.Migrate(db); err != nil {
		appLogger.Fatalw("failed to apply migrations", "error", err)
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Recovery(appLogger))
	r.Use(middleware.Logger(appLogger))
	r.Use(principal.Resolve())

	r.GET("/health", health.New(db, appLogger).Check)
	groupRouter.RegisterRoutes(r, db, cfg.Directory, appLogger)

	server := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	appLogger.Infow("starting server", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		appLogger.Fatalw("server stopped", "error", err)
	}
}
