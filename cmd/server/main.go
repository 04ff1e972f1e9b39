package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/medlmo/gcpRSM/config"
	"github.com/medlmo/gcpRSM/internal/api/handler"
	"github.com/medlmo/gcpRSM/internal/api/router"
	"github.com/medlmo/gcpRSM/internal/authz"
	"github.com/medlmo/gcpRSM/internal/repository"
	"github.com/medlmo/gcpRSM/internal/service"
	"github.com/medlmo/gcpRSM/pkg/database"
	applogger "github.com/medlmo/gcpRSM/pkg/logger"
	"github.com/medlmo/gcpRSM/pkg/redis"
	"github.com/medlmo/gcpRSM/pkg/session"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.New(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	logger.Info("database connected")

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("getting underlying sql.DB failed", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("database migration failed", zap.Error(err))
	}

	// Redis is optional: without it sessions live in process memory
	// and rate limiting is disabled.
	var sessions session.Store
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis unavailable, falling back to in-memory sessions", zap.Error(err))
		rdb = nil
		sessions = session.NewMemoryStore(cfg.Session.TTL)
	} else {
		sessions = session.NewRedisStore(rdb, cfg.Session.TTL)
	}

	policy := authz.NewPolicy()

	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, sessions, logger)
	h := handler.NewHandler(cfg, svc)

	// Seed the first administrator on an empty users table.
	bootCtx, bootCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := svc.User.Bootstrap(bootCtx); err != nil {
		logger.Error("administrator bootstrap failed", zap.Error(err))
	}
	bootCancel()

	engine := router.Setup(cfg, h, svc.Auth, policy, rdb, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutdown signal received", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("server stopped")
}
