package main

import (
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/Gravirei/HabitFlow-sub005/internal"
	"github.com/Gravirei/HabitFlow-sub005/internal/api"
	"github.com/Gravirei/HabitFlow-sub005/internal/auth"
	"github.com/Gravirei/HabitFlow-sub005/internal/config"
	"github.com/Gravirei/HabitFlow-sub005/internal/insights"
	"github.com/Gravirei/HabitFlow-sub005/internal/storage"
)

type app struct {
	logger      internal.Logger
	sessionRepo storage.SessionRepository
	engine      *insights.Engine
}

func (a *app) Logger() internal.Logger                { return a.logger }
func (a *app) SessionRepo() storage.SessionRepository { return a.sessionRepo }
func (a *app) Insights() *insights.Engine             { return a.engine }

func main() {
	cfg := config.Load()

	logger, err := internal.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	var (
		sessionRepo storage.SessionRepository
		cacheStore  insights.CacheStore
		closer      io.Closer
		storageErr  error
	)
	switch cfg.DBType {
	case "postgres":
		sessionRepo, cacheStore, closer, storageErr = storage.NewPostgresRepositories(cfg.DBDSN, logger)
	default:
		if dir := filepath.Dir(cfg.FileSessions); dir != "." {
			_ = os.MkdirAll(dir, 0755)
		}
		sessionRepo, cacheStore, closer, storageErr = storage.NewFileRepositories(cfg.FileSessions, cfg.FileCache, logger)
	}
	if storageErr != nil {
		logger.Fatalf("failed to init %s storage: %v", cfg.DBType, storageErr)
	}

	engine := insights.NewEngine(cacheStore, logger, insights.WithTTL(cfg.InsightsTTL))
	a := &app{logger: logger, sessionRepo: sessionRepo, engine: engine}

	var provider auth.Provider
	if cfg.Env == "development" {
		provider = auth.NewLocalAuthProvider(cfg.AuthToken, logger)
	} else {
		provider = auth.NewRemoteAuthProvider(cfg.AuthServiceURL, logger)
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(api.RequestIDMiddleware())
	r.Use(auth.AuthMiddleware(provider, cfg))

	r.POST("/api/sessions", api.PostSession(a))
	r.GET("/api/sessions", api.GetSessions(a))
	r.GET("/api/insights", api.GetInsights(a))
	r.DELETE("/api/insights/cache", api.DeleteInsightsCache(a))

	go func() {
		logger.Infof("server running on :%s", cfg.Port)
		if err := r.Run(":" + cfg.Port); err != nil {
			logger.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down, flushing storage")
	if err := closer.Close(); err != nil {
		logger.Errorf("error closing storage: %v", err)
	}
}
