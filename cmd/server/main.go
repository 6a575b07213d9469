package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	authzhandler "usip/internal/authz/handler"
	authzservice "usip/internal/authz/service"
	"usip/internal/config"
	credentialrepo "usip/internal/credential/repository"
	"usip/internal/db"
	"usip/internal/devdata"
	healthhandler "usip/internal/health/handler"
	membershiprepo "usip/internal/membership/repository"
	"usip/internal/server"
	"usip/internal/telemetry/otel"
	userrepo "usip/internal/user/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	providers, err := otel.NewProviders(ctx, cfg.OTLPEndpoint, "usip", cfg.OTLPInsecure)
	if err != nil {
		logger.Fatal("telemetry", zap.Error(err))
	}
	providers.SetGlobal()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown", zap.Error(err))
		}
	}()

	var (
		users       userrepo.Repository
		credentials credentialrepo.Repository
		memberships membershiprepo.Repository
		health      *healthhandler.Server
	)
	if cfg.DatabaseURL != "" {
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("db", zap.Error(err))
		}
		defer conn.Close()
		users = userrepo.NewPostgresRepository(conn)
		credentials = credentialrepo.NewPostgresRepository(conn)
		memberships = membershiprepo.NewPostgresRepository(conn)
		health = healthhandler.NewServer(conn)
	} else {
		logger.Warn("DATABASE_URL is not set; serving the built-in development dataset from memory")
		memUsers := userrepo.NewMemoryRepository()
		memCredentials := credentialrepo.NewMemoryRepository()
		memMemberships := membershiprepo.NewMemoryRepository()
		if err := devdata.Load(ctx, memUsers, memCredentials, memMemberships); err != nil {
			logger.Fatal("load development dataset", zap.Error(err))
		}
		users = memUsers
		credentials = memCredentials
		memberships = memMemberships
		health = healthhandler.NewServer(nil)
	}
	if cfg.UserCacheSize > 0 {
		users = userrepo.NewCachedRepository(users, cfg.UserCacheSize, cfg.CacheTTL())
	}

	svc := authzservice.NewService(credentials, users, memberships, logger)
	router := server.NewRouter(server.Deps{
		Authz:  authzhandler.NewServer(svc, logger),
		Health: health,
		Logger: logger,
	})

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}
	go func() {
		logger.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeoutDuration())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
	logger.Info("HTTP server stopped")
}

func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.LogLevel != "" {
		parsed, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		level = parsed
	}
	var zcfg zap.Config
	if cfg.Env == "production" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}
