package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "hrflow/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hrflow/internal/auth"
	"hrflow/internal/cache"
	"hrflow/internal/config"
	"hrflow/internal/db"
	"hrflow/internal/flow"
	"hrflow/internal/handler"
	"hrflow/internal/logger"
	"hrflow/internal/model"
	"hrflow/internal/navigation"
	"hrflow/internal/profile"
	"hrflow/internal/repository"
	"hrflow/internal/router"
	"hrflow/internal/service"
	"hrflow/internal/session"
)

// @title HR Flow API
// @version 1.0
// @description Backend for the attendance app: employee details, sessions and post-login routing.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	appLog := logger.New(logger.Config{Env: cfg.AppEnv, Level: cfg.LogLevel}).
		With().Str("app", cfg.AppName).Logger()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN, cfg.IsDevelopment())
	if err != nil {
		appLog.Fatal().Err(err).Msg("database init")
	}

	if cfg.ResetDB {
		appLog.Warn().Msg("RESET_DB=true detected, dropping employees table")
		if err := gormDB.Migrator().DropTable(&model.Employee{}); err != nil {
			appLog.Warn().Err(err).Msg("drop table failed (may not exist)")
		}
	}

	if err := gormDB.AutoMigrate(&model.Employee{}); err != nil {
		appLog.Fatal().Err(err).Msg("auto-migrate")
	}

	store := newCache(cfg, appLog)

	employeeRepo := repository.NewEmployeeRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(store)
	sessions := session.NewManager(store, cfg.SessionTTL)

	employeeService := service.NewEmployeeService(employeeRepo, store)
	authService := service.NewAuthService(employeeRepo, jwtService, tokenStore, sessions)

	fetcher, err := newFetcher(cfg, employeeService)
	if err != nil {
		appLog.Fatal().Err(err).Msg("profile fetcher")
	}

	routing := flow.New(fetcher, flow.HandoffFunc(
		func(ctx context.Context, h navigation.Handoff) error {
			appLog.Info().
				Str("emp_id", h.ID).
				Str("company", h.Company).
				Msg("employee handed off to client")
			return nil
		},
	), appLog)

	e := echo.New()
	e.HideBanner = true

	router.Register(e, appLog, jwtService, router.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Employee: handler.NewEmployeeHandler(employeeService, cfg.EmpAPIKey),
		Session:  handler.NewSessionHandler(sessions, routing),
		Seed:     handler.NewSeedHandler(employeeService),
	})

	appLog.Info().Str("url", swaggerURL(cfg)).Msg("swagger documentation available")

	go func() {
		addr := ":" + cfg.ServerPort
		appLog.Info().Str("addr", addr).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal().Err(err).Msg("server start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLog.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		appLog.Error().Err(err).Msg("server shutdown")
	}
	if c, ok := store.(*cache.Client); ok {
		if err := c.Close(); err != nil {
			appLog.Warn().Err(err).Msg("redis close")
		}
	}
}

// newCache uses redis when it answers and falls back to process memory
// otherwise. Sessions then do not survive a restart.
func newCache(cfg *config.Config, log zerolog.Logger) cache.Cache {
	if cfg.RedisAddr == "" {
		log.Info().Msg("REDIS_ADDR empty, using in-memory cache")
		return cache.NewMemory()
	}

	client := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, using in-memory cache")
		_ = client.Close()
		return cache.NewMemory()
	}
	return client
}

func newFetcher(cfg *config.Config, employees service.EmployeeService) (profile.Fetcher, error) {
	if cfg.Profile.Source == config.ProfileSourceHTTP {
		return profile.NewHTTPFetcher(profile.HTTPConfig{
			BaseURL:    cfg.Profile.BaseURL,
			APIKey:     cfg.EmpAPIKey,
			Timeout:    cfg.Profile.Timeout,
			RetryLimit: cfg.Profile.RetryLimit,
		})
	}
	return service.NewLocalFetcher(employees), nil
}

func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host + "/swagger/index.html"
}
