package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hrflow/internal/cache"
	"hrflow/internal/config"
	"hrflow/internal/db"
	"hrflow/internal/logger"
	"hrflow/internal/model"
	"hrflow/internal/repository"
	"hrflow/internal/service"
)

func main() {
	source := flag.String("source", "employees.json", "path or http(s) URL of the employees JSON array")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	seedLog := logger.New(logger.Config{Env: cfg.AppEnv, Level: cfg.LogLevel})

	gormDB, err := db.NewMySQL(cfg.MySQLDSN, false)
	if err != nil {
		seedLog.Fatal().Err(err).Msg("connect to database")
	}
	if err := gormDB.AutoMigrate(&model.Employee{}); err != nil {
		seedLog.Fatal().Err(err).Msg("run migrations")
	}

	seedLog.Info().Str("source", *source).Msg("reading employees")
	body, err := open(*source)
	if err != nil {
		seedLog.Fatal().Err(err).Msg("open seed source")
	}
	defer body.Close()

	employees, skipped, err := parseEmployees(body, seedLog)
	if err != nil {
		seedLog.Fatal().Err(err).Msg("parse seed source")
	}
	if skipped > 0 {
		seedLog.Warn().Int("skipped", skipped).Msg("skipped invalid employees")
	}

	// Seeded rows evict their cached copies, so use the server's redis when set.
	var store cache.Cache = cache.NewMemory()
	if cfg.RedisAddr != "" {
		client := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer client.Close()
		store = client
	}
	svc := service.NewEmployeeService(repository.NewEmployeeRepository(gormDB), store)

	created, updated, err := svc.SeedEmployees(context.Background(), employees)
	if err != nil {
		seedLog.Fatal().Err(err).Int("created", created).Int("updated", updated).Msg("seed employees")
	}

	seedLog.Info().
		Int("created", created).
		Int("updated", updated).
		Int("total", created+updated).
		Msg("seed completed")
}

// open returns the seed payload from a local file or an http(s) URL.
func open(source string) (io.ReadCloser, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", source, err)
		}
		return f, nil
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(source)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", source, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: status code %d", source, resp.StatusCode)
	}
	return resp.Body, nil
}

// parseEmployees decodes the seed array. Invalid rows are logged, skipped
// and counted.
func parseEmployees(r io.Reader, log zerolog.Logger) ([]service.SeedEmployee, int, error) {
	var rows []service.SeedRow
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, 0, fmt.Errorf("decode employees: %w", err)
	}

	employees := make([]service.SeedEmployee, 0, len(rows))
	skipped := 0
	for i, row := range rows {
		employee, err := row.ToSeedEmployee()
		if err != nil {
			log.Warn().Err(err).Int("row", i).Str("emp_id", row.EmpID).Msg("skipping employee")
			skipped++
			continue
		}
		employees = append(employees, employee)
	}
	return employees, skipped, nil
}
