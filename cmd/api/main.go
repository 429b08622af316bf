package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"

	"github.com/clinicops/appointment-api/internal/api/router"
	"github.com/clinicops/appointment-api/internal/appointments"
	appconfig "github.com/clinicops/appointment-api/internal/config"
	"github.com/clinicops/appointment-api/internal/observability/metrics"
	"github.com/clinicops/appointment-api/internal/patients"
	"github.com/clinicops/appointment-api/internal/scheduling"
	"github.com/clinicops/appointment-api/pkg/logging"
)

func main() {
	// Local development convenience; ignored when no .env exists.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting appointment API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	metricsHandler, clinicMetrics := setupMetrics()

	directory, ledger := buildStores(context.Background(), cfg, logger)

	patientsHandler := patients.NewHandler(directory, logger, clinicMetrics)
	schedulingHandler := scheduling.NewHandler(
		scheduling.NewSpecialityDirectory(),
		scheduling.NewSlotGeneratorWith(cfg.SlotCount, cfg.SlotWindowDays),
		logger,
		clinicMetrics,
	)
	appointmentsHandler := appointments.NewHandler(ledger, logger, clinicMetrics)

	r := router.New(&router.Config{
		Logger:              logger,
		PatientsHandler:     patientsHandler,
		SchedulingHandler:   schedulingHandler,
		AppointmentsHandler: appointmentsHandler,
		MetricsHandler:      metricsHandler,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}

// setupMetrics wires a private registry so the exposition endpoint only
// carries process collectors and the clinic counters.
func setupMetrics() (http.Handler, *metrics.ClinicMetrics) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewClinicMetrics(reg)
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), m
}

// buildStores selects the persistence backend from configuration.
// Postgres wins over Redis, Redis over the JSON file, and with nothing
// configured both stores live in process memory.
func buildStores(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) (patients.Directory, appointments.Ledger) {
	if cfg.DatabaseURL != "" {
		if pool := connectPostgresPool(ctx, cfg.DatabaseURL, logger); pool != nil {
			logger.Info("using postgres storage")
			return patients.NewPostgresDirectory(pool), appointments.NewPostgresLedger(pool)
		}
		logger.Warn("postgres unavailable, falling back to in-memory storage")
	}

	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unavailable, falling back to in-memory storage", "error", err)
		} else {
			logger.Info("using redis storage", "addr", cfg.RedisAddr)
			tracer := otel.Tracer("appointment-api")
			return patients.NewRedisDirectory(client, tracer), appointments.NewRedisLedger(client, tracer)
		}
	}

	if cfg.PatientsFile != "" {
		logger.Info("using file-backed patient directory", "path", cfg.PatientsFile)
		return patients.NewFileDirectory(cfg.PatientsFile), appointments.NewInMemoryLedger()
	}

	logger.Info("using in-memory storage")
	return patients.NewInMemoryDirectory(), appointments.NewInMemoryLedger()
}

// connectPostgresPool returns nil when the URL is empty or the database
// cannot be reached, leaving backend selection to the caller.
func connectPostgresPool(ctx context.Context, databaseURL string, logger *logging.Logger) *pgxpool.Pool {
	if databaseURL == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		logger.Error("failed to create postgres pool", "error", err)
		return nil
	}
	if err := pool.Ping(ctx); err != nil {
		logger.Error("failed to ping postgres", "error", err)
		pool.Close()
		return nil
	}
	return pool
}
