// Package main is the entry point for the Footprints API server.
// Its sole responsibility is wiring dependencies together and starting the
// server. No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"github.com/tmarchal/footprints/backend/internal/config"
	"github.com/tmarchal/footprints/backend/internal/geocoder"
	"github.com/tmarchal/footprints/backend/internal/handler"
	"github.com/tmarchal/footprints/backend/internal/middleware"
	"github.com/tmarchal/footprints/backend/internal/repo"
	"github.com/tmarchal/footprints/backend/internal/service"
	"github.com/tmarchal/footprints/backend/internal/store"
	"github.com/tmarchal/footprints/backend/migrations"
)

// maxBodySize caps request bodies at 1 MiB; an import document of a few
// thousand visits stays well under that.
const maxBodySize = 1 << 20

func main() {
	// --- Config -----------------------------------------------------------
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Snapshot store ---------------------------------------------------
	kv, cleanup, err := openKV(cfg)
	if err != nil {
		slog.Error("failed to open snapshot store", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}
	defer cleanup()
	slog.Info("snapshot store ready", "driver", cfg.StoreDriver)

	st := store.New(kv, logger)
	if err := st.Load(context.Background()); err != nil {
		slog.Error("failed to load snapshots", "error", err)
		os.Exit(1)
	}

	// --- Services ---------------------------------------------------------
	nominatim := geocoder.NewClient(cfg.GeocoderBaseURL)
	visitSvc := service.NewVisitService(st)
	tagSvc := service.NewTagService(st)
	searchSvc := service.NewSearchService(nominatim.Search, logger)
	defer searchSvc.Stop()
	mapSvc := service.NewMapService(st)
	exportSvc := service.NewExportService(st)

	// --- Router -----------------------------------------------------------
	// Middleware order: RequestID → RealIP → Logger → CORS → body limit →
	// Recoverer.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxBodySize))
	r.Use(chimiddleware.Recoverer)

	server := handler.NewServer(visitSvc, tagSvc, searchSvc, mapSvc, exportSvc)
	r.Mount("/", server.Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// openKV builds the snapshot store selected by STORE_DRIVER and returns it
// with a cleanup function closing the underlying connections.
func openKV(cfg config.Config) (repo.KV, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return repo.NewRedisKV(client), func() { _ = client.Close() }, nil

	default: // config.DriverPostgres — config.Load rejected everything else
		if err := migrate(cfg.DatabaseURL); err != nil {
			return nil, nil, err
		}
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := pool.Ping(context.Background()); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return repo.NewPostgresKV(pool), pool.Close, nil
	}
}

// migrate brings the schema up to date through the embedded goose
// migrations. goose needs database/sql, so it gets its own short-lived
// connection via the pgx stdlib driver.
func migrate(databaseURL string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}
	if _, err := provider.Up(context.Background()); err != nil {
		return err
	}
	return nil
}
