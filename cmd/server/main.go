package main

import (
	"context"
	"database/sql"
	"fmt"
	"grid-dispatch-service/internal/adapters/distance"
	"grid-dispatch-service/internal/adapters/events"
	"grid-dispatch-service/internal/adapters/repositories"
	"grid-dispatch-service/internal/api"
	"grid-dispatch-service/internal/config"
	"grid-dispatch-service/internal/domain"
	"grid-dispatch-service/internal/platform/db"
	"grid-dispatch-service/internal/platform/metrics"
	"grid-dispatch-service/internal/ports"
	"grid-dispatch-service/internal/services"
	"log"
	"net/http"
	"time"
)

// main is the application composition root.
// It wires concrete adapters (SQLite or Postgres, BFS, Redis) behind ports and starts the HTTP server.
func main() {
	cfg := config.Load()

	conn, dialect, repo, err := openLayoutStore(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	// Initialize schema and seed layouts on startup for local runs.
	if err := initAndSeed(conn, cfg.SeedPath, dialect); err != nil {
		log.Fatal(err)
	}

	rows, err := repo.GetLayout(context.Background(), cfg.MapName)
	if err != nil {
		log.Fatal(err)
	}
	grid, err := domain.NewGrid(rows)
	if err != nil {
		log.Fatalf("map %q: %v", cfg.MapName, err)
	}
	log.Printf("map loaded name=%s rows=%d cols=%d agents=%d", cfg.MapName, grid.Rows(), grid.Cols(), grid.Registry().Len())

	provider, err := distance.NewGridDistanceProvider(grid)
	if err != nil {
		log.Fatal(err)
	}

	var publisher ports.OrderPublisher = events.LogOrderPublisher{}
	if cfg.RedisURL != "" {
		rp, err := events.NewRedisOrderPublisher(cfg.RedisURL, cfg.OrderChannel)
		if err != nil {
			log.Fatal(err)
		}
		defer rp.Close()
		publisher = rp
		log.Printf("publishing orders channel=%s", cfg.OrderChannel)
	}

	svc, err := services.NewOrderService(grid, provider, publisher)
	if err != nil {
		log.Fatal(err)
	}

	metrics.RegisterDefault()
	limiter := api.NewLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	if limiter == nil {
		log.Println("rate limiting disabled (RATE_LIMIT_RPS <= 0)")
	}
	router := api.NewRouter(svc, limiter)

	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openLayoutStore prefers Postgres when DATABASE_URL is set and falls back to a local SQLite file.
func openLayoutStore(cfg config.Config) (*sql.DB, repositories.Dialect, ports.LayoutRepository, error) {
	if cfg.DatabaseURL != "" {
		conn, err := db.OpenPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, 0, nil, err
		}
		return conn, repositories.DialectPostgres, repositories.NewSQLLayoutRepository(conn), nil
	}

	conn, err := db.OpenSqlite(cfg.DBPath)
	if err != nil {
		return nil, 0, nil, err
	}
	return conn, repositories.DialectSqlite, repositories.NewSqliteLayoutRepository(conn), nil
}

func initAndSeed(conn *sql.DB, seedPath string, dialect repositories.Dialect) error {
	if err := repositories.InitSchema(conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromYAML(conn, seedPath, dialect); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
