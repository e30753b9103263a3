package main

import (
	"context"
	"database/sql"
	"grid-dispatch-service/internal/adapters/repositories"
	"grid-dispatch-service/internal/config"
	"grid-dispatch-service/internal/platform/db"
	"grid-dispatch-service/internal/ports"
	"log"
)

// dbtool initializes the layout schema and loads the seed file, then lists
// what the store now holds.
func main() {
	cfg := config.Load()

	var (
		conn    *sql.DB
		dialect repositories.Dialect
		err     error
	)
	if cfg.DatabaseURL != "" {
		conn, err = db.OpenPostgres(cfg.DatabaseURL)
		dialect = repositories.DialectPostgres
	} else {
		log.Printf("DATABASE_URL not set, using sqlite path=%s", cfg.DBPath)
		conn, err = db.OpenSqlite(cfg.DBPath)
		dialect = repositories.DialectSqlite
	}
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	initAndSeed(conn, cfg.SeedPath, dialect)

	var repo ports.LayoutRepository
	if dialect == repositories.DialectPostgres {
		repo = repositories.NewSQLLayoutRepository(conn)
	} else {
		repo = repositories.NewSqliteLayoutRepository(conn)
	}
	names, err := repo.ListLayouts(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("layouts available: %v", names)
}

func initAndSeed(conn *sql.DB, seedPath string, dialect repositories.Dialect) {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Printf("Seeding database from %s...", seedPath)
	if err := repositories.SeedFromYAML(conn, seedPath, dialect); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
