package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Dialect selects placeholder syntax for the few statements that differ.
type Dialect int

const (
	DialectSqlite Dialect = iota
	DialectPostgres
)

func (d Dialect) placeholder(n int) string {
	if d == DialectPostgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// Initialize the layout schema. The DDL is shared by SQLite and Postgres.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createLayoutsQuery := `
	CREATE TABLE IF NOT EXISTS layouts (
		name TEXT PRIMARY KEY,
		rows_text TEXT NOT NULL
	);
	`

	statements := []string{
		createLayoutsQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type LayoutSeed struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

type layoutSeedFile struct {
	Layouts []LayoutSeed `yaml:"layouts"`
}

// Populate the database with layouts from a YAML file. Existing layouts with
// the same name are replaced. Symbols are not parsed here; the grid does that
// when the layout is loaded.
func SeedFromYAML(db *sql.DB, yamlPath string, dialect Dialect) error {
	if db == nil {
		return errors.New("seed layouts: DB is nil")
	}

	bytes, err := os.ReadFile(yamlPath)
	if err != nil {
		return fmt.Errorf("seed layouts: read %q: %w", yamlPath, err)
	}

	var data layoutSeedFile
	if err := yaml.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed layouts: parse yaml: %w", err)
	}

	rows := make([]LayoutSeed, 0, len(data.Layouts))
	for i, item := range data.Layouts {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return fmt.Errorf("seed layouts: item at index %d: name cannot be empty", i+1)
		}
		if len(item.Rows) == 0 {
			return fmt.Errorf("seed layouts: layout %q: rows cannot be empty", name)
		}
		for j, r := range item.Rows {
			if strings.ContainsAny(r, "\r\n") {
				return fmt.Errorf("seed layouts: layout %q row %d: rows cannot contain line breaks", name, j+1)
			}
		}
		rows = append(rows, LayoutSeed{Name: name, Rows: item.Rows})
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed layouts: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := fmt.Sprintf(`
	INSERT INTO layouts (
		name,
		rows_text
	)
	VALUES (%s, %s)
	ON CONFLICT (name) DO UPDATE
	SET rows_text = excluded.rows_text;
	`, dialect.placeholder(1), dialect.placeholder(2))

	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed layouts: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, l := range rows {
		if _, err := stmt.Exec(l.Name, joinRows(l.Rows)); err != nil {
			return fmt.Errorf("seed layouts: insert name=%q: %w", l.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed layouts: commit tx: %w", err)
	}

	return nil
}

func joinRows(rows []string) string { return strings.Join(rows, "\n") }

func splitRows(text string) []string { return strings.Split(text, "\n") }
