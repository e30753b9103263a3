package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// ErrLayoutNotFound is returned when no layout is stored under the requested name.
var ErrLayoutNotFound = errors.New("layout not found")

// SQLite-backed implementation of the LayoutRepository port.
type SqliteLayoutRepository struct{ DB *sql.DB }

func NewSqliteLayoutRepository(db *sql.DB) *SqliteLayoutRepository {
	return &SqliteLayoutRepository{DB: db}
}

// Return the rows of the named layout.
func (s *SqliteLayoutRepository) GetLayout(ctx context.Context, name string) ([]string, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite layout repository: DB is nil")
	}

	return getLayout(ctx, s.DB, `
	SELECT rows_text
	FROM layouts
	WHERE name = ?;
	`, name)
}

// Return all stored layout names.
func (s *SqliteLayoutRepository) ListLayouts(ctx context.Context) ([]string, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite layout repository: DB is nil")
	}

	return listLayouts(ctx, s.DB)
}

func getLayout(ctx context.Context, db *sql.DB, query string, name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("get layout: name must not be empty")
	}

	var text string
	err := db.QueryRowContext(ctx, query, name).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get layout %q: %w", name, ErrLayoutNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get layout %q: query layouts table: %w", name, err)
	}

	return splitRows(text), nil
}

func listLayouts(ctx context.Context, db *sql.DB) ([]string, error) {
	query := `
	SELECT name
	FROM layouts
	ORDER BY name;
	`
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list layouts: query layouts table: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0, 8)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("list layouts: scan row: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list layouts: row iteration: %w", err)
	}

	return names, nil
}
