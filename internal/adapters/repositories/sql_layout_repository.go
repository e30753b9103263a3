package repositories

import (
	"context"
	"database/sql"
	"errors"
	"grid-dispatch-service/internal/platform/obs"
)

// SQLLayoutRepository is the Postgres (pgx) implementation of the LayoutRepository port.
type SQLLayoutRepository struct {
	DB *sql.DB
}

func NewSQLLayoutRepository(db *sql.DB) *SQLLayoutRepository {
	return &SQLLayoutRepository{DB: db}
}

func (s *SQLLayoutRepository) GetLayout(ctx context.Context, name string) (_ []string, err error) {
	defer obs.Time(ctx, "layouts.GetLayout")(&err)

	if s.DB == nil {
		return nil, errors.New("layout repository: db is nil")
	}

	return getLayout(ctx, s.DB, `
	SELECT rows_text
	FROM layouts
	WHERE name = $1;
	`, name)
}

func (s *SQLLayoutRepository) ListLayouts(ctx context.Context) (_ []string, err error) {
	defer obs.Time(ctx, "layouts.ListLayouts")(&err)

	if s.DB == nil {
		return nil, errors.New("layout repository: db is nil")
	}

	return listLayouts(ctx, s.DB)
}
