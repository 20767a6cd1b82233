package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/melodex/melodex/migrations"
)

// Migrate applies all pending embedded migrations.
func Migrate(ctx context.Context, dsn string) error {
	sqldb, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("platform/db: open for migrate: %w", err)
	}
	defer sqldb.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("platform/db: set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, sqldb, "."); err != nil {
		return fmt.Errorf("platform/db: migrate up: %w", err)
	}
	return nil
}
