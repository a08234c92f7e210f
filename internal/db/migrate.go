package db

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// RunMigrations applies all pending cert store migrations from the given
// directory. It is a no-op when the database URL is empty.
func RunMigrations(databaseURL, migrationsDir string) error {
	if databaseURL == "" {
		return nil
	}

	conn, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("open cert database: %w", err)
	}
	defer conn.Close()

	if err := goose.Up(conn, migrationsDir); err != nil {
		return fmt.Errorf("run cert migrations: %w", err)
	}

	return nil
}
