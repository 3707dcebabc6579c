package database

import (
	"database/sql"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

const (
	migrationsDriver  = "pgx"
	migrationsDialect = "postgres"
)

func MigrateDatabase(databaseURL string, migrations fs.FS, dir string) error {
	db, err := sql.Open(migrationsDriver, databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations)

	if err := goose.SetDialect(migrationsDialect); err != nil {
		return err
	}

	if err := goose.Up(db, dir); err != nil {
		return err
	}

	return nil
}
