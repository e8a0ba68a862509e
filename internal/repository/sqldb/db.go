package sqldb

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Supported database/sql driver names.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Open connects to the database and applies all pending migrations.
func Open(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	if driver == DriverSQLite {
		// sqlite serialises writers; an in-memory database also lives on a single connection.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", driver, err)
	}

	if err := Migrate(ctx, db.DB, driver); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate runs the embedded goose migrations.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(gooseLogger{})

	if err := goose.SetDialect(driver); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// statementBuilder returns a squirrel builder with the driver's placeholder style.
func statementBuilder(driver string) sq.StatementBuilderType {
	if driver == DriverPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// gooseLogger forwards goose output to zerolog.
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...any) {
	log.Info().Str("component", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (gooseLogger) Fatalf(format string, v ...any) {
	log.Fatal().Str("component", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
