package db

import (
	"context"
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// TableEnv is substituted into the embedded migrations, so the record table
// follows the configured name.
const TableEnv = "INDICATORS_TABLE"

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies the embedded migrations for the given record table.
func Migrate(ctx context.Context, pool *pgxpool.Pool, table string) error {
	if err := os.Setenv(TableEnv, table); err != nil {
		return fmt.Errorf("failed to export table name: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	defer func() { _ = sqlDB.Close() }()

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}
	goose.SetTableName(VersionTable(table))
	if err := goose.UpContext(ctx, sqlDB, "migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// VersionTable names the goose bookkeeping table for a record table. goose
// does not quote it, so anything outside [a-z0-9_] becomes an underscore.
func VersionTable(table string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		}
		return '_'
	}, table)
	return safe + "_goose_version"
}
