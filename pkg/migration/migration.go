package migration

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

const (
	migrationsTable = "schema_migrations"
	lockTimeout     = 30 * time.Second
)

// Config holds the embedded migration files; the *.sql files must sit at the root of MigrationsFS.
type Config struct {
	MigrationsFS fs.FS
}

// Migrator brings the game schema up to the latest embedded version.
type Migrator struct {
	files  fs.FS
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewMigrator(config Config, pool *pgxpool.Pool, logger *zap.Logger) *Migrator {
	return &Migrator{
		files:  config.MigrationsFS,
		pool:   pool,
		logger: logger.Named("Migrator"),
	}
}

// Up applies every pending migration. An already current schema is not an error.
func (m *Migrator) Up() error {
	db := stdlib.OpenDBFromPool(m.pool)

	driver, err := postgres.WithInstance(db, &postgres.Config{MigrationsTable: migrationsTable})
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to create postgres migration driver: %w", err)
	}
	source, err := iofs.New(m.files, ".")
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to read embedded migrations: %w", err)
	}
	mg, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	mg.LockTimeout = lockTimeout
	defer func() {
		srcErr, dbErr := mg.Close()
		if srcErr != nil || dbErr != nil {
			m.logger.Warn("Failed to close migrator", zap.NamedError("source", srcErr), zap.NamedError("database", dbErr))
		}
	}()

	upErr := mg.Up()
	version, dirty, vErr := mg.Version()
	if vErr != nil && !errors.Is(vErr, migrate.ErrNilVersion) {
		m.logger.Warn("Failed to read schema version", zap.Error(vErr))
	}

	switch {
	case errors.Is(upErr, migrate.ErrNoChange):
		m.logger.Info("Game schema is up to date", zap.Uint("version", version))
		return nil
	case upErr != nil:
		m.logger.Error("Migration failed", zap.Uint("version", version), zap.Bool("dirty", dirty), zap.Error(upErr))
		return fmt.Errorf("failed to apply migrations: %w", upErr)
	}
	m.logger.Info("Game schema migrated", zap.Uint("version", version))
	return nil
}
