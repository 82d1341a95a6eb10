package migration

import (
	"database/sql"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

// Migrator wraps golang-migrate with structured logging.
type Migrator struct {
	m   *migrate.Migrate
	log *zap.Logger
}

// New builds a Migrator on top of an existing postgres connection.
func New(db *sql.DB, migrationsPath string, log *zap.Logger) (*Migrator, error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"postgres",
		driver,
	)
	if err != nil {
		return nil, fmt.Errorf("create migrate instance: %w", err)
	}

	return &Migrator{m: m, log: log}, nil
}

// Up applies all pending migrations.
func (g *Migrator) Up() error {
	g.log.Info("Applying pending migrations")

	err := g.m.Up()
	if err == migrate.ErrNoChange {
		g.log.Info("No migrations to apply")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration up failed: %w", err)
	}

	version, dirty, err := g.m.Version()
	if err != nil {
		return fmt.Errorf("read migration version: %w", err)
	}
	g.log.Info("Migrations applied",
		zap.Uint("version", version),
		zap.Bool("dirty", dirty),
	)
	return nil
}

// Down rolls back every applied migration.
func (g *Migrator) Down() error {
	g.log.Info("Rolling back all migrations")

	err := g.m.Down()
	if err == migrate.ErrNoChange {
		g.log.Info("No migrations to roll back")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration down failed: %w", err)
	}

	g.log.Info("All migrations rolled back")
	return nil
}

// Steps applies n migrations; negative n rolls back.
func (g *Migrator) Steps(n int) error {
	g.log.Info("Applying migration steps", zap.Int("steps", n))

	err := g.m.Steps(n)
	if err == migrate.ErrNoChange {
		g.log.Info("No migrations to apply")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration steps failed: %w", err)
	}

	version, dirty, err := g.m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return fmt.Errorf("read migration version: %w", err)
	}
	g.log.Info("Migration steps applied",
		zap.Uint("version", version),
		zap.Bool("dirty", dirty),
	)
	return nil
}

// GoTo migrates up or down to an exact version.
func (g *Migrator) GoTo(version uint) error {
	g.log.Info("Migrating to version", zap.Uint("target_version", version))

	err := g.m.Migrate(version)
	if err == migrate.ErrNoChange {
		g.log.Info("Already at target version")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migrate to version %d failed: %w", version, err)
	}

	g.log.Info("Migrated to version", zap.Uint("version", version))
	return nil
}

// Version reports the current schema version and whether it is dirty.
// A database with no applied migrations reports version 0.
func (g *Migrator) Version() (uint, bool, error) {
	version, dirty, err := g.m.Version()
	if err == migrate.ErrNilVersion {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("read migration version: %w", err)
	}
	return version, dirty, nil
}

// Force overwrites the recorded version without running any SQL.
// Only useful for repairing a dirty schema_migrations row.
func (g *Migrator) Force(version int) error {
	g.log.Warn("Forcing migration version", zap.Int("version", version))

	if err := g.m.Force(version); err != nil {
		return fmt.Errorf("force version %d: %w", version, err)
	}

	g.log.Info("Migration version forced", zap.Int("version", version))
	return nil
}

// Drop removes every table in the database, data included.
func (g *Migrator) Drop() error {
	g.log.Warn("Dropping database, all data will be lost")

	if err := g.m.Drop(); err != nil {
		return fmt.Errorf("drop database: %w", err)
	}

	g.log.Info("Database dropped")
	return nil
}

// Close releases the source and database handles.
func (g *Migrator) Close() error {
	sourceErr, dbErr := g.m.Close()
	if sourceErr != nil {
		return fmt.Errorf("close migration source: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("close migration database: %w", dbErr)
	}
	return nil
}
