package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// MigrationFiles holds the favourites schema, one up/down pair per version.
//
//go:embed *.sql
var MigrationFiles embed.FS

// schemaVersion reports where the favourites schema stands. Zero means no
// migration has been applied yet.
type schemaVersion struct {
	version uint
	dirty   bool
}

// RunMigrations brings the favourites table up to date. A dirty state left by
// an interrupted run is forced back to its last version first. With autoMigrate
// off it only reports the current version.
func RunMigrations(db *sql.DB, autoMigrate bool) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}

	before, err := currentVersion(m)
	if err != nil {
		return err
	}
	if before.dirty {
		if err := recoverDirty(m, before.version); err != nil {
			return err
		}
	}

	if !autoMigrate {
		slog.Info("[Migrations] Favourites schema left as is, auto_migrate is off",
			"version", before.version, "dirty", before.dirty)
		return nil
	}

	return applyPending(m, before.version)
}

func newMigrator(db *sql.DB) (*migrate.Migrate, error) {
	src, err := iofs.New(MigrationFiles, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded favourites migrations: %w", err)
	}
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	return m, nil
}

func currentVersion(m *migrate.Migrate) (schemaVersion, error) {
	v, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		return schemaVersion{}, nil
	case err != nil:
		return schemaVersion{}, fmt.Errorf("failed to read favourites schema version: %w", err)
	}
	return schemaVersion{version: v, dirty: dirty}, nil
}

// recoverDirty is safe because every favourites migration uses IF [NOT] EXISTS.
func recoverDirty(m *migrate.Migrate, version uint) error {
	slog.Warn("[Migrations] Favourites schema is dirty, forcing last version", "version", version)
	if err := m.Force(int(version)); err != nil {
		return fmt.Errorf("failed to force favourites schema to version %d: %w", version, err)
	}
	return nil
}

func applyPending(m *migrate.Migrate, from uint) error {
	err := m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		slog.Info("[Migrations] Favourites schema is current", "version", from)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to migrate favourites schema from version %d: %w", from, err)
	}

	after, err := currentVersion(m)
	if err != nil {
		return err
	}
	slog.Info("[Migrations] Favourites schema migrated", "from_version", from, "to_version", after.version)
	return nil
}
