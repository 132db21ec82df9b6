package dbpkg

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // postgres:// and postgresql:// targets
	_ "github.com/golang-migrate/migrate/v4/source/file"       // file:// sources
)

// Migrate applies every pending up migration found in dir to the database at source
// and returns the resulting schema version.
func Migrate(dir, source string) (uint, error) {
	return runMigrations(dir, source, func(m *migrate.Migrate) error {
		return m.Up()
	})
}

// Rollback reverts the last steps applied migrations using their down files.
func Rollback(dir, source string, steps int) (uint, error) {
	if steps <= 0 {
		return 0, fmt.Errorf("steps must be positive, got %d", steps)
	}

	return runMigrations(dir, source, func(m *migrate.Migrate) error {
		return m.Steps(-steps)
	})
}

func runMigrations(dir, source string, run func(m *migrate.Migrate) error) (uint, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return 0, err
	}

	m, err := migrate.New("file://"+filepath.ToSlash(abs), source)
	if err != nil {
		return 0, fmt.Errorf("migrate.New: %w", err)
	}
	defer m.Close()

	if err := run(m); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, err
	}

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}

	if err != nil {
		return 0, err
	}

	if dirty {
		return version, fmt.Errorf("schema version %d is dirty", version)
	}

	return version, nil
}
