package db

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/kineticKshitij/MajorProject-V1-sub000/pkg/logger"
)

// Migrate applies pending schema migrations from the migrations directory.
// A no-change run is not an error.
func Migrate(databaseURL string) error {
	m, err := migrate.New("file://migrations", databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Debug("No schema changes to apply")
			return nil
		}
		return err
	}
	logger.Info("Schema migrations applied")
	return nil
}
