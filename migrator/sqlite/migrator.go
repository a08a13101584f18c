package sqlite

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
	log "github.com/sirupsen/logrus"
)

//go:embed sql/*.sql
var migrationFiles embed.FS

// Migrate applies the embedded automation schema. Already applied versions are skipped.
func Migrate(db *sql.DB) error {
	log.Debug("Applying database migrations")

	migrator := sqlmigrator.New(db, darwin.SqliteDialect{})
	if err := migrator.Migrate(migrationFiles, "sql"); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
