package migration

import "database/sql"

// MigrationInterface is implemented by every schema/table bootstrap step.
type MigrationInterface interface {
	UpMigration(*sql.DB) error
}
