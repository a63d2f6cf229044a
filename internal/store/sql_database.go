package store

import (
	"database/sql"

	"github.com/keybridge-io/keybridge/internal/logger"
	"github.com/keybridge-io/keybridge/migrations"
)

// DB wraps the raw database handle together with the driver-specific error
// classifier and the dialect name used by the migration runner.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	dialect            string
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
