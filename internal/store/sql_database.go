package store

import (
	"context"
	"database/sql"

	"github.com/everhold/everhold/internal/logger"
	"github.com/everhold/everhold/migrations"
)

type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// beginTx starts a transaction, retrying once when the driver reports a
// transient failure (connection loss, serialization rollback, lock
// contention). Anything classified [NonRetryable] is returned as-is.
func (db *DB) beginTx(ctx context.Context) (*sql.Tx, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil && db.errorClassificator.Classify(err) == Retryable {
		db.logger.Warn().Err(err).Msg("transient error beginning transaction, retrying once")
		tx, err = db.BeginTx(ctx, nil)
	}
	return tx, err
}
