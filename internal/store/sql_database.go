package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-messenger/internal/logger"
	"github.com/MKhiriev/go-messenger/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB wraps a database/sql pool with the dialect-specific pieces the SQL
// storage needs: the migration dialect, a squirrel builder with the right
// placeholder format and a driver error classifier.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ErrorClassificator turns a driver error into a store sentinel when the
// error has a domain meaning, and returns nil otherwise.
type ErrorClassificator interface {
	Classify(err error) error
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// classify maps err through the classifier, falling back to wrapping it in
// [ErrExecutingQuery].
func (db *DB) classify(err error) error {
	if db.errorClassificator != nil {
		if mapped := db.errorClassificator.Classify(err); mapped != nil {
			return mapped
		}
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
