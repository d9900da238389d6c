package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-messenger/internal/config"
	"github.com/MKhiriev/go-messenger/internal/logger"
)

// NewStorage connects the backend selected by cfg.DB, runs migrations for
// SQL backends and returns the storage.
func NewStorage(ctx context.Context, cfg config.Storage, log *logger.Logger) (MessageStorage, error) {
	driver, dataSource, err := cfg.DB.Driver()
	if err != nil {
		return nil, err
	}

	var db *DB
	switch driver {
	case config.DriverMemory:
		log.Info().Str("func", "NewStorage").Msg("using in-memory storage")
		return NewMemoryStorage(), nil
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, dataSource, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, dataSource, log)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDriver, driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return NewSQLStorage(db, log), nil
}
