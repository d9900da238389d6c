package config

import (
	"fmt"
	"strings"
)

// Storage drivers selected by [DB.Driver].
const (
	DriverMemory   = "memory"
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// ServerConfig is the Message Store configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	Server  Server
	Storage Storage
	Log     Log
}

// GetServerConfig builds and validates the server view of the merged
// structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		Server:  cfg.Server,
		Storage: cfg.Storage,
		Log:     cfg.Log,
	}

	return serverCfg, serverCfg.validate()
}

// Driver returns the database/sql driver name for the DSN and the data
// source to open with it. An empty DSN selects the in-memory store.
func (db DB) Driver() (driver string, dataSource string, err error) {
	dsn := strings.TrimSpace(db.DSN)

	switch {
	case dsn == "":
		return DriverMemory, "", nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DriverPostgres, dsn, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		path := strings.TrimPrefix(dsn, "sqlite://")
		if path == "" {
			return "", "", fmt.Errorf("%w: empty sqlite path", ErrInvalidStorageConfigs)
		}
		return DriverSQLite, path, nil
	case strings.HasPrefix(dsn, "file:"):
		return DriverSQLite, dsn, nil
	default:
		return "", "", fmt.Errorf("%w: unsupported DSN scheme", ErrInvalidStorageConfigs)
	}
}
