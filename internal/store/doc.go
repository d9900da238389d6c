// Package store persists Message Store users and messages.
//
// [NewStorage] picks the backend from the configured DSN: an in-memory
// store for an empty DSN, PostgreSQL through the pgx stdlib driver, or
// SQLite through go-sqlite3. SQL backends share one [MessageStorage]
// implementation; queries are built with squirrel using the placeholder
// format of the dialect.
package store
