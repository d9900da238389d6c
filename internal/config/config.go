// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Defaults applied after every other source has been merged.
const (
	DefaultServerAddress         = "localhost:8080"
	DefaultServerRequestTimeout  = 30 * time.Second
	DefaultAdapterAddress        = "http://localhost:8080"
	DefaultAdapterRequestTimeout = 10 * time.Second
	DefaultPollInterval          = 5 * time.Second
	DefaultLogLevel              = "debug"
)

// StructuredConfig is the top-level configuration container shared by the
// client and the server binaries.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage holds the Message Store persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and timeout of the Message Store.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the Message Store endpoint.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background job settings of the client.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds logger settings for both binaries.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration of the Message Store backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the connection string of the Message Store database.
type DB struct {
	// DSN selects the backend: empty keeps everything in memory,
	// "postgres://..." uses PostgreSQL and "sqlite://path" or "file:path"
	// uses SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address the server listens on ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading and writing a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the outbound connection settings used by the client.
type Adapter struct {
	// HTTPAddress is the Message Store base URL. A bare "host:port" is
	// accepted and gets an http:// scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds client background job settings.
type Workers struct {
	// PollInterval is the period of the inbox poller.
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// Log holds logger settings.
type Log struct {
	// File is where the client writes its log; the terminal belongs to the
	// UI. Empty means a file next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources using the process arguments.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(commandLineArgs())
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultServerRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterRequestTimeout,
		},
		Workers: Workers{PollInterval: DefaultPollInterval},
		Log:     Log{Level: DefaultLogLevel},
	}
}
