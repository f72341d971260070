// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// StructuredConfig is the top-level configuration container for the comment
// board application. It aggregates all sub-configurations and is populated by
// merging values from command-line flags, environment variables, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file. When
	// non-empty, the file is parsed and merged beneath the values already
	// loaded from flags and environment variables.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration of the persistence backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite database backend.
type DB struct {
	// DSN is the SQLite data source name: the path of the on-disk database
	// file (e.g. "comments.sqlite3") or ":memory:" for an ephemeral store.
	// The file is created on first start when it does not exist.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "localhost:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig assembles the final application configuration.
//
// Sources are merged with the following precedence, highest first:
// command-line flags, environment variables, JSON file. Defaults are applied
// afterwards for anything still unset.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags().
		withEnv().
		withJSON().
		build()
}
