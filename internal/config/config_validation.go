// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"time"
)

// Defaults applied when no source provided a value.
const (
	DefaultHTTPAddress    = "localhost:8080"
	DefaultDatabaseDSN    = "comments.sqlite3"
	DefaultRequestTimeout = 30 * time.Second
)

// applyDefaults fills any field of the merged configuration that is still
// zero after all sources have been considered. Called by the builder before
// validation so the server can start with no flags or env at all.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDatabaseDSN
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || !strings.Contains(cfg.Server.HTTPAddress, ":") {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
