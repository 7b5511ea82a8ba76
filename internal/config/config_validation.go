// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.MaxSessions <= 0 {
		return fmt.Errorf("%w: max sessions must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.DB.DSN != "" {
		switch cfg.Storage.DB.Driver {
		case DriverPostgres, DriverSQLite:
		default:
			return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
		}
	}

	if cfg.Server.MaxUploadSize < 0 || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

// UsesDefaultSignKey reports whether the insecure development key is in effect.
func (cfg *StructuredConfig) UsesDefaultSignKey() bool {
	return cfg.App.TokenSignKey == DefaultTokenSignKey
}
