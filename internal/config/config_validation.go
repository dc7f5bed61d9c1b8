// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// validateServer checks that the merged configuration can start the server.
func (cfg *StructuredConfig) validateServer() error {
	dsn := cfg.Storage.DB.DSN
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
	case strings.HasPrefix(dsn, "mongodb://"), strings.HasPrefix(dsn, "mongodb+srv://"):
		if cfg.Storage.DB.Name == "" {
			return fmt.Errorf("%w: mongodb requires a database name", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unsupported DSN %q", ErrInvalidStorageConfigs, dsn)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key and duration are required", ErrInvalidAppConfigs)
	}
	if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost %d", ErrInvalidAppConfigs, cfg.App.BcryptCost)
	}
	if cfg.App.ResetOTPTTL <= 0 {
		return fmt.Errorf("%w: reset OTP lifetime must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.EventCount < 0 {
		return fmt.Errorf("%w: event count must not be negative", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: listen address is required", ErrInvalidServerConfigs)
	}
	if cfg.Server.OTPRatePerMinute <= 0 || cfg.Server.OTPBurst <= 0 {
		return fmt.Errorf("%w: OTP rate and burst must be positive", ErrInvalidServerConfigs)
	}
	if _, err := cfg.Server.TrustedProxyPrefixes(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}

	if cfg.Mail.Host != "" && cfg.Mail.From == "" {
		return ErrInvalidMailConfigs
	}

	if cfg.Workers.JanitorInterval <= 0 || cfg.Workers.UnverifiedRetention <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
