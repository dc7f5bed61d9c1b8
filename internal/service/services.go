// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/lara-connect/internal/config"
	"github.com/MKhiriev/lara-connect/internal/logger"
	"github.com/MKhiriev/lara-connect/internal/mailer"
	"github.com/MKhiriev/lara-connect/internal/store"
	"github.com/MKhiriev/lara-connect/internal/utils"
	"github.com/MKhiriev/lara-connect/internal/validators"
)

// Services groups the server-side services handed to the transport layer
// and the background workers.
type Services struct {
	AccountService       AccountService
	PasswordResetService PasswordResetService
	SessionService       SessionService
	FeedService          FeedService
	JanitorService       JanitorService
	AppInfoService       AppInfoService
}

// NewServices wires every service on top of storages.
func NewServices(storages *store.Storages, mail mailer.Mailer, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	validator := validators.NewRequestValidator()
	otpGenerator := NewOTPGenerator()
	sessionService := NewSessionService(cfg.App, logger)

	return &Services{
		AccountService: NewAccountService(
			storages.AccountRepository, sessionService, mail, otpGenerator, validator, cfg.App,
			cfg.Workers.UnverifiedRetention, logger),
		PasswordResetService: NewPasswordResetService(
			storages.AccountRepository, storages.PendingResetRepository, mail, otpGenerator, validator, cfg.App, logger),
		SessionService: sessionService,
		FeedService: NewFeedService(
			storages.PostRepository, storages.UpdateRepository, validator, utils.NewUUIDGenerator(), logger),
		JanitorService: NewJanitorService(
			storages.AccountRepository, storages.PendingResetRepository, storages.IsRetryable, cfg.Workers,
			logger.WithComponent("janitor")),
		AppInfoService: appInfoService,
	}, nil
}
