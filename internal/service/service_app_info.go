// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/lara-connect/internal/config"
	"github.com/MKhiriev/lara-connect/internal/logger"
	"github.com/MKhiriev/lara-connect/models"
)

type appInfoService struct {
	version    models.VersionResponse
	eventCount models.EventCountResponse

	logger *logger.Logger
}

// NewAppInfoService answers the version and event count routes. The version is required so a
// deployed server can always be identified.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		version:    models.VersionResponse{Version: cfg.Version},
		eventCount: models.EventCountResponse{Count: cfg.EventCount},
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) models.VersionResponse {
	return s.version
}

func (s *appInfoService) GetEventCount(ctx context.Context) models.EventCountResponse {
	return s.eventCount
}
