// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/netip"

	"github.com/MKhiriev/lara-connect/internal/config"
	"github.com/MKhiriev/lara-connect/internal/logger"
	"github.com/MKhiriev/lara-connect/internal/service"
)

type Handler struct {
	services *service.Services
	limiter  *otpLimiter

	// trustedProxies are the peers whose forwarding headers are believed.
	trustedProxies []netip.Prefix

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	trustedProxies, err := cfg.TrustedProxyPrefixes()
	if err != nil {
		logger.Err(err).Msg("ignoring trusted proxies, forwarding headers will not be used")
		trustedProxies = nil
	}

	logger.Info().Int("trusted_proxies", len(trustedProxies)).Msg("http handler created")
	return &Handler{
		services:       services,
		limiter:        newOTPLimiter(cfg.OTPRatePerMinute, cfg.OTPBurst),
		trustedProxies: trustedProxies,
		logger:         logger,
	}
}
