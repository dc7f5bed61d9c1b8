// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/lara-connect/internal/logger"
	"github.com/MKhiriev/lara-connect/internal/service"
)

// Janitor sweeps stale unverified accounts and expired password resets on a
// fixed interval.
type Janitor struct {
	sweeper  service.JanitorService
	interval time.Duration
	logger   *logger.Logger
}

func NewJanitor(sweeper service.JanitorService, interval time.Duration, logger *logger.Logger) *Janitor {
	return &Janitor{sweeper: sweeper, interval: interval, logger: logger}
}

// Run sweeps once right away and then on every tick until ctx is done.
func (j *Janitor) Run(ctx context.Context) {
	j.logger.Info().Dur("interval", j.interval).Msg("janitor started")
	defer j.logger.Info().Msg("janitor stopped")

	j.sweep(ctx)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *Janitor) sweep(ctx context.Context) {
	_, err := j.sweeper.Sweep(ctx)
	switch {
	case err == nil, ctx.Err() != nil:
	case errors.Is(err, service.ErrStorageUnavailable):
		j.logger.Warn().Err(err).Msg("sweep failed, retrying on next tick")
	default:
		j.logger.Err(err).Msg("sweep failed")
	}
}
