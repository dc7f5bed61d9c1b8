// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/lara-connect/internal/config"
	"github.com/MKhiriev/lara-connect/internal/logger"
	"github.com/MKhiriev/lara-connect/internal/store"
)

// SweepResult counts the records removed by one sweep.
type SweepResult struct {
	UnverifiedAccounts int64
	ExpiredResets      int64
}

type janitorService struct {
	accountRepository      store.AccountRepository
	pendingResetRepository store.PendingResetRepository

	// retention is how long an unverified account may wait for its OTP.
	retention time.Duration

	// retryable classifies backend errors; nil treats every error as permanent.
	retryable func(error) bool

	now    func() time.Time
	logger *logger.Logger
}

func NewJanitorService(
	accountRepository store.AccountRepository,
	pendingResetRepository store.PendingResetRepository,
	retryable func(error) bool,
	cfg config.Workers,
	logger *logger.Logger,
) JanitorService {
	return &janitorService{
		accountRepository:      accountRepository,
		pendingResetRepository: pendingResetRepository,
		retention:              cfg.UnverifiedRetention,
		retryable:              retryable,
		now:                    time.Now,
		logger:                 logger,
	}
}

// Sweep deletes unverified accounts older than the retention window and
// pending resets past their expiry. Both deletions are attempted even when
// the first one fails; the errors are joined. Transient backend failures are
// additionally wrapped with ErrStorageUnavailable.
func (s *janitorService) Sweep(ctx context.Context) (SweepResult, error) {
	now := s.now().UTC()

	var (
		result SweepResult
		errs   []error
		err    error
	)

	result.UnverifiedAccounts, err = s.accountRepository.DeleteUnverifiedAccounts(ctx, now.Add(-s.retention))
	if err != nil {
		errs = append(errs, s.classify("deleting unverified accounts", err))
	}

	result.ExpiredResets, err = s.pendingResetRepository.DeleteExpiredPendingResets(ctx, now)
	if err != nil {
		errs = append(errs, s.classify("deleting expired resets", err))
	}

	if result.UnverifiedAccounts > 0 || result.ExpiredResets > 0 {
		s.logger.Info().
			Int64("unverified_accounts", result.UnverifiedAccounts).
			Int64("expired_resets", result.ExpiredResets).
			Msg("janitor sweep removed records")
	}

	return result, errors.Join(errs...)
}

func (s *janitorService) classify(op string, err error) error {
	if s.retryable != nil && s.retryable(err) {
		return fmt.Errorf("%s: %w: %w", op, ErrStorageUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
