// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/lara-connect/internal/logger"
	"github.com/MKhiriev/lara-connect/models"
)

// pendingResetRepository is the PostgreSQL-backed implementation of
// [PendingResetRepository]. Lookups filter on expires_at so an expired
// record reads as absent even before the janitor removes it.
type pendingResetRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewPendingResetRepository(db *DB, logger *logger.Logger) PendingResetRepository {
	logger.Debug().Msg("creating pending reset repository")
	return &pendingResetRepository{
		db:     db,
		logger: logger,
	}
}

func (r *pendingResetRepository) ReplacePendingReset(ctx context.Context, reset models.PendingPasswordReset) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, replacePendingReset, reset.Email, reset.OTP, reset.ExpiresAt, reset.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "*pendingResetRepository.ReplacePendingReset").Msg("error storing pending reset")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *pendingResetRepository) FindPendingReset(ctx context.Context, email string) (models.PendingPasswordReset, error) {
	return r.find(ctx, "*pendingResetRepository.FindPendingReset", findPendingReset, email)
}

// FindPendingResetByOTP matches email and otp together so a wrong OTP and an
// unknown email are indistinguishable.
func (r *pendingResetRepository) FindPendingResetByOTP(ctx context.Context, email, otp string) (models.PendingPasswordReset, error) {
	return r.find(ctx, "*pendingResetRepository.FindPendingResetByOTP", findPendingResetByOTP, email, otp)
}

func (r *pendingResetRepository) find(ctx context.Context, funcName, query string, args ...any) (models.PendingPasswordReset, error) {
	log := logger.FromContext(ctx)

	var (
		reset      models.PendingPasswordReset
		verifiedAt sql.NullTime
	)

	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&reset.Email, &reset.OTP, &reset.ExpiresAt, &verifiedAt, &reset.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PendingPasswordReset{}, ErrPendingResetNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error finding pending reset")
		return models.PendingPasswordReset{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if verifiedAt.Valid {
		reset.VerifiedAt = &verifiedAt.Time
	}

	return reset, nil
}

func (r *pendingResetRepository) MarkPendingResetVerified(ctx context.Context, email string, at time.Time) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, markPendingResetVerified, email, at)
	if err != nil {
		log.Err(err).Str("func", "*pendingResetRepository.MarkPendingResetVerified").Msg("error marking pending reset verified")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrPendingResetNotFound
	}

	return nil
}

// DeletePendingReset succeeds when nothing is stored for email.
func (r *pendingResetRepository) DeletePendingReset(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deletePendingReset, email); err != nil {
		log.Err(err).Str("func", "*pendingResetRepository.DeletePendingReset").Msg("error deleting pending reset")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *pendingResetRepository) DeleteExpiredPendingResets(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteExpiredResetsQuery(now)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*pendingResetRepository.DeleteExpiredPendingResets").Msg("error deleting expired resets")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return result.RowsAffected()
}
