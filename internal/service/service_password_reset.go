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
	"github.com/MKhiriev/lara-connect/internal/mailer"
	"github.com/MKhiriev/lara-connect/internal/store"
	"github.com/MKhiriev/lara-connect/internal/validators"
	"github.com/MKhiriev/lara-connect/models"
)

// passwordResetService implements the forgot-password flow on top of a
// pending reset per email.
type passwordResetService struct {
	accountRepository      store.AccountRepository
	pendingResetRepository store.PendingResetRepository
	mailer                 mailer.Mailer
	otpGenerator           OTPGenerator
	validator              validators.Validator

	bcryptCost int
	resetTTL   time.Duration

	// requireVerified makes ResetPassword demand a pending reset whose OTP
	// was confirmed by VerifyReset.
	requireVerified bool

	now    func() time.Time
	logger *logger.Logger
}

func NewPasswordResetService(
	accountRepository store.AccountRepository,
	pendingResetRepository store.PendingResetRepository,
	mailer mailer.Mailer,
	otpGenerator OTPGenerator,
	validator validators.Validator,
	cfg config.App,
	logger *logger.Logger,
) PasswordResetService {
	return &passwordResetService{
		accountRepository:      accountRepository,
		pendingResetRepository: pendingResetRepository,
		mailer:                 mailer,
		otpGenerator:           otpGenerator,
		validator:              validator,
		bcryptCost:             cfg.BcryptCost,
		resetTTL:               cfg.ResetOTPTTL,
		requireVerified:        cfg.RequireVerifiedReset,
		now:                    time.Now,
		logger:                 logger,
	}
}

// RequestReset replaces any pending reset for the email with a fresh one and
// mails its OTP. The new record is removed again when the mail cannot be
// delivered.
func (s *passwordResetService) RequestReset(ctx context.Context, req models.ForgotPasswordRequest) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return err
	}

	account, err := s.accountRepository.FindAccountByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return ErrEmailNotFound
		}
		return fmt.Errorf("account lookup failed: %w", err)
	}

	otp, err := s.otpGenerator.Generate()
	if err != nil {
		return err
	}

	now := s.now().UTC()
	reset := models.PendingPasswordReset{
		Email:     account.Email,
		OTP:       otp,
		ExpiresAt: now.Add(s.resetTTL),
		CreatedAt: now,
	}
	if err = s.pendingResetRepository.ReplacePendingReset(ctx, reset); err != nil {
		return fmt.Errorf("storing pending reset failed: %w", err)
	}

	msg := mailer.PasswordResetMessage(account.Email, account.Identifier, otp, s.resetTTL)
	if err = s.mailer.Send(ctx, msg); err != nil {
		log.Err(err).Str("email", account.Email).Msg("reset email was not sent, removing pending reset")
		if delErr := s.pendingResetRepository.DeletePendingReset(context.WithoutCancel(ctx), account.Email); delErr != nil {
			log.Err(delErr).Str("email", account.Email).Msg("failed to remove pending reset after mail failure")
		}
		return fmt.Errorf("sending reset email: %w", err)
	}

	log.Info().Str("email", account.Email).Time("expires_at", reset.ExpiresAt).Msg("password reset requested")
	return nil
}

// VerifyReset checks the submitted code against the unexpired pending reset.
// The record is kept; it is only flagged as verified.
func (s *passwordResetService) VerifyReset(ctx context.Context, req models.VerifyResetRequest) error {
	if err := s.validator.Validate(ctx, req); err != nil {
		return err
	}

	reset, err := s.pendingResetRepository.FindPendingResetByOTP(ctx, req.Email, req.OTP)
	if err != nil {
		if errors.Is(err, store.ErrPendingResetNotFound) {
			return ErrInvalidResetOTP
		}
		return fmt.Errorf("pending reset lookup failed: %w", err)
	}

	now := s.now().UTC()
	if reset.Expired(now) {
		return ErrInvalidResetOTP
	}

	if err = s.pendingResetRepository.MarkPendingResetVerified(ctx, reset.Email, now); err != nil {
		if errors.Is(err, store.ErrPendingResetNotFound) {
			return ErrInvalidResetOTP
		}
		return fmt.Errorf("marking pending reset verified failed: %w", err)
	}

	return nil
}

// ResetPassword stores the new password hash and consumes the pending reset.
//
// A mismatched confirmation is rejected before any other rule is checked.
// Unless verified resets are required, an unexpired pending reset is enough
// to proceed even when its OTP was never confirmed.
func (s *passwordResetService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	log := logger.FromContext(ctx)

	if req.Password != req.ConfirmPassword {
		return ErrPasswordsDoNotMatch
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return err
	}

	reset, err := s.pendingResetRepository.FindPendingReset(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrPendingResetNotFound) {
			return ErrNoPendingReset
		}
		return fmt.Errorf("pending reset lookup failed: %w", err)
	}

	now := s.now().UTC()
	if reset.Expired(now) || (s.requireVerified && !reset.Verified()) {
		return ErrNoPendingReset
	}

	passwordHash, err := hashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return err
	}

	if err = s.accountRepository.UpdatePasswordHash(ctx, req.Email, passwordHash, now); err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("updating password failed: %w", err)
	}

	if err = s.pendingResetRepository.DeletePendingReset(ctx, req.Email); err != nil {
		// the password is already changed; the janitor drops the row on expiry
		log.Err(err).Str("email", req.Email).Msg("failed to delete consumed pending reset")
	}

	log.Info().Str("email", req.Email).Msg("password reset")
	return nil
}
