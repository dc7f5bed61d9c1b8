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

// accountService is the concrete implementation of [AccountService].
//
// Accounts are created unverified with the signup OTP stored on the record.
// Abandoned signups are not swept here: the janitor removes unverified
// accounts once their retention window has passed.
type accountService struct {
	accountRepository store.AccountRepository
	sessionService    SessionService
	mailer            mailer.Mailer
	otpGenerator      OTPGenerator
	validator         validators.Validator

	// bcryptCost is the work factor for new password hashes.
	bcryptCost int

	// otpValidity is quoted in the verification email. The signup OTP has
	// no expiry of its own and lives as long as the unverified account.
	otpValidity time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewAccountService wires an [AccountService] from its collaborators. The
// returned service holds no mutable state and is safe for concurrent use.
func NewAccountService(
	accountRepository store.AccountRepository,
	sessionService SessionService,
	mailer mailer.Mailer,
	otpGenerator OTPGenerator,
	validator validators.Validator,
	cfg config.App,
	unverifiedRetention time.Duration,
	logger *logger.Logger,
) AccountService {
	return &accountService{
		accountRepository: accountRepository,
		sessionService:    sessionService,
		mailer:            mailer,
		otpGenerator:      otpGenerator,
		validator:         validator,
		bcryptCost:        cfg.BcryptCost,
		otpValidity:       unverifiedRetention,
		now:               time.Now,
		logger:            logger,
	}
}

// Signup registers an unverified account and emails its verification OTP.
//
// Steps, each aborting on failure:
//  1. field validation ([validators.ErrValidation]);
//  2. password confirmation ([ErrPasswordsDoNotMatch]);
//  3. identifier uniqueness ([store.ErrIdentifierAlreadyExists]);
//  4. OTP generation and password hashing;
//  5. insert, where the store reports duplicate identifiers or emails that
//     raced past step 3;
//  6. mail delivery. When it fails the account is deleted again so the
//     identifier can be reused, and the delivery error is returned.
func (s *accountService) Signup(ctx context.Context, req models.SignupRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Account{}, err
	}
	if req.Password != req.ConfirmPassword {
		return models.Account{}, ErrPasswordsDoNotMatch
	}

	_, err := s.accountRepository.FindAccountByIdentifier(ctx, req.Identifier)
	switch {
	case err == nil:
		return models.Account{}, store.ErrIdentifierAlreadyExists
	case !errors.Is(err, store.ErrAccountNotFound):
		log.Err(err).Str("func", "*accountService.Signup").Msg("identifier lookup failed")
		return models.Account{}, fmt.Errorf("identifier lookup failed: %w", err)
	}

	otp, err := s.otpGenerator.Generate()
	if err != nil {
		return models.Account{}, err
	}

	passwordHash, err := hashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return models.Account{}, err
	}

	now := s.now().UTC()
	account, err := s.accountRepository.CreateAccount(ctx, models.Account{
		Identifier:   req.Identifier,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Verified:     false,
		PendingOTP:   &otp,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		log.Err(err).Str("identifier", req.Identifier).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	msg := mailer.SignupVerificationMessage(account.Email, account.Identifier, otp, s.otpValidity)
	if err = s.mailer.Send(ctx, msg); err != nil {
		log.Err(err).Str("identifier", account.Identifier).Msg("verification email was not sent, removing account")
		if delErr := s.accountRepository.DeleteUnverifiedAccount(context.WithoutCancel(ctx), account.Identifier); delErr != nil {
			log.Err(delErr).Str("identifier", account.Identifier).Msg("failed to remove account after mail failure")
		}
		return models.Account{}, fmt.Errorf("sending verification email: %w", err)
	}

	log.Info().Str("identifier", account.Identifier).Msg("account created, verification email sent")
	return account, nil
}

// VerifySignup confirms the signup OTP. The comparison is an exact string
// match against the outstanding code; a verified account has none left, so
// repeating the step fails with [ErrInvalidOTP].
func (s *accountService) VerifySignup(ctx context.Context, req models.VerifySignupRequest) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return err
	}

	account, err := s.accountRepository.FindAccountByIdentifier(ctx, req.Identifier)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("account lookup failed: %w", err)
	}

	if !account.OTPMatches(req.OTP) {
		log.Warn().Str("identifier", req.Identifier).Msg("signup otp mismatch")
		return ErrInvalidOTP
	}

	if err = s.accountRepository.MarkAccountVerified(ctx, account.Identifier, s.now().UTC()); err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("marking account verified failed: %w", err)
	}

	log.Info().Str("identifier", account.Identifier).Msg("account verified")
	return nil
}

// Login checks the password with bcrypt's constant-time comparison and
// issues a session. Unverified accounts fail with [ErrAccountNotVerified],
// which is only reported once the password has matched.
func (s *accountService) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Session{}, err
	}

	account, err := s.accountRepository.FindAccountByIdentifier(ctx, req.Identifier)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return models.Session{}, ErrUnknownIdentifier
		}
		return models.Session{}, fmt.Errorf("account lookup failed: %w", err)
	}

	ok, err := comparePassword(account.PasswordHash, req.Password)
	if err != nil {
		return models.Session{}, err
	}
	if !ok {
		log.Warn().Str("identifier", req.Identifier).Msg("wrong password")
		return models.Session{}, ErrWrongPassword
	}

	if !account.Verified {
		return models.Session{}, ErrAccountNotVerified
	}

	return s.sessionService.Issue(ctx, account.Identifier)
}
