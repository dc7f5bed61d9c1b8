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
	"github.com/jackc/pgerrcode"
)

// Constraint names from migrations/00001_create_accounts.sql.
const (
	accountsIdentifierConstraint = "accounts_pkey"
	accountsEmailConstraint      = "accounts_email_key"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository] over the "accounts" table.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided postgres connection.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount inserts the account and returns the stored row.
//
// Error handling:
//   - unique_violation on accounts_pkey → [ErrIdentifierAlreadyExists].
//   - unique_violation on accounts_email_key → [ErrEmailAlreadyExists].
//   - any other driver error → wrapped [ErrExecutingQuery].
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAccount,
		account.Identifier,
		account.Email,
		account.PasswordHash,
		account.Verified,
		account.PendingOTP,
		account.CreatedAt,
		account.UpdatedAt,
	)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error inserting account")
		return models.Account{}, accountWriteError(err)
	}

	created, err := scanAccount(row)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error scanning account")
		// pgx reports constraint violations on Scan when Err was nil
		if code, _ := postgresError(err); code != "" {
			return models.Account{}, accountWriteError(err)
		}
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

func (r *accountRepository) FindAccountByIdentifier(ctx context.Context, identifier string) (models.Account, error) {
	return r.findAccount(ctx, "*accountRepository.FindAccountByIdentifier", findAccountByIdentifier, identifier)
}

func (r *accountRepository) FindAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	return r.findAccount(ctx, "*accountRepository.FindAccountByEmail", findAccountByEmail, email)
}

func (r *accountRepository) findAccount(ctx context.Context, funcName, query string, key string) (models.Account, error) {
	log := logger.FromContext(ctx)

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, key))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error finding account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return account, nil
}

// MarkAccountVerified flags the account verified and clears its pending OTP.
// [ErrAccountNotFound] is returned when no row was touched.
func (r *accountRepository) MarkAccountVerified(ctx context.Context, identifier string, at time.Time) error {
	return r.execAffectingOne(ctx, "*accountRepository.MarkAccountVerified", markAccountVerified, identifier, at)
}

// UpdatePasswordHash replaces the password hash of the account owning email.
func (r *accountRepository) UpdatePasswordHash(ctx context.Context, email, passwordHash string, at time.Time) error {
	return r.execAffectingOne(ctx, "*accountRepository.UpdatePasswordHash", updatePasswordHash, email, passwordHash, at)
}

// DeleteUnverifiedAccount is a no-op for verified or unknown identifiers.
func (r *accountRepository) DeleteUnverifiedAccount(ctx context.Context, identifier string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteUnverifiedAccount, identifier); err != nil {
		log.Err(err).Str("func", "*accountRepository.DeleteUnverifiedAccount").Msg("error deleting account")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *accountRepository) DeleteUnverifiedAccounts(ctx context.Context, olderThan time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteUnverifiedAccountsQuery(olderThan)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.DeleteUnverifiedAccounts").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.DeleteUnverifiedAccounts").Msg("error deleting accounts")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return result.RowsAffected()
}

func (r *accountRepository) execAffectingOne(ctx context.Context, funcName, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error updating account")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(row scanner) (models.Account, error) {
	var (
		account    models.Account
		pendingOTP sql.NullString
	)

	err := row.Scan(
		&account.Identifier,
		&account.Email,
		&account.PasswordHash,
		&account.Verified,
		&pendingOTP,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return models.Account{}, err
	}

	if pendingOTP.Valid {
		account.PendingOTP = &pendingOTP.String
	}

	return account, nil
}

func accountWriteError(err error) error {
	code, constraint := postgresError(err)
	if code != pgerrcode.UniqueViolation {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	switch constraint {
	case accountsEmailConstraint:
		return ErrEmailAlreadyExists
	case accountsIdentifierConstraint:
		return ErrIdentifierAlreadyExists
	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
