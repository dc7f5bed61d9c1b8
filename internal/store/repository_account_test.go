// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/lara-connect/internal/logger"
	"github.com/MKhiriev/lara-connect/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var accountRowColumns = []string{"identifier", "email", "password_hash", "verified", "pending_otp", "created_at", "updated_at"}

func newTestAccountRepo(t *testing.T) (*accountRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	repo := &accountRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock
}

func pgError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func TestCreateAccount_Success(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	now := time.Now().UTC()
	otp := "123456"
	account := models.Account{
		Identifier:   "21FE1A0001",
		Email:        "a@lara.test",
		PasswordHash: "hash",
		PendingOTP:   &otp,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	rows := sqlmock.NewRows(accountRowColumns).
		AddRow(account.Identifier, account.Email, account.PasswordHash, false, otp, now, now)

	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs(account.Identifier, account.Email, account.PasswordHash, false, sqlmock.AnyArg(), now, now).
		WillReturnRows(rows)

	created, err := repo.CreateAccount(context.Background(), account)
	require.NoError(t, err)
	assert.Equal(t, account.Identifier, created.Identifier)
	assert.False(t, created.Verified)
	require.NotNil(t, created.PendingOTP)
	assert.Equal(t, otp, *created.PendingOTP)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAccount_UniqueViolations(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{
			name:    "identifier taken",
			err:     pgError(pgerrcode.UniqueViolation, accountsIdentifierConstraint),
			wantErr: ErrIdentifierAlreadyExists,
		},
		{
			name:    "email taken",
			err:     pgError(pgerrcode.UniqueViolation, accountsEmailConstraint),
			wantErr: ErrEmailAlreadyExists,
		},
		{
			name:    "other driver error",
			err:     errors.New("boom"),
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestAccountRepo(t)

			mock.ExpectQuery("INSERT INTO accounts").WillReturnError(tt.err)

			_, err := repo.CreateAccount(context.Background(), models.Account{Identifier: "21FE1A0001"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFindAccountByIdentifier(t *testing.T) {
	t.Run("found without pending otp", func(t *testing.T) {
		repo, mock := newTestAccountRepo(t)
		now := time.Now()

		mock.ExpectQuery("SELECT (.+) FROM accounts WHERE identifier = \\$1").
			WithArgs("19FE1A0001").
			WillReturnRows(sqlmock.NewRows(accountRowColumns).
				AddRow("19FE1A0001", "b@lara.test", "hash", true, nil, now, now))

		account, err := repo.FindAccountByIdentifier(context.Background(), "19FE1A0001")
		require.NoError(t, err)
		assert.True(t, account.Verified)
		assert.Nil(t, account.PendingOTP)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestAccountRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM accounts").
			WithArgs("19FE1A0001").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindAccountByIdentifier(context.Background(), "19FE1A0001")
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})

	t.Run("driver error", func(t *testing.T) {
		repo, mock := newTestAccountRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM accounts").WillReturnError(errors.New("conn reset"))

		_, err := repo.FindAccountByIdentifier(context.Background(), "19FE1A0001")
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestFindAccountByEmail_NoRows(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM accounts WHERE email = \\$1").
		WithArgs("x@lara.test").
		WillReturnRows(sqlmock.NewRows(accountRowColumns))

	_, err := repo.FindAccountByEmail(context.Background(), "x@lara.test")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestMarkAccountVerified(t *testing.T) {
	at := time.Now()

	t.Run("updated", func(t *testing.T) {
		repo, mock := newTestAccountRepo(t)
		mock.ExpectExec("UPDATE accounts").
			WithArgs("21FE1A0001", at).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.MarkAccountVerified(context.Background(), "21FE1A0001", at))
	})

	t.Run("no such account", func(t *testing.T) {
		repo, mock := newTestAccountRepo(t)
		mock.ExpectExec("UPDATE accounts").
			WithArgs("21FE1A0001", at).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.MarkAccountVerified(context.Background(), "21FE1A0001", at), ErrAccountNotFound)
	})
}

func TestUpdatePasswordHash(t *testing.T) {
	repo, mock := newTestAccountRepo(t)
	at := time.Now()

	mock.ExpectExec("UPDATE accounts SET password_hash").
		WithArgs("a@lara.test", "new-hash", at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdatePasswordHash(context.Background(), "a@lara.test", "new-hash", at))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUnverifiedAccount(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectExec("DELETE FROM accounts WHERE identifier = \\$1 AND verified = FALSE").
		WithArgs("21FE1A0001").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.DeleteUnverifiedAccount(context.Background(), "21FE1A0001"))
}

func TestDeleteUnverifiedAccounts(t *testing.T) {
	repo, mock := newTestAccountRepo(t)
	olderThan := time.Now().Add(-time.Hour)

	mock.ExpectExec("DELETE FROM accounts").
		WithArgs(false, olderThan).
		WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := repo.DeleteUnverifiedAccounts(context.Background(), olderThan)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
