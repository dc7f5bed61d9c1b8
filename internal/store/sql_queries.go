// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	accountColumns = `identifier, email, password_hash, verified, pending_otp, created_at, updated_at`

	createAccount = `INSERT INTO accounts (identifier, email, password_hash, verified, pending_otp, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING ` + accountColumns + `;`

	findAccountByIdentifier = `SELECT ` + accountColumns + `
    FROM accounts
    WHERE identifier = $1;`

	findAccountByEmail = `SELECT ` + accountColumns + `
    FROM accounts
    WHERE email = $1;`

	markAccountVerified = `UPDATE accounts
    SET verified = TRUE, pending_otp = NULL, updated_at = $2
    WHERE identifier = $1;`

	updatePasswordHash = `UPDATE accounts
    SET password_hash = $2, updated_at = $3
    WHERE email = $1;`

	deleteUnverifiedAccount = `DELETE FROM accounts
    WHERE identifier = $1 AND verified = FALSE;`
)

const (
	pendingResetColumns = `email, otp, expires_at, verified_at, created_at`

	replacePendingReset = `INSERT INTO pending_password_resets (email, otp, expires_at, verified_at, created_at)
    VALUES ($1, $2, $3, NULL, $4)
    ON CONFLICT (email) DO UPDATE
    SET otp = EXCLUDED.otp,
        expires_at = EXCLUDED.expires_at,
        verified_at = NULL,
        created_at = EXCLUDED.created_at;`

	findPendingReset = `SELECT ` + pendingResetColumns + `
    FROM pending_password_resets
    WHERE email = $1 AND expires_at > NOW();`

	findPendingResetByOTP = `SELECT ` + pendingResetColumns + `
    FROM pending_password_resets
    WHERE email = $1 AND otp = $2 AND expires_at > NOW();`

	markPendingResetVerified = `UPDATE pending_password_resets
    SET verified_at = $2
    WHERE email = $1 AND expires_at > NOW();`

	deletePendingReset = `DELETE FROM pending_password_resets
    WHERE email = $1;`
)

const (
	createPost = `INSERT INTO posts (id, author, content, created_at)
    VALUES ($1, $2, $3, $4)
    RETURNING id, author, content, created_at;`

	createUpdate = `INSERT INTO updates (id, title, description, created_at)
    VALUES ($1, $2, $3, $4)
    RETURNING id, title, description, created_at;`
)

// psql is the statement builder for the postgres placeholder format.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildDeleteUnverifiedAccountsQuery removes unverified accounts created
// before olderThan.
func buildDeleteUnverifiedAccountsQuery(olderThan time.Time) (string, []any, error) {
	return psql.
		Delete("accounts").
		Where(sq.Eq{"verified": false}).
		Where(sq.Lt{"created_at": olderThan}).
		ToSql()
}

// buildDeleteExpiredResetsQuery removes pending resets whose expiry is at or
// before now.
func buildDeleteExpiredResetsQuery(now time.Time) (string, []any, error) {
	return psql.
		Delete("pending_password_resets").
		Where(sq.LtOrEq{"expires_at": now}).
		ToSql()
}

// buildListPostsQuery selects posts newest first. A non-positive limit
// selects all of them.
func buildListPostsQuery(limit int) (string, []any, error) {
	builder := psql.
		Select("id", "author", "content", "created_at").
		From("posts").
		OrderBy("created_at DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	return builder.ToSql()
}

func buildLatestUpdatesQuery(limit int) (string, []any, error) {
	builder := psql.
		Select("id", "title", "description", "created_at").
		From("updates").
		OrderBy("created_at DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	return builder.ToSql()
}
