// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrIdentifierAlreadyExists is returned when an account with the same
	// identifier is already stored.
	ErrIdentifierAlreadyExists = errors.New("identifier already exists")

	// ErrEmailAlreadyExists is returned when an account with the same email
	// is already stored.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrAccountNotFound is returned when no account matches the lookup key.
	ErrAccountNotFound = errors.New("account not found")

	// ErrPendingResetNotFound is returned when no unexpired pending reset
	// matches the lookup key.
	ErrPendingResetNotFound = errors.New("pending reset not found")

	// ErrAuthorNotFound is returned when a post references an unknown account.
	ErrAuthorNotFound = errors.New("post author not found")

	// ErrSessionNotFound is returned by the client session cache when no
	// session was saved for the server.
	ErrSessionNotFound = errors.New("local session not found")

	// ErrUnsupportedDSN is returned when the DSN scheme selects no backend.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a database-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning during multi-row iteration
	// fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
