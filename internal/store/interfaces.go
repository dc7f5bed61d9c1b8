// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists accounts, pending password resets and the feed on
// postgres or mongodb, and keeps the terminal client's session in sqlite.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/lara-connect/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository is the credential store.
type AccountRepository interface {
	// CreateAccount inserts a new account. Uniqueness violations are
	// reported as ErrIdentifierAlreadyExists or ErrEmailAlreadyExists.
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	FindAccountByIdentifier(ctx context.Context, identifier string) (models.Account, error)
	FindAccountByEmail(ctx context.Context, email string) (models.Account, error)
	// MarkAccountVerified sets verified and clears the pending OTP.
	MarkAccountVerified(ctx context.Context, identifier string, at time.Time) error
	UpdatePasswordHash(ctx context.Context, email, passwordHash string, at time.Time) error
	// DeleteUnverifiedAccount removes the account only while it is unverified.
	DeleteUnverifiedAccount(ctx context.Context, identifier string) error
	// DeleteUnverifiedAccounts removes unverified accounts created before
	// olderThan and returns how many were removed.
	DeleteUnverifiedAccounts(ctx context.Context, olderThan time.Time) (int64, error)
}

// PendingResetRepository is the pending-verification store for password
// resets. Records past their expiry are never returned.
type PendingResetRepository interface {
	// ReplacePendingReset drops any previous record for the email and stores
	// reset in its place.
	ReplacePendingReset(ctx context.Context, reset models.PendingPasswordReset) error
	FindPendingReset(ctx context.Context, email string) (models.PendingPasswordReset, error)
	FindPendingResetByOTP(ctx context.Context, email, otp string) (models.PendingPasswordReset, error)
	MarkPendingResetVerified(ctx context.Context, email string, at time.Time) error
	DeletePendingReset(ctx context.Context, email string) error
	DeleteExpiredPendingResets(ctx context.Context, now time.Time) (int64, error)
}

// PostRepository stores feed posts.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	// ListPosts returns posts newest first. A non-positive limit returns all.
	ListPosts(ctx context.Context, limit int) ([]models.Post, error)
}

// UpdateRepository stores portal announcements.
type UpdateRepository interface {
	CreateUpdate(ctx context.Context, update models.Update) (models.Update, error)
	// LatestUpdates returns at most limit announcements, newest first.
	LatestUpdates(ctx context.Context, limit int) ([]models.Update, error)
}
