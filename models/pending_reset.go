// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PendingPasswordReset authorizes a password change for Email until
// ExpiresAt. At most one exists per email.
type PendingPasswordReset struct {
	Email string `bson:"email"`
	OTP   string `bson:"otp"`

	// ExpiresAt is the instant after which the record is treated as absent.
	ExpiresAt time.Time `bson:"expires_at"`

	// VerifiedAt is set when the reset OTP has been confirmed.
	VerifiedAt *time.Time `bson:"verified_at,omitempty"`

	CreatedAt time.Time `bson:"created_at"`
}

// TableName returns the name of the database table
// associated with the PendingPasswordReset model.
func (p PendingPasswordReset) TableName() string {
	return "pending_password_resets"
}

// Expired reports whether the record is no longer usable at now.
func (p PendingPasswordReset) Expired(now time.Time) bool {
	return !now.Before(p.ExpiresAt)
}

// Verified reports whether the reset OTP has been confirmed.
func (p PendingPasswordReset) Verified() bool {
	return p.VerifiedAt != nil
}
