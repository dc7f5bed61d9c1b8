// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Account is a registered user of the portal. Identifier and Email are each
// unique across all accounts.
type Account struct {
	// Identifier is the login name. Its two-digit prefix encodes the
	// admission year and therefore the holder's role.
	Identifier string `json:"username" bson:"username"`

	// Email receives one-time passwords.
	Email string `json:"email" bson:"email"`

	// PasswordHash is the bcrypt hash of the account password. It never
	// leaves the server.
	PasswordHash string `json:"-" bson:"password"`

	// Verified is false until the signup OTP has been confirmed.
	Verified bool `json:"verified" bson:"is_verified"`

	// PendingOTP is the outstanding signup OTP, cleared on verification.
	PendingOTP *string `json:"-" bson:"otp,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// OTPMatches reports whether otp equals the outstanding signup OTP exactly.
// An account without an outstanding OTP never matches.
func (a Account) OTPMatches(otp string) bool {
	return a.PendingOTP != nil && *a.PendingOTP != "" && *a.PendingOTP == otp
}
