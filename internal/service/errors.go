// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Credential lifecycle errors. The HTTP layer maps each of them to a status
// and a caller-facing message.
var (
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")

	// ErrAccountNotFound is returned by signup verification and password
	// reset when no account matches.
	ErrAccountNotFound = errors.New("user not found")

	// ErrUnknownIdentifier is returned by login when no account matches.
	ErrUnknownIdentifier  = errors.New("no account with this identifier")
	ErrWrongPassword      = errors.New("wrong password")
	ErrAccountNotVerified = errors.New("account email is not verified")

	ErrInvalidOTP = errors.New("invalid otp")

	ErrEmailNotFound = errors.New("email not found")

	// ErrInvalidResetOTP covers both a missing pending reset and a wrong
	// code.
	ErrInvalidResetOTP = errors.New("invalid otp or email")

	// ErrNoPendingReset is returned by the final reset step when no usable
	// pending reset exists for the email.
	ErrNoPendingReset = errors.New("no pending reset request found or otp not verified")

	ErrOTPGeneration   = errors.New("error generating otp")
	ErrPasswordHashing = errors.New("error hashing password")
)

// Session errors.
var (
	ErrTokenCreationFailed     = errors.New("failed to create token")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrNoSavedSession is returned by the client when no session is saved
	// for the server.
	ErrNoSavedSession = errors.New("no saved session")
)

// Feed errors.
var (
	// ErrForbiddenRole is returned when the session role may not perform the
	// operation.
	ErrForbiddenRole = errors.New("operation not allowed for this role")
)

// ErrStorageUnavailable marks a storage failure that is expected to clear
// on its own.
var ErrStorageUnavailable = errors.New("storage temporarily unavailable")

var ErrVersionIsNotSpecified = errors.New("app version is not specified")
