// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the caller-facing message strings of the lara-connect
// API.
//
// Msg* constants are written into JSON response bodies by the HTTP handlers
// and read back by the terminal client when it needs to tell two answers with
// the same status apart. Keeping them in one place keeps both sides in sync.
package app

// Signup and signup verification.
const (
	MsgPasswordsDoNotMatch = "Passwords do not match"
	MsgUsernameTaken       = "Username already taken"
	MsgEmailTaken          = "Email already registered"
	MsgSignupCreated       = "User created successfully. Verification email sent."

	// MsgUserNotFound is returned by signup verification and by the final
	// password reset step.
	MsgUserNotFound   = "User not found"
	MsgInvalidOTP     = "Invalid OTP"
	MsgEmailVerified  = "Email verified successfully"
	MsgDeliveryFailed = "Could not send the verification email"
)

// Login.
const (
	MsgLoginUserNotFound       = "User Not Found"
	MsgIncorrectPassword       = "Incorrect Password"
	MsgAccountNotVerified      = "Email not verified. Please verify your account first."
	MsgLoginSuccessful         = "Login successful"
	MsgInvalidRolePrefix       = "Username does not start with a valid batch year"
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"
)

// Password reset.
const (
	MsgEmailNotFound     = "Email not found"
	MsgResetOTPSent      = "OTP sent to your email for password reset."
	MsgInvalidOTPOrEmail = "Invalid OTP or email"
	MsgResetOTPVerified  = "OTP verified successfully."
	MsgNoPendingReset    = "No pending reset request found or OTP not verified"
	MsgPasswordResetDone = "Password reset successfully. Please login."
)

// Generic answers.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	MsgInternalServerError = "internal server error"
	MsgForbiddenRole       = "operation not allowed for this role"
	MsgTooManyRequests     = "too many requests, try again later"
	MsgNotFound            = "not found"
	MsgMethodNotAllowed    = "method not allowed"
)
