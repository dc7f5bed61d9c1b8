// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the terminal client's transport to the
// lara-connect credential API.
//
// Non-2xx answers are returned as *APIError, which unwraps to one of the
// status sentinels in errors.go so callers can use [errors.Is] (e.g.
// [ErrUnauthorized] for 401) while still showing the server's own message.
package adapter

import (
	"context"

	"github.com/MKhiriev/lara-connect/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CredentialsAPI is the client side of the credential lifecycle routes.
type CredentialsAPI interface {
	// Signup registers an unverified account; the server mails its OTP.
	Signup(ctx context.Context, req models.SignupRequest) (models.SignupResponse, error)

	// VerifySignup confirms the signup OTP.
	VerifySignup(ctx context.Context, req models.VerifySignupRequest) (models.MessageResponse, error)

	// Login returns the issued session. The token is read from the
	// Authorization response header.
	Login(ctx context.Context, req models.LoginRequest) (models.Session, error)

	// ForgotPassword asks the server to mail a password reset OTP.
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (models.MessageResponse, error)

	// VerifyReset confirms the password reset OTP.
	VerifyReset(ctx context.Context, req models.VerifyResetRequest) (models.MessageResponse, error)

	// ResetPassword stores the new password.
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (models.MessageResponse, error)

	// Session resolves a saved token into the session it belongs to. An
	// expired or foreign token yields [ErrUnauthorized].
	Session(ctx context.Context, token string) (models.Session, error)

	// Version returns the server version.
	Version(ctx context.Context) (string, error)
}
