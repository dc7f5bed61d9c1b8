// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SignupRequest registers a new, unverified account.
type SignupRequest struct {
	Identifier      string `json:"username" validate:"required,identifier"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,password"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// VerifySignupRequest confirms the signup OTP.
type VerifySignupRequest struct {
	Identifier string `json:"username" validate:"required"`
	OTP        string `json:"otp" validate:"required"`
}

// LoginRequest authenticates a verified account.
type LoginRequest struct {
	Identifier string `json:"username" validate:"required,identifier"`
	Password   string `json:"password" validate:"required"`
}

// ForgotPasswordRequest asks for a password reset OTP.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyResetRequest confirms the password reset OTP.
type VerifyResetRequest struct {
	Email string `json:"email" validate:"required"`
	OTP   string `json:"otp" validate:"required"`
}

// ResetPasswordRequest sets a new password for the account owning Email.
type ResetPasswordRequest struct {
	Email           string `json:"email" validate:"required"`
	Password        string `json:"password" validate:"required,password"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// CreatePostRequest publishes a post on behalf of the session owner.
type CreatePostRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

// CreateUpdateRequest publishes an announcement.
type CreateUpdateRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required,max=5000"`
}
