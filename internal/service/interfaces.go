// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/lara-connect/models"
)

// AccountService covers signup, signup verification and login.
type AccountService interface {
	Signup(ctx context.Context, req models.SignupRequest) (models.Account, error)
	VerifySignup(ctx context.Context, req models.VerifySignupRequest) error
	Login(ctx context.Context, req models.LoginRequest) (models.Session, error)
}

// PasswordResetService covers the three forgot-password steps.
type PasswordResetService interface {
	RequestReset(ctx context.Context, req models.ForgotPasswordRequest) error
	VerifyReset(ctx context.Context, req models.VerifyResetRequest) error
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error
}

// SessionService issues and checks session tokens.
type SessionService interface {
	Issue(ctx context.Context, identifier string) (models.Session, error)
	Parse(ctx context.Context, token string) (models.Session, error)
	RoleFor(identifier string) (models.Role, error)
}

type FeedService interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	CreatePost(ctx context.Context, author string, req models.CreatePostRequest) (models.Post, error)
	LatestUpdates(ctx context.Context) ([]models.Update, error)
	CreateUpdate(ctx context.Context, role models.Role, req models.CreateUpdateRequest) (models.Update, error)
}

// JanitorService removes records nobody can use any more.
type JanitorService interface {
	Sweep(ctx context.Context) (SweepResult, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
	GetEventCount(ctx context.Context) models.EventCountResponse
}

// OTPGenerator produces one-time passwords.
type OTPGenerator interface {
	Generate() (string, error)
}
