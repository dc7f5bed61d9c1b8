// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/lara-connect/internal/service"
	"github.com/MKhiriev/lara-connect/models"
	"github.com/stretchr/testify/assert"
)

func TestForgotPassword(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "sent", wantStatus: http.StatusOK, wantBody: `{"message":"OTP sent to your email for password reset."}`},
		{name: "unknown email", err: service.ErrEmailNotFound, wantStatus: http.StatusNotFound, wantBody: `{"error":"Email not found"}`},
		{name: "storage failure", err: errors.New("timeout"), wantStatus: http.StatusInternalServerError, wantBody: `{"error":"internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&service.Services{PasswordResetService: &mockPasswordResetService{
				RequestResetFunc: func(_ context.Context, req models.ForgotPasswordRequest) error {
					assert.Equal(t, "student@lara.test", req.Email)
					return tt.err
				},
			}})

			rr := doJSON(t, router, http.MethodPost, "/api/forgot-password",
				models.ForgotPasswordRequest{Email: "student@lara.test"}, "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestVerifyForgotOTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "verified", wantStatus: http.StatusOK, wantBody: `{"message":"OTP verified successfully."}`},
		{name: "no match", err: service.ErrInvalidResetOTP, wantStatus: http.StatusBadRequest, wantBody: `{"error":"Invalid OTP or email"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&service.Services{PasswordResetService: &mockPasswordResetService{
				VerifyResetFunc: func(context.Context, models.VerifyResetRequest) error { return tt.err },
			}})

			rr := doJSON(t, router, http.MethodPost, "/api/verify-forgot-otp",
				models.VerifyResetRequest{Email: "student@lara.test", OTP: "654321"}, "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestResetPassword(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "reset", wantStatus: http.StatusOK, wantBody: `{"message":"Password reset successfully. Please login."}`},
		{
			name:       "no usable reset",
			err:        service.ErrNoPendingReset,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"No pending reset request found or OTP not verified"}`,
		},
		{name: "account gone", err: service.ErrAccountNotFound, wantStatus: http.StatusNotFound, wantBody: `{"error":"User not found"}`},
		{name: "mismatch", err: service.ErrPasswordsDoNotMatch, wantStatus: http.StatusBadRequest, wantBody: `{"error":"Passwords do not match"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&service.Services{PasswordResetService: &mockPasswordResetService{
				ResetPasswordFunc: func(context.Context, models.ResetPasswordRequest) error { return tt.err },
			}})

			rr := doJSON(t, router, http.MethodPost, "/api/reset-password", models.ResetPasswordRequest{
				Email:           "student@lara.test",
				Password:        "Newp@ss1",
				ConfirmPassword: "Newp@ss1",
			}, "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}
