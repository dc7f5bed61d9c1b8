// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/lara-connect/internal/logger"
	"github.com/MKhiriev/lara-connect/internal/mailer"
	"github.com/MKhiriev/lara-connect/internal/mock"
	"github.com/MKhiriev/lara-connect/internal/store"
	"github.com/MKhiriev/lara-connect/internal/validators"
	"github.com/MKhiriev/lara-connect/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type resetFixture struct {
	svc      *passwordResetService
	accounts *mock.MockAccountRepository
	pending  *mock.MockPendingResetRepository
	mail     *mock.MockMailer
}

func newResetFixture(t *testing.T, requireVerified bool) resetFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	cfg := testAppConfig
	cfg.RequireVerifiedReset = requireVerified

	f := resetFixture{
		accounts: mock.NewMockAccountRepository(ctrl),
		pending:  mock.NewMockPendingResetRepository(ctrl),
		mail:     mock.NewMockMailer(ctrl),
	}
	f.svc = NewPasswordResetService(
		f.accounts, f.pending, f.mail, fixedOTP("482913"),
		validators.NewRequestValidator(), cfg, logger.Nop(),
	).(*passwordResetService)
	f.svc.now = func() time.Time { return testNow }

	return f
}

func pendingReset(verified bool) models.PendingPasswordReset {
	p := models.PendingPasswordReset{
		Email:     "a@x.com",
		OTP:       "482913",
		ExpiresAt: testNow.Add(5 * time.Minute),
		CreatedAt: testNow.Add(-5 * time.Minute),
	}
	if verified {
		at := testNow.Add(-time.Minute)
		p.VerifiedAt = &at
	}
	return p
}

func validReset() models.ResetPasswordRequest {
	return models.ResetPasswordRequest{Email: "a@x.com", Password: "Newp@ss1", ConfirmPassword: "Newp@ss1"}
}

// ── RequestReset ─────────────────────────────────────────────────────────────

func TestPasswordResetService_RequestReset_Success(t *testing.T) {
	f := newResetFixture(t, false)

	f.accounts.EXPECT().FindAccountByEmail(gomock.Any(), "a@x.com").
		Return(models.Account{Identifier: "21FE1A0001", Email: "a@x.com"}, nil)
	f.pending.EXPECT().ReplacePendingReset(gomock.Any(), models.PendingPasswordReset{
		Email:     "a@x.com",
		OTP:       "482913",
		ExpiresAt: testNow.Add(10 * time.Minute),
		CreatedAt: testNow,
	}).Return(nil)
	f.mail.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg mailer.Message) error {
			assert.Equal(t, "a@x.com", msg.To)
			assert.Equal(t, mailer.PasswordResetSubject, msg.Subject)
			assert.Contains(t, msg.Body, "482913")
			assert.Contains(t, msg.Body, "10 minutes")
			return nil
		})

	require.NoError(t, f.svc.RequestReset(context.Background(), models.ForgotPasswordRequest{Email: "a@x.com"}))
}

func TestPasswordResetService_RequestReset_RepeatedRequestReplaces(t *testing.T) {
	f := newResetFixture(t, false)
	codes := []string{"111111", "222222"}
	f.svc.otpGenerator = &sequenceOTP{codes: codes}

	var stored []string
	f.accounts.EXPECT().FindAccountByEmail(gomock.Any(), "a@x.com").
		Return(models.Account{Identifier: "21FE1A0001", Email: "a@x.com"}, nil).Times(2)
	f.pending.EXPECT().ReplacePendingReset(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.PendingPasswordReset) error {
			stored = append(stored, r.OTP)
			return nil
		}).Times(2)
	f.mail.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	req := models.ForgotPasswordRequest{Email: "a@x.com"}
	require.NoError(t, f.svc.RequestReset(context.Background(), req))
	require.NoError(t, f.svc.RequestReset(context.Background(), req))

	assert.Equal(t, codes, stored)
}

func TestPasswordResetService_RequestReset_UnknownEmail(t *testing.T) {
	f := newResetFixture(t, false)

	f.accounts.EXPECT().FindAccountByEmail(gomock.Any(), "nobody@x.com").
		Return(models.Account{}, store.ErrAccountNotFound)

	err := f.svc.RequestReset(context.Background(), models.ForgotPasswordRequest{Email: "nobody@x.com"})
	assert.ErrorIs(t, err, ErrEmailNotFound)
}

func TestPasswordResetService_RequestReset_InvalidEmail(t *testing.T) {
	f := newResetFixture(t, false)

	err := f.svc.RequestReset(context.Background(), models.ForgotPasswordRequest{Email: "not-mail"})
	assert.ErrorIs(t, err, validators.ErrValidation)
}

func TestPasswordResetService_RequestReset_MailFailureDropsReset(t *testing.T) {
	f := newResetFixture(t, false)

	f.accounts.EXPECT().FindAccountByEmail(gomock.Any(), "a@x.com").
		Return(models.Account{Identifier: "21FE1A0001", Email: "a@x.com"}, nil)
	f.pending.EXPECT().ReplacePendingReset(gomock.Any(), gomock.Any()).Return(nil)
	f.mail.EXPECT().Send(gomock.Any(), gomock.Any()).Return(mailer.ErrDelivery)
	f.pending.EXPECT().DeletePendingReset(gomock.Any(), "a@x.com").Return(nil)

	err := f.svc.RequestReset(context.Background(), models.ForgotPasswordRequest{Email: "a@x.com"})
	assert.ErrorIs(t, err, mailer.ErrDelivery)
}

// ── VerifyReset ──────────────────────────────────────────────────────────────

func TestPasswordResetService_VerifyReset_Success(t *testing.T) {
	f := newResetFixture(t, false)

	f.pending.EXPECT().FindPendingResetByOTP(gomock.Any(), "a@x.com", "482913").Return(pendingReset(false), nil)
	f.pending.EXPECT().MarkPendingResetVerified(gomock.Any(), "a@x.com", testNow).Return(nil)

	err := f.svc.VerifyReset(context.Background(), models.VerifyResetRequest{Email: "a@x.com", OTP: "482913"})
	assert.NoError(t, err)
}

func TestPasswordResetService_VerifyReset_Failures(t *testing.T) {
	expired := pendingReset(false)
	expired.ExpiresAt = testNow

	tests := []struct {
		name    string
		found   models.PendingPasswordReset
		findErr error
	}{
		{name: "wrong code or email", findErr: store.ErrPendingResetNotFound},
		{name: "expired at the boundary", found: expired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newResetFixture(t, false)
			f.pending.EXPECT().FindPendingResetByOTP(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.found, tt.findErr)

			err := f.svc.VerifyReset(context.Background(), models.VerifyResetRequest{Email: "a@x.com", OTP: "000000"})
			assert.ErrorIs(t, err, ErrInvalidResetOTP)
		})
	}
}

func TestPasswordResetService_VerifyReset_RecordVanished(t *testing.T) {
	f := newResetFixture(t, false)

	f.pending.EXPECT().FindPendingResetByOTP(gomock.Any(), gomock.Any(), gomock.Any()).Return(pendingReset(false), nil)
	f.pending.EXPECT().MarkPendingResetVerified(gomock.Any(), gomock.Any(), gomock.Any()).Return(store.ErrPendingResetNotFound)

	err := f.svc.VerifyReset(context.Background(), models.VerifyResetRequest{Email: "a@x.com", OTP: "482913"})
	assert.ErrorIs(t, err, ErrInvalidResetOTP)
}

// ── ResetPassword ────────────────────────────────────────────────────────────

func TestPasswordResetService_ResetPassword_WithoutVerifyByDefault(t *testing.T) {
	f := newResetFixture(t, false)

	f.pending.EXPECT().FindPendingReset(gomock.Any(), "a@x.com").Return(pendingReset(false), nil)
	f.accounts.EXPECT().UpdatePasswordHash(gomock.Any(), "a@x.com", gomock.Any(), testNow).DoAndReturn(
		func(_ context.Context, _ string, hash string, _ time.Time) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("Newp@ss1")))
			return nil
		})
	f.pending.EXPECT().DeletePendingReset(gomock.Any(), "a@x.com").Return(nil)

	assert.NoError(t, f.svc.ResetPassword(context.Background(), validReset()))
}

func TestPasswordResetService_ResetPassword_RequireVerified(t *testing.T) {
	t.Run("unverified rejected", func(t *testing.T) {
		f := newResetFixture(t, true)
		f.pending.EXPECT().FindPendingReset(gomock.Any(), "a@x.com").Return(pendingReset(false), nil)

		err := f.svc.ResetPassword(context.Background(), validReset())
		assert.ErrorIs(t, err, ErrNoPendingReset)
	})

	t.Run("verified accepted", func(t *testing.T) {
		f := newResetFixture(t, true)
		f.pending.EXPECT().FindPendingReset(gomock.Any(), "a@x.com").Return(pendingReset(true), nil)
		f.accounts.EXPECT().UpdatePasswordHash(gomock.Any(), "a@x.com", gomock.Any(), testNow).Return(nil)
		f.pending.EXPECT().DeletePendingReset(gomock.Any(), "a@x.com").Return(nil)

		assert.NoError(t, f.svc.ResetPassword(context.Background(), validReset()))
	})
}

func TestPasswordResetService_ResetPassword_MismatchBeforePolicy(t *testing.T) {
	f := newResetFixture(t, false)

	err := f.svc.ResetPassword(context.Background(), models.ResetPasswordRequest{
		Email:           "a@x.com",
		Password:        "weak",
		ConfirmPassword: "weaker",
	})
	assert.ErrorIs(t, err, ErrPasswordsDoNotMatch)
}

func TestPasswordResetService_ResetPassword_WeakPassword(t *testing.T) {
	f := newResetFixture(t, false)

	err := f.svc.ResetPassword(context.Background(), models.ResetPasswordRequest{
		Email:           "a@x.com",
		Password:        "weak",
		ConfirmPassword: "weak",
	})
	require.ErrorIs(t, err, validators.ErrValidation)
	assert.Equal(t, validators.MessagePassword, err.Error())
}

func TestPasswordResetService_ResetPassword_NoUsableReset(t *testing.T) {
	expired := pendingReset(true)
	expired.ExpiresAt = testNow.Add(-time.Second)

	tests := []struct {
		name    string
		found   models.PendingPasswordReset
		findErr error
	}{
		{name: "never requested", findErr: store.ErrPendingResetNotFound},
		{name: "expired", found: expired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newResetFixture(t, false)
			f.pending.EXPECT().FindPendingReset(gomock.Any(), "a@x.com").Return(tt.found, tt.findErr)

			err := f.svc.ResetPassword(context.Background(), validReset())
			assert.ErrorIs(t, err, ErrNoPendingReset)
		})
	}
}

func TestPasswordResetService_ResetPassword_AccountGone(t *testing.T) {
	f := newResetFixture(t, false)

	f.pending.EXPECT().FindPendingReset(gomock.Any(), "a@x.com").Return(pendingReset(false), nil)
	f.accounts.EXPECT().UpdatePasswordHash(gomock.Any(), "a@x.com", gomock.Any(), gomock.Any()).Return(store.ErrAccountNotFound)

	err := f.svc.ResetPassword(context.Background(), validReset())
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestPasswordResetService_ResetPassword_DeleteFailureIgnored(t *testing.T) {
	f := newResetFixture(t, false)

	f.pending.EXPECT().FindPendingReset(gomock.Any(), "a@x.com").Return(pendingReset(false), nil)
	f.accounts.EXPECT().UpdatePasswordHash(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.pending.EXPECT().DeletePendingReset(gomock.Any(), "a@x.com").Return(store.ErrExecutingQuery)

	assert.NoError(t, f.svc.ResetPassword(context.Background(), validReset()))
}

// sequenceOTP hands out codes in order.
type sequenceOTP struct {
	codes []string
	next  int
}

func (s *sequenceOTP) Generate() (string, error) {
	code := s.codes[s.next]
	s.next++
	return code, nil
}
