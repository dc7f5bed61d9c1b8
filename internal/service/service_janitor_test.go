// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/lara-connect/internal/config"
	"github.com/MKhiriev/lara-connect/internal/logger"
	"github.com/MKhiriev/lara-connect/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestJanitor(t *testing.T) (*janitorService, *mock.MockAccountRepository, *mock.MockPendingResetRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	accounts := mock.NewMockAccountRepository(ctrl)
	pending := mock.NewMockPendingResetRepository(ctrl)

	svc := NewJanitorService(accounts, pending, nil, config.Workers{UnverifiedRetention: time.Hour}, logger.Nop()).(*janitorService)
	svc.now = func() time.Time { return testNow }
	return svc, accounts, pending
}

func TestJanitorService_Sweep(t *testing.T) {
	svc, accounts, pending := newTestJanitor(t)

	accounts.EXPECT().DeleteUnverifiedAccounts(gomock.Any(), testNow.Add(-time.Hour)).Return(int64(2), nil)
	pending.EXPECT().DeleteExpiredPendingResets(gomock.Any(), testNow).Return(int64(5), nil)

	result, err := svc.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SweepResult{UnverifiedAccounts: 2, ExpiredResets: 5}, result)
}

func TestJanitorService_Sweep_ContinuesAfterFailure(t *testing.T) {
	svc, accounts, pending := newTestJanitor(t)
	accountsErr := errors.New("accounts down")

	accounts.EXPECT().DeleteUnverifiedAccounts(gomock.Any(), gomock.Any()).Return(int64(0), accountsErr)
	pending.EXPECT().DeleteExpiredPendingResets(gomock.Any(), gomock.Any()).Return(int64(1), nil)

	result, err := svc.Sweep(context.Background())
	assert.ErrorIs(t, err, accountsErr)
	assert.Equal(t, int64(1), result.ExpiredResets)
}

func TestJanitorService_Sweep_MarksTransientFailures(t *testing.T) {
	svc, accounts, pending := newTestJanitor(t)
	transient := errors.New("connection reset")
	svc.retryable = func(err error) bool { return errors.Is(err, transient) }

	accounts.EXPECT().DeleteUnverifiedAccounts(gomock.Any(), gomock.Any()).Return(int64(0), transient)
	pending.EXPECT().DeleteExpiredPendingResets(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("syntax error"))

	_, err := svc.Sweep(context.Background())
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.ErrorIs(t, err, transient)
}

func TestJanitorService_Sweep_PermanentFailureIsNotTransient(t *testing.T) {
	svc, accounts, pending := newTestJanitor(t)
	svc.retryable = func(error) bool { return false }

	accounts.EXPECT().DeleteUnverifiedAccounts(gomock.Any(), gomock.Any()).Return(int64(0), nil)
	pending.EXPECT().DeleteExpiredPendingResets(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("syntax error"))

	_, err := svc.Sweep(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrStorageUnavailable)
}
