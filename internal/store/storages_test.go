// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/lara-connect/internal/config"
	"github.com/MKhiriev/lara-connect/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestNewStorages_UnsupportedDSN(t *testing.T) {
	for _, dsn := range []string{"", "mysql://localhost/lara", "file:lara.db"} {
		t.Run(dsn, func(t *testing.T) {
			_, err := NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: dsn}}, logger.Nop())
			assert.ErrorIs(t, err, ErrUnsupportedDSN)
		})
	}
}

func TestDSNSchemes(t *testing.T) {
	assert.True(t, isPostgresDSN("postgres://u:p@localhost/lara"))
	assert.True(t, isPostgresDSN("postgresql://localhost/lara"))
	assert.False(t, isPostgresDSN("mongodb://localhost"))
	assert.True(t, isMongoDSN("mongodb://localhost:27017"))
	assert.True(t, isMongoDSN("mongodb+srv://cluster.example.net"))
	assert.False(t, isMongoDSN("postgres://localhost"))
}

func TestStorages_IsRetryable(t *testing.T) {
	db := &DB{errorClassificator: NewPostgresErrorClassifier()}
	s := &Storages{retryable: db.IsRetryable}

	assert.True(t, s.IsRetryable(&pgconn.PgError{Code: pgerrcode.SerializationFailure}))
	assert.False(t, s.IsRetryable(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.False(t, s.IsRetryable(errors.New("plain")))
	assert.False(t, s.IsRetryable(nil))
	assert.False(t, (&Storages{}).IsRetryable(errors.New("x")))
	assert.NoError(t, (&Storages{}).Close())
}
