// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/lara-connect/internal/config"
	"github.com/MKhiriev/lara-connect/internal/logger"
	"github.com/MKhiriev/lara-connect/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClientStorages opens a real sqlite file in a temp dir.
func newTestClientStorages(t *testing.T) *ClientStorages {
	t.Helper()
	cfg := config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "session.db")}}

	storages, err := NewClientStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	return storages
}

func TestLocalSessionRepository_RoundTrip(t *testing.T) {
	repo := newTestClientStorages(t).SessionRepository
	ctx := context.Background()
	session := models.Session{
		Token:      "jwt",
		Identifier: "21FE1A0001",
		Role:       models.RoleStudent,
		Landing:    models.StudentLanding,
	}

	_, err := repo.LoadSession(ctx, "http://localhost:8080")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, repo.SaveSession(ctx, "http://localhost:8080", session))

	loaded, err := repo.LoadSession(ctx, "http://localhost:8080")
	require.NoError(t, err)
	assert.Equal(t, session, loaded)

	// a second save replaces the first
	session.Token = "jwt-2"
	require.NoError(t, repo.SaveSession(ctx, "http://localhost:8080", session))
	loaded, err = repo.LoadSession(ctx, "http://localhost:8080")
	require.NoError(t, err)
	assert.Equal(t, "jwt-2", loaded.Token)

	// sessions are per server
	_, err = repo.LoadSession(ctx, "http://other:8080")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, repo.DeleteSession(ctx, "http://localhost:8080"))
	_, err = repo.LoadSession(ctx, "http://localhost:8080")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
