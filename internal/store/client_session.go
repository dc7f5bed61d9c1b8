// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/lara-connect/internal/logger"
	"github.com/MKhiriev/lara-connect/models"
)

const (
	saveSession = `INSERT INTO sessions (server, identifier, role, landing, token, saved_at)
    VALUES (?, ?, ?, ?, ?, ?)
    ON CONFLICT (server) DO UPDATE SET
        identifier = excluded.identifier,
        role = excluded.role,
        landing = excluded.landing,
        token = excluded.token,
        saved_at = excluded.saved_at;`

	loadSession = `SELECT identifier, role, landing, token
    FROM sessions
    WHERE server = ?;`

	deleteSession = `DELETE FROM sessions WHERE server = ?;`
)

// localSessionRepository is the sqlite implementation of [SessionRepository].
type localSessionRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

func NewLocalSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &localSessionRepository{db: db, logger: logger, now: time.Now}
}

func (r *localSessionRepository) SaveSession(ctx context.Context, server string, session models.Session) error {
	_, err := r.db.ExecContext(ctx, saveSession,
		server, session.Identifier, string(session.Role), session.Landing, session.Token, r.now().UTC())
	if err != nil {
		r.logger.Err(err).Str("func", "*localSessionRepository.SaveSession").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *localSessionRepository) LoadSession(ctx context.Context, server string) (models.Session, error) {
	var (
		session models.Session
		role    string
	)

	err := r.db.QueryRowContext(ctx, loadSession, server).
		Scan(&session.Identifier, &role, &session.Landing, &session.Token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}
		r.logger.Err(err).Str("func", "*localSessionRepository.LoadSession").Msg("error loading session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	session.Role = models.Role(role)

	return session, nil
}

func (r *localSessionRepository) DeleteSession(ctx context.Context, server string) error {
	if _, err := r.db.ExecContext(ctx, deleteSession, server); err != nil {
		r.logger.Err(err).Str("func", "*localSessionRepository.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
