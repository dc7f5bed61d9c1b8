// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/lara-connect/internal/adapter"
	"github.com/MKhiriev/lara-connect/internal/logger"
	"github.com/MKhiriev/lara-connect/internal/store"
	"github.com/MKhiriev/lara-connect/models"
)

type clientSessionService struct {
	sessions store.SessionRepository
	api      adapter.CredentialsAPI
	// server keys the saved session, one per server address.
	server string

	logger *logger.Logger
}

func NewClientSessionService(sessions store.SessionRepository, api adapter.CredentialsAPI, server string, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{
		sessions: sessions,
		api:      api,
		server:   server,
		logger:   logger,
	}
}

func (s *clientSessionService) Resume(ctx context.Context) (models.Session, error) {
	saved, err := s.sessions.LoadSession(ctx, s.server)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, ErrNoSavedSession
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("error loading saved session: %w", err)
	}

	current, err := s.api.Session(ctx, saved.Token)
	if err != nil {
		err = mapAdapterError(err)
		if !errors.Is(err, ErrTokenIsExpiredOrInvalid) {
			return models.Session{}, fmt.Errorf("error checking saved session: %w", err)
		}

		s.logger.Info().Str("username", saved.Identifier).Msg("saved session was rejected, forgetting it")
		if delErr := s.sessions.DeleteSession(ctx, s.server); delErr != nil {
			s.logger.Err(delErr).Msg("error forgetting rejected session")
		}
		return models.Session{}, err
	}

	if current.Token == "" {
		current.Token = saved.Token
	}
	if current.Landing == "" {
		current.Landing = current.Role.Landing()
	}

	return current, nil
}

func (s *clientSessionService) Remember(ctx context.Context, session models.Session) error {
	if session.Token == "" {
		return ErrTokenIsExpiredOrInvalid
	}

	if err := s.sessions.SaveSession(ctx, s.server, session); err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}
	return nil
}

func (s *clientSessionService) Forget(ctx context.Context) error {
	err := s.sessions.DeleteSession(ctx, s.server)
	if err != nil && !errors.Is(err, store.ErrSessionNotFound) {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}

func (s *clientSessionService) ServerVersion(ctx context.Context) (string, error) {
	return s.api.Version(ctx)
}
