// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/lara-connect/internal/adapter"
	"github.com/MKhiriev/lara-connect/internal/flow"
	"github.com/MKhiriev/lara-connect/internal/logger"
	"github.com/MKhiriev/lara-connect/internal/service"
	"github.com/MKhiriev/lara-connect/internal/tui"
	"github.com/MKhiriev/lara-connect/internal/validators"
	"github.com/MKhiriev/lara-connect/models"
)

type App struct {
	sessions service.ClientSessionService
	seq      *flow.Sequencer
	ui       UI

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, api adapter.CredentialsAPI, info models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	if services == nil || services.SessionService == nil || api == nil {
		return nil, errors.New("client app needs the session service and the credentials adapter")
	}

	sessions := services.SessionService
	seq := flow.NewSequencer(api, validators.NewRequestValidator())
	ui := tui.New(seq, sessions.ServerVersion, tui.Hooks{
		OnAuthenticated: sessions.Remember,
		OnLogout:        sessions.Forget,
	}, info, logger.WithComponent("tui"))

	return newApp(sessions, seq, ui, logger), nil
}

func newApp(sessions service.ClientSessionService, seq *flow.Sequencer, ui UI, logger *logger.Logger) *App {
	return &App{
		sessions: sessions,
		seq:      seq,
		ui:       ui,
		logger:   logger,
	}
}

// Run resumes the saved session, or starts on the signup form, and blocks
// until the user quits. Quitting is not an error.
func (a *App) Run(ctx context.Context) error {
	a.resume(ctx)

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (a *App) resume(ctx context.Context) {
	session, err := a.sessions.Resume(ctx)
	switch {
	case err == nil:
		a.logger.Info().Str("username", session.Identifier).Msg("resumed saved session")
		a.seq.Resume(session)
	case errors.Is(err, service.ErrNoSavedSession):
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		a.logger.Info().Msg("saved session expired")
		a.seq.ToLogin()
	default:
		a.logger.Warn().Err(err).Msg("could not resume saved session")
		a.seq.ToLogin()
	}
}
