// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front-end of the lara-connect client. It renders
// the form of the current credential step and sends keystrokes and
// submissions to a [flow.Sequencer].
package tui

import (
	"context"

	"github.com/MKhiriev/lara-connect/internal/flow"
	"github.com/MKhiriev/lara-connect/internal/logger"
	"github.com/MKhiriev/lara-connect/models"
	tea "github.com/charmbracelet/bubbletea"
)

// VersionFunc fetches the version the server reports.
type VersionFunc func(ctx context.Context) (string, error)

// Hooks are called around the authenticated state. Either may be nil.
type Hooks struct {
	OnAuthenticated func(ctx context.Context, session models.Session) error
	OnLogout        func(ctx context.Context) error
}

type TUI struct {
	seq     *flow.Sequencer
	version VersionFunc
	hooks   Hooks
	info    models.AppBuildInfo
	logger  *logger.Logger
}

func New(seq *flow.Sequencer, version VersionFunc, hooks Hooks, info models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{
		seq:     seq,
		version: version,
		hooks:   hooks,
		info:    info,
		logger:  log,
	}
}

// Run shows the UI until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	m := newModel(ctx, t.seq, t.version, t.hooks, t.info)

	finalModel, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Msg("terminal UI stopped")
		return err
	}

	result, ok := finalModel.(model)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
