// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/lara-connect/models"
)

// ClientSessionService keeps the terminal client's session across runs.
type ClientSessionService interface {
	// Resume loads the saved session and checks it with the server. It
	// returns ErrNoSavedSession when nothing is saved and
	// ErrTokenIsExpiredOrInvalid (after forgetting the session) when the
	// server rejects the token.
	Resume(ctx context.Context) (models.Session, error)

	// Remember saves session for the next run.
	Remember(ctx context.Context, session models.Session) error

	// Forget drops the saved session. Forgetting nothing is not an error.
	Forget(ctx context.Context) error

	// ServerVersion asks the server for its version.
	ServerVersion(ctx context.Context) (string, error)
}
