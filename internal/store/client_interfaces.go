// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/lara-connect/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository is the terminal client's local session cache. At most
// one session is kept per server address.
type SessionRepository interface {
	SaveSession(ctx context.Context, server string, session models.Session) error
	// LoadSession returns ErrSessionNotFound when nothing is cached.
	LoadSession(ctx context.Context, server string) (models.Session, error)
	DeleteSession(ctx context.Context, server string) error
}
