// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/lara-connect/internal/adapter"
	"github.com/MKhiriev/lara-connect/internal/logger"
	"github.com/MKhiriev/lara-connect/internal/store"
)

// ClientServices groups the services of the terminal client.
type ClientServices struct {
	SessionService ClientSessionService
}

// NewClientServices wires the client services. server is the adapter's base
// address, used to key the saved session.
func NewClientServices(storages *store.ClientStorages, api adapter.CredentialsAPI, server string, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		SessionService: NewClientSessionService(storages.SessionRepository, api, server, logger.WithComponent("session")),
	}
}
