// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler groups the transport handlers served by the server.
package handler

import (
	"github.com/MKhiriev/lara-connect/internal/config"
	myHTTP "github.com/MKhiriev/lara-connect/internal/handler/http"
	"github.com/MKhiriev/lara-connect/internal/logger"
	"github.com/MKhiriev/lara-connect/internal/service"
)

type Handlers struct {
	HTTP *myHTTP.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) *Handlers {
	return &Handlers{
		HTTP: myHTTP.NewHandler(services, cfg, logger.WithComponent("http")),
	}
}
