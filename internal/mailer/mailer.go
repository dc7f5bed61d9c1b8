// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mailer delivers one-time passwords by email.
package mailer

import (
	"context"
	"errors"

	"github.com/MKhiriev/lara-connect/internal/config"
	"github.com/MKhiriev/lara-connect/internal/logger"
)

//go:generate mockgen -source=mailer.go -destination=../mock/mailer_mock.go -package=mock

// ErrDelivery wraps every failure to hand a message to the relay.
var ErrDelivery = errors.New("mail delivery failed")

// Message is a plain-text email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer sends a message or reports why it could not.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// New returns an SMTP mailer for cfg, or a log-only mailer when no SMTP host
// is configured.
func New(cfg config.Mail, log *logger.Logger) Mailer {
	if cfg.Host == "" {
		log.Warn().Str("func", "mailer.New").Msg("no SMTP host configured, one-time passwords are only logged")
		return NewLogMailer(log)
	}

	return NewSMTPMailer(cfg, log)
}
