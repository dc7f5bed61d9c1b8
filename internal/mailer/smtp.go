// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mailer

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"os"
	"strconv"
	"strings"

	"github.com/MKhiriev/lara-connect/internal/config"
	"github.com/MKhiriev/lara-connect/internal/logger"
)

// SMTPMailer delivers messages through an SMTP relay. The session is
// upgraded with STARTTLS whenever the relay offers it, and PLAIN auth is
// used when a username is configured.
type SMTPMailer struct {
	cfg    config.Mail
	logger *logger.Logger

	dial func(ctx context.Context, network, addr string) (net.Conn, error)
}

func NewSMTPMailer(cfg config.Mail, log *logger.Logger) *SMTPMailer {
	dialer := &net.Dialer{}
	return &SMTPMailer{
		cfg:    cfg,
		logger: log,
		dial:   dialer.DialContext,
	}
}

// Send delivers msg. Cancellation of ctx is ignored, so a caller that goes
// away does not abort a delivery in progress; only the configured timeout
// bounds the SMTP conversation.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	ctx = context.WithoutCancel(ctx)
	if m.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.cfg.Timeout)
		defer cancel()
	}

	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))

	conn, err := m.dial(ctx, "tcp", addr)
	if err != nil {
		m.logger.Err(err).Str("func", "*SMTPMailer.Send").Str("addr", addr).Msg("failed to dial SMTP")
		return fmt.Errorf("%w: dial: %w", ErrDelivery, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	if err = m.converse(conn, msg); err != nil {
		m.logger.Err(err).Str("func", "*SMTPMailer.Send").Str("to", msg.To).Msg("failed to send mail")
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %w", ErrDelivery, ctxErr)
		}
		if errors.Is(err, os.ErrDeadlineExceeded) {
			return fmt.Errorf("%w: %w", ErrDelivery, context.DeadlineExceeded)
		}
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	}

	m.logger.Info().Str("func", "*SMTPMailer.Send").Str("to", msg.To).Str("subject", msg.Subject).Msg("mail sent")
	return nil
}

func (m *SMTPMailer) converse(conn net.Conn, msg Message) error {
	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		return fmt.Errorf("greeting: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err = client.StartTLS(&tls.Config{ServerName: m.cfg.Host}); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}

	if m.cfg.Username != "" {
		auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("auth: %w", err)
		}
	}

	if err = client.Mail(m.cfg.From); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err = client.Rcpt(msg.To); err != nil {
		return fmt.Errorf("rcpt to: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err = w.Write(m.render(msg)); err != nil {
		return fmt.Errorf("writing body: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("closing body: %w", err)
	}

	return client.Quit()
}

func (m *SMTPMailer) render(msg Message) []byte {
	var b strings.Builder
	b.WriteString("From: " + m.cfg.From + "\r\n")
	b.WriteString("To: " + msg.To + "\r\n")
	b.WriteString("Subject: " + msg.Subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(msg.Body, "\n", "\r\n"))
	b.WriteString("\r\n")
	return []byte(b.String())
}
