// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/lara-connect/internal/adapter"
	"github.com/MKhiriev/lara-connect/internal/flow"
	"github.com/MKhiriev/lara-connect/internal/validators"
)

// ErrUserQuit is returned by Run when the user leaves with ctrl+c.
var ErrUserQuit = errors.New("user quit the client")

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") {
		return "No network or the server is unavailable"
	}

	return flow.ErrorMessage(err)
}

// extraFieldMessages returns the messages of every violated field but the
// first, which humanizeError already shows.
func extraFieldMessages(err error) []string {
	fields := validators.FieldErrors(err)

	var apiErr *adapter.APIError
	if len(fields) == 0 && errors.As(err, &apiErr) {
		fields = apiErr.Fields
	}
	if len(fields) < 2 {
		return nil
	}

	messages := make([]string, 0, len(fields)-1)
	for _, fe := range fields[1:] {
		messages = append(messages, fe.Message)
	}
	return messages
}
