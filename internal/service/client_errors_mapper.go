// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/lara-connect/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// error where the client needs to act on it. Only the session check goes
// through here, so every 401 means the token was rejected.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized),
		errors.Is(err, adapter.ErrMissingToken):
		return ErrTokenIsExpiredOrInvalid
	}

	return err
}
