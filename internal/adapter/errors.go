// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"

	"github.com/MKhiriev/lara-connect/models"
)

// Status classes of a failed API call. Every *APIError unwraps to one of
// them.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// ErrMissingToken is returned when a login response carries no bearer token.
var ErrMissingToken = errors.New("response carries no session token")

// APIError is a non-2xx answer of the credential API. Error returns the
// server's message so it can be shown to the user as is.
type APIError struct {
	StatusCode int
	Message    string
	Fields     []models.FieldError

	kind error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.kind
}
