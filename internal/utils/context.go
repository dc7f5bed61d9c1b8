// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP request and response helpers, HTTP client initialization,
// session token generation and validation, and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/lara-connect/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// IdentifierCtxKey is the key under which the auth middleware stores the
// identifier of the session owner.
var IdentifierCtxKey = contextKey("identifier")

// RoleCtxKey is the key under which the auth middleware stores the role of
// the session owner.
var RoleCtxKey = contextKey("role")

// WithSession returns a copy of ctx carrying the session owner.
func WithSession(ctx context.Context, identifier string, role models.Role) context.Context {
	ctx = context.WithValue(ctx, IdentifierCtxKey, identifier)
	return context.WithValue(ctx, RoleCtxKey, role)
}

// GetIdentifierFromContext retrieves the session owner's identifier.
// ok is false when the value is missing, empty or has an unexpected type.
func GetIdentifierFromContext(ctx context.Context) (string, bool) {
	identifier, ok := ctx.Value(IdentifierCtxKey).(string)
	return identifier, ok && identifier != ""
}

// GetRoleFromContext retrieves the session owner's role.
func GetRoleFromContext(ctx context.Context) (models.Role, bool) {
	role, ok := ctx.Value(RoleCtxKey).(models.Role)
	return role, ok
}
