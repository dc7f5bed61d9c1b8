// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the body of every successful credential step.
type MessageResponse struct {
	Message string `json:"message"`
}

// SignupResponse echoes the identifier of the created account. The OTP is
// never part of a response.
type SignupResponse struct {
	Message    string `json:"message"`
	Identifier string `json:"username"`
}

// LoginResponse carries the session issued at login.
type LoginResponse struct {
	Message string `json:"message"`
	Session
}

// FieldError describes one violated validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields,omitempty"`
}

// VersionResponse reports the running server version.
type VersionResponse struct {
	Version string `json:"version"`
}

// EventCountResponse reports how many upcoming events the dashboards show.
type EventCountResponse struct {
	Count int `json:"count"`
}
