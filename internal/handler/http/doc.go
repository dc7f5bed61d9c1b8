// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the JSON
// API. Request tracing, access logging, session authentication and OTP
// throttling are handled in this package before requests are delegated to
// the service layer. Every failed request is answered with
// [models.ErrorResponse].
package http
