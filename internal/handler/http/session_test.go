// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/lara-connect/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestGetSession(t *testing.T) {
	router := newTestRouter(&service.Services{})

	rr := doJSON(t, router, http.MethodGet, "/api/session", nil, "alumni-token")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t,
		`{"token":"","username":"15FE1A0001","role":"alumni","landing":"Almumnidashboard"}`,
		rr.Body.String())
}

func TestAuth_Rejections(t *testing.T) {
	router := newTestRouter(&service.Services{})

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header"},
		{name: "scheme only", header: "Bearer"},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "unknown token", header: "Bearer forged-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, "token is expired or invalid", decodeError(t, rr).Error)
		})
	}
}
