// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/lara-connect/internal/service"
	"github.com/MKhiriev/lara-connect/internal/utils"
	"github.com/MKhiriev/lara-connect/models"
)

// getSession describes the caller's own session. The token is not echoed.
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	identifier, ok := utils.GetIdentifierFromContext(r.Context())
	role, roleOK := utils.GetRoleFromContext(r.Context())
	if !ok || !roleOK {
		writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	utils.WriteJSON(w, models.Session{
		Identifier: identifier,
		Role:       role,
		Landing:    role.Landing(),
	}, http.StatusOK)
}
