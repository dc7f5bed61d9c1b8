// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/lara-connect/internal/app"
	"github.com/MKhiriev/lara-connect/internal/logger"
	"github.com/MKhiriev/lara-connect/internal/utils"
)

// auth is an HTTP middleware that enforces session-token authentication.
//
// It reads the bearer token from the "Authorization" header, validates it
// via [service.SessionService.Parse] and stores the session owner's
// identifier and role in the request context (see [utils.WithSession]).
// Every rejection is answered with 401 and the same message, so callers
// cannot tell a missing header from an expired token.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			writeMessage(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(ErrInvalidAuthorizationHeader).Send()
			writeMessage(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		session, err := h.services.SessionService.Parse(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx = utils.WithSession(ctx, session.Identifier, session.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
