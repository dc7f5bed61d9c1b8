// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/lara-connect/internal/app"
	"github.com/MKhiriev/lara-connect/internal/logger"
	"github.com/MKhiriev/lara-connect/internal/utils"
	"github.com/MKhiriev/lara-connect/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	account, err := h.services.AccountService.Signup(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SignupResponse{
		Message:    app.MsgSignupCreated,
		Identifier: account.Identifier,
	}, http.StatusCreated)
}

func (h *Handler) verifySignup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.VerifySignupRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.AccountService.VerifySignup(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgEmailVerified}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeMessage(w, app.MsgInvalidDataProvided, http.StatusUnauthorized)
		return
	}

	session, err := h.services.AccountService.Login(r.Context(), req)
	if err != nil {
		// login answers 401 for every caller mistake
		answer := answerFromError(err)
		if answer.status < http.StatusInternalServerError {
			answer.status = http.StatusUnauthorized
		}
		writeAnswer(w, r, err, answer)
		return
	}

	log.Debug().Str("username", session.Identifier).Str("role", string(session.Role)).Msg("user logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", session.Token))
	utils.WriteJSON(w, models.LoginResponse{
		Message: app.MsgLoginSuccessful,
		Session: session,
	}, http.StatusOK)
}
