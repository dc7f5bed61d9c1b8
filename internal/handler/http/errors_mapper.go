// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/lara-connect/internal/app"
	"github.com/MKhiriev/lara-connect/internal/logger"
	"github.com/MKhiriev/lara-connect/internal/mailer"
	"github.com/MKhiriev/lara-connect/internal/service"
	"github.com/MKhiriev/lara-connect/internal/store"
	"github.com/MKhiriev/lara-connect/internal/utils"
	"github.com/MKhiriev/lara-connect/internal/validators"
	"github.com/MKhiriev/lara-connect/models"
)

type errorAnswer struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorAnswer{
	service.ErrPasswordsDoNotMatch:   {http.StatusBadRequest, app.MsgPasswordsDoNotMatch},
	store.ErrIdentifierAlreadyExists: {http.StatusBadRequest, app.MsgUsernameTaken},
	store.ErrEmailAlreadyExists:      {http.StatusBadRequest, app.MsgEmailTaken},
	service.ErrAccountNotFound:       {http.StatusNotFound, app.MsgUserNotFound},
	service.ErrInvalidOTP:            {http.StatusBadRequest, app.MsgInvalidOTP},
	mailer.ErrDelivery:               {http.StatusInternalServerError, app.MsgDeliveryFailed},

	service.ErrUnknownIdentifier:  {http.StatusUnauthorized, app.MsgLoginUserNotFound},
	service.ErrWrongPassword:      {http.StatusUnauthorized, app.MsgIncorrectPassword},
	service.ErrAccountNotVerified: {http.StatusUnauthorized, app.MsgAccountNotVerified},
	models.ErrInvalidRolePrefix:   {http.StatusBadRequest, app.MsgInvalidRolePrefix},

	service.ErrEmailNotFound:   {http.StatusNotFound, app.MsgEmailNotFound},
	service.ErrInvalidResetOTP: {http.StatusBadRequest, app.MsgInvalidOTPOrEmail},
	service.ErrNoPendingReset:  {http.StatusBadRequest, app.MsgNoPendingReset},

	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	service.ErrForbiddenRole:           {http.StatusForbidden, app.MsgForbiddenRole},
	store.ErrAuthorNotFound:            {http.StatusNotFound, app.MsgUserNotFound},
}

// answerFromError picks the status and caller-facing message for err.
// Validation errors carry their own message, the first violated rule.
// Anything unknown is an internal error and its text never leaves the server.
func answerFromError(err error) errorAnswer {
	if errors.Is(err, validators.ErrValidation) {
		message := validators.ErrValidation.Error()
		if fields := validators.FieldErrors(err); len(fields) > 0 {
			message = fields[0].Message
		}
		return errorAnswer{http.StatusBadRequest, message}
	}

	for target, answer := range errorStatusMap {
		if errors.Is(err, target) {
			return answer
		}
	}

	return errorAnswer{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeError logs err and answers with the mapped status and message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	writeAnswer(w, r, err, answerFromError(err))
}

func writeAnswer(w http.ResponseWriter, r *http.Request, err error, answer errorAnswer) {
	log := logger.FromRequest(r)

	if answer.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", answer.status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", answer.status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{
		Error:  answer.message,
		Fields: validators.FieldErrors(err),
	}, answer.status)
}

// writeMessage answers a failed request with a fixed message.
func writeMessage(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, app.MsgNotFound, http.StatusNotFound)
}
