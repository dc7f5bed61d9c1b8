// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/lara-connect/internal/app"
	"github.com/MKhiriev/lara-connect/internal/logger"
	"github.com/MKhiriev/lara-connect/internal/service"
	"github.com/MKhiriev/lara-connect/internal/utils"
	"github.com/MKhiriev/lara-connect/models"
)

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.FeedService.ListPosts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	author, ok := utils.GetIdentifierFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	var req models.CreatePostRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		writeMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	post, err := h.services.FeedService.CreatePost(r.Context(), author, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusCreated)
}

func (h *Handler) listUpdates(w http.ResponseWriter, r *http.Request) {
	updates, err := h.services.FeedService.LatestUpdates(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if updates == nil {
		updates = []models.Update{}
	}

	utils.WriteJSON(w, updates, http.StatusOK)
}

func (h *Handler) createUpdate(w http.ResponseWriter, r *http.Request) {
	role, ok := utils.GetRoleFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	var req models.CreateUpdateRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		writeMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	update, err := h.services.FeedService.CreateUpdate(r.Context(), role, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, update, http.StatusCreated)
}
