// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/signup", h.signup)
		r.With(h.throttleOTP(signupAccountKey)).Post("/api/verify-otp", h.verifySignup)
		r.Post("/api/login", h.login)

		r.Post("/api/forgot-password", h.forgotPassword)
		r.With(h.throttleOTP(resetAccountKey)).Post("/api/verify-forgot-otp", h.verifyForgotOTP)
		r.Post("/api/reset-password", h.resetPassword)

		r.Get("/api/posts", h.listPosts)
		r.Get("/api/updates", h.listUpdates)
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/events/count", h.getEventCount)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/session", h.getSession)
		r.Post("/api/posts", h.createPost)
		r.Post("/api/updates", h.createUpdate)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
