// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/netip"

	"github.com/MKhiriev/lara-connect/internal/utils"
	"github.com/go-chi/chi/v5/middleware"
)

// withRealIP applies chi's RealIP only to requests whose peer is a trusted
// proxy. Forwarding headers from any other peer are ignored, so a client
// cannot choose the address it is throttled under.
func (h *Handler) withRealIP(next http.Handler) http.Handler {
	realIP := middleware.RealIP(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.fromTrustedProxy(r) {
			realIP.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) fromTrustedProxy(r *http.Request) bool {
	if len(h.trustedProxies) == 0 {
		return false
	}

	addr, err := netip.ParseAddr(utils.ClientIP(r))
	if err != nil {
		return false
	}
	addr = addr.Unmap()

	for _, prefix := range h.trustedProxies {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}
