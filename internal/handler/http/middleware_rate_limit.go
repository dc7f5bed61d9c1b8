// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/lara-connect/internal/app"
	"github.com/MKhiriev/lara-connect/internal/logger"
	"github.com/MKhiriev/lara-connect/internal/utils"
	"github.com/MKhiriev/lara-connect/models"
	"golang.org/x/time/rate"
)

const (
	// limiterIdleTTL is how long an unused bucket is kept.
	limiterIdleTTL = 15 * time.Minute
	// pruneEvery is the number of checks between two prunes.
	pruneEvery = 1024
	// maxPeekBytes bounds the body of a throttled request.
	maxPeekBytes = 4 << 10
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

// otpLimiter keeps a token bucket per key.
// A nil *otpLimiter allows everything.
type otpLimiter struct {
	limit rate.Limit
	burst int

	buckets sync.Map // key -> *limiterEntry
	checks  atomic.Uint64
	now     func() time.Time
}

// newOTPLimiter returns nil when perMinute is not positive, which disables
// throttling.
func newOTPLimiter(perMinute, burst int) *otpLimiter {
	if perMinute <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}

	return &otpLimiter{
		limit: rate.Limit(float64(perMinute) / 60),
		burst: burst,
		now:   time.Now,
	}
}

// allow takes one token from the bucket of every key, or from none of them.
func (l *otpLimiter) allow(keys ...string) bool {
	if l == nil {
		return true
	}

	now := l.now()
	if l.checks.Add(1)%pruneEvery == 0 {
		l.prune(now)
	}

	taken := make([]*rate.Reservation, 0, len(keys))
	for _, key := range keys {
		r := l.bucket(key, now).ReserveN(now, 1)
		if !r.OK() || r.DelayFrom(now) > 0 {
			r.CancelAt(now)
			for _, prev := range taken {
				prev.CancelAt(now)
			}
			return false
		}
		taken = append(taken, r)
	}

	return true
}

func (l *otpLimiter) bucket(key string, now time.Time) *rate.Limiter {
	v, _ := l.buckets.LoadOrStore(key, &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)})
	entry := v.(*limiterEntry)
	entry.lastSeen.Store(now.UnixNano())
	return entry.limiter
}

func (l *otpLimiter) prune(now time.Time) {
	cutoff := now.Add(-limiterIdleTTL).UnixNano()
	l.buckets.Range(func(key, v any) bool {
		if v.(*limiterEntry).lastSeen.Load() < cutoff {
			l.buckets.Delete(key)
		}
		return true
	})
}

// accountKey extracts the account an OTP request is aimed at. It decodes
// the body into the same request type the handler does, so the key is the
// value the handler will act on.
type accountKey func(body []byte) string

func signupAccountKey(body []byte) string {
	var req models.VerifySignupRequest
	if json.Unmarshal(body, &req) != nil {
		return ""
	}
	return "username:" + normalizeAccount(req.Identifier)
}

func resetAccountKey(body []byte) string {
	var req models.VerifyResetRequest
	if json.Unmarshal(body, &req) != nil {
		return ""
	}
	return "email:" + normalizeAccount(req.Email)
}

func normalizeAccount(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// throttleOTP limits OTP guesses with two buckets: one per client address
// and account, and one per account alone so that changing address does not
// buy more guesses. The body is read for the account and handed on intact.
func (h *Handler) throttleOTP(key accountKey) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if h.limiter == nil {
				next.ServeHTTP(w, r)
				return
			}

			var account string
			if r.Body != nil && r.Body != http.NoBody {
				body, err := io.ReadAll(io.LimitReader(r.Body, maxPeekBytes+1))
				if err != nil {
					writeMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
					return
				}
				if len(body) > maxPeekBytes {
					writeMessage(w, app.MsgInvalidDataProvided, http.StatusRequestEntityTooLarge)
					return
				}
				account = key(body)
				r.Body = io.NopCloser(bytes.NewReader(body))
			}

			ip := utils.ClientIP(r)
			keys := []string{"client:" + ip + "|" + account}
			if account != "" {
				keys = append(keys, "account:"+account)
			}

			if !h.limiter.allow(keys...) {
				logger.FromRequest(r).Warn().Err(ErrTooManyRequests).Str("ip", ip).Str("account", account).Send()
				w.Header().Set("Retry-After", "60")
				writeMessage(w, app.MsgTooManyRequests, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
