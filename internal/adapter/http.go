// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/lara-connect/internal/config"
	"github.com/MKhiriev/lara-connect/internal/logger"
	"github.com/MKhiriev/lara-connect/internal/utils"
	"github.com/MKhiriev/lara-connect/models"
	"github.com/go-resty/resty/v2"
)

type httpCredentialsAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPCredentialsAdapter constructs an HTTP/REST implementation of
// [CredentialsAPI]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying client with the
// request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPCredentialsAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (CredentialsAPI, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpCredentialsAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Signup implements [CredentialsAPI]. POST /api/signup.
func (h *httpCredentialsAdapter) Signup(ctx context.Context, req models.SignupRequest) (models.SignupResponse, error) {
	var result models.SignupResponse
	if err := h.post(ctx, "/api/signup", req, &result); err != nil {
		return models.SignupResponse{}, err
	}
	return result, nil
}

// VerifySignup implements [CredentialsAPI]. POST /api/verify-otp.
func (h *httpCredentialsAdapter) VerifySignup(ctx context.Context, req models.VerifySignupRequest) (models.MessageResponse, error) {
	var result models.MessageResponse
	if err := h.post(ctx, "/api/verify-otp", req, &result); err != nil {
		return models.MessageResponse{}, err
	}
	return result, nil
}

// Login implements [CredentialsAPI]. It POSTs to /api/login and takes the
// token from the Authorization response header, which the server sets in
// addition to the body.
func (h *httpCredentialsAdapter) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	var result models.LoginResponse

	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/login")
	if err != nil {
		return models.Session{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		if result.Token == "" {
			return models.Session{}, ErrMissingToken
		}
		token = result.Token
	}

	session := result.Session
	session.Token = token
	return session, nil
}

// ForgotPassword implements [CredentialsAPI]. POST /api/forgot-password.
func (h *httpCredentialsAdapter) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (models.MessageResponse, error) {
	var result models.MessageResponse
	if err := h.post(ctx, "/api/forgot-password", req, &result); err != nil {
		return models.MessageResponse{}, err
	}
	return result, nil
}

// VerifyReset implements [CredentialsAPI]. POST /api/verify-forgot-otp.
func (h *httpCredentialsAdapter) VerifyReset(ctx context.Context, req models.VerifyResetRequest) (models.MessageResponse, error) {
	var result models.MessageResponse
	if err := h.post(ctx, "/api/verify-forgot-otp", req, &result); err != nil {
		return models.MessageResponse{}, err
	}
	return result, nil
}

// ResetPassword implements [CredentialsAPI]. POST /api/reset-password.
func (h *httpCredentialsAdapter) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (models.MessageResponse, error) {
	var result models.MessageResponse
	if err := h.post(ctx, "/api/reset-password", req, &result); err != nil {
		return models.MessageResponse{}, err
	}
	return result, nil
}

// Session implements [CredentialsAPI]. GET /api/session with the token as
// bearer credentials.
func (h *httpCredentialsAdapter) Session(ctx context.Context, token string) (models.Session, error) {
	var result models.Session

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(strings.TrimSpace(token)).
		SetResult(&result).
		Get("/api/session")
	if err != nil {
		return models.Session{}, fmt.Errorf("session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	result.Token = token
	return result, nil
}

// Version implements [CredentialsAPI]. GET /api/version.
func (h *httpCredentialsAdapter) Version(ctx context.Context) (string, error) {
	var result models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.Version, nil
}

func (h *httpCredentialsAdapter) post(ctx context.Context, path string, body, result any) error {
	resp, err := h.request(ctx).
		SetBody(body).
		SetResult(result).
		Post(path)
	if err != nil {
		h.logger.Err(err).Str("path", path).Msg("request failed")
		return fmt.Errorf("%s request: %w", strings.TrimPrefix(path, "/api/"), err)
	}

	return mapHTTPError(resp)
}

func (h *httpCredentialsAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
}
