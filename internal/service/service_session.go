// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/lara-connect/internal/config"
	"github.com/MKhiriev/lara-connect/internal/logger"
	"github.com/MKhiriev/lara-connect/internal/utils"
	"github.com/MKhiriev/lara-connect/models"
)

// sessionService issues HS256 session tokens whose subject is the account
// identifier and whose role claim is derived from the identifier prefix.
type sessionService struct {
	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every token. Tokens with a
	// different issuer are rejected during parsing.
	tokenIssuer string

	tokenDuration time.Duration
	roleCutoff    int

	logger *logger.Logger
}

func NewSessionService(cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		roleCutoff:    cfg.RoleCutoff,
		logger:        logger,
	}
}

// Issue signs a token for identifier and returns it with the role and the
// landing route of that role.
func (s *sessionService) Issue(ctx context.Context, identifier string) (models.Session, error) {
	role, err := s.RoleFor(identifier)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	token, err := utils.GenerateJWTToken(s.tokenIssuer, identifier, role, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionService.Issue").Msg("token generation failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.Session{
		Token:      token.String(),
		Identifier: identifier,
		Role:       role,
		Landing:    role.Landing(),
	}, nil
}

// Parse validates signature, issuer and expiry. Every failure is reported as
// [ErrTokenIsExpiredOrInvalid].
func (s *sessionService) Parse(ctx context.Context, tokenString string) (models.Session, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("session token rejected")
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}

	identifier, err := token.GetIdentifier()
	if err != nil {
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}

	return models.Session{
		Token:      tokenString,
		Identifier: identifier,
		Role:       token.Role,
		Landing:    token.Role.Landing(),
	}, nil
}

// RoleFor derives the role from the two-digit identifier prefix.
func (s *sessionService) RoleFor(identifier string) (models.Role, error) {
	return models.RoleFromIdentifier(identifier, s.roleCutoff)
}
