// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set of a session token. The subject carries the
// account identifier.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Role is derived from the identifier at login and signed into the token.
	Role Role `json:"role"`
}

// Token wraps a signed session token with convenience accessors.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [SessionClaims] for claim access.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	SessionClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// GetIdentifier returns the account identifier stored in the "sub" claim.
func (t *Token) GetIdentifier() (string, error) {
	identifier, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting identifier from token: %w", err)
	}
	if identifier == "" {
		return "", fmt.Errorf("error extracting identifier from token: empty subject")
	}

	return identifier, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// Session is what a successful login hands back to the client.
type Session struct {
	Token      string `json:"token"`
	Identifier string `json:"username"`
	Role       Role   `json:"role"`
	Landing    string `json:"landing"`
}
