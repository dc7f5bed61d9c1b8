// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strconv"
)

// Role is the portal audience an account belongs to.
type Role string

const (
	RoleStudent Role = "student"
	RoleAlumni  Role = "alumni"
)

// Landing routes the client opens after a successful login.
const (
	StudentLanding = "dashboard"
	AlumniLanding  = "Almumnidashboard"
)

// DefaultRoleCutoff is the admission-year prefix above which an identifier
// belongs to a student.
const DefaultRoleCutoff = 20

// ErrInvalidRolePrefix is returned when the identifier does not start with
// two decimal digits.
var ErrInvalidRolePrefix = errors.New("identifier has no numeric year prefix")

// RoleFromIdentifier derives the role from the first two characters of the
// identifier: values above cutoff denote a student, all others alumni.
func RoleFromIdentifier(identifier string, cutoff int) (Role, error) {
	if len(identifier) < 2 {
		return "", ErrInvalidRolePrefix
	}

	year, err := strconv.Atoi(identifier[:2])
	if err != nil || year < 0 {
		return "", ErrInvalidRolePrefix
	}

	if year > cutoff {
		return RoleStudent, nil
	}
	return RoleAlumni, nil
}

// Landing returns the client route for the role.
func (r Role) Landing() string {
	if r == RoleStudent {
		return StudentLanding
	}
	return AlumniLanding
}
