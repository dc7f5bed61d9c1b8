// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package flow implements the client-side step sequencer of the credential
// lifecycle.
//
// A [Sequencer] holds the current [State] and the form values. Submit sends
// the step that belongs to the current state through [API] and advances only
// when the server accepts it; a failed step keeps the state and records the
// error for display. Navigation between signup, login and the
// forgot-password steps is driven by the user via ToSignup, ToLogin and
// ToForgot.
//
// A successful login ends in [StateAuthenticated] with a [Landing] that
// carries the signed session token. The identifier is never handed around
// on its own as proof of identity.
package flow
