// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores the saved session, if the server still accepts it, and then
// hands the terminal to the credential UI until the user quits.
package client
