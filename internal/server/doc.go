// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the application's HTTP server.
//
// It runs the server and the background workers until a stop signal
// arrives, then shuts the server down gracefully and waits for the workers.
package server
