// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// stepDoneMsg reports that a submitted step has returned. The outcome is
// read back from the sequencer.
type stepDoneMsg struct {
	// saveErr is set when the session of a successful login could not be
	// remembered.
	saveErr error
}

type loggedOutMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type versionMsg struct {
	version string
	err     error
}
