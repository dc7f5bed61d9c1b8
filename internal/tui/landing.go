// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/lara-connect/internal/flow"
	"github.com/MKhiriev/lara-connect/models"
)

var landingTitles = map[string]string{
	models.StudentLanding: "STUDENT DASHBOARD",
	models.AlumniLanding:  "ALUMNI DASHBOARD",
}

func renderLanding(landing *flow.Landing, status string, hookErr error) string {
	if landing == nil {
		return renderPage("DASHBOARD", "", "q: quit")
	}

	title, ok := landingTitles[landing.Route]
	if !ok {
		title = strings.ToUpper(landing.Route)
	}

	var b strings.Builder
	b.WriteString("Welcome, ")
	b.WriteString(landing.Identifier)
	b.WriteString("\n\n")
	b.WriteString(padRight("Role:", 10))
	b.WriteString(string(landing.Role))
	b.WriteString("\n")
	b.WriteString(padRight("Landing:", 10))
	b.WriteString(landing.Route)
	b.WriteString("\n")
	b.WriteString(padRight("Token:", 10))
	b.WriteString(fitText(landing.Token, 40))

	if status != "" {
		b.WriteString("\n\n")
		b.WriteString(noticeStyle.Render(status))
	}
	if hookErr != nil {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(humanizeError(hookErr)))
	}

	return renderPage(title, b.String(), "c: copy token | l: logout | ctrl+v: about | q: quit")
}
