// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/lara-connect/internal/flow"
	"github.com/MKhiriev/lara-connect/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var fieldLabels = map[flow.Field]string{
	flow.FieldIdentifier:      "Username",
	flow.FieldEmail:           "Email",
	flow.FieldPassword:        "Password",
	flow.FieldConfirmPassword: "Confirm password",
	flow.FieldOTP:             "OTP",
}

var stateTitles = map[flow.State]string{
	flow.StateSignup:             "SIGN UP",
	flow.StateSignupOtpPending:   "VERIFY EMAIL",
	flow.StateLogin:              "LOGIN",
	flow.StateForgotEmailEntry:   "FORGOT PASSWORD",
	flow.StateForgotOtpPending:   "VERIFY RESET CODE",
	flow.StateForgotResetPending: "RESET PASSWORD",
}

var stateHints = map[flow.State]string{
	flow.StateSignupOtpPending: "Enter the 6-digit code sent to your email.",
	flow.StateForgotOtpPending: "Enter the 6-digit code sent to your email.",
	flow.StateForgotResetPending: "Password: 8+ characters with upper and lower case, " +
		"a digit and a special character.",
}

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

type model struct {
	ctx     context.Context
	seq     *flow.Sequencer
	version VersionFunc
	hooks   Hooks
	info    models.AppBuildInfo

	// shown is the state the inputs were built for.
	shown  flow.State
	fields []flow.Field
	inputs []textinput.Model
	focus  int

	about         bool
	serverVersion string
	versionErr    error

	status     string
	hookErr    error
	quitByUser bool
}

func newModel(ctx context.Context, seq *flow.Sequencer, version VersionFunc, hooks Hooks, info models.AppBuildInfo) model {
	m := model{
		ctx:     ctx,
		seq:     seq,
		version: version,
		hooks:   hooks,
		info:    info,
	}
	m.rebuildInputs()
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

// rebuildInputs recreates the inputs of the sequencer state from its form.
func (m *model) rebuildInputs() {
	state := m.seq.State()
	form := m.seq.Form()

	m.shown = state
	m.fields = state.Fields()
	m.inputs = make([]textinput.Model, len(m.fields))
	m.focus = 0

	for i, field := range m.fields {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = strings.ToLower(fieldLabels[field])
		in.SetValue(form.Get(field))
		switch field {
		case flow.FieldPassword, flow.FieldConfirmPassword:
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
			in.CharLimit = 128
		case flow.FieldOTP:
			in.CharLimit = 6
		case flow.FieldIdentifier:
			in.CharLimit = 10
		default:
			in.CharLimit = 254
		}
		m.inputs[i] = in
	}

	// the first empty input takes focus, so the OTP step starts on the code
	for i, field := range m.fields {
		if form.Get(field) == "" {
			m.focus = i
			break
		}
	}
	m.applyFocus()
}

func (m *model) applyFocus() {
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].Focus()
			continue
		}
		m.inputs[i].Blur()
	}
}

func (m *model) moveFocus(delta int) {
	if len(m.inputs) == 0 {
		return
	}
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.applyFocus()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case stepDoneMsg:
		m.hookErr = msg.saveErr
		m.rebuildInputs()
		return m, nil

	case loggedOutMsg:
		m.hookErr = msg.err
		m.status = ""
		m.seq.Logout()
		m.rebuildInputs()
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = "Could not copy the token: " + msg.err.Error()
		} else {
			m.status = "Token copied to the clipboard"
		}
		return m, nil

	case versionMsg:
		m.serverVersion, m.versionErr = msg.version, msg.err
		return m, nil
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		m.quitByUser = true
		return m, tea.Quit
	}

	if m.about {
		if key.Matches(msg, keys.esc) {
			m.about = false
		}
		return m, nil
	}

	if key.Matches(msg, keys.about) {
		m.about = true
		return m, m.fetchVersionCmd()
	}

	// keystrokes are dropped while a step is in flight
	if m.seq.Busy() {
		return m, nil
	}

	if m.seq.State() == flow.StateAuthenticated {
		return m.handleLandingKey(msg)
	}

	switch {
	case key.Matches(msg, keys.toSignup):
		m.seq.ToSignup()
		m.rebuildInputs()
		return m, nil
	case key.Matches(msg, keys.toLogin):
		m.seq.ToLogin()
		m.rebuildInputs()
		return m, nil
	case key.Matches(msg, keys.toForgot):
		m.seq.ToForgot()
		m.rebuildInputs()
		return m, nil
	case key.Matches(msg, keys.tab):
		m.moveFocus(1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.moveFocus(-1)
		return m, nil
	case key.Matches(msg, keys.enter):
		return m, m.submitCmd()
	}

	if len(m.inputs) == 0 {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.seq.Set(m.fields[m.focus], m.inputs[m.focus].Value())
	return m, cmd
}

func (m model) handleLandingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.copy):
		landing := m.seq.Landing()
		if landing == nil {
			return m, nil
		}
		token := landing.Token
		return m, func() tea.Msg {
			return copiedMsg{err: copyToClipboard(token)}
		}
	case key.Matches(msg, keys.logout):
		return m, m.logoutCmd()
	case key.Matches(msg, keys.close):
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, nil
}

func (m model) submitCmd() tea.Cmd {
	ctx, seq, onAuth := m.ctx, m.seq, m.hooks.OnAuthenticated

	return func() tea.Msg {
		if err := seq.Submit(ctx); err != nil {
			return stepDoneMsg{}
		}

		landing := seq.Landing()
		if seq.State() != flow.StateAuthenticated || landing == nil || onAuth == nil {
			return stepDoneMsg{}
		}

		return stepDoneMsg{saveErr: onAuth(ctx, models.Session{
			Token:      landing.Token,
			Identifier: landing.Identifier,
			Role:       landing.Role,
			Landing:    landing.Route,
		})}
	}
}

func (m model) logoutCmd() tea.Cmd {
	ctx, onLogout := m.ctx, m.hooks.OnLogout

	return func() tea.Msg {
		if onLogout == nil {
			return loggedOutMsg{}
		}
		return loggedOutMsg{err: onLogout(ctx)}
	}
}

func (m model) fetchVersionCmd() tea.Cmd {
	if m.version == nil {
		return nil
	}
	ctx, version := m.ctx, m.version

	return func() tea.Msg {
		v, err := version(ctx)
		return versionMsg{version: v, err: err}
	}
}

func (m model) View() string {
	if m.about {
		serverVersion := m.serverVersion
		if m.versionErr != nil {
			serverVersion = humanizeError(m.versionErr)
		}
		return renderBuildInfoWindow(m.info, serverVersion)
	}

	if m.seq.State() == flow.StateAuthenticated {
		return renderLanding(m.seq.Landing(), m.status, m.hookErr)
	}

	return m.viewForm()
}

func (m model) viewForm() string {
	state := m.seq.State()
	var b strings.Builder

	if hint, ok := stateHints[state]; ok {
		b.WriteString(helpStyle.Render(hint))
		b.WriteString("\n\n")
	}

	for i, field := range m.fields {
		label := padRight(fieldLabels[field]+":", 18)
		if i == m.focus {
			label = focusStyle.Render(label)
		}
		b.WriteString(label)
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.seq.Busy():
		b.WriteString(helpStyle.Render("Submitting..."))
	case m.seq.Err() != nil:
		b.WriteString(errorStyle.Render(humanizeError(m.seq.Err())))
		for _, msg := range extraFieldMessages(m.seq.Err()) {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(msg))
		}
	case m.seq.Notice() != "":
		b.WriteString(noticeStyle.Render(m.seq.Notice()))
	}
	if m.hookErr != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Session not saved: " + m.hookErr.Error()))
	}

	return renderPage(stateTitles[state], b.String(), formHotKeys(state))
}

func formHotKeys(state flow.State) string {
	nav := []string{"enter: submit", "tab: next field"}
	switch state {
	case flow.StateSignup, flow.StateSignupOtpPending:
		nav = append(nav, "ctrl+l: login")
	case flow.StateLogin:
		nav = append(nav, "ctrl+s: sign up", "ctrl+f: forgot password")
	default:
		nav = append(nav, "ctrl+l: login")
	}
	nav = append(nav, "ctrl+v: about")
	return strings.Join(nav, " | ")
}
