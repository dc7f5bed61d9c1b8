// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	toSignup key.Binding
	toLogin  key.Binding
	toForgot key.Binding
	about    key.Binding

	// landing screen only, where no input has focus
	copy   key.Binding
	logout key.Binding
	close  key.Binding
}

var keys = keyMap{
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab", "down")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:     key.NewBinding(key.WithKeys("ctrl+c")),
	toSignup: key.NewBinding(key.WithKeys("ctrl+s")),
	toLogin:  key.NewBinding(key.WithKeys("ctrl+l")),
	toForgot: key.NewBinding(key.WithKeys("ctrl+f")),
	about:    key.NewBinding(key.WithKeys("ctrl+v")),
	copy:     key.NewBinding(key.WithKeys("c")),
	logout:   key.NewBinding(key.WithKeys("l")),
	close:    key.NewBinding(key.WithKeys("q")),
}
