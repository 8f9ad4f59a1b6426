// Onboard - Guided Profile Onboarding
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package wizard

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the wizard key bindings.
type KeyMap struct {
	Next      key.Binding
	Back      key.Binding
	NextField key.Binding
	PrevField key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the bindings used when none are configured.
func DefaultKeyMap() KeyMap {
	return NewKeyMap("enter", "esc")
}

// NewKeyMap builds a KeyMap with the given next/back keys. Empty values fall
// back to enter and esc.
func NewKeyMap(next, back string) KeyMap {
	next = strings.TrimSpace(next)
	if next == "" {
		next = "enter"
	}
	back = strings.TrimSpace(back)
	if back == "" {
		back = "esc"
	}
	return KeyMap{
		Next:      key.NewBinding(key.WithKeys(next), key.WithHelp(next, "next/submit")),
		Back:      key.NewBinding(key.WithKeys(back), key.WithHelp(back, "back")),
		NextField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// help renders the one-line key hint. The back hint is dropped on the first
// step where it does nothing.
func (k KeyMap) help(canGoBack bool) string {
	bindings := []key.Binding{k.Next}
	if canGoBack {
		bindings = append(bindings, k.Back)
	}
	bindings = append(bindings, k.NextField, k.Quit)

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return strings.Join(parts, ", ")
}
