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

package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cloud-exit/onboard/internal/dashboard"
	"github.com/cloud-exit/onboard/internal/wizard"
)

// Model routes messages to the wizard or the dashboard, whichever the
// selector currently points at.
type Model struct {
	sel    *Selector
	view   View
	wizard wizard.Model
	dash   dashboard.Model
	size   *tea.WindowSizeMsg
}

// NewModel builds the screen the selector chose at startup.
func NewModel(sel *Selector, keys wizard.KeyMap) Model {
	m := Model{sel: sel, view: sel.View()}
	if m.view == ViewWizard {
		m.wizard = wizard.NewModel(wizard.NewMachine(sel), keys)
	} else {
		p, _ := sel.Profile()
		m.dash = dashboard.New(p)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.view == ViewWizard {
		return m.wizard.Init()
	}
	return m.dash.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.size = &msg
	case wizard.CompletedMsg:
		// The switch already happened when the sink ran.
		return m, nil
	}

	if m.view == ViewDashboard {
		next, cmd := m.dash.Update(msg)
		m.dash = next.(dashboard.Model)
		return m, cmd
	}

	next, cmd := m.wizard.Update(msg)
	m.wizard = next.(wizard.Model)
	if m.sel.View() == ViewDashboard {
		m = m.showDashboard()
	}
	return m, cmd
}

func (m Model) showDashboard() Model {
	p, _ := m.sel.Profile()
	m.dash = dashboard.New(p)
	m.view = ViewDashboard
	if m.size != nil {
		next, _ := m.dash.Update(*m.size)
		m.dash = next.(dashboard.Model)
	}
	return m
}

func (m Model) View() string {
	if m.view == ViewDashboard {
		return m.dash.View()
	}
	return m.wizard.View()
}

// Current returns the screen being shown.
func (m Model) Current() View { return m.view }

// Cancelled reports whether the user quit the wizard before finishing.
func (m Model) Cancelled() bool {
	return m.view == ViewWizard && m.wizard.Cancelled()
}
