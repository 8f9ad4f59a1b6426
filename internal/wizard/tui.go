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
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cloud-exit/onboard/internal/profile"
)

const (
	inputWidth     = 40
	inputCharLimit = 128
	maxBarWidth    = 60
)

// CompletedMsg is emitted once the last step validates and the profile has
// been handed to the machine's sink.
type CompletedMsg struct {
	Profile profile.Profile
}

// Model is the bubbletea front end of a Machine. Key presses are translated
// into machine operations; the view is drawn from Machine.Screen.
type Model struct {
	machine   *Machine
	keys      KeyMap
	inputs    map[profile.Field]textinput.Model
	focus     int
	bar       progress.Model
	width     int
	cancelled bool
}

// NewModel wraps machine in a bubbletea model.
func NewModel(machine *Machine, keys KeyMap) Model {
	inputs := make(map[profile.Field]textinput.Model, len(profile.Fields))
	for s := FirstStep; s <= LastStep; s++ {
		for _, fi := range steps[s].Fields {
			in := textinput.New()
			in.Prompt = "> "
			in.Placeholder = fi.Placeholder
			in.CharLimit = inputCharLimit
			in.Width = inputWidth
			in.SetValue(machine.Profile().Get(fi.Field))
			inputs[fi.Field] = in
		}
	}

	m := Model{
		machine: machine,
		keys:    keys,
		inputs:  inputs,
		bar: progress.New(
			progress.WithSolidFill(accentColor),
			progress.WithoutPercentage(),
			progress.WithWidth(maxBarWidth),
		),
	}
	m, _ = m.setFocus(0)
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = clamp(msg.Width-8, 10, maxBarWidth)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			before := m.machine.Step()
			if m.machine.Next() {
				p := m.machine.Profile()
				return m, func() tea.Msg { return CompletedMsg{Profile: p} }
			}
			if m.machine.Step() != before {
				return m.enterStep()
			}
			return m, nil
		case key.Matches(msg, m.keys.Back):
			before := m.machine.Step()
			m.machine.Back()
			if m.machine.Step() != before {
				return m.enterStep()
			}
			return m, nil
		case key.Matches(msg, m.keys.NextField):
			return m.setFocus(m.focus + 1)
		case key.Matches(msg, m.keys.PrevField):
			return m.setFocus(m.focus - 1)
		}
	}

	return m.updateInput(msg)
}

// updateInput forwards msg to the focused input and copies any edit into
// the machine.
func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.machine.Done() {
		return m, nil
	}
	fields := m.machine.Step().Fields()
	if len(fields) == 0 {
		return m, nil
	}
	f := fields[m.focus]
	in, cmd := m.inputs[f].Update(msg)
	m.inputs[f] = in
	if in.Value() != m.machine.Profile().Get(f) {
		m.machine.UpdateField(f, in.Value())
	}
	return m, cmd
}

// enterStep refreshes the inputs of the new current step from the machine
// and focuses its first field.
func (m Model) enterStep() (Model, tea.Cmd) {
	p := m.machine.Profile()
	for _, f := range m.machine.Step().Fields() {
		in := m.inputs[f]
		in.SetValue(p.Get(f))
		m.inputs[f] = in
	}
	return m.setFocus(0)
}

// setFocus focuses field i of the current step, wrapping at both ends.
func (m Model) setFocus(i int) (Model, tea.Cmd) {
	fields := m.machine.Step().Fields()
	if len(fields) == 0 {
		return m, nil
	}
	i = ((i % len(fields)) + len(fields)) % len(fields)
	for f, in := range m.inputs {
		in.Blur()
		m.inputs[f] = in
	}
	in := m.inputs[fields[i]]
	cmd := in.Focus()
	m.inputs[fields[i]] = in
	m.focus = i
	return m, cmd
}

func (m Model) View() string {
	s := m.machine.Screen()

	var b strings.Builder
	b.WriteString(m.bar.ViewAs(s.Progress))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("Step %d: %s", s.Number, s.Title)))
	b.WriteString("\n\n")

	for _, fv := range s.Body.Inputs() {
		b.WriteString(labelStyle.Render(fv.Label))
		b.WriteString("\n")
		b.WriteString(m.inputs[fv.Field].View())
		b.WriteString("\n")
		if fv.Error != "" {
			b.WriteString(errorStyle.Render(fv.Error))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	var buttons []string
	if s.CanGoBack {
		buttons = append(buttons, outlineButtonStyle.Render("Back"), "  ")
	}
	buttons = append(buttons, buttonStyle.Render(s.Action))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.keys.help(s.CanGoBack)))

	return panelStyle.Render(b.String())
}

// Machine returns the state machine behind the model.
func (m Model) Machine() *Machine { return m.machine }

// Cancelled returns true if the user quit before finishing.
func (m Model) Cancelled() bool { return m.cancelled }

// Focused returns the field that currently receives typed input.
func (m Model) Focused() profile.Field {
	fields := m.machine.Step().Fields()
	if len(fields) == 0 {
		return ""
	}
	return fields[m.focus]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
