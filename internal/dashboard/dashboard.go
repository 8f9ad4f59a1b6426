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

// Package dashboard renders the post-onboarding summary: a greeting, the
// summary cards and the weekly progress chart.
package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cloud-exit/onboard/internal/profile"
)

const (
	defaultWidth = 80
	cardWidth    = 22
	cardGap      = 2
)

var (
	greetingStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Align(lipgloss.Center).
			Bold(true).
			Width(cardWidth)

	chartBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1).
			MarginTop(1)

	chartTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			MarginTop(1)
)

var quitKey = key.NewBinding(
	key.WithKeys("q", "esc", "ctrl+c"),
	key.WithHelp("q", "quit"),
)

// Model is the bubbletea dashboard view.
type Model struct {
	profile profile.Profile
	width   int
}

// New returns a dashboard for p.
func New(p profile.Profile) Model {
	return Model{profile: p}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		if key.Matches(msg, quitKey) {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	body := Render(m.profile, m.width)
	h := quitKey.Help()
	return body + "\n" + helpStyle.Render(h.Key+": "+h.Desc)
}

// Profile returns the profile the dashboard was built for.
func (m Model) Profile() profile.Profile { return m.profile }

// Render draws the dashboard for p at the given terminal width. A width of
// zero or less uses a default.
func Render(p profile.Profile, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	var b strings.Builder
	b.WriteString(greetingStyle.Render("Welcome, " + p.Name))
	b.WriteString("\n")
	b.WriteString(renderCards(width))
	b.WriteString("\n")

	chartWidth := width - chartBoxStyle.GetHorizontalFrameSize()
	chart := chartTitleStyle.Render(chartTitle) + "\n" + renderChart(chartWidth)
	b.WriteString(chartBoxStyle.Render(chart))
	return b.String()
}

// renderCards lays the figures out in a row, or stacked when the terminal
// is too narrow for a row.
func renderCards(width int) string {
	cards := make([]string, 0, len(Figures))
	for _, f := range Figures {
		style := cardStyle.Foreground(lipgloss.Color(f.Color))
		cards = append(cards, style.Render(fmt.Sprintf("%s: %d", f.Label, f.Value)))
	}

	rowWidth := len(cards)*lipgloss.Width(cards[0]) + (len(cards)-1)*cardGap
	if width < rowWidth {
		return lipgloss.JoinVertical(lipgloss.Left, cards...)
	}

	gap := strings.Repeat(" ", cardGap)
	row := make([]string, 0, 2*len(cards)-1)
	for i, c := range cards {
		if i > 0 {
			row = append(row, gap)
		}
		row = append(row, c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, row...)
}
