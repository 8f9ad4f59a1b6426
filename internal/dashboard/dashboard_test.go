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

package dashboard

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cloud-exit/onboard/internal/profile"
)

func TestRenderShowsGreetingCardsAndChart(t *testing.T) {
	out := Render(profile.Profile{Name: "Al", Company: "Acme"}, 100)

	for _, want := range []string{
		"Welcome, Al",
		"Team Members: 5",
		"Active Projects: 3",
		"Notifications: 2",
		chartTitle,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
}

func TestRenderIgnoresOtherProfileData(t *testing.T) {
	a := Render(profile.Profile{Name: "Al", Size: "3", Theme: "dark"}, 100)
	b := Render(profile.Profile{Name: "Al", Size: "900", Theme: "light"}, 100)
	if a != b {
		t.Error("dashboard output depends on fields other than name")
	}
}

func TestRenderCardsStackWhenNarrow(t *testing.T) {
	wide := renderCards(120)
	narrow := renderCards(40)
	if lines(wide) >= lines(narrow) {
		t.Errorf("narrow layout (%d lines) should be taller than wide (%d lines)", lines(narrow), lines(wide))
	}
}

func TestRenderDefaultsWidth(t *testing.T) {
	if Render(profile.Profile{Name: "Al"}, 0) == "" {
		t.Error("Render with zero width returned nothing")
	}
	if renderChart(5) == "" {
		t.Error("renderChart with a tiny width returned nothing")
	}
}

func TestWeeklySeriesIsFixed(t *testing.T) {
	want := []DayPoint{{"Mon", 3}, {"Tue", 5}, {"Wed", 2}, {"Thu", 6}, {"Fri", 4}, {"Sat", 1}, {"Sun", 0}}
	if len(WeeklySeries) != len(want) {
		t.Fatalf("WeeklySeries has %d points, want %d", len(WeeklySeries), len(want))
	}
	for i := range want {
		if WeeklySeries[i] != want[i] {
			t.Errorf("WeeklySeries[%d] = %+v, want %+v", i, WeeklySeries[i], want[i])
		}
	}
}

func TestDayLabelFormatter(t *testing.T) {
	f := dayLabelFormatter()
	at := func(day int, hour int) float64 {
		return float64(weekStart.AddDate(0, 0, day).Add(time.Duration(hour) * time.Hour).Unix())
	}

	if got := f(0, at(0, 0)); got != "Mon" {
		t.Errorf("first column = %q, want Mon", got)
	}
	if got := f(1, at(0, 6)); got != "" {
		t.Errorf("second Monday column = %q, want blank", got)
	}
	if got := f(2, at(1, 1)); got != "Tue" {
		t.Errorf("first Tuesday column = %q, want Tue", got)
	}
	if got := f(3, at(6, 0)); got != "Sun" {
		t.Errorf("Sunday column = %q, want Sun", got)
	}
	if got := dayLabel(weekStart.AddDate(0, 0, 7)); got != "" {
		t.Errorf("dayLabel past the week = %q, want blank", got)
	}
	if got := dayLabel(weekStart.Add(-time.Hour)); got != "" {
		t.Errorf("dayLabel before the week = %q, want blank", got)
	}
}

func TestModelQuitKeys(t *testing.T) {
	m := New(profile.Profile{Name: "Al"})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 90, Height: 40})
	m = next.(Model)
	if !strings.Contains(m.View(), "Welcome, Al") {
		t.Error("View() missing greeting")
	}

	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := m.Update(k)
		if cmd == nil {
			t.Fatalf("%s returned no command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s command = %T, want tea.QuitMsg", k, cmd())
		}
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if cmd != nil {
		t.Error("unbound key returned a command")
	}
}

func lines(s string) int { return strings.Count(s, "\n") + 1 }
