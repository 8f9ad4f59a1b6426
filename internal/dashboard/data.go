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

// Figure is one summary card.
type Figure struct {
	Label string
	Value int
	Color string
}

// DayPoint is one sample of the weekly series.
type DayPoint struct {
	Day   string
	Tasks float64
}

// Figures are sample numbers; they are not derived from the profile.
var Figures = []Figure{
	{Label: "Team Members", Value: 5, Color: "#2563eb"},
	{Label: "Active Projects", Value: 3, Color: "#16a34a"},
	{Label: "Notifications", Value: 2, Color: "#dc2626"},
}

// WeeklySeries is the fixed sample shown in the weekly chart.
var WeeklySeries = []DayPoint{
	{"Mon", 3},
	{"Tue", 5},
	{"Wed", 2},
	{"Thu", 6},
	{"Fri", 4},
	{"Sat", 1},
	{"Sun", 0},
}
