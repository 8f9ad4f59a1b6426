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
	"strconv"
	"time"

	"github.com/NimbleMarkets/ntcharts/linechart"
	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
)

const (
	chartTitle    = "Weekly Task Progress"
	chartHeight   = 12
	minChartWidth = 30
	lineColor     = "#3b82f6"
)

// weekStart pins the series to a fixed Monday so the axis never depends on
// the current date or time zone.
var weekStart = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// renderChart draws WeeklySeries as a braille line chart.
func renderChart(width int) string {
	if width < minChartWidth {
		width = minChartWidth
	}

	peak := 0.0
	for _, pt := range WeeklySeries {
		if pt.Tasks > peak {
			peak = pt.Tasks
		}
	}
	end := weekStart.AddDate(0, 0, len(WeeklySeries)-1)

	chart := tslc.New(width, chartHeight)
	chart.SetXStep(1)
	chart.SetYStep(2)
	chart.SetStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(lineColor)))
	chart.AxisStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	chart.LabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	chart.SetTimeRange(weekStart, end)
	chart.SetViewTimeRange(weekStart, end)
	chart.SetYRange(0, peak+1)
	chart.SetViewYRange(0, peak+1)
	chart.Model.XLabelFormatter = dayLabelFormatter()
	chart.Model.YLabelFormatter = func(_ int, v float64) string {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}

	for i, pt := range WeeklySeries {
		chart.Push(tslc.TimePoint{Time: weekStart.AddDate(0, 0, i), Value: pt.Tasks})
	}
	chart.DrawBraille()
	return chart.View()
}

// dayLabelFormatter labels the first column of each day with its name and
// leaves the remaining columns of that day blank.
func dayLabelFormatter() linechart.LabelFormatter {
	last := ""
	return func(_ int, v float64) string {
		label := dayLabel(time.Unix(int64(v), 0).UTC())
		if label == last {
			return ""
		}
		last = label
		return label
	}
}

// dayLabel returns the series label for the day containing t, or "" when t
// falls outside the week.
func dayLabel(t time.Time) string {
	if t.Before(weekStart) {
		return ""
	}
	idx := int(t.Sub(weekStart).Hours() / 24)
	if idx >= len(WeeklySeries) {
		return ""
	}
	return WeeklySeries[idx].Day
}
