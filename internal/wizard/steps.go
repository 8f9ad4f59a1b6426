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

import "github.com/cloud-exit/onboard/internal/profile"

// Step identifies the current wizard step.
type Step int

const (
	StepPersonal Step = iota
	StepBusiness
	StepPreferences
)

// FirstStep and LastStep bound every Step the machine can hold.
const (
	FirstStep = StepPersonal
	LastStep  = StepPreferences
)

// StepCount is the number of onboarding steps.
const StepCount = int(LastStep) + 1

type fieldInfo struct {
	Field       profile.Field
	Label       string
	Placeholder string
}

type stepInfo struct {
	Title  string
	Fields []fieldInfo
}

// steps holds the title and inputs of each step. Every entry has a rule set
// in Validate and a variant in render.
var steps = [StepCount]stepInfo{
	StepPersonal: {
		Title: "Personal Info",
		Fields: []fieldInfo{
			{profile.FieldName, "Name", "Name"},
			{profile.FieldEmail, "Email", "Email"},
		},
	},
	StepBusiness: {
		Title: "Business Info",
		Fields: []fieldInfo{
			{profile.FieldCompany, "Company", "Company Name"},
			{profile.FieldIndustry, "Industry", "Industry"},
			{profile.FieldSize, "Team size", "Size (number)"},
		},
	},
	StepPreferences: {
		Title: "Preferences",
		Fields: []fieldInfo{
			{profile.FieldTheme, "Theme", "Theme (light/dark)"},
			{profile.FieldLayout, "Layout", "Default Layout"},
		},
	},
}

// Valid reports whether s is one of the onboarding steps.
func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

// Title returns the step heading, or "" for an invalid step.
func (s Step) Title() string {
	if !s.Valid() {
		return ""
	}
	return steps[s].Title
}

// Fields returns the profile fields collected on this step in display order.
func (s Step) Fields() []profile.Field {
	if !s.Valid() {
		return nil
	}
	out := make([]profile.Field, len(steps[s].Fields))
	for i, fi := range steps[s].Fields {
		out[i] = fi.Field
	}
	return out
}
