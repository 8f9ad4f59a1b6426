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

// FieldView is one labelled input as it should be displayed.
type FieldView struct {
	Field       profile.Field
	Label       string
	Placeholder string
	Value       string
	Error       string // "" when the field has no pending error
}

// StepView is the render intent of a single step. It is one of
// PersonalView, BusinessView or PreferencesView.
type StepView interface {
	// Inputs returns the step's fields in display order.
	Inputs() []FieldView
	stepView()
}

// PersonalView renders StepPersonal.
type PersonalView struct {
	Name, Email FieldView
}

// BusinessView renders StepBusiness.
type BusinessView struct {
	Company, Industry, Size FieldView
}

// PreferencesView renders StepPreferences.
type PreferencesView struct {
	Theme, Layout FieldView
}

func (v PersonalView) Inputs() []FieldView    { return []FieldView{v.Name, v.Email} }
func (v BusinessView) Inputs() []FieldView    { return []FieldView{v.Company, v.Industry, v.Size} }
func (v PreferencesView) Inputs() []FieldView { return []FieldView{v.Theme, v.Layout} }

func (PersonalView) stepView()    {}
func (BusinessView) stepView()    {}
func (PreferencesView) stepView() {}

// Action labels for the forward button.
const (
	ActionNext   = "Next"
	ActionSubmit = "Submit"
)

// Screen is everything a renderer needs to draw the current wizard state.
type Screen struct {
	Step      Step
	Title     string
	Number    int     // 1-based step number
	Total     int     // number of steps
	Progress  float64 // (Number)/(Total)
	CanGoBack bool
	Action    string // ActionNext or ActionSubmit
	Body      StepView
}

func render(step Step, p profile.Profile, errs Errors) Screen {
	fv := func(i int) FieldView {
		fi := steps[step].Fields[i]
		return FieldView{
			Field:       fi.Field,
			Label:       fi.Label,
			Placeholder: fi.Placeholder,
			Value:       p.Get(fi.Field),
			Error:       errs[fi.Field],
		}
	}

	var body StepView
	switch step {
	case StepPersonal:
		body = PersonalView{Name: fv(0), Email: fv(1)}
	case StepBusiness:
		body = BusinessView{Company: fv(0), Industry: fv(1), Size: fv(2)}
	case StepPreferences:
		body = PreferencesView{Theme: fv(0), Layout: fv(1)}
	}

	action := ActionNext
	if step == LastStep {
		action = ActionSubmit
	}
	return Screen{
		Step:      step,
		Title:     step.Title(),
		Number:    int(step) + 1,
		Total:     StepCount,
		Progress:  float64(step+1) / float64(StepCount),
		CanGoBack: step > FirstStep,
		Action:    action,
		Body:      body,
	}
}
