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

// Sink receives the finished profile when the last step validates.
type Sink interface {
	Complete(p profile.Profile)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(p profile.Profile)

// Complete calls f(p).
func (f SinkFunc) Complete(p profile.Profile) { f(p) }

// Machine owns the wizard state: the current step, the profile being
// filled in, and the errors from the last validation of the current step.
// It is not safe for concurrent use.
type Machine struct {
	step   Step
	data   profile.Profile
	errors Errors
	sink   Sink
	done   bool
}

// NewMachine returns a machine on the first step with an empty profile.
func NewMachine(sink Sink) *Machine {
	return &Machine{
		step:   FirstStep,
		errors: Errors{},
		sink:   sink,
	}
}

// UpdateField overwrites one profile value. No validation runs and pending
// errors are left in place until the next Next. Unknown fields and updates
// after completion are ignored.
func (m *Machine) UpdateField(f profile.Field, value string) {
	if m.done {
		return
	}
	m.data.Set(f, value)
}

// Next validates the current step. On failure the errors are kept and the
// step does not change. On success the errors are cleared and the machine
// either advances one step or, on the last step, hands the profile to the
// sink. Next reports whether the sink was called.
func (m *Machine) Next() bool {
	if m.done {
		return false
	}
	errs := Validate(m.step, m.data)
	if len(errs) > 0 {
		m.errors = errs
		return false
	}
	m.errors = Errors{}
	if m.step < LastStep {
		m.step++
		return false
	}
	m.done = true
	if m.sink != nil {
		m.sink.Complete(m.data)
	}
	return true
}

// Back moves to the previous step. It never validates and never clears
// errors.
func (m *Machine) Back() {
	if m.done {
		return
	}
	if m.step > FirstStep {
		m.step--
	}
}

// Step returns the current step.
func (m *Machine) Step() Step { return m.step }

// Profile returns a copy of the profile collected so far.
func (m *Machine) Profile() profile.Profile { return m.data }

// Errors returns a copy of the pending errors.
func (m *Machine) Errors() Errors {
	out := make(Errors, len(m.errors))
	for k, v := range m.errors {
		out[k] = v
	}
	return out
}

// Done reports whether the profile has been handed to the sink.
func (m *Machine) Done() bool { return m.done }

// Progress returns the completed fraction shown by the progress indicator.
func (m *Machine) Progress() float64 {
	return float64(m.step+1) / float64(StepCount)
}

// Screen returns the render intent for the current state.
func (m *Machine) Screen() Screen {
	return render(m.step, m.data, m.errors)
}
