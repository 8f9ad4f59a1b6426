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

// Package app decides which screen to show and ties the wizard, the
// profile slot and the dashboard together.
package app

import (
	"errors"

	"github.com/cloud-exit/onboard/internal/profile"
)

// View is the top-level screen.
type View int

const (
	ViewWizard View = iota
	ViewDashboard
)

func (v View) String() string {
	switch v {
	case ViewWizard:
		return "wizard"
	case ViewDashboard:
		return "dashboard"
	}
	return "unknown"
}

// Logger is the subset of ui output the selector needs.
type Logger interface {
	Warnf(format string, a ...any)
	Debugf(format string, a ...any)
}

// Selector picks the startup view from the persisted profile and, as the
// wizard's sink, persists the finished profile and switches to the
// dashboard.
type Selector struct {
	slot    profile.Slot
	log     Logger
	view    View
	profile profile.Profile
}

// NewSelector reads the slot once. A stored profile selects the dashboard.
// A missing, unreadable or corrupt one selects the wizard.
func NewSelector(slot profile.Slot, log Logger) *Selector {
	s := &Selector{slot: slot, log: log, view: ViewWizard}

	p, err := profile.Load(slot)
	switch {
	case err == nil:
		s.profile = p
		s.view = ViewDashboard
		log.Debugf("loaded stored profile for %q", p.Name)
	case errors.Is(err, profile.ErrNotFound):
		log.Debugf("no stored profile, starting onboarding")
	default:
		log.Warnf("ignoring stored profile: %v", err)
	}
	return s
}

// Complete stores p and switches to the dashboard. A failed write is
// logged and the switch happens anyway.
func (s *Selector) Complete(p profile.Profile) {
	if err := profile.Save(s.slot, p); err != nil {
		s.log.Warnf("profile not saved: %v", err)
	} else {
		s.log.Debugf("saved profile under %q", profile.Key)
	}
	s.profile = p
	s.view = ViewDashboard
}

// View is the screen to show now.
func (s *Selector) View() View { return s.view }

// Profile returns the profile backing the dashboard. ok is false while the
// wizard is active.
func (s *Selector) Profile() (p profile.Profile, ok bool) {
	return s.profile, s.view == ViewDashboard
}
