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
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cloud-exit/onboard/internal/wizard"
)

// ErrCancelled is returned by Run when the wizard is quit before the last
// step is submitted.
var ErrCancelled = errors.New("onboarding cancelled")

type Options struct {
	AltScreen bool
	Keys      wizard.KeyMap
	// Input and Output default to the terminal when nil.
	Input  io.Reader
	Output io.Writer
}

// Run drives the program until the user quits.
func Run(sel *Selector, opts Options) error {
	if len(opts.Keys.Next.Keys()) == 0 {
		opts.Keys = wizard.DefaultKeyMap()
	}

	var progOpts []tea.ProgramOption
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}

	p := tea.NewProgram(NewModel(sel, opts.Keys), progOpts...)
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	if m, ok := finalModel.(Model); ok && m.Cancelled() {
		return ErrCancelled
	}
	return nil
}
