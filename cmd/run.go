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

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/cloud-exit/onboard/internal/app"
	"github.com/cloud-exit/onboard/internal/config"
	"github.com/cloud-exit/onboard/internal/dashboard"
	"github.com/cloud-exit/onboard/internal/kvstore"
	"github.com/cloud-exit/onboard/internal/ui"
	"github.com/cloud-exit/onboard/internal/wizard"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// interactive reports whether the TUI can run. Tests replace it.
var interactive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store := openProfileStore(cfg)
	defer func() {
		if err := store.Close(); err != nil {
			ui.Warnf("Failed to close profile store: %v", err)
		}
	}()

	sel := app.NewSelector(store, ui.Default)
	ui.Debugf("Starting on the %s", sel.View())

	// Non-interactive terminal: print the dashboard once if there is one
	if !interactive() {
		if p, ok := sel.Profile(); ok {
			fmt.Fprintln(cmd.OutOrStdout(), dashboard.Render(p, terminalWidth()))
			return nil
		}
		ui.Warn("Non-interactive terminal detected. Run 'onboard' in a terminal to complete onboarding.")
		return nil
	}

	keys := wizard.NewKeyMap(cfg.UI.Keybindings.Next, cfg.UI.Keybindings.Back)
	err = app.Run(sel, app.Options{AltScreen: cfg.UI.AltScreen, Keys: keys})
	if errors.Is(err, app.ErrCancelled) {
		ui.Info("Onboarding cancelled. Run 'onboard' again to finish it.")
		return nil
	}
	if err != nil {
		return err
	}

	if p, ok := sel.Profile(); ok {
		ui.Successf("Welcome aboard, %s!", p.Name)
	}
	return nil
}

// openProfileStore opens the configured backend or exits.
func openProfileStore(cfg *config.Config) kvstore.KV {
	dir := cfg.StorePath()
	ui.Debugf("Opening %s store at %s", cfg.Store.Backend, dir)
	store, err := kvstore.OpenBackend(cfg.Store.Backend, dir)
	if err != nil {
		if kvstore.IsLocked(err) {
			ui.Errorf("Profile store is locked by another onboard process. Close it and try again.")
		}
		ui.Errorf("Failed to open profile store: %v", err)
	}
	return store
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return w
}
