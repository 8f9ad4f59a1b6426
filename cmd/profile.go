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

	"github.com/cloud-exit/onboard/internal/config"
	"github.com/cloud-exit/onboard/internal/profile"
	"github.com/cloud-exit/onboard/internal/ui"
	"github.com/spf13/cobra"
)

var fieldLabels = map[profile.Field]string{
	profile.FieldName:     "Name",
	profile.FieldEmail:    "Email",
	profile.FieldCompany:  "Company",
	profile.FieldIndustry: "Industry",
	profile.FieldSize:     "Team size",
	profile.FieldTheme:    "Theme",
	profile.FieldLayout:   "Layout",
}

func newProfileShowCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the stored profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			p, err := profile.Load(store)
			if errors.Is(err, profile.ErrNotFound) {
				ui.Info("No profile stored yet. Run 'onboard' to create one.")
				return nil
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := profile.Encode(p)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			ui.LogoSmall()
			fmt.Fprintln(ui.Stdout)
			ui.Cecho("Stored Profile:", ui.Cyan)
			fmt.Fprintln(out)
			for _, f := range profile.Fields {
				fmt.Fprintf(out, "  %-12s %s\n", fieldLabels[f], p.Get(f))
			}
			fmt.Fprintln(out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the stored JSON")
	return cmd
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Inspect the stored profile",
}

func init() {
	profileCmd.AddCommand(newProfileShowCmd())
	rootCmd.AddCommand(profileCmd)
}
