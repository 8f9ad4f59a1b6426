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

package config

import (
	"fmt"

	"github.com/cloud-exit/onboard/internal/kvstore"
)

// Config is the contents of config.yaml.
type Config struct {
	Version int         `yaml:"version"`
	Store   StoreConfig `yaml:"store"`
	UI      UIConfig    `yaml:"ui"`
}

// StoreConfig selects where the profile is kept.
type StoreConfig struct {
	Backend string `yaml:"backend" env:"ONBOARD_STORE_BACKEND"`
	// Dir holds the persisted profile. Empty means StoreDir().
	Dir string `yaml:"dir" env:"ONBOARD_STORE_DIR"`
}

// UIConfig controls the terminal interface.
type UIConfig struct {
	AltScreen   bool              `yaml:"alt_screen" env:"ONBOARD_ALT_SCREEN"`
	Keybindings KeybindingsConfig `yaml:"keybindings,omitempty"`
}

// KeybindingsConfig overrides the wizard's next and back keys.
type KeybindingsConfig struct {
	Next string `yaml:"next,omitempty"`
	Back string `yaml:"back,omitempty"`
}

// Validate checks values that cannot be fixed up by defaults.
func (c *Config) Validate() error {
	for _, b := range kvstore.Backends {
		if c.Store.Backend == b {
			return nil
		}
	}
	return fmt.Errorf("unknown store backend %q (want one of %v)", c.Store.Backend, kvstore.Backends)
}

// StorePath returns the directory the profile store lives in.
func (c *Config) StorePath() string {
	if c.Store.Dir != "" {
		return c.Store.Dir
	}
	return StoreDir()
}
