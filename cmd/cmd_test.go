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
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cloud-exit/onboard/internal/config"
	"github.com/cloud-exit/onboard/internal/kvstore"
	"github.com/cloud-exit/onboard/internal/profile"
	"github.com/cloud-exit/onboard/internal/ui"
	"github.com/spf13/cobra"
)

var alice = profile.Profile{
	Name:     "Al",
	Email:    "a@b.com",
	Company:  "Acme",
	Industry: "Tech",
	Size:     "12",
	Theme:    "Dark",
	Layout:   "Grid",
}

// setupEnv isolates config paths and points the app at a file store.
// It returns the store directory.
func setupEnv(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	oldHome, oldData := config.Home, config.Data
	config.Home = filepath.Join(root, "config")
	config.Data = filepath.Join(root, "data")

	oldOut, oldErr := ui.Stdout, ui.Stderr
	ui.Stdout, ui.Stderr = &bytes.Buffer{}, &bytes.Buffer{}

	oldInteractive := interactive
	interactive = func() bool { return false }

	t.Cleanup(func() {
		config.Home, config.Data = oldHome, oldData
		ui.Stdout, ui.Stderr = oldOut, oldErr
		interactive = oldInteractive
	})

	dir := filepath.Join(root, "store")
	t.Setenv("ONBOARD_STORE_BACKEND", "file")
	t.Setenv("ONBOARD_STORE_DIR", dir)
	return dir
}

func storeProfile(t *testing.T, dir string, p profile.Profile) {
	t.Helper()
	store, err := kvstore.OpenFile(dir)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer store.Close()
	if err := profile.Save(store, p); err != nil {
		t.Fatalf("Save: %v", err)
	}
}

func execute(t *testing.T, c *cobra.Command, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs(args)
	if err := c.Execute(); err != nil {
		t.Fatalf("Execute(%v): %v", args, err)
	}
	return out.String()
}

func TestProfileShowJSON(t *testing.T) {
	dir := setupEnv(t)
	storeProfile(t, dir, alice)

	out := execute(t, newProfileShowCmd(), "--json")

	var got profile.Profile
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &got); err != nil {
		t.Fatalf("output is not JSON: %q (%v)", out, err)
	}
	if got != alice {
		t.Errorf("profile = %+v, want %+v", got, alice)
	}
}

func TestProfileShowTable(t *testing.T) {
	dir := setupEnv(t)
	storeProfile(t, dir, alice)

	out := execute(t, newProfileShowCmd())
	for _, want := range []string{"Name", "Al", "Team size", "12", "Layout", "Grid"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestProfileShowEmpty(t *testing.T) {
	setupEnv(t)

	out := execute(t, newProfileShowCmd())
	if out != "" {
		t.Errorf("stdout = %q, want empty", out)
	}
	if got := ui.Stdout.(*bytes.Buffer).String(); !strings.Contains(got, "No profile stored") {
		t.Errorf("ui output = %q", got)
	}
}

func TestRunAppNonInteractiveWithProfile(t *testing.T) {
	dir := setupEnv(t)
	storeProfile(t, dir, alice)

	var out bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&out)
	if err := runApp(c); err != nil {
		t.Fatalf("runApp: %v", err)
	}
	if !strings.Contains(out.String(), "Welcome, Al") {
		t.Errorf("dashboard not printed:\n%s", out.String())
	}
}

func TestRunAppNonInteractiveWithoutProfile(t *testing.T) {
	setupEnv(t)

	var out bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&out)
	if err := runApp(c); err != nil {
		t.Fatalf("runApp: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty", out.String())
	}
	if got := ui.Stderr.(*bytes.Buffer).String(); !strings.Contains(got, "Non-interactive terminal") {
		t.Errorf("stderr = %q", got)
	}
}

func TestRunAppRejectsBadBackend(t *testing.T) {
	setupEnv(t)
	t.Setenv("ONBOARD_STORE_BACKEND", "redis")

	err := runApp(&cobra.Command{})
	if err == nil {
		t.Fatal("runApp accepted an unknown backend")
	}
	if !strings.Contains(err.Error(), "unknown store backend") {
		t.Errorf("runApp error = %v, want unknown store backend", err)
	}
}

func TestRunAppSQLiteBackend(t *testing.T) {
	setupEnv(t)
	t.Setenv("ONBOARD_STORE_BACKEND", "sqlite")

	if err := runApp(&cobra.Command{}); err != nil {
		t.Fatalf("runApp with sqlite backend: %v", err)
	}
	if got := ui.Stderr.(*bytes.Buffer).String(); !strings.Contains(got, "Non-interactive terminal") {
		t.Errorf("stderr = %q", got)
	}
}

func TestConfigPathAndVersion(t *testing.T) {
	setupEnv(t)

	if out := execute(t, rootCmd, "config", "path"); strings.TrimSpace(out) != config.ConfigFile() {
		t.Errorf("config path = %q, want %q", out, config.ConfigFile())
	}
	if out := execute(t, rootCmd, "version"); !strings.Contains(out, Version) {
		t.Errorf("version = %q", out)
	}
}

func TestConfigInit(t *testing.T) {
	setupEnv(t)

	execute(t, rootCmd, "config", "init")
	if !config.ConfigExists() {
		t.Fatal("config init did not write a file")
	}
	execute(t, rootCmd, "config", "init")
	if got := ui.Stdout.(*bytes.Buffer).String(); !strings.Contains(got, "already exists") {
		t.Errorf("second init output = %q", got)
	}
}
