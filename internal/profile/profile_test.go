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

package profile

import (
	"errors"
	"testing"

	"github.com/cloud-exit/onboard/internal/kvstore"
)

func TestGetSetCoversEveryField(t *testing.T) {
	var p Profile
	for _, f := range Fields {
		if !p.Set(f, "v-"+string(f)) {
			t.Fatalf("Set(%s) = false", f)
		}
	}
	for _, f := range Fields {
		if got := p.Get(f); got != "v-"+string(f) {
			t.Errorf("Get(%s) = %q, want %q", f, got, "v-"+string(f))
		}
	}
}

func TestSetUnknownField(t *testing.T) {
	var p Profile
	if p.Set("age", "3") {
		t.Error("Set(age) = true, want false")
	}
	if p != (Profile{}) {
		t.Errorf("unknown Set changed profile: %+v", p)
	}
}

func TestEncodeUsesFieldNames(t *testing.T) {
	data, err := Encode(Profile{Name: "Al", Theme: "Dark"})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := `{"name":"Al","email":"","company":"","industry":"","size":"","theme":"Dark","layout":""}`
	if string(data) != want {
		t.Errorf("Encode = %s, want %s", data, want)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    Profile
		corrupt bool
	}{
		{"full", `{"name":"Al","email":"a@b.com","size":"4"}`, Profile{Name: "Al", Email: "a@b.com", Size: "4"}, false},
		{"unknown keys ignored", `{"name":"Al","extra":1}`, Profile{Name: "Al"}, false},
		{"null", `null`, Profile{}, true},
		{"empty", ``, Profile{}, true},
		{"truncated", `{"name":"Al"`, Profile{}, true},
		{"array", `["Al"]`, Profile{}, true},
		{"non-string value", `{"size":4}`, Profile{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode([]byte(tc.data))
			if tc.corrupt {
				if !errors.Is(err, ErrCorrupt) {
					t.Fatalf("Decode(%q) error = %v, want ErrCorrupt", tc.data, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode(%q): %v", tc.data, err)
			}
			if got != tc.want {
				t.Errorf("Decode(%q) = %+v, want %+v", tc.data, got, tc.want)
			}
		})
	}
}

type failingSlot struct{ err error }

func (f failingSlot) Get([]byte) ([]byte, error) { return nil, f.err }
func (f failingSlot) Set([]byte, []byte) error   { return f.err }

func TestLoadAndSave(t *testing.T) {
	s, err := kvstore.Open(kvstore.Options{InMemory: true})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if _, err := Load(s); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load on empty store = %v, want ErrNotFound", err)
	}

	p := Profile{Name: "Al", Email: "a@b.com", Company: "Acme", Industry: "Tech", Size: "12", Theme: "Dark", Layout: "Grid"}
	if err := Save(s, p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(s)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != p {
		t.Errorf("Load = %+v, want %+v", got, p)
	}

	raw, err := s.Get([]byte(Key))
	if err != nil {
		t.Fatalf("Get(%s): %v", Key, err)
	}
	if len(raw) == 0 || raw[0] != '{' {
		t.Errorf("stored value = %q, want JSON object", raw)
	}
}

func TestLoadCorrupt(t *testing.T) {
	s, err := kvstore.OpenFile(t.TempDir())
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if err := s.Set([]byte(Key), []byte("{not json")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := Load(s); !errors.Is(err, ErrCorrupt) {
		t.Errorf("Load = %v, want ErrCorrupt", err)
	}
}

func TestSlotFailuresAreWrapped(t *testing.T) {
	boom := errors.New("disk on fire")
	slot := failingSlot{err: boom}

	if _, err := Load(slot); !errors.Is(err, boom) || errors.Is(err, ErrNotFound) {
		t.Errorf("Load = %v, want wrapped read error", err)
	}
	if err := Save(slot, Profile{}); !errors.Is(err, boom) {
		t.Errorf("Save = %v, want wrapped write error", err)
	}
}
