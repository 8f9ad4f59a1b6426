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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cloud-exit/onboard/internal/kvstore"
)

// Key is the storage slot holding the completed profile.
const Key = "userData"

var (
	// ErrNotFound is returned by Load when no profile has been stored.
	ErrNotFound = errors.New("profile not found")
	// ErrCorrupt is returned by Load and Decode when stored data does not
	// decode into a profile.
	ErrCorrupt = errors.New("profile data is corrupt")
)

// Slot is the key-value port the profile is persisted through. A missing key
// must be reported as kvstore.ErrNotFound.
type Slot interface {
	Get(key []byte) ([]byte, error)
	Set(key, value []byte) error
}

// Encode serializes p to its persisted text form.
func Encode(p Profile) ([]byte, error) {
	return json.Marshal(p)
}

// Decode parses the persisted text form. A JSON null or any value that is not
// an object of string fields is reported as ErrCorrupt.
func Decode(data []byte) (Profile, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Profile{}, ErrCorrupt
	}
	var p Profile
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return Profile{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return p, nil
}

// Load reads and decodes the stored profile.
func Load(slot Slot) (Profile, error) {
	data, err := slot.Get([]byte(Key))
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, fmt.Errorf("reading profile: %w", err)
	}
	return Decode(data)
}

// Save encodes p and writes it to the slot.
func Save(slot Slot, p Profile) error {
	data, err := Encode(p)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	if err := slot.Set([]byte(Key), data); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}
	return nil
}
