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

package kvstore

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// FileStore keeps one file per key inside a directory. Values are written
// to a temporary file and renamed into place so a crash never leaves a
// half-written value behind.
type FileStore struct {
	dir string
}

// OpenFile creates dir if needed and returns a FileStore rooted at it.
func OpenFile(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New("file store needs a directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// path maps a key to a file name. Keys are escaped so separators and dots
// cannot escape the store directory.
func (s *FileStore) path(key []byte) string {
	name := url.PathEscape(string(key))
	if name == "." || name == ".." {
		name = "%2E" + name[1:]
	}
	return filepath.Join(s.dir, name)
}

// Get retrieves the value for a key. Returns ErrNotFound if the key does not exist.
func (s *FileStore) Get(key []byte) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// Set stores a key-value pair.
func (s *FileStore) Set(key, value []byte) error {
	path := s.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Close is a no-op; FileStore holds no open handles.
func (s *FileStore) Close() error { return nil }
