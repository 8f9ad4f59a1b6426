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

import "fmt"

// Backend names accepted by OpenBackend.
const (
	BackendBadger = "badger"
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Backends lists every supported backend name.
var Backends = []string{BackendBadger, BackendFile, BackendMemory, BackendSQLite}

// KV is the surface shared by every backend.
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key, value []byte) error
	Close() error
}

// OpenBackend opens the named backend. dir is ignored by the memory backend.
func OpenBackend(backend, dir string) (KV, error) {
	switch backend {
	case BackendBadger, "":
		return Open(Options{Dir: dir})
	case BackendFile:
		return OpenFile(dir)
	case BackendMemory:
		return Open(Options{InMemory: true})
	case BackendSQLite:
		return OpenSQLite(dir)
	}
	return nil, fmt.Errorf("unknown store backend %q", backend)
}
