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

// Package kvstore provides the key-value backends the onboarding profile is
// persisted in: BadgerDB (on disk or in memory), a file-per-key directory
// and a SQLite table.
package kvstore

import (
	"errors"
	"strings"

	badger "github.com/dgraph-io/badger/v4"
)

// ErrNotFound is returned when a key does not exist.
var ErrNotFound = errors.New("key not found")

// gcDiscardRatio is the share of stale data a value log file needs before
// Close rewrites it.
const gcDiscardRatio = 0.5

// Options configures a Store.
type Options struct {
	Dir      string // on-disk directory, unused when InMemory is set
	InMemory bool
}

// Store is a BadgerDB-backed KV.
type Store struct {
	db   *badger.DB
	disk bool
}

// Open creates or opens a BadgerDB store. Only one process may hold a disk
// store at a time; see IsLocked.
func Open(opts Options) (*Store, error) {
	if !opts.InMemory && opts.Dir == "" {
		return nil, errors.New("badger store needs a directory")
	}
	db, err := badger.Open(badgerOptions(opts))
	if err != nil {
		return nil, err
	}
	return &Store{db: db, disk: !opts.InMemory}, nil
}

func badgerOptions(opts Options) badger.Options {
	var bopts badger.Options
	if opts.InMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		bopts = badger.DefaultOptions(opts.Dir)
	}
	// Silence Badger and keep only the latest version of each key.
	return bopts.WithLogger(nil).WithNumVersionsToKeep(1)
}

// IsLocked reports whether err is Badger refusing to open a directory that
// another process holds.
func IsLocked(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Cannot acquire directory lock")
}

// Get returns a copy of the value stored under key, or ErrNotFound.
func (s *Store) Get(key []byte) ([]byte, error) {
	var val []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			val = append([]byte{}, v...)
			return nil
		})
	})
	return val, err
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key, value []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

// Close compacts the value log of disk stores and closes the database.
func (s *Store) Close() error {
	if s.disk {
		for s.db.RunValueLogGC(gcDiscardRatio) == nil {
		}
	}
	return s.db.Close()
}
