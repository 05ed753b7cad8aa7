// Package db wraps an embedded badger database exposing a handful of named
// slots. Local mode keeps the serialized job and provider lists in two
// independent slots so either collection can be loaded or saved without
// touching the other.
package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dgraph-io/badger/v4"
)

type Store struct {
	db *badger.DB
}

func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	opts := badger.DefaultOptions(filepath.Join(dataDir, "badger"))
	opts.Logger = nil // badger's own logging is too chatty for a client app

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// ErrSlotNotFound is returned by Get for a slot that was never written.
var ErrSlotNotFound = errors.New("slot not found")

func (s *Store) Get(slot string) ([]byte, error) {
	var value []byte

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(slot))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			value = append([]byte{}, val...)
			return nil
		})
	})

	if err == badger.ErrKeyNotFound {
		return nil, fmt.Errorf("%w: %s", ErrSlotNotFound, slot)
	}

	return value, err
}

func (s *Store) Set(slot string, value []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(slot), value)
	})
}

func (s *Store) Delete(slot string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(slot))
	})
}

// Has reports whether a slot has ever been written. Seeding uses this to
// distinguish "never persisted" from "persisted an empty list".
func (s *Store) Has(slot string) (bool, error) {
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(slot))
		return err
	})
	if err == badger.ErrKeyNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
