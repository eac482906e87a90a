// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package storage

import (
	"encoding/binary"
	"fmt"

	"github.com/dgraph-io/badger/v3"
)

// data collection prefixes for different data collections
const (
	_                       byte = iota
	colStateValueByKey           // state value by state key
	colAppliedMigrationByID      // applied migration marker by path and unit name
	colTxCounter                 // last allocated transaction number
)

// Storage persists handler state, applied migration records and the
// transaction-id counter
type Storage struct {
	db *badger.DB
}

func New(db *badger.DB) *Storage {
	return &Storage{db: db}
}

// NewOnMemory creates storage on an in-memory database, for tests
func NewOnMemory() *Storage {
	db, _ := badger.Open(badger.DefaultOptions("").WithInMemory(true))
	return New(db)
}

// GetState returns the stored value for key, nil if not set
func (strg *Storage) GetState(key []byte) ([]byte, error) {
	val, err := getValue(strg.db, concatBytes([]byte{colStateValueByKey}, key))
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	return val, err
}

// PutState stores the value for key
func (strg *Storage) PutState(key, value []byte) error {
	return strg.db.Update(func(txn *badger.Txn) error {
		return txn.Set(concatBytes([]byte{colStateValueByKey}, key), value)
	})
}

// IsApplied reports whether the migration unit was recorded
func (strg *Storage) IsApplied(path, name string) (bool, error) {
	return hasKey(strg.db, appliedKey(path, name)), nil
}

// MarkApplied records the migration unit
func (strg *Storage) MarkApplied(path, name string) error {
	return strg.db.Update(func(txn *badger.Txn) error {
		return txn.Set(appliedKey(path, name), []byte{1})
	})
}

// NextTxID allocates the next transaction id
func (strg *Storage) NextTxID() (string, error) {
	var next uint64
	err := strg.db.Update(func(txn *badger.Txn) error {
		key := []byte{colTxCounter}
		item, err := txn.Get(key)
		if err == nil {
			err = item.Value(func(val []byte) error {
				next = binary.BigEndian.Uint64(val)
				return nil
			})
		} else if err != badger.ErrKeyNotFound {
			return err
		}
		next++
		b := make([]byte, 8)
		binary.BigEndian.PutUint64(b, next)
		return txn.Set(key, b)
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", next), nil
}

func appliedKey(path, name string) []byte {
	return concatBytes([]byte{colAppliedMigrationByID},
		[]byte(path), []byte{0}, []byte(name))
}
