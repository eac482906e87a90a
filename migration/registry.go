// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package migration

import (
	"fmt"
	"sort"
	"sync"

	"github.com/thuyaaung/ccdispatch/dispatch"
	"github.com/thuyaaung/ccdispatch/param"
)

// Func is one migration unit. Units must be idempotent.
type Func func(tc *dispatch.TxContext, helper dispatch.Helper,
	args []param.Value) (interface{}, error)

// AppliedStore records which units have been applied,
// so a later run only executes pending ones
type AppliedStore interface {
	IsApplied(path, name string) (bool, error)
	MarkApplied(path, name string) error
}

type memAppliedStore struct {
	mtx     sync.Mutex
	applied map[string]struct{}
}

func (ms *memAppliedStore) IsApplied(path, name string) (bool, error) {
	ms.mtx.Lock()
	defer ms.mtx.Unlock()
	_, found := ms.applied[path+"/"+name]
	return found, nil
}

func (ms *memAppliedStore) MarkApplied(path, name string) error {
	ms.mtx.Lock()
	defer ms.mtx.Unlock()
	ms.applied[path+"/"+name] = struct{}{}
	return nil
}

type unit struct {
	name string
	fn   Func
}

// Registry is an Executor over migration units registered in code.
// Units run in lexicographic order of their names.
type Registry struct {
	mtx     sync.RWMutex
	units   map[string][]unit
	applied AppliedStore
}

var _ Executor = (*Registry)(nil)

// NewRegistry creates a Registry. A nil store falls back to
// in-process applied tracking.
func NewRegistry(applied AppliedStore) *Registry {
	if applied == nil {
		applied = &memAppliedStore{applied: make(map[string]struct{})}
	}
	return &Registry{
		units:   make(map[string][]unit),
		applied: applied,
	}
}

// Register adds a migration unit under the given path
func (reg *Registry) Register(path, name string, fn Func) error {
	reg.mtx.Lock()
	defer reg.mtx.Unlock()
	for _, u := range reg.units[path] {
		if u.name == name {
			return fmt.Errorf("migration %s/%s already registered", path, name)
		}
	}
	reg.units[path] = append(reg.units[path], unit{name, fn})
	return nil
}

// Run executes pending units under path in name order and
// returns the result of the last unit applied
func (reg *Registry) Run(path string, tc *dispatch.TxContext,
	helper dispatch.Helper, args []param.Value) (interface{}, error) {

	units := reg.pathUnits(path)

	var last interface{}
	for _, u := range units {
		applied, err := reg.applied.IsApplied(path, u.name)
		if err != nil {
			return nil, err
		}
		if applied {
			continue
		}
		result, err := u.fn(tc, helper, args)
		if err != nil {
			return nil, fmt.Errorf("migration %s/%s: %v", path, u.name, err)
		}
		if err := reg.applied.MarkApplied(path, u.name); err != nil {
			return nil, err
		}
		last = result
	}
	return last, nil
}

func (reg *Registry) pathUnits(path string) []unit {
	reg.mtx.RLock()
	defer reg.mtx.RUnlock()
	units := make([]unit, len(reg.units[path]))
	copy(units, reg.units[path])
	sort.Slice(units, func(i, j int) bool {
		return units[i].name < units[j].name
	})
	return units
}
