// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package assetreg

import (
	"encoding/json"
	"errors"

	"github.com/thuyaaung/ccdispatch/dispatch"
)

// LedgerHelper is the per-call transaction helper for this handler,
// adding JSON state access over the stub's ledger capability
type LedgerHelper struct {
	tc    *dispatch.TxContext
	state dispatch.StateReaderWriter
}

var _ dispatch.Helper = (*LedgerHelper)(nil)

// NewLedgerHelper is the helper factory. It requires a stub with
// ledger access.
func NewLedgerHelper(tc *dispatch.TxContext) (dispatch.Helper, error) {
	state, ok := tc.Stub.(dispatch.StateReaderWriter)
	if !ok {
		return nil, errors.New("stub does not provide state access")
	}
	return &LedgerHelper{tc: tc, state: state}, nil
}

func (lh *LedgerHelper) TxContext() *dispatch.TxContext {
	return lh.tc
}

// GetJSON loads and decodes the state value at key.
// The second return reports whether the key was set.
func (lh *LedgerHelper) GetJSON(key string, out interface{}) (bool, error) {
	b, err := lh.state.GetState([]byte(key))
	if err != nil {
		return false, err
	}
	if b == nil {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

// PutJSON encodes and stores the value at key
func (lh *LedgerHelper) PutJSON(key string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return lh.state.PutState([]byte(key), b)
}
