// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package server

import (
	"github.com/thuyaaung/ccdispatch/dispatch"
	"github.com/thuyaaung/ccdispatch/storage"
)

// ledgerStub is the execution environment handle built per request,
// carrying the allocated transaction id and ledger access
type ledgerStub struct {
	operation string
	args      []string
	txID      string
	strg      *storage.Storage
}

var (
	_ dispatch.Stub              = (*ledgerStub)(nil)
	_ dispatch.StateReaderWriter = (*ledgerStub)(nil)
)

func (ls *ledgerStub) GetOperationAndArgs() (string, []string) {
	return ls.operation, ls.args
}

func (ls *ledgerStub) GetTxID() string {
	return ls.txID
}

func (ls *ledgerStub) Success(payload []byte) dispatch.Response {
	return dispatch.Response{OK: true, Payload: payload}
}

func (ls *ledgerStub) Fail(serialized []byte) dispatch.Response {
	return dispatch.Response{OK: false, Payload: serialized}
}

func (ls *ledgerStub) GetState(key []byte) ([]byte, error) {
	return ls.strg.GetState(key)
}

func (ls *ledgerStub) PutState(key, value []byte) error {
	return ls.strg.PutState(key, value)
}
