// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package dispatch

// Response is the outcome of a single invocation, produced only
// through the stub's success or fail channel
type Response struct {
	OK      bool
	Payload []byte
}

// Stub is the execution environment handle for one invocation.
// The dispatcher depends on exactly these four operations.
type Stub interface {
	GetOperationAndArgs() (string, []string)
	GetTxID() string
	Success(payload []byte) Response
	Fail(serialized []byte) Response
}

// StateReaderWriter is an optional capability of a concrete stub.
// Helpers that need ledger access assert for it.
type StateReaderWriter interface {
	GetState(key []byte) ([]byte, error)
	PutState(key, value []byte) error
}
