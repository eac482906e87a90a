// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package dispatch

type MockState struct {
	StateMap map[string][]byte
}

func NewMockState() *MockState {
	return &MockState{
		StateMap: make(map[string][]byte),
	}
}

func (ms *MockState) GetState(key []byte) []byte {
	return ms.StateMap[string(key)]
}

func (ms *MockState) SetState(key, value []byte) {
	ms.StateMap[string(key)] = value
}

// MockStub is an in-memory execution environment handle for tests
type MockStub struct {
	MockOperation string
	MockArgs      []string
	MockTxID      string
	GetStateError error
	State         *MockState
}

var (
	_ Stub              = (*MockStub)(nil)
	_ StateReaderWriter = (*MockStub)(nil)
)

func NewMockStub(operation string, args ...string) *MockStub {
	return &MockStub{
		MockOperation: operation,
		MockArgs:      args,
		MockTxID:      "mock-tx-1",
		State:         NewMockState(),
	}
}

func (ms *MockStub) GetOperationAndArgs() (string, []string) {
	return ms.MockOperation, ms.MockArgs
}

func (ms *MockStub) GetTxID() string {
	return ms.MockTxID
}

func (ms *MockStub) Success(payload []byte) Response {
	return Response{OK: true, Payload: payload}
}

func (ms *MockStub) Fail(serialized []byte) Response {
	return Response{OK: false, Payload: serialized}
}

func (ms *MockStub) GetState(key []byte) ([]byte, error) {
	if ms.GetStateError != nil {
		return nil, ms.GetStateError
	}
	return ms.State.GetState(key), nil
}

func (ms *MockStub) PutState(key, value []byte) error {
	ms.State.SetState(key, value)
	return nil
}
