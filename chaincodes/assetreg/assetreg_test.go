// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package assetreg

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thuyaaung/ccdispatch/ccerror"
	"github.com/thuyaaung/ccdispatch/dispatch"
	"github.com/thuyaaung/ccdispatch/migration"
)

func newTestHandler() (*dispatch.Handler, *dispatch.MockState) {
	h := New(migration.NewRegistry(nil), nil)
	return h, dispatch.NewMockState()
}

func invoke(h *dispatch.Handler, state *dispatch.MockState,
	operation string, args ...string) dispatch.Response {
	stub := dispatch.NewMockStub(operation, args...)
	stub.State = state
	return h.Invoke(stub)
}

func TestCreateAndGetAsset(t *testing.T) {
	assert := assert.New(t)

	h, state := newTestHandler()
	resp := invoke(h, state, "createAsset", "asset-1", "alice", `{"color":"red"}`)

	require.True(t, resp.OK, string(resp.Payload))

	var created Asset
	assert.NoError(json.Unmarshal(resp.Payload, &created))
	assert.Equal("asset-1", created.ID)
	assert.Equal("alice", created.Owner)
	assert.Equal("red", created.Props["color"])

	resp = invoke(h, state, "getAsset", "asset-1")
	require.True(t, resp.OK)

	var loaded Asset
	assert.NoError(json.Unmarshal(resp.Payload, &loaded))
	assert.Equal(created, loaded)
}

func TestCreateAssetDuplicate(t *testing.T) {
	assert := assert.New(t)

	h, state := newTestHandler()
	invoke(h, state, "createAsset", "asset-1", "alice")
	resp := invoke(h, state, "createAsset", "asset-1", "bob")

	require.False(t, resp.OK)
	ce, err := ccerror.Deserialize(resp.Payload)
	require.NoError(t, err)
	assert.Equal(ccerror.KindUnknown, ce.Kind)
	assert.Equal("asset asset-1 already exists", ce.Data["message"])
}

func TestTransferAsset(t *testing.T) {
	assert := assert.New(t)

	h, state := newTestHandler()
	invoke(h, state, "createAsset", "asset-1", "alice")
	resp := invoke(h, state, "transferAsset", "asset-1", "bob")

	require.True(t, resp.OK)

	var asset Asset
	assert.NoError(json.Unmarshal(resp.Payload, &asset))
	assert.Equal("bob", asset.Owner)
}

func TestGetAssetNotFound(t *testing.T) {
	assert := assert.New(t)

	h, state := newTestHandler()
	resp := invoke(h, state, "getAsset", "nope")

	require.False(t, resp.OK)
	ce, err := ccerror.Deserialize(resp.Payload)
	require.NoError(t, err)
	assert.Equal(ccerror.KindUnknown, ce.Kind)
	assert.Equal("asset nope not found", ce.Data["message"])
}

func TestRunMigrations(t *testing.T) {
	assert := assert.New(t)

	h, state := newTestHandler()

	resp := invoke(h, state, "schemaVersion")
	require.True(t, resp.OK)
	assert.Equal("0", string(resp.Payload))

	resp = invoke(h, state, "runMigrations")
	require.True(t, resp.OK, string(resp.Payload))
	assert.JSONEq(`{"schemaVersion":2}`, string(resp.Payload),
		"result of the last unit applied")

	resp = invoke(h, state, "schemaVersion")
	require.True(t, resp.OK)
	assert.Equal("2", string(resp.Payload))

	// everything applied, a second run is a no-op
	resp = invoke(h, state, "runMigrations")
	require.True(t, resp.OK)
	assert.Empty(resp.Payload)
}

func TestHelperRequiresStateAccess(t *testing.T) {
	assert := assert.New(t)

	h, _ := newTestHandler()

	// a stub without the state capability cannot build the helper
	stub := struct {
		dispatch.Stub
	}{dispatch.NewMockStub("getAsset", "asset-1")}
	resp := h.Invoke(stub)

	require.False(t, resp.OK)
	ce, err := ccerror.Deserialize(resp.Payload)
	require.NoError(t, err)
	assert.Equal(ccerror.KindParsingParameters, ce.Kind)
	assert.Equal("stub does not provide state access", ce.Data["message"])
}

func TestPingThroughHandler(t *testing.T) {
	assert := assert.New(t)

	h, state := newTestHandler()
	resp := invoke(h, state, "ping")

	require.True(t, resp.OK)
	var decoded string
	assert.NoError(json.Unmarshal(resp.Payload, &decoded))
	assert.Equal("pong", decoded)
}
