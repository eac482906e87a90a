// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStorage_StateZero(t *testing.T) {
	assert := assert.New(t)

	strg := NewOnMemory()
	val, err := strg.GetState([]byte("some key"))

	assert.NoError(err)
	assert.Nil(val)
}

func TestStorage_PutGetState(t *testing.T) {
	assert := assert.New(t)

	strg := NewOnMemory()
	assert.NoError(strg.PutState([]byte("asset-1"), []byte(`{"owner":"alice"}`)))

	val, err := strg.GetState([]byte("asset-1"))

	assert.NoError(err)
	assert.Equal([]byte(`{"owner":"alice"}`), val)
}

func TestStorage_AppliedMigrations(t *testing.T) {
	assert := assert.New(t)

	strg := NewOnMemory()
	applied, err := strg.IsApplied("assetreg", "001_init")
	assert.NoError(err)
	assert.False(applied)

	assert.NoError(strg.MarkApplied("assetreg", "001_init"))

	applied, err = strg.IsApplied("assetreg", "001_init")
	assert.NoError(err)
	assert.True(applied)

	// a unit of another path with the same name stays pending
	applied, err = strg.IsApplied("other", "001_init")
	assert.NoError(err)
	assert.False(applied)
}

func TestStorage_NextTxID(t *testing.T) {
	assert := assert.New(t)

	strg := NewOnMemory()
	id1, err := strg.NextTxID()
	assert.NoError(err)
	id2, err := strg.NextTxID()
	assert.NoError(err)

	assert.Len(id1, 16)
	assert.NotEqual(id1, id2)
	assert.Less(id1, id2)
}

func TestStorage_PrefixSeparation(t *testing.T) {
	assert := assert.New(t)

	strg := NewOnMemory()
	assert.NoError(strg.MarkApplied("", "k"))

	// applied records must not leak into the state collection
	val, err := strg.GetState([]byte{0, 'k'})
	assert.NoError(err)
	assert.Nil(val)
}
