// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package ccerror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnknownFunction(t *testing.T) {
	assert := assert.New(t)

	e := UnknownFunction("doesNotExist")

	assert.Equal(KindUnknownFunction, e.Kind)
	assert.Equal("doesNotExist", e.Data["fn"])
	assert.NotEmpty(e.Message)
}

func TestSerializeRoundTrip(t *testing.T) {
	assert := assert.New(t)

	e := ParsingParameters(errors.New("bad helper"))
	b := e.Serialize()

	decoded, err := Deserialize(b)

	assert.NoError(err)
	assert.Equal(KindParsingParameters, decoded.Kind)
	assert.Equal(e.Message, decoded.Message)
	assert.Equal("bad helper", decoded.Data["message"])
}

func TestDeserializeInvalid(t *testing.T) {
	assert := assert.New(t)

	_, err := Deserialize([]byte("not json"))
	assert.Error(err)
}

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	typed := MigrationPathNotDefined()
	assert.Same(typed, From(typed), "typed errors must pass through")

	wrapped := From(errors.New("boom"))
	assert.Equal(KindUnknown, wrapped.Kind)
	assert.Equal("boom", wrapped.Data["message"])
}

func TestUnknownKindMessage(t *testing.T) {
	assert := assert.New(t)

	e := New(Kind("SomethingNew"), nil)
	assert.Equal(messages[KindUnknown], e.Message)
}
