// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitter_Subscribe(t *testing.T) {
	assert := assert.New(t)

	e := New[string]()
	s1 := e.Subscribe(0)
	s2 := e.Subscribe(0)

	e.Emit("hello")
	e.Emit("world")

	assert.Equal("hello", <-s1.Events())
	assert.Equal("world", <-s1.Events())
	assert.Equal("hello", <-s2.Events())
	assert.Equal("world", <-s2.Events())
}

func TestEmitter_Unsubscribe(t *testing.T) {
	assert := assert.New(t)

	e := New[int]()
	s1 := e.Subscribe(0)
	s2 := e.Subscribe(0)

	s1.Unsubscribe()
	e.Emit(7)

	_, open := <-s1.Events()
	assert.False(open, "unsubscribed channel must be closed")
	assert.Equal(7, <-s2.Events())
}

func TestEmitter_DropsWhenFull(t *testing.T) {
	assert := assert.New(t)

	e := New[int]()
	s := e.Subscribe(5)

	for i := 0; i < 10; i++ {
		e.Emit(i)
	}

	assert.Len(s.Events(), 5, "events beyond the buffer are dropped")
}
