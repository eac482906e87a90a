// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package emitter

import (
	"sync"
)

// Subscription receives emitted events on a buffered channel.
// Events are dropped for subscribers which cannot keep up.
type Subscription[E any] struct {
	onRemove func(s *Subscription[E])
	ch       chan E
}

// Events returns the event channel
func (s *Subscription[E]) Events() <-chan E {
	return s.ch
}

// Unsubscribe stops getting new events
func (s *Subscription[E]) Unsubscribe() {
	s.onRemove(s)
	close(s.ch)
}

func (s *Subscription[E]) emit(event E) {
	select {
	case s.ch <- event:
	default:
	}
}

// Emitter handles event subscriptions
type Emitter[E any] struct {
	mtx           sync.RWMutex
	subscriptions map[*Subscription[E]]struct{}
}

// New creates a new Emitter
func New[E any]() *Emitter[E] {
	return &Emitter[E]{
		subscriptions: make(map[*Subscription[E]]struct{}),
	}
}

// Subscribe creates a new subscription with at least the given buffer
func (e *Emitter[E]) Subscribe(buffer int) *Subscription[E] {
	if buffer < 5 {
		buffer = 5
	}
	s := &Subscription[E]{
		onRemove: e.delete,
		ch:       make(chan E, buffer),
	}
	e.add(s)
	return s
}

func (e *Emitter[E]) add(s *Subscription[E]) {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	e.subscriptions[s] = struct{}{}
}

func (e *Emitter[E]) delete(s *Subscription[E]) {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	delete(e.subscriptions, s)
}

// Emit sends a new event to all subscriptions
func (e *Emitter[E]) Emit(event E) {
	e.mtx.RLock()
	defer e.mtx.RUnlock()
	for s := range e.subscriptions {
		s.emit(event)
	}
}
