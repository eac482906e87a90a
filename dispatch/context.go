// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package dispatch

import (
	"github.com/thuyaaung/ccdispatch/logger"
)

// TxContext is created once per invocation and never shared
// across invocations
type TxContext struct {
	TxID   string
	Stub   Stub
	Logger logger.Logger
}

// Helper is the per-call transaction helper passed to operations
type Helper interface {
	TxContext() *TxContext
}

// HelperFactory builds the transaction helper for one invocation.
// The invocation context is the sole constructor input.
type HelperFactory func(tc *TxContext) (Helper, error)

// BaseHelper wraps the context with no extra behavior
type BaseHelper struct {
	tc *TxContext
}

var _ Helper = (*BaseHelper)(nil)

func NewBaseHelper(tc *TxContext) *BaseHelper {
	return &BaseHelper{tc}
}

func (h *BaseHelper) TxContext() *TxContext {
	return h.tc
}

func defaultHelperFactory(tc *TxContext) (Helper, error) {
	return NewBaseHelper(tc), nil
}
