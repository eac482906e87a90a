// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package migration

import (
	"sync/atomic"

	"github.com/thuyaaung/ccdispatch/ccerror"
	"github.com/thuyaaung/ccdispatch/dispatch"
	"github.com/thuyaaung/ccdispatch/param"
)

// Executor resolves and runs all pending migration units under path,
// in an executor-defined deterministic order, and returns the result
// of the last unit applied.
type Executor interface {
	Run(path string, tc *dispatch.TxContext, helper dispatch.Helper,
		args []param.Value) (interface{}, error)
}

// Runner orchestrates one handler's migrations. The migrating flag is
// instance-scoped; a second concurrent run on the same instance is
// rejected instead of racing (single-flight).
type Runner struct {
	path      string
	exec      Executor
	migrating atomic.Bool
}

func NewRunner(path string, exec Executor) *Runner {
	return &Runner{
		path: path,
		exec: exec,
	}
}

// Migrating reports whether a migration run is in progress
func (r *Runner) Migrating() bool {
	return r.migrating.Load()
}

// Run delegates to the executor. The flag is true strictly between
// start and end of the call and returns to false on every exit path.
func (r *Runner) Run(tc *dispatch.TxContext, helper dispatch.Helper,
	args []param.Value) (interface{}, error) {

	if r.path == "" {
		return nil, ccerror.MigrationPathNotDefined()
	}
	if !r.migrating.CompareAndSwap(false, true) {
		return nil, ccerror.MigrationConflict()
	}
	defer r.migrating.Store(false)

	return r.exec.Run(r.path, tc, helper, args)
}

// Operation adapts the runner for handler registration
func (r *Runner) Operation() dispatch.OperationFunc {
	return func(tc *dispatch.TxContext, helper dispatch.Helper,
		args []param.Value) (interface{}, error) {
		return r.Run(tc, helper, args)
	}
}
