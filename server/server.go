// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package server

import (
	"fmt"
	"sync/atomic"

	"github.com/thuyaaung/ccdispatch/dispatch"
	"github.com/thuyaaung/ccdispatch/emitter"
	"github.com/thuyaaung/ccdispatch/logger"
	"github.com/thuyaaung/ccdispatch/migration"
	"github.com/thuyaaung/ccdispatch/storage"
)

// the storage backs both the ledger capability and migration records
var _ dispatch.StateReaderWriter = (*storage.Storage)(nil)
var _ migration.AppliedStore = (*storage.Storage)(nil)

// Config for Server
type Config struct {
	APIPort int
}

var DefaultConfig = Config{
	APIPort: 9060,
}

// Status reports the hosted handler and its invocation counters
type Status struct {
	Handler    string   `json:"handler"`
	Operations []string `json:"operations"`
	Completed  uint64   `json:"completed"`
	Failed     uint64   `json:"failed"`
}

// Server hosts one handler behind an HTTP API, building a fresh stub
// for each invocation
type Server struct {
	config  Config
	handler *dispatch.Handler
	storage *storage.Storage

	completed atomic.Uint64
	failed    atomic.Uint64
}

func New(handler *dispatch.Handler, strg *storage.Storage, config Config) *Server {
	s := &Server{
		config:  config,
		handler: handler,
		storage: strg,
	}
	go s.consumeEvents(handler.SubscribeEvents(20))
	return s
}

func (s *Server) consumeEvents(
	sub *emitter.Subscription[dispatch.InvocationEvent],
) {
	for e := range sub.Events() {
		if e.Err != nil {
			s.failed.Add(1)
		} else {
			s.completed.Add(1)
		}
	}
}

// Serve activates the handler and runs the API until it fails
func (s *Server) Serve() error {
	resp := s.activate()
	if !resp.OK {
		logger.I().Fatalw("handler activation failed", "handler", s.handler.Name())
	}
	logger.I().Infow("serving handler api",
		"handler", s.handler.Name(), "port", s.config.APIPort)
	return s.newRouter().Run(fmt.Sprintf(":%d", s.config.APIPort))
}

func (s *Server) activate() dispatch.Response {
	stub, err := s.newStub("", nil)
	if err != nil {
		return dispatch.Response{}
	}
	return s.handler.Activate(stub)
}

func (s *Server) newStub(operation string, args []string) (*ledgerStub, error) {
	txID, err := s.storage.NextTxID()
	if err != nil {
		return nil, err
	}
	return &ledgerStub{
		operation: operation,
		args:      args,
		txID:      txID,
		strg:      s.storage,
	}, nil
}

// GetStatus returns the current server status
func (s *Server) GetStatus() Status {
	return Status{
		Handler:    s.handler.Name(),
		Operations: s.handler.Operations(),
		Completed:  s.completed.Load(),
		Failed:     s.failed.Load(),
	}
}
