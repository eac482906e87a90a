// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package dispatch

import (
	"fmt"
	"sort"
	"time"

	"github.com/thuyaaung/ccdispatch/ccerror"
	"github.com/thuyaaung/ccdispatch/emitter"
	"github.com/thuyaaung/ccdispatch/logger"
	"github.com/thuyaaung/ccdispatch/param"
)

// reserved lifecycle names, never resolvable as ordinary operations
const (
	OpActivate = "activate"
	OpInvoke   = "invoke"
	OpPing     = "ping"
)

// OperationFunc executes one named operation with the parsed arguments
type OperationFunc func(tc *TxContext, helper Helper, args []param.Value) (interface{}, error)

// InvocationEvent reports the outcome of one invocation.
// It never carries argument values or payload content.
type InvocationEvent struct {
	Handler   string
	Operation string
	TxID      string
	Err       *ccerror.Error
	Elapsed   float64
}

// Config for Handler
type Config struct {
	Name          string
	HelperFactory HelperFactory
	Logger        logger.Logger
}

// Handler dispatches invocations to registered operations
type Handler struct {
	name    string
	ops     map[string]OperationFunc
	factory HelperFactory
	logger  logger.Logger
	emitter *emitter.Emitter[InvocationEvent]
}

// New creates a Handler. The ping operation is pre-registered and
// routed like any other operation.
func New(cfg Config) *Handler {
	if cfg.Name == "" {
		cfg.Name = "handler"
	}
	if cfg.HelperFactory == nil {
		cfg.HelperFactory = defaultHelperFactory
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}
	h := &Handler{
		name:    cfg.Name,
		ops:     make(map[string]OperationFunc),
		factory: cfg.HelperFactory,
		logger:  cfg.Logger.With("handler", cfg.Name),
		emitter: emitter.New[InvocationEvent](),
	}
	h.ops[OpPing] = ping
	return h
}

func ping(tc *TxContext, helper Helper, args []param.Value) (interface{}, error) {
	return "pong", nil
}

// Register adds a named operation. Registration happens once at
// construction time, before the handler serves invocations.
func (h *Handler) Register(name string, fn OperationFunc) error {
	if name == OpActivate || name == OpInvoke {
		return fmt.Errorf("operation name %q is reserved", name)
	}
	if _, found := h.ops[name]; found {
		return fmt.Errorf("operation %q already registered", name)
	}
	h.ops[name] = fn
	return nil
}

// Name returns the handler name
func (h *Handler) Name() string {
	return h.name
}

// Operations returns the registered operation names, sorted
func (h *Handler) Operations() []string {
	names := make([]string, 0, len(h.ops))
	for name := range h.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SubscribeEvents subscribes to invocation outcome events
func (h *Handler) SubscribeEvents(buffer int) *emitter.Subscription[InvocationEvent] {
	return h.emitter.Subscribe(buffer)
}

// Activate is the lifecycle hook called once when the handler is
// brought up. It does not run migrations.
func (h *Handler) Activate(stub Stub) Response {
	h.logger.Infow("handler activated", "txid", stub.GetTxID())
	return stub.Success(nil)
}

// Invoke resolves the named operation, executes it to completion and
// returns the stub's success or fail result. Failures never propagate
// past this boundary untyped.
func (h *Handler) Invoke(stub Stub) Response {
	op, raws := stub.GetOperationAndArgs()
	txID := stub.GetTxID()
	start := time.Now()
	h.logger.Infow("invoke started", "operation", op, "txid", txID)

	payload, err := h.invoke(stub, op, raws, txID)
	elapsed := time.Since(start).Seconds()

	if err != nil {
		ce := ccerror.From(err)
		h.logger.Warnw("invoke failed",
			"operation", op, "txid", txID, "kind", ce.Kind, "elapsed", elapsed)
		h.emitter.Emit(InvocationEvent{h.name, op, txID, ce, elapsed})
		return stub.Fail(ce.Serialize())
	}
	h.logger.Infow("invoke completed",
		"operation", op, "txid", txID, "elapsed", elapsed)
	h.emitter.Emit(InvocationEvent{h.name, op, txID, nil, elapsed})
	return stub.Success(payload)
}

func (h *Handler) invoke(
	stub Stub, op string, raws []string, txID string,
) (payload []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = ccerror.Unknown(fmt.Errorf("%v", r))
		}
	}()

	fn, found := h.ops[op]
	if !found {
		return nil, ccerror.UnknownFunction(op)
	}

	args := param.ParseAll(raws)
	tc := &TxContext{
		TxID:   txID,
		Stub:   stub,
		Logger: h.logger.With("txid", txID),
	}
	helper, err := h.factory(tc)
	if err != nil {
		return nil, ccerror.ParsingParameters(err)
	}

	result, err := fn(tc, helper, args)
	if err != nil {
		return nil, err
	}
	return Encode(result)
}
