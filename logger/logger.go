// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package logger

import (
	"log"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger supports structured logging with key-value pairs
type Logger interface {
	Debugw(msg string, keyValues ...interface{})
	Infow(msg string, keyValues ...interface{})
	Warnw(msg string, keyValues ...interface{})
	Errorw(msg string, keyValues ...interface{})
	Fatalw(msg string, keyValues ...interface{})

	// With returns a child logger with the given key-value pairs
	// attached to every entry
	With(keyValues ...interface{}) Logger
}

type zapLogger struct {
	sugared *zap.SugaredLogger
}

var _ Logger = (*zapLogger)(nil)

func (zl *zapLogger) Debugw(msg string, keyValues ...interface{}) {
	zl.sugared.Debugw(msg, keyValues...)
}

func (zl *zapLogger) Infow(msg string, keyValues ...interface{}) {
	zl.sugared.Infow(msg, keyValues...)
}

func (zl *zapLogger) Warnw(msg string, keyValues ...interface{}) {
	zl.sugared.Warnw(msg, keyValues...)
}

func (zl *zapLogger) Errorw(msg string, keyValues ...interface{}) {
	zl.sugared.Errorw(msg, keyValues...)
}

func (zl *zapLogger) Fatalw(msg string, keyValues ...interface{}) {
	zl.sugared.Fatalw(msg, keyValues...)
}

func (zl *zapLogger) With(keyValues ...interface{}) Logger {
	return &zapLogger{zl.sugared.With(keyValues...)}
}

// Config for Logger
type Config struct {
	Debug bool
	Level zapcore.Level
}

// New creates a production logger
func New() Logger {
	return NewWithConfig(Config{false, 0})
}

// NewWithConfig returns a new logger
func NewWithConfig(cfg Config) Logger {
	var (
		inst *zap.Logger
		err  error
	)
	if cfg.Debug {
		inst, err = zap.NewDevelopment()
	} else {
		inst, err = zap.NewProduction(zap.IncreaseLevel(cfg.Level))
	}
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	return &zapLogger{inst.Sugar()}
}

// Nop returns a logger which discards all entries
func Nop() Logger {
	return &zapLogger{zap.NewNop().Sugar()}
}

var global Logger
var mtx sync.RWMutex

// Set replaces the global logger
func Set(l Logger) {
	mtx.Lock()
	defer mtx.Unlock()
	global = l
}

// I returns the global Logger
func I() Logger {
	mtx.RLock()
	defer mtx.RUnlock()
	if global == nil {
		log.Fatalf("logger isn't initialized")
	}
	return global
}
