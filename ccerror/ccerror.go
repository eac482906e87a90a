// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package ccerror

import (
	"encoding/json"
	"fmt"
)

// Kind classifies a chaincode failure
type Kind string

const (
	KindMigrationPathNotDefined Kind = "MigrationPathNotDefined"
	KindUnknownFunction         Kind = "UnknownFunction"
	KindParsingParameters       Kind = "ParsingParametersError"
	KindUnknown                 Kind = "UnknownError"
	KindMigrationConflict       Kind = "MigrationConflict"
)

var messages = map[Kind]string{
	KindMigrationPathNotDefined: "migration path is not defined for this handler",
	KindUnknownFunction:         "the requested function is not found on this handler",
	KindParsingParameters:       "failed to parse invocation parameters",
	KindUnknown:                 "unknown error during invocation",
	KindMigrationConflict:       "another migration run is already in progress",
}

// Error is a typed chaincode failure. Kind selects a fixed message,
// Data carries structured diagnostic context. Values are immutable
// after construction.
type Error struct {
	Kind    Kind                   `json:"kind"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

var _ error = (*Error)(nil)

func New(kind Kind, data map[string]interface{}) *Error {
	msg, ok := messages[kind]
	if !ok {
		msg = messages[KindUnknown]
	}
	return &Error{
		Kind:    kind,
		Message: msg,
		Data:    data,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Serialize encodes the error into its canonical wire form.
// A caller can recover kind, message and data from the payload.
func (e *Error) Serialize() []byte {
	b, err := json.Marshal(e)
	if err != nil {
		// Data values are plain strings in practice; a marshal failure
		// still must produce a readable payload for the fail channel.
		return []byte(fmt.Sprintf(`{"kind":"%s","message":"%s","data":{}}`,
			KindUnknown, messages[KindUnknown]))
	}
	return b
}

// Deserialize decodes a serialized chaincode error
func Deserialize(b []byte) (*Error, error) {
	e := new(Error)
	if err := json.Unmarshal(b, e); err != nil {
		return nil, err
	}
	return e, nil
}

// UnknownFunction reports an operation name absent from the handler
func UnknownFunction(fn string) *Error {
	return New(KindUnknownFunction, map[string]interface{}{"fn": fn})
}

// ParsingParameters wraps a parameter or context construction failure,
// preserving only the originating message
func ParsingParameters(cause error) *Error {
	return New(KindParsingParameters, map[string]interface{}{"message": cause.Error()})
}

// Unknown wraps an untyped failure, discarding everything but its message
func Unknown(cause error) *Error {
	return New(KindUnknown, map[string]interface{}{"message": cause.Error()})
}

// MigrationPathNotDefined reports a handler without a migrations path
func MigrationPathNotDefined() *Error {
	return New(KindMigrationPathNotDefined, map[string]interface{}{})
}

// MigrationConflict reports a rejected concurrent migration run
func MigrationConflict() *Error {
	return New(KindMigrationConflict, map[string]interface{}{})
}

// From converts any error into a chaincode error. Errors which are
// already typed pass through unchanged.
func From(err error) *Error {
	if ce, ok := err.(*Error); ok {
		return ce
	}
	return Unknown(err)
}
