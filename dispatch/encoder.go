// Copyright (C) 2021 Aung Maw
// Licensed under the GNU General Public License v3.0

package dispatch

import (
	"encoding/json"

	"github.com/thuyaaung/ccdispatch/param"
)

// Payloader lets a result value supply its own payload representation
// before serialization
type Payloader interface {
	Payload() interface{}
}

// Encode normalizes an operation's return value into a wire payload.
// Byte slices pass through unchanged, absent values yield an empty
// payload, everything else is normalized and JSON encoded.
func Encode(v interface{}) ([]byte, error) {
	switch val := v.(type) {
	case nil:
		return []byte{}, nil
	case []byte:
		return val, nil
	}
	return json.Marshal(normalize(v))
}

func normalize(v interface{}) interface{} {
	switch val := v.(type) {
	case param.Value:
		return normalize(val.Interface())
	case Payloader:
		return normalize(val.Payload())
	}
	return v
}
