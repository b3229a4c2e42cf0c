// Package jsoncodec centralizes JSON encoding so every envelope and payload
// in eventlog is produced by the same codec with the same semantics.
package jsoncodec

import (
	"github.com/bytedance/sonic"
)

var defaultConfig = sonic.ConfigStd

func Marshal(v any) ([]byte, error) {
	return defaultConfig.Marshal(v)
}

// MarshalString marshals v and returns the result as a string. Envelope
// actor/data fields are JSON-encoded strings, so this is the hot path.
func MarshalString(v any) (string, error) {
	b, err := defaultConfig.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func Unmarshal(data []byte, v any) error {
	return defaultConfig.Unmarshal(data, v)
}

// UnmarshalString unmarshals a JSON string, the counterpart of
// MarshalString for the double-encoded envelope fields.
func UnmarshalString(data string, v any) error {
	return defaultConfig.Unmarshal([]byte(data), v)
}

// Valid reports whether data is syntactically valid JSON.
func Valid(data []byte) bool {
	return sonic.Valid(data)
}
