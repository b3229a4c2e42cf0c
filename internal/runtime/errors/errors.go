package errors

import (
	sterrors "errors"
	"fmt"
	"strings"
)

var (
	ErrConfigRequired    = sterrors.New("eventlog: configuration is required")
	ErrPublisherRequired = sterrors.New("eventlog: publisher is required")
	ErrTopicRequired     = sterrors.New("eventlog: topic is required")
	ErrEventTypeRequired = sterrors.New("eventlog: event type is required")
	ErrInvalidLevel      = sterrors.New("eventlog: level must be one of debug, info, warning, error")
)

// ConfigurationError is returned when required configuration is missing or
// the transport cannot be constructed. It is fatal to initialization: a
// caller must never obtain a live EventLogger alongside one of these.
type ConfigurationError struct {
	// Missing lists every absent required field, not just the first one,
	// so a single failure carries the full remediation list.
	Missing []string
	// Err carries a transport construction failure, if any.
	Err error
}

func (e ConfigurationError) Error() string {
	switch {
	case len(e.Missing) > 0 && e.Err != nil:
		return fmt.Sprintf("eventlog: missing required config: %s: %v", strings.Join(e.Missing, ", "), e.Err)
	case len(e.Missing) > 0:
		return fmt.Sprintf("eventlog: missing required config: %s", strings.Join(e.Missing, ", "))
	case e.Err != nil:
		return fmt.Sprintf("eventlog: invalid configuration: %v", e.Err)
	default:
		return "eventlog: invalid configuration"
	}
}

func (e ConfigurationError) Unwrap() error {
	return e.Err
}

// NewConfigurationError wraps err in a ConfigurationError. Returns nil when
// err is nil.
func NewConfigurationError(err error) error {
	if err == nil {
		return nil
	}
	return ConfigurationError{Err: err}
}

// SerializationError is returned when a caller-supplied actor or data value
// cannot be converted to the envelope's JSON-encoded string representation.
// It is the only way a logging call can fail its caller.
type SerializationError struct {
	// Field names the envelope field that could not be encoded ("actor" or
	// "data").
	Field string
	Err   error
}

func (e SerializationError) Error() string {
	return fmt.Sprintf("eventlog: cannot serialize %s: %v", e.Field, e.Err)
}

func (e SerializationError) Unwrap() error {
	return e.Err
}
