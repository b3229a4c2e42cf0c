// Package envelope defines the canonical event record and its builder.
//
// The envelope is a cross-language wire contract: a JSON object with exactly
// nine fields, where actor and data are JSON-encoded strings (a JSON string
// whose content is itself JSON). Downstream analytical ingestion depends on
// that double encoding, so it holds regardless of caller input shape.
package envelope

import (
	"time"

	configpkg "github.com/bookable/eventlog/internal/runtime/config"
	errspkg "github.com/bookable/eventlog/internal/runtime/errors"
	idspkg "github.com/bookable/eventlog/internal/runtime/ids"
	"github.com/bookable/eventlog/internal/runtime/jsoncodec"
)

// Level is the severity of a logged event.
type Level string

const (
	LevelDebug   Level = "debug"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Valid reports whether l is one of the four enumerated levels.
func (l Level) Valid() bool {
	switch l {
	case LevelDebug, LevelInfo, LevelWarning, LevelError:
		return true
	}
	return false
}

func (l Level) String() string { return string(l) }

// ParseLevel converts a raw string into a Level, rejecting anything outside
// the enumeration. An unrecognized level is a programmer error; only the
// generic log entry point can hit it, since the leveled convenience methods
// hardcode valid levels.
func ParseLevel(raw string) (Level, error) {
	l := Level(raw)
	if !l.Valid() {
		return "", errspkg.ErrInvalidLevel
	}
	return l, nil
}

// TimeLayout is the fixed created_at format: ISO-8601 UTC with microsecond
// precision and a literal Z suffix, matching every other language binding.
const TimeLayout = "2006-01-02T15:04:05.000000Z"

// Envelope is the unit of record: one logged event in the agreed schema.
// Immutable once built; adding top-level fields is a contract revision.
type Envelope struct {
	EventID       string `json:"event_id"`
	CorrelationID string `json:"correlation_id"`
	Service       string `json:"service"`
	EventType     string `json:"event_type"`
	Level         string `json:"level"`
	Environment   string `json:"environment"`
	CreatedAt     string `json:"created_at"`
	// Actor and Data are always JSON-encoded strings, never embedded raw
	// structures. "{}" when the caller supplies nothing.
	Actor string `json:"actor"`
	Data  string `json:"data"`
}

// Fields carries the caller-controlled inputs of one logging call. Data and
// Actor accept anything the JSON codec can encode; nil means empty.
type Fields struct {
	EventType     string
	Level         Level
	Data          any
	Actor         any
	CorrelationID string
	Service       string
}

// Build constructs an Envelope from the call fields and resolved config.
// Pure apart from ID/timestamp generation: it never touches the network and
// can only fail on non-encodable Data or Actor values.
func Build(cfg *configpkg.Config, f Fields) (Envelope, error) {
	data, err := encodeField("data", f.Data)
	if err != nil {
		return Envelope{}, err
	}
	actor, err := encodeField("actor", f.Actor)
	if err != nil {
		return Envelope{}, err
	}

	service := f.Service
	if service == "" {
		service = cfg.ServiceName
	}
	correlationID := f.CorrelationID
	if correlationID == "" {
		correlationID = idspkg.NewUUID()
	}

	return Envelope{
		EventID:       idspkg.NewUUID(),
		CorrelationID: correlationID,
		Service:       service,
		EventType:     f.EventType,
		Level:         f.Level.String(),
		Environment:   cfg.Environment,
		CreatedAt:     time.Now().UTC().Format(TimeLayout),
		Actor:         actor,
		Data:          data,
	}, nil
}

func encodeField(name string, v any) (string, error) {
	if v == nil {
		return "{}", nil
	}
	encoded, err := jsoncodec.MarshalString(v)
	if err != nil {
		return "", errspkg.SerializationError{Field: name, Err: err}
	}
	return encoded, nil
}
