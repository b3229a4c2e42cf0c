package eventlog

import (
	runtimepkg "github.com/bookable/eventlog/internal/runtime"
	configpkg "github.com/bookable/eventlog/internal/runtime/config"
	envelopepkg "github.com/bookable/eventlog/internal/runtime/envelope"
	errspkg "github.com/bookable/eventlog/internal/runtime/errors"
	loggingpkg "github.com/bookable/eventlog/internal/runtime/logging"
	transportpkg "github.com/bookable/eventlog/transport"
)

type (
	Config      = configpkg.Config
	Envelope    = envelopepkg.Envelope
	Level       = envelopepkg.Level
	Outcome     = runtimepkg.Outcome
	Option      = runtimepkg.Option
	Logger      = runtimepkg.Logger
	EventLogger = runtimepkg.EventLogger
	NoOpLogger  = runtimepkg.NoOpLogger

	Dependencies   = runtimepkg.Dependencies
	PublishMetrics = runtimepkg.PublishMetrics

	LogFields     = loggingpkg.LogFields
	ServiceLogger = loggingpkg.ServiceLogger

	ConfigurationError = errspkg.ConfigurationError
	SerializationError = errspkg.SerializationError

	Transport             = transportpkg.Transport
	TransportBuilder      = transportpkg.Builder
	TransportConfig       = transportpkg.Config
	TransportRegistry     = transportpkg.Registry
	TransportCapabilities = transportpkg.Capabilities
)

// Envelope levels.
const (
	LevelDebug   = envelopepkg.LevelDebug
	LevelInfo    = envelopepkg.LevelInfo
	LevelWarning = envelopepkg.LevelWarning
	LevelError   = envelopepkg.LevelError
)

// TimeLayout is the created_at wire format.
const TimeLayout = envelopepkg.TimeLayout

var (
	// Explicit instance construction.
	New = runtimepkg.New

	// Process-wide instance lifecycle. Init replaces any prior instance;
	// Get before Init returns a NoOpLogger.
	Init  = runtimepkg.Init
	Get   = runtimepkg.Get
	Reset = runtimepkg.Reset

	// Per-call options.
	WithData          = runtimepkg.WithData
	WithActor         = runtimepkg.WithActor
	WithCorrelationID = runtimepkg.WithCorrelationID
	WithService       = runtimepkg.WithService

	ParseLevel             = envelopepkg.ParseLevel
	ResolveConfig          = configpkg.Resolve
	CorrelationFromContext = runtimepkg.CorrelationFromContext

	// Diagnostic logging adapters.
	NewSlogServiceLogger      = loggingpkg.NewSlogServiceLogger
	NewWatermillServiceLogger = loggingpkg.NewWatermillServiceLogger
	NewWatermillAdapter       = loggingpkg.NewWatermillAdapter

	NewPublishMetrics = runtimepkg.NewPublishMetrics

	// Transport registry. Import individual transports via, for example:
	//   _ "github.com/bookable/eventlog/transport/kafka"
	DefaultTransportRegistry = transportpkg.DefaultRegistry
	RegisterTransport        = transportpkg.Register
	BuildTransport           = transportpkg.Build
	GetTransportCapabilities = transportpkg.GetCapabilities
	NewTransportRegistry     = transportpkg.NewRegistry

	ErrInvalidLevel      = errspkg.ErrInvalidLevel
	ErrPublisherRequired = errspkg.ErrPublisherRequired
	ErrTopicRequired     = errspkg.ErrTopicRequired
)
