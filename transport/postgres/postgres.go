// Package postgres provides a PostgreSQL sink transport for eventlog.
// Events are inserted into an events table, giving deployments without a
// message broker a durable, queryable destination with the warehouse shape
// downstream ingestion expects.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/bookable/eventlog/transport"
)

// TransportName is the name used to register this transport.
const TransportName = "postgres"

func init() {
	transport.RegisterWithCapabilities(TransportName, Build, transport.PostgresCapabilities)
}

// Build creates a new PostgreSQL sink transport.
func Build(ctx context.Context, cfg transport.Config, logger watermill.LoggerAdapter) (transport.Transport, error) {
	url := cfg.GetPostgresURL()
	if url == "" {
		return transport.Transport{}, errors.New("postgres: URL is required")
	}

	sink, err := New(ctx, url, logger)
	if err != nil {
		return transport.Transport{}, err
	}

	return transport.Transport{Publisher: sink}, nil
}

// Sink writes published events into a PostgreSQL table.
type Sink struct {
	db     *sql.DB
	logger watermill.LoggerAdapter
}

// New connects to the database and ensures the events table exists.
func New(ctx context.Context, url string, logger watermill.LoggerAdapter) (*Sink, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open PostgreSQL connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to reach PostgreSQL: %w", err)
	}

	s := &Sink{db: db, logger: logger}
	if err := s.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *Sink) initSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS events (
		id BIGSERIAL PRIMARY KEY,
		uuid TEXT NOT NULL UNIQUE,
		topic TEXT NOT NULL,
		payload JSONB NOT NULL,
		metadata JSONB,
		published_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE INDEX IF NOT EXISTS idx_events_topic ON events(topic, published_at);
	`
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// Publish inserts one row per message.
func (s *Sink) Publish(topic string, messages ...*message.Message) error {
	for _, msg := range messages {
		metadata, err := json.Marshal(msg.Metadata)
		if err != nil {
			return err
		}

		_, err = s.db.Exec(
			`INSERT INTO events (uuid, topic, payload, metadata) VALUES ($1, $2, $3, $4)`,
			msg.UUID, topic, string(msg.Payload), string(metadata),
		)
		if err != nil {
			return fmt.Errorf("failed to insert event: %w", err)
		}
	}
	return nil
}

// Close closes the database.
func (s *Sink) Close() error {
	return s.db.Close()
}

// Capabilities returns the capabilities of this transport.
func Capabilities() transport.Capabilities {
	return transport.PostgresCapabilities
}
