// Package sqlite provides a SQLite sink transport for eventlog. Events are
// inserted into a local table rather than handed to a broker, which suits
// development and offline capture; the table mirrors the warehouse shape
// downstream ingestion writes into.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/bookable/eventlog/transport"
)

// TransportName is the name used to register this transport.
const TransportName = "sqlite"

// DefaultFilePath is used when no database file is configured.
const DefaultFilePath = "events.db"

func init() {
	transport.RegisterWithCapabilities(TransportName, Build, transport.SQLiteCapabilities)
}

// Build creates a new SQLite sink transport.
func Build(ctx context.Context, cfg transport.Config, logger watermill.LoggerAdapter) (transport.Transport, error) {
	filePath := cfg.GetSQLiteFile()
	if filePath == "" {
		filePath = DefaultFilePath
	}

	sink, err := New(filePath, logger)
	if err != nil {
		return transport.Transport{}, err
	}

	return transport.Transport{Publisher: sink}, nil
}

// Sink writes published events into a SQLite table.
type Sink struct {
	db     *sql.DB
	logger watermill.LoggerAdapter
}

// New opens (or creates) the database file and ensures the events table
// exists. Use ":memory:" for an in-memory database.
func New(filePath string, logger watermill.LoggerAdapter) (*Sink, error) {
	db, err := sql.Open("sqlite3", filePath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &Sink{db: db, logger: logger}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *Sink) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		uuid TEXT NOT NULL UNIQUE,
		topic TEXT NOT NULL,
		payload TEXT NOT NULL,
		metadata TEXT,
		published_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_events_topic ON events(topic, published_at);
	`
	_, err := s.db.Exec(schema)
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
			`INSERT INTO events (uuid, topic, payload, metadata) VALUES (?, ?, ?, ?)`,
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
	return transport.SQLiteCapabilities
}
