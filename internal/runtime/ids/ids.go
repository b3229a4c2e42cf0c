// Package ids generates the identifiers used across eventlog: UUIDs for
// envelope fields and ULIDs for transport message IDs.
package ids

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewUUID returns a random version-4 UUID string. Used for envelope
// event_id and generated correlation_id values, which the wire contract
// requires to be UUIDs.
func NewUUID() string {
	return uuid.NewString()
}

// NewULID returns a time-sortable ULID encoded as a 26-character string.
// Used as the transport message ID, which doubles as the messageId reported
// back to callers on a successful publish.
func NewULID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()

	id := ulid.MustNew(ulid.Timestamp(time.Now()), entropy)
	return id.String()
}
