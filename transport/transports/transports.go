// Package transports registers every built-in transport with the default
// registry. Import it for the full matrix, or import individual transport
// packages to keep broker drivers out of your binary:
//
//	import _ "github.com/bookable/eventlog/transport/transports"
package transports

import (
	"github.com/bookable/eventlog/transport/file"
	"github.com/bookable/eventlog/transport/jetstream"
	"github.com/bookable/eventlog/transport/nats"
	"github.com/bookable/eventlog/transport/rabbitmq"
	"github.com/bookable/eventlog/transport/sns"

	// Self-registering transports.
	_ "github.com/bookable/eventlog/transport/channel"
	_ "github.com/bookable/eventlog/transport/http"
	_ "github.com/bookable/eventlog/transport/kafka"
	_ "github.com/bookable/eventlog/transport/postgres"
	_ "github.com/bookable/eventlog/transport/sqlite"
)

func init() {
	file.Register()
	jetstream.Register()
	nats.Register()
	rabbitmq.Register()
	sns.Register()
}
