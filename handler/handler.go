package handler

import "github.com/xcollantes/loggio/core"

// Handler is a sink for fully rendered log entries. Handle is
// synchronous: write errors are returned to the caller of the logging
// call rather than swallowed, so slow or failing sinks are visible to
// the application.
type Handler interface {
	// Handle serializes and writes a log entry
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}
