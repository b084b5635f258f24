// Package handler implements the sinks that receive rendered log lines.
//
// ConsoleHandler writes to a terminal stream (stderr by default) with
// the colored line formatter; FileHandler appends plain lines to a
// file; MultiHandler fans out to any number of children. All writes are
// synchronous and serialized by a per-handler mutex: a slow sink slows
// the calling goroutine directly, and write failures propagate to the
// caller of the logging call.
package handler
