// Package loggio is a structured logging facility with colored terminal
// rendering, timezone-aware timestamps, message truncation, JSON
// rendering of positional arguments, and user-context prefixing.
//
// A Logger is an explicit instance; there is no package-level global.
// Construct one from a Config and pass it where it is needed:
//
//	log, err := loggio.New(loggio.DefaultConfig())
//	if err != nil {
//		// unwritable file sink path, etc.
//	}
//	defer log.Close()
//
//	log.Info("Processing item %s with priority %d",
//		loggio.Str(itemID), loggio.Int(priority))
//
// Per-call options are derived views, cheap to create and safe to
// discard:
//
//	log.WithUserContext(map[string]interface{}{"uid": "user123"}).
//		Info("Action completed")
//
//	log.WithJSON(true).Info("Received data %s", loggio.Any(payload))
//
//	log.WithTruncate(false).Info(veryLongMessage)
//
// Formatting failures (argument/template mismatch, JSON encoding
// errors) never make a log call fail; the message degrades to
// self-describing text. Sink I/O failures are returned from the log
// call so the application can react.
//
// Reconfigure changes any subset of the configuration in place:
//
//	err = log.Reconfigure(
//		loggio.WithLevel(core.DebugLevel),
//		loggio.WithTimezone("America/New_York"),
//	)
package loggio
