// Package formatter implements the loggio formatting pipeline.
//
// It has two halves. MessageConfig.Format is the pure message pipeline:
// it JSON-encodes positional arguments on request, interpolates them
// into the template with a small printf-style interpreter, prefixes the
// user context, and truncates. Failures in the JSON or interpolation
// stages never propagate; they produce a self-describing annotated
// message so operators can still recover the call's information.
//
// The line formatters (TextFormatter and ColorFormatter) serialize a
// core.Entry into the `LEVEL:[TIMESTAMP]FILE:LINE:MESSAGE` line format.
// Both share the TimestampRenderer, which converts instants into a
// named IANA timezone and degrades permanently to local time, with a
// single warning, when the zone name does not resolve.
//
// Formatters expose two interfaces: Formatter, which returns a []byte,
// and WriterFormatter, which writes directly to an io.Writer. Handlers
// check for WriterFormatter at construction time and prefer it when
// available, eliminating the intermediate byte slice allocation on the
// write path. Both built-in formatters use a pooled bytes.Buffer;
// buffers larger than 64 KiB are not returned to the pool so one large
// log line cannot permanently inflate memory usage.
package formatter
