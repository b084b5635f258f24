package formatter

import (
	"fmt"
	"io"
	"os"
	"time"
)

// DefaultDatefmt is the timestamp layout used when no explicit layout
// is configured: the original `YYYY-MM-DD HH:MM:SS` line format.
const DefaultDatefmt = "2006-01-02 15:04:05"

// TimestampRenderer converts an instant into its textual form,
// optionally converted into a named IANA timezone.
//
// Zone resolution is lazy and happens at most once: an unresolvable
// zone name emits a single warning on the diagnostic writer, the stored
// name is cleared, and every later call renders local time without
// retrying. The failure is never surfaced to the caller.
type TimestampRenderer struct {
	zone    string
	loc     *time.Location
	datefmt string
	diag    io.Writer
}

// NewTimestampRenderer creates a renderer for the given zone name and
// layout. An empty zone means local time; an empty datefmt selects
// DefaultDatefmt for local time and RFC 3339 (with zone offset) for
// zone-converted output. A nil diag defaults to os.Stderr.
func NewTimestampRenderer(zone, datefmt string, diag io.Writer) *TimestampRenderer {
	if diag == nil {
		diag = os.Stderr
	}
	return &TimestampRenderer{
		zone:    zone,
		datefmt: datefmt,
		diag:    diag,
	}
}

// Render formats the instant. Rendering the same instant with the same
// resolved zone always yields the same text.
func (r *TimestampRenderer) Render(t time.Time) string {
	if r.zone != "" && r.loc == nil {
		loc, err := time.LoadLocation(r.zone)
		if err != nil {
			fmt.Fprintf(r.diag, "WARNING: Invalid timezone %q. Falling back to local time.\n", r.zone)
			r.zone = ""
		} else {
			r.loc = loc
		}
	}

	if r.loc != nil {
		layout := r.datefmt
		if layout == "" {
			layout = time.RFC3339
		}
		return t.In(r.loc).Format(layout)
	}

	layout := r.datefmt
	if layout == "" {
		layout = DefaultDatefmt
	}
	return t.Format(layout)
}

// Zone returns the configured zone name, or the empty string when none
// is set or resolution has failed.
func (r *TimestampRenderer) Zone() string {
	return r.zone
}
