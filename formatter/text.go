package formatter

import (
	"bytes"
	"io"
	"strconv"

	"github.com/xcollantes/loggio/core"
)

// TextFormatter renders entries as plain `LEVEL:[TIMESTAMP]FILE:LINE:MESSAGE`
// lines. It is the formatter used for file output, where color codes
// would only get in the way.
type TextFormatter struct {
	Config
	timestamp *TimestampRenderer
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	return &TextFormatter{Config: cfg, timestamp: cfg.renderer()}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(entry, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// formatToBuffer writes the formatted entry into the given buffer
func (f *TextFormatter) formatToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	buf.WriteString(entry.Level.String())
	buf.WriteString(":[")
	buf.WriteString(f.timestamp.Render(entry.Time))
	buf.WriteByte(']')
	buf.WriteString(callerText(entry.Caller))
	buf.WriteByte(':')
	buf.WriteString(entry.Message)
	buf.WriteByte('\n')
}

// callerText renders the FILE:LINE token of the line format.
func callerText(caller core.CallerInfo) string {
	file := caller.ShortFile
	if file == "" {
		file = "???"
	}
	return file + ":" + strconv.Itoa(caller.Line)
}
