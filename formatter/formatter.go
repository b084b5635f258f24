package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/xcollantes/loggio/core"
)

// Formatter defines the interface for line formatters
type Formatter interface {
	// Format formats a log entry into bytes
	Format(entry *core.Entry) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo formats a log entry and writes it directly to the writer
	FormatTo(entry *core.Entry, w io.Writer) error
}

// Config holds common line formatter configuration
type Config struct {
	// Timestamp renders the entry time. A nil renderer falls back to
	// local time with the default layout.
	Timestamp *TimestampRenderer
}

func (c Config) renderer() *TimestampRenderer {
	if c.Timestamp == nil {
		return NewTimestampRenderer("", "", nil)
	}
	return c.Timestamp
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
