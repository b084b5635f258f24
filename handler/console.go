package handler

import (
	"io"
	"os"
	"sync"

	"github.com/xcollantes/loggio/core"
	"github.com/xcollantes/loggio/formatter"
)

// ConsoleHandler writes log entries to a terminal stream
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	minLevel        core.Level
	mu              sync.Mutex
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: ColorFormatter with colors enabled)
	Formatter formatter.Formatter
	// MinLevel is the minimum severity this handler accepts
	MinLevel core.Level
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewColorFormatter(formatter.Config{}, true)
	}

	h := &ConsoleHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		minLevel:  cfg.MinLevel,
	}

	// Cache WriterFormatter for zero-alloc path
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	return h
}

// Handle serializes and writes a log entry
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	if entry.Level < h.minLevel {
		return nil
	}

	if h.writerFormatter != nil {
		h.mu.Lock()
		err := h.writerFormatter.FormatTo(entry, h.writer)
		h.mu.Unlock()
		return err
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	h.mu.Lock()
	_, writeErr := h.writer.Write(data)
	h.mu.Unlock()
	return writeErr
}

// Close closes the handler. The underlying stream is not owned by the
// handler and stays open.
func (h *ConsoleHandler) Close() error {
	return nil
}
