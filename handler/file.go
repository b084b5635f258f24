package handler

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/xcollantes/loggio/core"
	"github.com/xcollantes/loggio/formatter"
)

// FileHandler appends log entries to a file
type FileHandler struct {
	filename        string
	file            *os.File
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	minLevel        core.Level
	mu              sync.Mutex
}

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Filename is the path to the log file
	Filename string
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// MinLevel is the minimum severity this handler accepts
	MinLevel core.Level
}

// NewFileHandler creates a new file handler. The parent directory is
// created if missing and the file is opened in append mode.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, errors.New("filename is required")
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}

	dir := filepath.Dir(cfg.Filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "creating log directory %s", dir)
	}

	file, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "opening log file %s", cfg.Filename)
	}

	h := &FileHandler{
		filename:  cfg.Filename,
		file:      file,
		formatter: cfg.Formatter,
		minLevel:  cfg.MinLevel,
	}

	// Cache WriterFormatter for zero-alloc path
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	return h, nil
}

// Handle serializes and appends a log entry
func (h *FileHandler) Handle(entry *core.Entry) error {
	if entry.Level < h.minLevel {
		return nil
	}

	if h.writerFormatter != nil {
		h.mu.Lock()
		err := h.writerFormatter.FormatTo(entry, h.file)
		h.mu.Unlock()
		return err
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	h.mu.Lock()
	_, writeErr := h.file.Write(data)
	h.mu.Unlock()
	return writeErr
}

// Close syncs and closes the log file
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.file == nil {
		return nil
	}
	if err := h.file.Sync(); err != nil {
		_ = h.file.Close()
		h.file = nil
		return errors.Wrap(err, "syncing log file")
	}
	err := h.file.Close()
	h.file = nil
	return err
}
