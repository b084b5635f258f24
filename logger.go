package loggio

import (
	"io"
	"sync"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/xcollantes/loggio/core"
	"github.com/xcollantes/loggio/formatter"
	"github.com/xcollantes/loggio/handler"
)

// Config is the full configuration surface of a Logger. Start from
// DefaultConfig and override fields; a zero Config disables every
// output and every default.
type Config struct {
	// Name identifies the logger. Informational only.
	Name string
	// Level is the minimum severity the logger emits.
	Level core.Level
	// Terminal enables the stream sink.
	Terminal bool
	// FileoutPath enables the file sink at the given path when non-empty.
	FileoutPath string
	// JSONFormat pretty-prints positional arguments as JSON by default.
	JSONFormat bool
	// Truncate enables truncation of long messages by default.
	Truncate bool
	// TruncateLength is the default maximum message length.
	TruncateLength int
	// UseColors styles terminal output with ANSI colors.
	UseColors bool
	// Timezone is an optional IANA zone name for timestamps, e.g.
	// "America/New_York". Empty means local time. An unresolvable name
	// degrades to local time with a one-time warning.
	Timezone string
	// Datefmt overrides the timestamp layout (Go reference layout).
	Datefmt string

	// Output overrides the terminal stream (default os.Stderr).
	Output io.Writer
	// Diag receives timezone resolution warnings (default os.Stderr).
	Diag io.Writer
	// Clock supplies the current instant (default time.Now).
	Clock func() time.Time
}

// DefaultConfig returns the stock configuration: INFO level, terminal
// sink on, colors on, truncation on at 5000 characters, local time.
func DefaultConfig() Config {
	return Config{
		Level:          core.InfoLevel,
		Terminal:       true,
		Truncate:       true,
		TruncateLength: 5000,
		UseColors:      true,
	}
}

// callOptions are the per-call overrides carried by derived views.
type callOptions struct {
	userContext    map[string]interface{}
	jsonFormat     *bool
	truncate       *bool
	truncateLength *int
}

// state is the mutable configuration shared by a Logger and all views
// derived from it. Reconfigure swaps it atomically under the mutex.
type state struct {
	mu      sync.Mutex
	cfg     Config
	handler handler.Handler
	msgcfg  formatter.MessageConfig
	clock   func() time.Time
}

// Logger is an explicit logging instance. It is cheap to copy through
// the With* methods: derived views share the underlying handlers and
// configuration and only carry per-call overrides.
type Logger struct {
	state *state
	opts  callOptions
}

// New creates a Logger from the configuration. Opening the file sink
// can fail; that error is returned rather than deferred to the first
// log call.
func New(cfg Config) (*Logger, error) {
	h, err := buildHandler(cfg)
	if err != nil {
		return nil, err
	}

	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	return &Logger{
		state: &state{
			cfg:     cfg,
			handler: h,
			msgcfg:  messageConfig(cfg),
			clock:   clock,
		},
	}, nil
}

func messageConfig(cfg Config) formatter.MessageConfig {
	return formatter.MessageConfig{
		Truncate:       cfg.Truncate,
		TruncateLength: cfg.TruncateLength,
		JSONFormat:     cfg.JSONFormat,
	}
}

// buildHandler assembles the sink set for a configuration. Each sink
// gets its own timestamp renderer so the warn-once degradation of an
// invalid timezone stays per renderer instance.
func buildHandler(cfg Config) (handler.Handler, error) {
	var handlers []handler.Handler

	if cfg.FileoutPath != "" {
		fh, err := handler.NewFileHandler(handler.FileConfig{
			Filename: cfg.FileoutPath,
			Formatter: formatter.NewTextFormatter(formatter.Config{
				Timestamp: formatter.NewTimestampRenderer(cfg.Timezone, cfg.Datefmt, cfg.Diag),
			}),
		})
		if err != nil {
			return nil, err
		}
		handlers = append(handlers, fh)
	}

	if cfg.Terminal {
		handlers = append(handlers, handler.NewConsoleHandler(handler.ConsoleConfig{
			Writer: cfg.Output,
			Formatter: formatter.NewColorFormatter(formatter.Config{
				Timestamp: formatter.NewTimestampRenderer(cfg.Timezone, cfg.Datefmt, cfg.Diag),
			}, cfg.UseColors),
		}))
	}

	switch len(handlers) {
	case 0:
		return nil, nil
	case 1:
		return handlers[0], nil
	default:
		return handler.NewMultiHandler(handlers...), nil
	}
}

// Option mutates a Config during Reconfigure. Unmentioned fields keep
// their current values.
type Option func(*Config)

// WithName sets the logger name.
func WithName(name string) Option { return func(c *Config) { c.Name = name } }

// WithLevel sets the minimum severity.
func WithLevel(level core.Level) Option { return func(c *Config) { c.Level = level } }

// WithTerminal enables or disables the stream sink.
func WithTerminal(on bool) Option { return func(c *Config) { c.Terminal = on } }

// WithFileoutPath sets the file sink path; empty disables the file sink.
func WithFileoutPath(path string) Option { return func(c *Config) { c.FileoutPath = path } }

// WithJSONFormat sets the JSON-arguments default.
func WithJSONFormat(on bool) Option { return func(c *Config) { c.JSONFormat = on } }

// WithTruncate sets the truncation default.
func WithTruncate(on bool) Option { return func(c *Config) { c.Truncate = on } }

// WithTruncateLength sets the default maximum message length.
func WithTruncateLength(n int) Option { return func(c *Config) { c.TruncateLength = n } }

// WithUseColors enables or disables ANSI styling of terminal output.
func WithUseColors(on bool) Option { return func(c *Config) { c.UseColors = on } }

// WithTimezone sets the IANA timestamp zone; empty restores local time.
func WithTimezone(zone string) Option { return func(c *Config) { c.Timezone = zone } }

// WithDatefmt sets the timestamp layout.
func WithDatefmt(layout string) Option { return func(c *Config) { c.Datefmt = layout } }

// Reconfigure applies the options to the current configuration and
// rebuilds the sinks. Concurrent log calls observe either the old or
// the new configuration, never a mix. A fresh timezone renderer is
// built, so a previously degraded zone setting gets a new attempt.
func (l *Logger) Reconfigure(opts ...Option) error {
	st := l.state
	st.mu.Lock()
	defer st.mu.Unlock()

	cfg := st.cfg
	for _, opt := range opts {
		opt(&cfg)
	}

	h, err := buildHandler(cfg)
	if err != nil {
		return err
	}

	old := st.handler
	st.cfg = cfg
	st.handler = h
	st.msgcfg = messageConfig(cfg)

	if old != nil {
		return errors.Wrap(old.Close(), "closing previous sinks")
	}
	return nil
}

// Config returns a copy of the current configuration.
func (l *Logger) Config() Config {
	st := l.state
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.cfg
}

// Level returns the current minimum severity.
func (l *Logger) Level() core.Level {
	st := l.state
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.cfg.Level
}

// LevelName returns the current minimum severity as a string.
func (l *Logger) LevelName() string {
	return l.Level().String()
}

// Name returns the logger identifier.
func (l *Logger) Name() string {
	st := l.state
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.cfg.Name
}

// Close closes the logger's sinks.
func (l *Logger) Close() error {
	st := l.state
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.handler == nil {
		return nil
	}
	err := st.handler.Close()
	st.handler = nil
	return err
}

// WithUserContext returns a view whose messages are prefixed with the
// context's "uid" value. A context without a "uid" key leaves messages
// unchanged.
func (l *Logger) WithUserContext(ctx map[string]interface{}) *Logger {
	view := *l
	view.opts.userContext = ctx
	return &view
}

// WithJSON returns a view overriding the JSON-arguments default for
// its calls.
func (l *Logger) WithJSON(on bool) *Logger {
	view := *l
	view.opts.jsonFormat = &on
	return &view
}

// WithTruncate returns a view overriding the truncation default for
// its calls.
func (l *Logger) WithTruncate(on bool) *Logger {
	view := *l
	view.opts.truncate = &on
	return &view
}

// WithTruncateLength returns a view overriding the maximum message
// length for its calls.
func (l *Logger) WithTruncateLength(n int) *Logger {
	view := *l
	view.opts.truncateLength = &n
	return &view
}

// Debug logs a debug message
func (l *Logger) Debug(template string, args ...core.Arg) error {
	return l.log(core.DebugLevel, template, args)
}

// Info logs an info message
func (l *Logger) Info(template string, args ...core.Arg) error {
	return l.log(core.InfoLevel, template, args)
}

// Warning logs a warning message
func (l *Logger) Warning(template string, args ...core.Arg) error {
	return l.log(core.WarningLevel, template, args)
}

// Error logs an error message
func (l *Logger) Error(template string, args ...core.Arg) error {
	return l.log(core.ErrorLevel, template, args)
}

// Critical logs a critical message
func (l *Logger) Critical(template string, args ...core.Arg) error {
	return l.log(core.CriticalLevel, template, args)
}

// Log logs a message at the given severity
func (l *Logger) Log(level core.Level, template string, args ...core.Arg) error {
	return l.log(level, template, args)
}

// callerSkip reaches the caller of the exported logging method:
// GetCaller, log, and the leveled method itself sit in between.
const callerSkip = 3

func (l *Logger) log(level core.Level, template string, args []core.Arg) error {
	st := l.state
	st.mu.Lock()
	h := st.handler
	msgcfg := st.msgcfg
	minLevel := st.cfg.Level
	clock := st.clock
	st.mu.Unlock()

	if h == nil || level < minLevel {
		return nil
	}

	message := msgcfg.Format(formatter.Request{
		Template:       template,
		Args:           args,
		UserContext:    l.opts.userContext,
		JSONFormat:     l.opts.jsonFormat,
		Truncate:       l.opts.truncate,
		TruncateLength: l.opts.truncateLength,
	})

	entry := core.GetEntry()
	entry.Time = clock()
	entry.Level = level
	entry.Message = message
	entry.Caller = core.GetCaller(callerSkip)

	err := h.Handle(entry)
	core.PutEntry(entry)
	return err
}
