package formatter

import (
	"bytes"
	"io"
	"regexp"

	"github.com/fatih/color"

	"github.com/xcollantes/loggio/core"
)

// ColorFormatter renders the same `LEVEL:[TIMESTAMP]FILE:LINE:MESSAGE`
// line as TextFormatter and wraps the level, timestamp, and file
// location tokens in ANSI styling. The level token gets its severity
// color, the timestamp is bold, and the location is cyan regardless of
// severity. With UseColors false the output is byte-identical to the
// styled output with every escape sequence stripped.
type ColorFormatter struct {
	Config
	timestamp *TimestampRenderer
	useColors bool

	levelColors map[core.Level]*color.Color
	resetColor  *color.Color
	timeColor   *color.Color
	locColor    *color.Color
}

// NewColorFormatter creates a colored line formatter. Styling is forced
// on or off by useColors; terminal detection is the caller's concern.
func NewColorFormatter(cfg Config, useColors bool) *ColorFormatter {
	f := &ColorFormatter{
		Config:    cfg,
		timestamp: cfg.renderer(),
		useColors: useColors,
		levelColors: map[core.Level]*color.Color{
			core.DebugLevel:    color.New(color.FgHiBlue),
			core.InfoLevel:     color.New(color.FgHiGreen),
			core.WarningLevel:  color.New(color.FgHiYellow),
			core.ErrorLevel:    color.New(color.FgHiRed),
			core.CriticalLevel: color.New(color.BgRed, color.FgWhite, color.Bold),
		},
		resetColor: color.New(color.Reset),
		timeColor:  color.New(color.Bold),
		locColor:   color.New(color.FgCyan),
	}

	// Per-instance enable/disable so output depends only on the flag,
	// not on whether stdout happens to be a terminal.
	all := []*color.Color{f.resetColor, f.timeColor, f.locColor}
	for _, c := range f.levelColors {
		all = append(all, c)
	}
	for _, c := range all {
		if useColors {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return f
}

// UseColors reports whether styling is applied.
func (f *ColorFormatter) UseColors() bool {
	return f.useColors
}

// levelColor returns the style for a severity; unmapped severities get
// the neutral reset style instead of failing.
func (f *ColorFormatter) levelColor(level core.Level) *color.Color {
	if c, ok := f.levelColors[level]; ok {
		return c
	}
	return f.resetColor
}

// Format formats an entry as a colored text line
func (f *ColorFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(entry, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *ColorFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

func (f *ColorFormatter) formatToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	buf.WriteString(f.levelColor(entry.Level).Sprint(entry.Level.String()))
	buf.WriteString(":[")
	buf.WriteString(f.timeColor.Sprint(f.timestamp.Render(entry.Time)))
	buf.WriteByte(']')
	buf.WriteString(f.locColor.Sprint(callerText(entry.Caller)))
	buf.WriteByte(':')
	buf.WriteString(entry.Message)
	buf.WriteByte('\n')
}

var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

// StripANSI removes every ANSI styling sequence from s. Stripping a
// decorated line reproduces the undecorated line exactly.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
