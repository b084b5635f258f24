package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xcollantes/loggio/core"
)

func testEntry(level core.Level) *core.Entry {
	return &core.Entry{
		Time:    time.Date(2023, 12, 13, 21, 20, 0, 0, time.UTC),
		Level:   level,
		Message: "test message",
		Caller:  core.CallerInfo{ShortFile: "app.go", Line: 42, Defined: true},
	}
}

func allLevels() []core.Level {
	return []core.Level{
		core.DebugLevel,
		core.InfoLevel,
		core.WarningLevel,
		core.ErrorLevel,
		core.CriticalLevel,
	}
}

func TestColorFormatterStylesEveryLevel(t *testing.T) {
	f := NewColorFormatter(Config{}, true)

	for _, level := range allLevels() {
		data, err := f.Format(testEntry(level))
		require.NoError(t, err)
		assert.Contains(t, string(data), "\x1b[", "level %s should carry styling", level)
		assert.Contains(t, string(data), level.String())
	}
}

func TestColorFormatterUnknownLevelDoesNotFail(t *testing.T) {
	f := NewColorFormatter(Config{}, true)

	data, err := f.Format(testEntry(core.Level(99)))
	require.NoError(t, err)
	assert.Contains(t, string(data), "UNKNOWN")
	assert.Contains(t, string(data), "test message")
}

func TestColorFormatterRoundTrip(t *testing.T) {
	// Decorate-then-strip must reproduce the undecorated line exactly,
	// for every severity.
	colored := NewColorFormatter(Config{}, true)
	plain := NewColorFormatter(Config{}, false)

	for _, level := range allLevels() {
		styled, err := colored.Format(testEntry(level))
		require.NoError(t, err)
		unstyled, err := plain.Format(testEntry(level))
		require.NoError(t, err)

		assert.Equal(t, string(unstyled), StripANSI(string(styled)))
	}
}

func TestColorFormatterDisabledIsFullyUnstyled(t *testing.T) {
	f := NewColorFormatter(Config{}, false)

	for _, level := range allLevels() {
		data, err := f.Format(testEntry(level))
		require.NoError(t, err)
		assert.NotContains(t, string(data), "\x1b[")
	}
}

func TestColorFormatterMatchesPlainLineFormat(t *testing.T) {
	// With colors off the colored formatter and the text formatter
	// produce identical bytes.
	colored := NewColorFormatter(Config{}, false)
	text := NewTextFormatter(Config{})

	for _, level := range allLevels() {
		a, err := colored.Format(testEntry(level))
		require.NoError(t, err)
		b, err := text.Format(testEntry(level))
		require.NoError(t, err)
		assert.Equal(t, string(b), string(a))
	}
}

func TestColorFormatterMessageTextIsNotStyled(t *testing.T) {
	f := NewColorFormatter(Config{}, true)

	entry := testEntry(core.InfoLevel)
	data, err := f.Format(entry)
	require.NoError(t, err)

	// The message token stays raw; only level, timestamp, and location
	// are wrapped.
	line := string(data)
	idx := strings.LastIndexByte(line, ':')
	require.Greater(t, idx, 0)
	assert.Equal(t, "test message\n", line[idx+1:])
}

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "plain", StripANSI("plain"))
	assert.Equal(t, "red text", StripANSI("\x1b[91mred\x1b[0m text"))
	assert.Equal(t, "CRITICAL", StripANSI("\x1b[41;37;1mCRITICAL\x1b[0m"))
}
