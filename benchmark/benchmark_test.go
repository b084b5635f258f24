package benchmark

import (
	"strings"
	"testing"
	"time"

	"github.com/xcollantes/loggio"
	"github.com/xcollantes/loggio/core"
	"github.com/xcollantes/loggio/formatter"
	"github.com/xcollantes/loggio/handler"
)

// discardWriter is a no-op writer for benchmarking
type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

var benchInstant = time.Date(2023, 12, 13, 21, 20, 0, 0, time.UTC)

// newBenchLogger returns a logger writing plain text to a no-op sink.
func newBenchLogger(b *testing.B) *loggio.Logger {
	b.Helper()
	cfg := loggio.DefaultConfig()
	cfg.UseColors = false
	cfg.Output = discardWriter{}
	cfg.Clock = func() time.Time { return benchInstant }
	log, err := loggio.New(cfg)
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { _ = log.Close() })
	return log
}

func BenchmarkLoggerCreation(b *testing.B) {
	cfg := loggio.DefaultConfig()
	cfg.UseColors = false
	cfg.Output = discardWriter{}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		log, err := loggio.New(cfg)
		if err != nil {
			b.Fatal(err)
		}
		_ = log.Close()
	}
}

func BenchmarkInfoNoArgs(b *testing.B) {
	log := newBenchLogger(b)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = log.Info("test message")
	}
}

func BenchmarkInfoInterpolated(b *testing.B) {
	log := newBenchLogger(b)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = log.Info("user %s has %d items", loggio.Str("alice"), loggio.Int(42))
	}
}

func BenchmarkInfoJSONArgs(b *testing.B) {
	log := newBenchLogger(b)
	view := log.WithJSON(true)
	payload := map[string]interface{}{"key": "value", "count": 3}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = view.Info("payload: %s", loggio.Any(payload))
	}
}

func BenchmarkInfoTruncated(b *testing.B) {
	log := newBenchLogger(b)
	view := log.WithTruncateLength(100)
	long := strings.Repeat("x", 5000)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = view.Info(long)
	}
}

func BenchmarkInfoUserContext(b *testing.B) {
	log := newBenchLogger(b)
	view := log.WithUserContext(map[string]interface{}{"uid": "user123"})

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = view.Info("scoped message")
	}
}

func BenchmarkBelowLevel(b *testing.B) {
	log := newBenchLogger(b)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = log.Debug("filtered out")
	}
}

func BenchmarkWithUserContext(b *testing.B) {
	log := newBenchLogger(b)
	ctx := map[string]interface{}{"uid": "user123"}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = log.WithUserContext(ctx)
	}
}

func BenchmarkColoredOutput(b *testing.B) {
	cfg := loggio.DefaultConfig()
	cfg.UseColors = true
	cfg.Output = discardWriter{}
	cfg.Clock = func() time.Time { return benchInstant }
	log, err := loggio.New(cfg)
	if err != nil {
		b.Fatal(err)
	}
	defer log.Close()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = log.Error("colored message")
	}
}

func BenchmarkParallelInfo(b *testing.B) {
	log := newBenchLogger(b)

	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = log.Info("concurrent message")
		}
	})
}

func benchEntry() *core.Entry {
	return &core.Entry{
		Time:    benchInstant,
		Level:   core.InfoLevel,
		Message: "formatted message body",
		Caller:  core.CallerInfo{ShortFile: "bench.go", Line: 42, Defined: true},
	}
}

func BenchmarkTextFormatter(b *testing.B) {
	f := formatter.NewTextFormatter(formatter.Config{
		Timestamp: formatter.NewTimestampRenderer("UTC", formatter.DefaultDatefmt, nil),
	})
	entry := benchEntry()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := f.FormatTo(entry, discardWriter{}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkColorFormatter(b *testing.B) {
	f := formatter.NewColorFormatter(formatter.Config{
		Timestamp: formatter.NewTimestampRenderer("UTC", formatter.DefaultDatefmt, nil),
	}, true)
	entry := benchEntry()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := f.FormatTo(entry, discardWriter{}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMultiHandlerFanOut(b *testing.B) {
	m := handler.NewMultiHandler(noopHandler{}, noopHandler{}, noopHandler{})
	entry := benchEntry()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := m.Handle(entry); err != nil {
			b.Fatal(err)
		}
	}
}
