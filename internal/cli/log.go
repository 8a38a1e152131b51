package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Generated 155 addresses (3ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports generator events as debug log lines on the context logger.
type logHooks struct{}

func (logHooks) OnEnumerateComplete(ctx context.Context, elements int, candidates uint64, survivors int, d time.Duration) {
	loggerFromContext(ctx).Debug("enumerated candidates",
		"repeaters", elements,
		"candidates", candidates,
		"survivors", survivors,
		"duration", d.Round(time.Microsecond))
}

func (logHooks) OnTick(ctx context.Context, tick, fired int) {
	loggerFromContext(ctx).Debug("tick", "d", tick, "fired", fired)
}

func (logHooks) OnRankComplete(ctx context.Context, elements, survivors int, d time.Duration) {
	loggerFromContext(ctx).Debug("ranked configurations",
		"repeaters", elements,
		"addresses", survivors,
		"duration", d.Round(time.Microsecond))
}
