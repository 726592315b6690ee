package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Computed PageRank (3ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks forwards observability events to the CLI logger. Successful
// events are logged at debug level, failures as warnings.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) *logHooks {
	return &logHooks{logger: l}
}

func (h *logHooks) OnBuild(_ context.Context, nodes, edges int, d time.Duration) {
	h.logger.Debug("graph build", "words", nodes, "edges", edges, "took", d.Round(time.Microsecond))
}

func (h *logHooks) OnQueryStart(_ context.Context, query string) {
	h.logger.Debug("query start", "query", query)
}

func (h *logHooks) OnQueryComplete(_ context.Context, query string, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("query failed", "query", query, "err", err)
		return
	}
	h.logger.Debug("query done", "query", query, "took", d.Round(time.Microsecond))
}

func (h *logHooks) OnArtifactWrite(_ context.Context, name string, size int, err error) {
	if err != nil {
		h.logger.Warn("artifact write failed", "name", name, "err", err)
		return
	}
	h.logger.Debug("artifact written", "name", name, "bytes", size)
}
