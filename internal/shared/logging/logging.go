package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/samber/oops"
	slogmulti "github.com/samber/slog-multi"
)

// New builds the process logger. Human-readable logs go to console at level;
// when jsonSink is non-nil every record at level or above is also written there as JSON.
func New(console io.Writer, level slog.Leveler, jsonSink io.Writer) *slog.Logger {
	handlers := []slog.Handler{
		slog.NewTextHandler(console, &slog.HandlerOptions{Level: level}),
	}
	if jsonSink != nil {
		handlers = append(handlers, slog.NewJSONHandler(jsonSink, &slog.HandlerOptions{Level: level}))
	}

	// Fanout sends each record to every handler
	return slog.New(slogmulti.Fanout(handlers...))
}

// OpenLogFile opens path for appending JSON logs. An empty path returns a nil file.
func OpenLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, oops.With("log_file", path, "context", "failed to open log file").Wrap(err)
	}
	return f, nil
}
