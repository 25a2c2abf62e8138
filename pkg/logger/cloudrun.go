package logger

import (
	"log/slog"
	"os"
	"time"
)

// NewCloudRunHandler returns a JSON handler whose output matches Cloud
// Logging's structured-log fields: "severity" instead of "level", "message"
// instead of "msg", RFC3339Nano timestamps. Cloud Run collects everything
// from stdout regardless of severity.
func NewCloudRunHandler(level slog.Level) slog.Handler {
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: cloudRunAttr,
	})
}

func cloudRunAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}
	switch a.Key {
	case slog.LevelKey:
		level, _ := a.Value.Any().(slog.Level)
		return slog.String("severity", mapSeverity(level))
	case slog.MessageKey:
		a.Key = "message"
	case slog.TimeKey:
		if t, ok := a.Value.Any().(time.Time); ok {
			return slog.String("time", t.Format(time.RFC3339Nano))
		}
	}
	return a
}

// Map slog levels → Cloud Logging severity
func mapSeverity(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARNING"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
