package logger

import "log/slog"

// New builds a logger from a textual level ("debug", "info", "warn",
// "error") and a handler constructor. Unknown or empty levels fall back
// to info.
func New(level string, handler func(level slog.Level) slog.Handler) *slog.Logger {
	return slog.New(handler(parseLevel(level)))
}

func parseLevel(raw string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelInfo
	}
	return level
}
