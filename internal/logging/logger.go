package logging

import (
	"log/slog"
	"os"
	"strings"
)

// ParseLevel maps a LOG_LEVEL value to a slog level. Unknown values
// fall back to info so a typo never silences the logs.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// StdoutHandler builds the JSON stdout handler the app logs through,
// both standalone at boot and as the console sink of the fan-out.
func StdoutHandler(level slog.Level) slog.Handler {
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
}

// Setup installs the global stdout logger and returns the level it
// runs at, so later handlers can share it.
func Setup(level string) slog.Level {
	lvl := ParseLevel(level)
	slog.SetDefault(slog.New(StdoutHandler(lvl)))
	return lvl
}
