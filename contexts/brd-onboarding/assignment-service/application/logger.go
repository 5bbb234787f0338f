package application

import "log/slog"

// ResolveLogger keeps use-cases nil-safe when a logger is not injected.
func ResolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
