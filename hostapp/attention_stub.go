//go:build !windows

package hostapp

import "log/slog"

func focusWindow(logger *slog.Logger) {
	logger.Debug("foreground focus not supported on this platform")
}

func flashIcon(logger *slog.Logger) {
	logger.Debug("icon attention cue not supported on this platform")
}
