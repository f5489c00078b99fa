// Package hostapp implements the dialogs.Host capability on top of the
// operating system: app identity, window attention and process lifecycle.
package hostapp

import (
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Config controls the app handle. Every field is optional: Name falls back
// to the executable name, BasePath to the platform Documents directory and
// Logger to slog.Default.
type Config struct {
	Name     string
	BasePath string
	Logger   *slog.Logger
}

// App is the process-wide application handle.
type App struct {
	name     string
	basePath string
	logger   *slog.Logger
	exit     func(code int)
}

// New creates the application handle.
func New(cfg Config) *App {
	name := cfg.Name
	if name == "" {
		name = executableName()
	}
	base := cfg.BasePath
	if base == "" {
		base = DefaultBasePath()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &App{name: name, basePath: base, logger: logger, exit: os.Exit}
}

// DefaultBasePath is the platform Documents directory, or the user's home
// when the platform does not define one.
func DefaultBasePath() string {
	if d := xdg.UserDirs.Documents; d != "" {
		return d
	}
	return xdg.Home
}

func executableName() string {
	exe, err := os.Executable()
	if err != nil {
		return "Application"
	}
	base := filepath.Base(exe)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Name returns the application's display name.
func (a *App) Name() string { return a.name }

// BasePath returns the default directory for file dialogs.
func (a *App) BasePath() string { return a.basePath }

// Focus brings the application's window to the foreground where the
// platform supports it.
func (a *App) Focus() { focusWindow(a.logger) }

// BounceIcon plays the platform's critical-attention cue on the app icon
// where one exists.
func (a *App) BounceIcon() { flashIcon(a.logger) }

// Relaunch starts a fresh copy of the current executable with the same
// arguments. The new instance is not waited on.
func (a *App) Relaunch() error {
	exe, err := os.Executable()
	if err != nil {
		return err
	}
	cmd := exec.Command(exe, os.Args[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return err
	}
	a.logger.Info("relaunched application", "exe", exe, "pid", cmd.Process.Pid)
	return nil
}

// Quit terminates the current process.
func (a *App) Quit() {
	a.logger.Info("quitting application")
	a.exit(0)
}
