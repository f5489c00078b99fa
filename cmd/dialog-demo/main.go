package main

import (
	"errors"
	"flag"
	"fmt"

	"desktop-dialogs/clipboard"
	"desktop-dialogs/config"
	"desktop-dialogs/dialogs"
	"desktop-dialogs/hostapp"
	"desktop-dialogs/hotkey"
	"desktop-dialogs/logutil"
	"desktop-dialogs/nativedialog"
	"desktop-dialogs/tray"
)

func main() {
	logLevel := flag.String("log-level", "", "Override LOG_LEVEL from the environment")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		return
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	// Setup logging
	logger := logutil.Setup(cfg.EnableFileLogging, cfg.LogLevel)

	app := hostapp.New(hostapp.Config{
		Name:     cfg.AppName,
		BasePath: cfg.InitialDir,
		Logger:   logger,
	})
	svc := nativedialog.New(logger)
	facade := dialogs.New(dialogs.Config{
		Host:       app,
		Messages:   svc,
		Files:      svc,
		Logger:     logger,
		InitialDir: cfg.InitialDir,
	})

	if err := clipboard.Init(); err != nil {
		logger.Warn("clipboard unavailable, picked paths will not be copied", "error", err)
	}

	logger.Info("dialog demo initialized", "app", app.Name(), "initial_dir", cfg.InitialDir)

	openFile := func() {
		facade.OpenFile(dialogs.OpenRequest{}, func(path string, err error) {
			if err != nil {
				if errors.Is(err, dialogs.ErrEmptySelection) {
					logger.Info("nothing selected")
					return
				}
				facade.ShowError("", "Could not open file: "+err.Error(), nil)
				return
			}
			clipboard.WritePath(path)
			facade.ShowInformation("", "Copied to clipboard: "+path, nil)
		})
	}

	if cfg.Hotkey != "" {
		if err := hotkey.Listen(cfg.Hotkey, func() { go openFile() }); err != nil {
			logger.Warn("hotkey registration failed", "combo", cfg.Hotkey, "error", err)
		} else {
			logger.Info("hotkey registered", "combo", cfg.Hotkey)
		}
	}

	// The tray owns the main goroutine; dialogs run off it because the
	// native backends block while a modal is up.
	tray.Run(tray.Config{
		Title:      app.Name(),
		Tooltip:    fmt.Sprintf("%s - file dialog demo", app.Name()),
		OnOpenFile: func() { go openFile() },
		OnAbout: func() {
			go facade.ShowInformation("", fmt.Sprintf("%s dialog demo", app.Name()), nil)
		},
		OnExit: func() {
			logger.Info("tray exit requested")
		},
	})
}
