package tray

import (
	"github.com/getlantern/systray"
)

// Config wires the tray menu actions for the demo app.
type Config struct {
	Title      string
	Tooltip    string
	OnOpenFile func()
	OnAbout    func()
	OnExit     func()
}

// Run starts the tray icon and blocks until Quit is chosen or the host
// session ends.
func Run(cfg Config) {
	systray.Run(func() { onReady(cfg) }, func() {
		if cfg.OnExit != nil {
			cfg.OnExit()
		}
	})
}

func onReady(cfg Config) {
	systray.SetTitle(cfg.Title)
	systray.SetTooltip(cfg.Tooltip)

	mOpen := systray.AddMenuItem("Open File…", "Pick a file with the native dialog")
	mAbout := systray.AddMenuItem("About", "About this application")
	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Quit the application")

	// Handle menu item events
	go func() {
		for {
			select {
			case <-mOpen.ClickedCh:
				if cfg.OnOpenFile != nil {
					cfg.OnOpenFile()
				}
			case <-mAbout.ClickedCh:
				if cfg.OnAbout != nil {
					cfg.OnAbout()
				}
			case <-mQuit.ClickedCh:
				systray.Quit()
			}
		}
	}()
}
