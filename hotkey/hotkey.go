package hotkey

import (
	"fmt"
	"log/slog"
	"strings"

	gohook "github.com/robotn/gohook"
)

// Listen registers a global hotkey like "Ctrl+Alt+O" and invokes fire every
// time the combination is pressed. The hook event loop runs on its own
// goroutine for the life of the process; there is no way to unregister.
func Listen(combo string, fire func()) error {
	keys := ParseCombo(combo)
	if len(keys) == 0 {
		return fmt.Errorf("empty hotkey %q", combo)
	}
	slog.Debug("registering global hotkey", "combo", combo, "keys", keys)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("hotkey goroutine panicked", "recover", r)
			}
		}()
		gohook.Register(gohook.KeyDown, keys, func(e gohook.Event) {
			slog.Debug("hotkey pressed", "combo", combo)
			fire()
		})
		s := gohook.Start()
		<-gohook.Process(s)
	}()
	return nil
}

// ParseCombo splits "Ctrl+Alt+O" into the lower-case key names the hook
// library expects. Blank segments are dropped.
func ParseCombo(combo string) []string {
	var keys []string
	for _, part := range strings.Split(combo, "+") {
		p := strings.ToLower(strings.TrimSpace(part))
		if p == "" {
			continue
		}
		keys = append(keys, p)
	}
	return keys
}
