//go:build !windows

package nativedialog

import (
	"fmt"

	sqdialog "github.com/sqweek/dialog"

	"desktop-dialogs/dialogs"
)

// showMessage covers what the portable backend can express: one button as
// an Info/Error box, two as Yes/No (No is index 0, the safe action). Three
// or more buttons have no native equivalent here.
func showMessage(req dialogs.MessageRequest) (dialogs.MessageResult, error) {
	switch len(req.Buttons) {
	case 1:
		b := sqdialog.Message("%s", req.Message).Title(req.Title)
		if req.Kind == dialogs.KindError {
			b.Error()
		} else {
			b.Info()
		}
		return dialogs.MessageResult{ButtonIndex: 0}, nil
	case 2:
		if sqdialog.Message("%s", req.Message).Title(req.Title).YesNo() {
			return dialogs.MessageResult{ButtonIndex: 1}, nil
		}
		return dialogs.MessageResult{ButtonIndex: 0}, nil
	default:
		return dialogs.MessageResult{}, fmt.Errorf("native message box supports at most 2 buttons on this platform, got %d", len(req.Buttons))
	}
}
