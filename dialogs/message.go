package dialogs

import "fmt"

// show fills in the request defaults and passes it to the message box
// service. The callback fires exactly once; errors are logged before they
// reach the caller.
func (f *Facade) show(op string, req MessageRequest, cb MessageCallback) {
	if cb == nil {
		cb = func(MessageResult, error) {}
	}
	if req.Title == "" {
		req.Title = f.host.Name()
	}
	if req.Message == "" {
		req.Message = req.Title
	}
	if len(req.Buttons) == 0 {
		req.Buttons = []string{ButtonDismiss}
	}
	f.logger.Debug("showing message box", "op", op, "title", req.Title, "kind", req.Kind.String(), "buttons", len(req.Buttons))

	res, err := f.msg.ShowMessage(req)
	if err != nil {
		f.logger.Error("message box failed", "op", op, "title", req.Title, "error", err)
		cb(MessageResult{}, err)
		return
	}
	if res.ButtonIndex < 0 || res.ButtonIndex >= len(req.Buttons) {
		err := fmt.Errorf("message box reported button %d, have %d buttons", res.ButtonIndex, len(req.Buttons))
		f.logger.Error("message box result out of range", "op", op, "title", req.Title, "error", err)
		cb(MessageResult{}, err)
		return
	}
	cb(res, nil)
}

// ShowInformation displays an informational message box with a single
// Dismiss button. An empty title falls back to the host app name, an empty
// message to the title.
func (f *Facade) ShowInformation(title, message string, cb MessageCallback) {
	f.show("showInformation", MessageRequest{Title: title, Message: message, Kind: KindInfo}, cb)
}

// ShowWarning displays a warning message box with a single Dismiss button.
// An empty title falls back to "Warning".
func (f *Facade) ShowWarning(title, message string, cb MessageCallback) {
	if title == "" {
		title = "Warning"
	}
	f.show("showWarning", MessageRequest{Title: title, Message: message, Kind: KindWarning}, cb)
}

// ShowConfirmation displays a No/Yes question box. No is index 0, the safe
// default. The host window is brought to the foreground before the modal
// appears.
func (f *Facade) ShowConfirmation(title, message string, cb MessageCallback) {
	f.host.Focus()
	f.show("showConfirmation", MessageRequest{
		Title:   title,
		Message: message,
		Buttons: []string{ButtonNo, ButtonYes},
		Kind:    KindQuestion,
	}, cb)
}

// Button positions in the error dialog.
const (
	errorButtonDismiss = iota
	errorButtonRestart
	errorButtonQuit
)

// ShowError displays an error box with Dismiss/Restart/Quit buttons. The
// icon attention cue plays and the host window is focused before the modal
// appears. Restart relaunches the host and then quits it; Quit quits it.
// Both actions run only after the host has confirmed the click. With a real
// host the process ends before the callback on those two paths; test hosts
// observe the callback normally.
func (f *Facade) ShowError(title, message string, cb MessageCallback) {
	if title == "" {
		title = "Error"
	}
	if cb == nil {
		cb = func(MessageResult, error) {}
	}
	f.host.BounceIcon()
	f.host.Focus()
	f.show("showError", MessageRequest{
		Title:   title,
		Message: message,
		Buttons: []string{ButtonDismiss, ButtonRestart, ButtonQuit},
		Kind:    KindError,
	}, func(res MessageResult, err error) {
		if err != nil {
			cb(res, err)
			return
		}
		switch res.ButtonIndex {
		case errorButtonRestart:
			f.logger.Info("restart requested from error dialog")
			if rerr := f.host.Relaunch(); rerr != nil {
				f.logger.Error("relaunch failed", "error", rerr)
			}
			f.host.Quit()
		case errorButtonQuit:
			f.logger.Info("quit requested from error dialog")
			f.host.Quit()
		}
		cb(res, nil)
	})
}
