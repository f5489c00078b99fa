package dialogs

import (
	"errors"
	"path/filepath"

	"desktop-dialogs/fsprobe"
)

// ErrEmptySelection is reported when the picker resolves with no paths,
// i.e. the user cancelled or dismissed it without choosing a file.
var ErrEmptySelection = errors.New("no file selected")

// OpenFile displays the host's native open-file picker and hands the first
// picked path to cb after cleaning it and probing that it exists. A picker
// that resolves with zero paths yields ErrEmptySelection without touching
// the filesystem. When the existence probe fails, a "File not found."
// warning dialog is shown first and cb only runs once the user dismisses
// it.
func (f *Facade) OpenFile(req OpenRequest, cb OpenCallback) {
	if cb == nil {
		cb = func(string, error) {}
	}
	if req.Title == "" {
		req.Title = f.host.Name()
	}
	if req.InitialDir == "" {
		req.InitialDir = f.initialDir
	}
	f.logger.Debug("showing file picker", "op", "openFile", "title", req.Title, "dir", req.InitialDir, "extensions", req.Extensions)

	paths, err := f.files.ShowOpen(req)
	if err != nil {
		f.logger.Error("file picker failed", "op", "openFile", "error", err)
		cb("", err)
		return
	}
	if len(paths) == 0 {
		f.logger.Warn("file picker resolved with no selection", "op", "openFile")
		cb("", ErrEmptySelection)
		return
	}

	path := filepath.Clean(paths[0])
	if probeErr := fsprobe.Check(f.fs, path); probeErr != nil {
		f.logger.Warn("picked file is not accessible", "op", "openFile", "path", path, "error", probeErr)
		f.ShowWarning("", "File not found.", func(MessageResult, error) {
			cb("", probeErr)
		})
		return
	}
	cb(path, nil)
}
