// Package fynedialog renders dialogs inside an existing Fyne window, for
// hosts that embed a Fyne UI. It implements both dialogs.MessageBoxService
// and dialogs.OpenFileService.
package fynedialog

import (
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"desktop-dialogs/dialogs"
)

// Service shows dialogs on one Fyne window. Calls block until the user
// responds and therefore must not run on the Fyne main goroutine; the UI
// work itself is marshalled there with fyne.Do.
type Service struct {
	win    fyne.Window
	logger *slog.Logger
}

func New(win fyne.Window, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{win: win, logger: logger}
}

// ShowMessage displays a custom dialog with one button per requested
// label. Closing the dialog without clicking resolves to the request's
// cancel index.
func (s *Service) ShowMessage(req dialogs.MessageRequest) (dialogs.MessageResult, error) {
	choice := make(chan int, 1)
	fyne.Do(func() {
		content := widget.NewLabel(req.Message)
		content.Wrapping = fyne.TextWrapWord
		d := dialog.NewCustomWithoutButtons(req.Title, content, s.win)

		buttons := make([]fyne.CanvasObject, len(req.Buttons))
		for i, label := range req.Buttons {
			i := i
			buttons[i] = widget.NewButton(label, func() {
				select {
				case choice <- i:
				default:
				}
				d.Hide()
			})
		}
		d.SetButtons(buttons)
		d.SetOnClosed(func() {
			// Escape or window close: land on the cancel button.
			select {
			case choice <- req.CancelID:
			default:
			}
		})
		d.Show()
	})
	idx := <-choice
	s.logger.Debug("fyne message box resolved", "title", req.Title, "button", idx)
	return dialogs.MessageResult{ButtonIndex: idx}, nil
}

// ShowOpen displays Fyne's open-file dialog. Cancelling resolves with no
// paths rather than an error.
func (s *Service) ShowOpen(req dialogs.OpenRequest) ([]string, error) {
	type pick struct {
		path string
		err  error
	}
	res := make(chan pick, 1)
	fyne.Do(func() {
		fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
			if err != nil {
				res <- pick{err: err}
				return
			}
			if rc == nil {
				res <- pick{}
				return
			}
			p := rc.URI().Path()
			_ = rc.Close()
			res <- pick{path: p}
		}, s.win)
		if exts := dotExtensions(req.Extensions); len(exts) > 0 {
			fd.SetFilter(storage.NewExtensionFileFilter(exts))
		}
		if req.InitialDir != "" {
			if lister, err := storage.ListerForURI(storage.NewFileURI(req.InitialDir)); err == nil {
				fd.SetLocation(lister)
			} else {
				s.logger.Debug("cannot list initial directory", "dir", req.InitialDir, "error", err)
			}
		}
		fd.Show()
	})
	p := <-res
	if p.err != nil {
		return nil, p.err
	}
	if p.path == "" {
		return nil, nil
	}
	return []string{p.path}, nil
}

// dotExtensions normalizes to the ".ext" form Fyne's filter expects. A
// wildcard disables filtering.
func dotExtensions(exts []string) []string {
	var out []string
	for _, e := range exts {
		e = strings.TrimPrefix(e, "*")
		if e == "" || e == "*" || e == "." {
			return nil
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out = append(out, e)
	}
	return out
}
