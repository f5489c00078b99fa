// Package nativedialog renders dialogs with the operating system's own
// widgets, with no toolkit window required. It implements both
// dialogs.MessageBoxService and dialogs.OpenFileService.
package nativedialog

import (
	"log/slog"
	"strings"

	sqdialog "github.com/sqweek/dialog"

	"desktop-dialogs/dialogs"
)

// Service shows native dialogs. Calls block the calling goroutine while
// the modal is up, so keep them off any UI event loop.
type Service struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// ShowMessage displays a native message box. Button captions are
// platform-fixed and only approximate the requested labels; the reported
// index follows the request's ordering.
func (s *Service) ShowMessage(req dialogs.MessageRequest) (dialogs.MessageResult, error) {
	s.logger.Debug("native message box", "title", req.Title, "kind", req.Kind.String(), "buttons", len(req.Buttons))
	return showMessage(req)
}

// ShowOpen displays the native open-file picker. A cancelled picker
// resolves with no paths rather than an error.
func (s *Service) ShowOpen(req dialogs.OpenRequest) ([]string, error) {
	b := sqdialog.File().Title(req.Title)
	if req.InitialDir != "" {
		b = b.SetStartDir(req.InitialDir)
	}
	if exts := cleanExtensions(req.Extensions); len(exts) > 0 {
		b = b.Filter("Supported files", exts...)
	}
	path, err := b.Load()
	if err == sqdialog.ErrCancelled {
		s.logger.Debug("native file picker cancelled")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

// cleanExtensions strips "*." and "." prefixes; the native filter wants
// bare extensions. A lone wildcard means no filter at all.
func cleanExtensions(exts []string) []string {
	var out []string
	for _, e := range exts {
		e = strings.TrimPrefix(e, "*")
		e = strings.TrimPrefix(e, ".")
		if e == "" || e == "*" {
			return nil
		}
		out = append(out, e)
	}
	return out
}
