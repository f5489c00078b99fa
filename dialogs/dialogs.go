package dialogs

import (
	"log/slog"

	"github.com/spf13/afero"
)

// Kind selects the severity icon the host renders next to a message box.
type Kind int

const (
	KindInfo Kind = iota
	KindWarning
	KindQuestion
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindInfo:
		return "info"
	case KindWarning:
		return "warning"
	case KindQuestion:
		return "question"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Default button labels used by the facade operations.
const (
	ButtonDismiss = "Dismiss"
	ButtonNo      = "No"
	ButtonYes     = "Yes"
	ButtonRestart = "Restart"
	ButtonQuit    = "Quit"
)

// MessageRequest describes one modal message box. Buttons is ordered: the
// index of the clicked button is what comes back in MessageResult. Index 0
// is the safe action and the keyboard-cancel target, so facade-built
// requests always carry DefaultID = CancelID = 0.
type MessageRequest struct {
	Title     string
	Message   string
	Buttons   []string
	Kind      Kind
	DefaultID int
	CancelID  int
}

// MessageResult reports which button the user clicked.
type MessageResult struct {
	ButtonIndex int
}

// OpenRequest describes one open-file picker. An empty Extensions list
// means all files.
type OpenRequest struct {
	Title      string
	Extensions []string
	InitialDir string
}

// MessageBoxService is the host facility that renders modal message boxes.
// ShowMessage blocks while the modal is up and reports the clicked button,
// or an error when the dialog could not be shown.
type MessageBoxService interface {
	ShowMessage(req MessageRequest) (MessageResult, error)
}

// OpenFileService is the host facility that renders the native open-file
// picker. ShowOpen reports zero paths when the user cancels.
type OpenFileService interface {
	ShowOpen(req OpenRequest) ([]string, error)
}

// Host is the process-wide application handle the facade decorates dialogs
// with: display name, window focus, icon attention cue and lifecycle.
type Host interface {
	Name() string
	Focus()
	BounceIcon()
	Relaunch() error
	Quit()
	BasePath() string
}

// MessageCallback receives the outcome of a message-box operation. It is
// invoked exactly once per call.
type MessageCallback func(res MessageResult, err error)

// OpenCallback receives the outcome of an OpenFile call: the cleaned path
// of the picked file, or an error. Invoked exactly once per call, after any
// nested warning dialog has itself resolved.
type OpenCallback func(path string, err error)

// Config wires the facade's collaborators. Host, Messages and Files are
// required. Fs defaults to the OS filesystem, Logger to slog.Default and
// InitialDir to the host's base path.
type Config struct {
	Host       Host
	Messages   MessageBoxService
	Files      OpenFileService
	Fs         afero.Fs
	Logger     *slog.Logger
	InitialDir string
}

// Facade exposes the five dialog operations. It keeps no state between
// calls beyond its injected collaborators, so concurrent callers are
// independent (the host still serializes modals on screen).
type Facade struct {
	host       Host
	msg        MessageBoxService
	files      OpenFileService
	fs         afero.Fs
	logger     *slog.Logger
	initialDir string
}

// New creates a dialog facade from cfg.
func New(cfg Config) *Facade {
	if cfg.Fs == nil {
		cfg.Fs = afero.NewOsFs()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.InitialDir == "" {
		cfg.InitialDir = cfg.Host.BasePath()
	}
	return &Facade{
		host:       cfg.Host,
		msg:        cfg.Messages,
		files:      cfg.Files,
		fs:         cfg.Fs,
		logger:     cfg.Logger,
		initialDir: cfg.InitialDir,
	}
}
