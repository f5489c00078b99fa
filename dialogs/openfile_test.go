package dialogs

import (
	"errors"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingFs counts Stat calls so tests can prove the existence probe
// never ran.
type countingFs struct {
	afero.Fs
	stats int
}

func (c *countingFs) Stat(name string) (os.FileInfo, error) {
	c.stats++
	return c.Fs.Stat(name)
}

func TestOpenFileAppliesDefaults(t *testing.T) {
	f, _, _, picker := newTestFacade(nil)
	picker.paths = nil

	f.OpenFile(OpenRequest{}, nil)

	assert.Equal(t, "TestApp", picker.lastRequest.Title)
	assert.Empty(t, picker.lastRequest.Extensions)
	assert.Equal(t, "/home/tester/Documents", picker.lastRequest.InitialDir)
}

func TestOpenFilePassesRequestThrough(t *testing.T) {
	f, _, _, picker := newTestFacade(nil)

	f.OpenFile(OpenRequest{Title: "Pick a log", Extensions: []string{"log"}, InitialDir: "/var/log"}, nil)

	assert.Equal(t, "Pick a log", picker.lastRequest.Title)
	assert.Equal(t, []string{"log"}, picker.lastRequest.Extensions)
	assert.Equal(t, "/var/log", picker.lastRequest.InitialDir)
}

func TestOpenFileEmptySelection(t *testing.T) {
	fs := &countingFs{Fs: afero.NewMemMapFs()}
	f, _, msg, picker := newTestFacade(fs)
	picker.paths = nil

	calls := 0
	f.OpenFile(OpenRequest{}, func(path string, err error) {
		calls++
		assert.ErrorIs(t, err, ErrEmptySelection)
		assert.Empty(t, path)
	})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, fs.stats, "existence probe must not run on empty selection")
	assert.Empty(t, msg.requests, "no dialog should follow an empty selection")
}

func TestOpenFileCleansPath(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "b.txt", []byte("x"), 0644))
	f, _, msg, picker := newTestFacade(fs)
	picker.paths = []string{"./a/../b.txt"}

	calls := 0
	f.OpenFile(OpenRequest{}, func(path string, err error) {
		calls++
		require.NoError(t, err)
		assert.Equal(t, "b.txt", path)
	})

	assert.Equal(t, 1, calls)
	assert.Empty(t, msg.requests)
}

func TestOpenFileMissingFileShowsWarningFirst(t *testing.T) {
	f, host, msg, picker := newTestFacade(afero.NewMemMapFs())
	picker.paths = []string{"ghost.txt"}

	calls := 0
	f.OpenFile(OpenRequest{}, func(path string, err error) {
		calls++
		host.ev.add("callback")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrEmptySelection)
		assert.Empty(t, path)
	})

	assert.Equal(t, 1, calls)
	require.Len(t, msg.requests, 1)
	assert.Equal(t, "Warning", msg.requests[0].Title)
	assert.Equal(t, "File not found.", msg.requests[0].Message)
	assert.Equal(t, KindWarning, msg.requests[0].Kind)
	// the warning dialog resolves before the caller hears anything
	assert.Equal(t, []string{"picker", "message:Warning", "callback"}, host.ev.list)
}

func TestOpenFilePickerErrorPropagates(t *testing.T) {
	fs := &countingFs{Fs: afero.NewMemMapFs()}
	f, _, msg, picker := newTestFacade(fs)
	hostErr := errors.New("picker exploded")
	picker.err = hostErr

	calls := 0
	f.OpenFile(OpenRequest{}, func(path string, err error) {
		calls++
		assert.ErrorIs(t, err, hostErr)
	})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, fs.stats)
	assert.Empty(t, msg.requests)
}

func TestOpenFileUsesFirstPath(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "first.txt", []byte("x"), 0644))
	f, _, _, picker := newTestFacade(fs)
	picker.paths = []string{"first.txt", "second.txt"}

	f.OpenFile(OpenRequest{}, func(path string, err error) {
		require.NoError(t, err)
		assert.Equal(t, "first.txt", path)
	})
}

func TestOpenFileRepeatedCallsAreIndependent(t *testing.T) {
	f, _, _, picker := newTestFacade(nil)
	picker.paths = nil

	f.OpenFile(OpenRequest{}, nil)
	f.OpenFile(OpenRequest{}, nil)

	assert.Equal(t, 2, picker.calls)
}
