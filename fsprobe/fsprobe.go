// Package fsprobe answers "is there a filesystem entry at this path", and
// nothing more. It is advisory: the eventual consumer re-opens the file
// itself, so a check-to-use gap is acceptable here.
package fsprobe

import "github.com/spf13/afero"

// Check reports whether path names an accessible filesystem entry. It does
// not distinguish a missing entry from one the process may not stat; both
// come back as the underlying error.
func Check(fsys afero.Fs, path string) error {
	_, err := fsys.Stat(path)
	return err
}
