package clipboard

import (
	"golang.design/x/clipboard"
)

// Init must run once before WritePath. It fails when the platform has no
// clipboard support available.
func Init() error {
	return clipboard.Init()
}

// WritePath puts a picked file path on the system clipboard.
func WritePath(path string) {
	clipboard.Write(clipboard.FmtText, []byte(path))
}
