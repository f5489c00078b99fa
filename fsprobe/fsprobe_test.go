package fsprobe

import (
	"testing"

	"github.com/spf13/afero"
)

func TestCheckExistingFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/tmp/report.txt", []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := Check(fs, "/tmp/report.txt"); err != nil {
		t.Errorf("expected existing file to pass, got %v", err)
	}
}

func TestCheckMissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	if err := Check(fs, "/tmp/nope.txt"); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestCheckDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/tmp/dir", 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	if err := Check(fs, "/tmp/dir"); err != nil {
		t.Errorf("expected existing directory to pass, got %v", err)
	}
}
