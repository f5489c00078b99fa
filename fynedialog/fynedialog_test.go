package fynedialog

import (
	"reflect"
	"testing"
)

func TestDotExtensions(t *testing.T) {
	got := dotExtensions([]string{"txt", "*.md", ".csv"})
	want := []string{".txt", ".md", ".csv"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("dotExtensions = %v, want %v", got, want)
	}
}

func TestDotExtensionsWildcard(t *testing.T) {
	if got := dotExtensions([]string{"*"}); got != nil {
		t.Errorf("wildcard should disable filtering, got %v", got)
	}
}
