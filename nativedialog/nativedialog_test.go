package nativedialog

import (
	"reflect"
	"testing"
)

func TestCleanExtensions(t *testing.T) {
	got := cleanExtensions([]string{"*.txt", ".md", "csv"})
	want := []string{"txt", "md", "csv"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("cleanExtensions = %v, want %v", got, want)
	}
}

func TestCleanExtensionsWildcard(t *testing.T) {
	if got := cleanExtensions([]string{"*"}); got != nil {
		t.Errorf("wildcard should disable filtering, got %v", got)
	}
	if got := cleanExtensions(nil); got != nil {
		t.Errorf("no extensions should disable filtering, got %v", got)
	}
}
