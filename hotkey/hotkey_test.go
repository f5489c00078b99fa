package hotkey

import (
	"reflect"
	"testing"
)

func TestParseCombo(t *testing.T) {
	got := ParseCombo("Ctrl+Alt+O")
	want := []string{"ctrl", "alt", "o"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseCombo(Ctrl+Alt+O) = %v, want %v", got, want)
	}
}

func TestParseComboTrimsBlanks(t *testing.T) {
	got := ParseCombo(" Ctrl + Shift + F ")
	want := []string{"ctrl", "shift", "f"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseCombo = %v, want %v", got, want)
	}
}

func TestParseComboEmpty(t *testing.T) {
	if got := ParseCombo(""); got != nil {
		t.Errorf("ParseCombo(\"\") = %v, want nil", got)
	}
	if got := ParseCombo("+ +"); got != nil {
		t.Errorf("ParseCombo(\"+ +\") = %v, want nil", got)
	}
}

func TestListenRejectsEmptyCombo(t *testing.T) {
	if err := Listen("", func() {}); err == nil {
		t.Error("expected an error for an empty combo")
	}
}
