package utils

import (
	"testing"
	"unicode"
)

func lettersOnly(r rune) bool {
	return unicode.IsLetter(r) || r == ' '
}

func TestTextInputInsertFilters(t *testing.T) {
	in := NewTextInput(10, lettersOnly)
	in.Insert("ab1c!")

	if got := in.Value(); got != "abc" {
		t.Errorf("Value() = %q, want %q", got, "abc")
	}
}

func TestTextInputMaxLength(t *testing.T) {
	in := NewTextInput(4, nil)
	in.Insert("abc")
	in.Insert("def")

	if got := in.Value(); got != "abcd" {
		t.Errorf("Value() = %q, want %q", got, "abcd")
	}
}

func TestTextInputMaxLengthCountsRunes(t *testing.T) {
	in := NewTextInput(2, nil)
	in.Insert("驾驶员")

	if got := in.Value(); got != "驾驶" {
		t.Errorf("Value() = %q, want %q", got, "驾驶")
	}
}

func TestTextInputBackspaceAndClear(t *testing.T) {
	in := NewTextInput(0, nil)
	in.Backspace()
	if in.Value() != "" {
		t.Fatal("backspace on empty input should be a no-op")
	}

	in.Insert("alice")
	in.Backspace()
	if got := in.Value(); got != "alic" {
		t.Errorf("after backspace: got %q, want %q", got, "alic")
	}

	in.Clear()
	if in.Value() != "" {
		t.Errorf("after clear: got %q, want empty", in.Value())
	}
}

func TestTextInputDisplayCursor(t *testing.T) {
	in := NewTextInput(0, nil)
	in.Insert("bo")

	if got := in.Display(); got != "bo_" {
		t.Errorf("Display() = %q, want %q", got, "bo_")
	}
}
