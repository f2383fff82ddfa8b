package domain

import "testing"

func TestDictionaryEntry_Clone(t *testing.T) {
	t.Parallel()

	orig := DictionaryEntry{Word: "foo", Definitions: []string{"a", "b"}}
	clone := orig.Clone()

	clone.Definitions[0] = "changed"
	clone.Definitions = append(clone.Definitions, "c")

	if orig.Definitions[0] != "a" {
		t.Errorf("clone shares storage with original: %q", orig.Definitions[0])
	}
	if len(orig.Definitions) != 2 {
		t.Errorf("original definitions length = %d, want 2", len(orig.Definitions))
	}
	if clone.Word != "foo" {
		t.Errorf("clone.Word = %q, want %q", clone.Word, "foo")
	}
}

func TestDictionaryEntry_CloneEmpty(t *testing.T) {
	t.Parallel()

	clone := DictionaryEntry{Word: "bare"}.Clone()
	if clone.Definitions == nil {
		t.Fatal("clone of empty entry should have a non-nil definitions slice")
	}
	if len(clone.Definitions) != 0 {
		t.Fatalf("expected 0 definitions, got %d", len(clone.Definitions))
	}
}
