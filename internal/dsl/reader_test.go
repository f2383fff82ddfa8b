package dsl

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"golang.org/x/text/encoding/unicode"

	"github.com/heartmarshall/dslconv/internal/domain"
)

func testdataPath(t *testing.T, name string) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	return filepath.Join(filepath.Dir(file), "testdata", name)
}

func TestIsDSLFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"foo.dsl", true},
		{"bar.dsl", true},
		{"dir/Upper.DSL", true},
		{"foo.json", false},
		{"virus.exe", false},
		{"noextension", false},
		{"dsl", false},
	}
	for _, tt := range tests {
		if got := IsDSLFile(tt.path); got != tt.want {
			t.Errorf("IsDSLFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	lines, err := ReadFile(testdataPath(t, "dummy.dsl"))
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}

	want := []string{
		"#NAME\t\"Test Dictionary fixture\"",
		"#INDEX_LANGUAGE\t\"English\"",
		"#CONTENTS_LANGUAGE\t\"Latin\"",
		"foo",
		"\t[m1]Lorem ipsum dolor sit amet, dolor sit igitur[/m]",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestReadFile_CRLF(t *testing.T) {
	t.Parallel()

	lines, err := ReadFile(testdataPath(t, "crlf.dsl"))
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d", len(lines))
	}
	if lines[4] != "foo" {
		t.Errorf("lines[4] = %q, want %q", lines[4], "foo")
	}
	if lines[3] != "" {
		t.Errorf("lines[3] = %q, want empty", lines[3])
	}
}

func TestReadFile_UTF16LE(t *testing.T) {
	t.Parallel()

	content := "#NAME\t\"Словарь\"\nслово\n\t[m1]word[/m]\n"
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	encoded, err := enc.String(content)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "ru.dsl")
	if err := os.WriteFile(path, []byte(encoded), 0o644); err != nil {
		t.Fatal(err)
	}

	lines, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}
	want := []string{"#NAME\t\"Словарь\"", "слово", "\t[m1]word[/m]"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestReadFile_UTF8BOMStripped(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bom.dsl")
	if err := os.WriteFile(path, []byte("\xef\xbb\xbf#NAME\t\"A\"\nfoo\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	lines, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}
	if lines[0] != "#NAME\t\"A\"" {
		t.Errorf("lines[0] = %q, BOM should be stripped", lines[0])
	}
}

func TestReadFile_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want error
	}{
		{"not a DSL file", testdataPath(t, "dummy.txt"), domain.ErrNotDSLFile},
		{"json extension", "undefined.json", domain.ErrNotDSLFile},
		{"missing file", testdataPath(t, "undefined.dsl"), domain.ErrUnreadable},
		{"empty file", testdataPath(t, "empty.dsl"), domain.ErrEmptyFile},
		{"invalid UTF-8", testdataPath(t, "latin1.dsl"), domain.ErrUndecodable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			lines, err := ReadFile(tt.path)
			if err == nil {
				t.Fatalf("ReadFile(%q) should fail, got %d lines", tt.path, len(lines))
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("ReadFile(%q) error = %v, want %v", tt.path, err, tt.want)
			}
		})
	}
}
