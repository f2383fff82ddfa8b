package dsl

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/heartmarshall/dslconv/internal/domain"
)

// Extension is the file extension of Lingvo DSL sources.
const Extension = ".dsl"

const maxLineSize = 1 << 20

// IsDSLFile reports whether path has the DSL extension (case-insensitive).
func IsDSLFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), Extension)
}

// ReadFile reads a DSL file into newline-stripped lines.
// A byte order mark selects UTF-8, UTF-16LE or UTF-16BE decoding; without one
// the content must be UTF-8.
func ReadFile(path string) ([]string, error) {
	if !IsDSLFile(path) {
		return nil, fmt.Errorf("read %s: %w", path, domain.ErrNotDSLFile)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w: %v", path, domain.ErrUnreadable, err)
	}
	defer f.Close()

	decoded := transform.NewReader(f, unicode.BOMOverride(encoding.Nop.NewDecoder()))

	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("read %s: line %d: %w", path, len(lines)+1, domain.ErrUndecodable)
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w: %v", path, domain.ErrUnreadable, err)
	}

	if len(lines) == 0 {
		return nil, fmt.Errorf("read %s: %w", path, domain.ErrEmptyFile)
	}

	return lines, nil
}
