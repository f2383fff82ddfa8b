// Package jsonfile serializes dictionary entries as a JSON array and writes
// them to disk.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/heartmarshall/dslconv/internal/domain"
)

// Options controls the output layout.
type Options struct {
	Pretty bool // two-space indentation instead of a single line
}

// Marshal encodes entries as `[{"word":..., "definitions":[...]}, ...]`
// followed by a newline. HTML produced by markup rules is written as-is,
// not as < escapes. A nil slice encodes as an empty array.
func Marshal(entries []domain.DictionaryEntry, opts Options) ([]byte, error) {
	if entries == nil {
		entries = []domain.DictionaryEntry{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if opts.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(entries); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSerialize, err)
	}
	return buf.Bytes(), nil
}

// Write serializes entries and writes them to path. The file is written to a
// temporary sibling first and renamed into place, so a failed write never
// leaves a truncated file behind.
func Write(path string, entries []domain.DictionaryEntry, opts Options) error {
	data, err := Marshal(entries, opts)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w: %v", path, domain.ErrWriteFile, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w: %v", path, domain.ErrWriteFile, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w: %v", path, domain.ErrWriteFile, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w: %v", path, domain.ErrWriteFile, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w: %v", path, domain.ErrWriteFile, err)
	}

	return nil
}

// Read parses a JSON file previously produced by Write.
func Read(path string) ([]domain.DictionaryEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w: %v", path, domain.ErrReadFile, err)
	}

	var entries []domain.DictionaryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode %s: %w: %v", path, domain.ErrDecode, err)
	}
	return entries, nil
}
