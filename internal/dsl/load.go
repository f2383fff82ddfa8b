package dsl

import (
	"github.com/heartmarshall/dslconv/internal/domain"
	"github.com/heartmarshall/dslconv/internal/dsl/markup"
)

// Dictionary is a fully converted DSL source.
type Dictionary struct {
	Path    string
	Header  domain.DictionaryHeader
	Entries []domain.DictionaryEntry
	Stats   Stats
}

// Load reads the DSL file at path and converts it with rules.
func Load(path string, rules markup.Rules) (Dictionary, error) {
	lines, err := ReadFile(path)
	if err != nil {
		return Dictionary{}, err
	}

	entries, stats := BuildWithStats(lines, rules)
	return Dictionary{
		Path:    path,
		Header:  ParseHeader(lines),
		Entries: entries,
		Stats:   stats,
	}, nil
}
