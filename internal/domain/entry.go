package domain

import (
	"time"

	"github.com/google/uuid"
)

// DictionaryEntry is a headword together with its definitions in source order.
type DictionaryEntry struct {
	Word        string   `json:"word"`
	Definitions []string `json:"definitions"`
}

// DictionaryHeader holds the `#`-prefixed directives found at the top of a DSL file.
type DictionaryHeader struct {
	Name             string
	IndexLanguage    string
	ContentsLanguage string
}

// Dictionary is an imported DSL source registered in the store.
type Dictionary struct {
	ID               uuid.UUID `db:"id"`
	Name             string    `db:"name"`
	SourcePath       string    `db:"source_path"`
	IndexLanguage    string    `db:"index_language"`
	ContentsLanguage string    `db:"contents_language"`
	Markup           string    `db:"markup"`
	EntryCount       int       `db:"entry_count"`
	CreatedAt        time.Time `db:"created_at"`
}

// StoredEntry is a DictionaryEntry persisted under a Dictionary.
// Position is the 0-based index of the entry in the converted output.
type StoredEntry struct {
	ID               uuid.UUID `db:"id"`
	DictionaryID     uuid.UUID `db:"dictionary_id"`
	Position         int       `db:"position"`
	Word             string    `db:"word"`
	WordNormalized   string    `db:"word_normalized"`
	Definitions      []string  `db:"definitions"`
	PlainDefinitions []string  `db:"plain_definitions"`
	CreatedAt        time.Time `db:"created_at"`
}

// Clone returns a copy of e that shares no storage with it.
func (e DictionaryEntry) Clone() DictionaryEntry {
	defs := make([]string, len(e.Definitions))
	copy(defs, e.Definitions)
	return DictionaryEntry{Word: e.Word, Definitions: defs}
}
