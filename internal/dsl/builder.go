// Package dsl turns the lines of a Lingvo DSL dictionary into ordered
// word/definitions entries.
package dsl

import (
	"strings"

	"github.com/heartmarshall/dslconv/internal/dsl/markup"
	"github.com/heartmarshall/dslconv/internal/domain"
)

// Stats holds builder counters for logging.
type Stats struct {
	TotalLines        int
	BlankLines        int
	MetadataLines     int
	DefinitionLines   int
	Headwords         int
	GroupedHeadwords  int // headwords that received a shared definition by lookahead
	UnresolvedGroups  int // lookaheads that reached end of input without a definition
	OrphanDefinitions int // definition lines seen before any headword
}

type lineKind int

const (
	kindBlank lineKind = iota
	kindMetadata
	kindDefinition
	kindHeadword
)

func classify(line string, rules markup.Rules) lineKind {
	switch {
	case strings.TrimSpace(line) == "":
		return kindBlank
	case rules.IsMetadata(line):
		return kindMetadata
	case rules.IsDefinition(line):
		return kindDefinition
	default:
		return kindHeadword
	}
}

// Build converts lines into dictionary entries using rules.
// See BuildWithStats.
func Build(lines []string, rules markup.Rules) []domain.DictionaryEntry {
	entries, _ := BuildWithStats(lines, rules)
	return entries
}

// BuildWithStats converts lines into dictionary entries in a single forward
// pass and reports what it saw.
//
// Blank and metadata lines are skipped. A definition line is formatted and
// appended to the most recent entry. Any other line starts a new entry.
// Before a new entry is started, an entry still without definitions receives
// a copy of the first definition line found further down the input, so runs
// of headwords share the block that follows them. That lookahead stops at the
// end of input, leaving the entry empty.
func BuildWithStats(lines []string, rules markup.Rules) ([]domain.DictionaryEntry, Stats) {
	stats := Stats{TotalLines: len(lines)}
	entries := make([]domain.DictionaryEntry, 0, len(lines)/2)

	// ahead caches the last lookahead result so a run of headwords scans the
	// input once. It stays valid while it points past the current line;
	// noDefinition is final.
	ahead, scanned := noDefinition, false

	for i, line := range lines {
		switch classify(line, rules) {
		case kindBlank:
			stats.BlankLines++
			continue
		case kindMetadata:
			stats.MetadataLines++
			continue
		case kindDefinition:
			stats.DefinitionLines++
			if len(entries) == 0 {
				stats.OrphanDefinitions++
				continue
			}
			last := len(entries) - 1
			entries[last].Definitions = append(entries[last].Definitions, markup.Format(line, rules))
			continue
		}

		if n := len(entries); n > 0 && len(entries[n-1].Definitions) == 0 {
			if !scanned || (ahead != noDefinition && ahead <= i) {
				ahead, scanned = nextDefinition(lines, i+1, rules), true
			}
			if ahead != noDefinition {
				entries[n-1].Definitions = append(entries[n-1].Definitions, markup.Format(lines[ahead], rules))
				stats.GroupedHeadwords++
			} else {
				stats.UnresolvedGroups++
			}
		}

		entries = append(entries, domain.DictionaryEntry{
			Word:        markup.Format(line, rules),
			Definitions: []string{},
		})
		stats.Headwords++
	}

	return entries, stats
}

const noDefinition = -1

// nextDefinition returns the index of the first definition line at or after
// from, or noDefinition when the input ends first.
func nextDefinition(lines []string, from int, rules markup.Rules) int {
	for j := from; j < len(lines); j++ {
		if classify(lines[j], rules) == kindDefinition {
			return j
		}
	}
	return noDefinition
}
