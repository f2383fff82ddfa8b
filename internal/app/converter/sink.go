package converter

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/dslconv/internal/adapter/jsonfile"
	"github.com/heartmarshall/dslconv/internal/domain"
	"github.com/heartmarshall/dslconv/internal/dsl"
	"github.com/heartmarshall/dslconv/internal/dsl/markup"
)

// Sink receives every successfully converted dictionary.
type Sink interface {
	Name() string
	Write(ctx context.Context, d dsl.Dictionary, res *FileResult) error
}

// outputClaimer is implemented by sinks whose inputs may collide on one output.
type outputClaimer interface {
	claimOutputs(paths []string) map[int]error
}

// ---------------------------------------------------------------------------
// JSON
// ---------------------------------------------------------------------------

// JSONSink writes each dictionary to a JSON file.
type JSONSink struct {
	// Output, when set, is the exact file written. Only valid for a single input.
	Output string
	// OutputDir receives <name>.json per input; empty means next to the input.
	OutputDir string
	Pretty    bool
}

func (s JSONSink) Name() string { return "json" }

// OutputPath returns the file the dictionary read from input is written to.
func (s JSONSink) OutputPath(input string) string {
	if s.Output != "" {
		return s.Output
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ".json"
	if s.OutputDir != "" {
		return filepath.Join(s.OutputDir, base)
	}
	return filepath.Join(filepath.Dir(input), base)
}

// claimOutputs maps each path to its output file and fails every input whose
// file was already claimed by an earlier one. The first claim wins.
func (s JSONSink) claimOutputs(paths []string) map[int]error {
	owners := make(map[string]string, len(paths))
	conflicts := make(map[int]error)
	for i, path := range paths {
		out := s.OutputPath(path)
		key := filepath.Clean(out)
		if abs, err := filepath.Abs(out); err == nil {
			key = abs
		}
		if owner, ok := owners[key]; ok {
			conflicts[i] = fmt.Errorf("%s: %w: %s", out, domain.ErrOutputTaken, owner)
			continue
		}
		owners[key] = path
	}
	return conflicts
}

func (s JSONSink) Write(_ context.Context, d dsl.Dictionary, res *FileResult) error {
	out := s.OutputPath(d.Path)
	if err := jsonfile.Write(out, d.Entries, jsonfile.Options{Pretty: s.Pretty}); err != nil {
		return err
	}
	res.Output = out
	return nil
}

// ---------------------------------------------------------------------------
// PostgreSQL
// ---------------------------------------------------------------------------

// StoreSink imports each dictionary into the store in one transaction.
// A dictionary previously imported from the same path is replaced.
type StoreSink struct {
	Store     DictionaryStore
	Tx        TxRunner
	Markup    string
	BatchSize int
}

func (s StoreSink) Name() string { return "postgres" }

func (s StoreSink) Write(ctx context.Context, d dsl.Dictionary, res *FileResult) error {
	source := d.Path
	if abs, err := filepath.Abs(d.Path); err == nil {
		source = abs
	}

	dict := &domain.Dictionary{
		Name:             dictionaryName(d),
		SourcePath:       source,
		IndexLanguage:    d.Header.IndexLanguage,
		ContentsLanguage: d.Header.ContentsLanguage,
		Markup:           s.Markup,
		EntryCount:       len(d.Entries),
	}

	var inserted, replaced int
	err := s.Tx.RunInTx(ctx, func(ctx context.Context) error {
		n, err := s.Store.DeleteDictionariesBySource(ctx, source)
		if err != nil {
			return fmt.Errorf("delete previous import: %w", err)
		}
		replaced = n

		if err := s.Store.CreateDictionary(ctx, dict); err != nil {
			return fmt.Errorf("create dictionary: %w", err)
		}

		inserted, err = batchProcess(toStoredEntries(dict, d.Entries), s.BatchSize, func(batch []domain.StoredEntry) (int, error) {
			return s.Store.BulkInsertEntries(ctx, batch)
		})
		if err != nil {
			return fmt.Errorf("insert entries: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	res.DictionaryID = dict.ID
	res.Inserted = inserted
	res.Replaced = replaced
	return nil
}

func dictionaryName(d dsl.Dictionary) string {
	if d.Header.Name != "" {
		return d.Header.Name
	}
	return strings.TrimSuffix(filepath.Base(d.Path), filepath.Ext(d.Path))
}

func toStoredEntries(dict *domain.Dictionary, entries []domain.DictionaryEntry) []domain.StoredEntry {
	out := make([]domain.StoredEntry, len(entries))
	for i, e := range entries {
		plain := make([]string, len(e.Definitions))
		for j, def := range e.Definitions {
			plain[j] = markup.PlainText(def)
		}
		c := e.Clone()

		out[i] = domain.StoredEntry{
			DictionaryID:     dict.ID,
			Position:         i,
			Word:             c.Word,
			WordNormalized:   domain.NormalizeText(c.Word),
			Definitions:      c.Definitions,
			PlainDefinitions: plain,
		}
	}
	return out
}

// batchProcess splits items into batches of batchSize and calls fn for each.
// Returns the total count from all successful calls.
func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
