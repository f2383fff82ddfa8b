// Package dictentry persists converted DSL dictionaries and their entries
// in PostgreSQL. Entries are written once per import and never updated.
package dictentry

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/dslconv/internal/adapter/postgres"
	"github.com/heartmarshall/dslconv/internal/domain"
)

const (
	tableDictionaries = "dictionaries"
	tableEntries      = "dictionary_entries"
)

var (
	psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	dictionaryColumns = []string{
		"id", "name", "source_path", "index_language", "contents_language", "markup", "entry_count", "created_at",
	}
	entryColumns = []string{
		"id", "dictionary_id", "position", "word", "word_normalized", "definitions", "plain_definitions", "created_at",
	}
	entryInsertColumns = entryColumns[:len(entryColumns)-1]
)

// DefaultLookupLimit caps FindByWord when the caller passes limit <= 0.
const DefaultLookupLimit = 50

// Repo provides dictionary persistence backed by PostgreSQL. Every method
// runs on the transaction carried by ctx when there is one.
type Repo struct {
	db postgres.Querier
}

// New creates a new dictionary repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// ---------------------------------------------------------------------------
// Dictionaries
// ---------------------------------------------------------------------------

// CreateDictionary inserts d, assigning an ID when d.ID is zero, and fills
// d.CreatedAt from the database.
func (r *Repo) CreateDictionary(ctx context.Context, d *domain.Dictionary) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}

	query, args, err := psql.Insert(tableDictionaries).
		Columns(dictionaryColumns[:len(dictionaryColumns)-1]...).
		Values(d.ID, d.Name, d.SourcePath, d.IndexLanguage, d.ContentsLanguage, d.Markup, d.EntryCount).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert dictionary: %w", err)
	}

	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&d.CreatedAt); err != nil {
		return postgres.MapError(err, "dictionary", d.ID)
	}
	return nil
}

// DeleteDictionariesBySource removes every dictionary imported from
// sourcePath together with its entries. Returns the number of dictionaries removed.
func (r *Repo) DeleteDictionariesBySource(ctx context.Context, sourcePath string) (int, error) {
	query, args, err := psql.Delete(tableDictionaries).
		Where(squirrel.Eq{"source_path": sourcePath}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete dictionaries: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "dictionary", sourcePath)
	}
	return int(tag.RowsAffected()), nil
}

// ListDictionaries returns all imported dictionaries, newest first.
func (r *Repo) ListDictionaries(ctx context.Context) ([]domain.Dictionary, error) {
	query, args, err := psql.Select(dictionaryColumns...).
		From(tableDictionaries).
		OrderBy("created_at DESC", "name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list dictionaries: %w", err)
	}

	var out []domain.Dictionary
	if err := pgxscan.Select(ctx, r.q(ctx), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "dictionary", "list")
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Entries
// ---------------------------------------------------------------------------

// BulkInsertEntries inserts entries with a single multi-row INSERT.
// Rows that collide on (dictionary_id, position) are skipped via
// ON CONFLICT DO NOTHING. Returns the number of actually inserted rows.
func (r *Repo) BulkInsertEntries(ctx context.Context, entries []domain.StoredEntry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	insert := psql.Insert(tableEntries).Columns(entryInsertColumns...)
	for i := range entries {
		e := &entries[i]
		if e.ID == uuid.Nil {
			e.ID = uuid.New()
		}
		insert = insert.Values(
			e.ID, e.DictionaryID, e.Position, e.Word, e.WordNormalized,
			nonNil(e.Definitions), nonNil(e.PlainDefinitions),
		)
	}

	query, args, err := insert.Suffix("ON CONFLICT (dictionary_id, position) DO NOTHING").ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert entries: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "dictionary_entry", entries[0].DictionaryID)
	}
	return int(tag.RowsAffected()), nil
}

// FindByWord returns entries whose normalized headword equals the normalized
// word, across all dictionaries, ordered by dictionary and position.
// Returns domain.ErrNotFound if nothing matches.
func (r *Repo) FindByWord(ctx context.Context, word string, limit int) ([]domain.StoredEntry, error) {
	normalized := domain.NormalizeText(word)
	if normalized == "" {
		return nil, domain.NewValidationError("word", "required")
	}
	if limit <= 0 {
		limit = DefaultLookupLimit
	}

	query, args, err := psql.Select(entryColumns...).
		From(tableEntries).
		Where(squirrel.Eq{"word_normalized": normalized}).
		OrderBy("dictionary_id", "position").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find entries: %w", err)
	}

	var out []domain.StoredEntry
	if err := pgxscan.Select(ctx, r.q(ctx), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "dictionary_entry", normalized)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("dictionary_entry %s: %w", normalized, domain.ErrNotFound)
	}
	return out, nil
}

// CountEntries returns the number of stored entries of a dictionary.
func (r *Repo) CountEntries(ctx context.Context, dictionaryID uuid.UUID) (int, error) {
	query, args, err := psql.Select("count(*)").
		From(tableEntries).
		Where(squirrel.Eq{"dictionary_id": dictionaryID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count entries: %w", err)
	}

	var n int
	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "dictionary", dictionaryID)
	}
	return n, nil
}

// nonNil keeps NOT NULL text[] columns from receiving NULL.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
