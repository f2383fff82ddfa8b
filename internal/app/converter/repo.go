package converter

import (
	"context"

	"github.com/heartmarshall/dslconv/internal/domain"
)

// DictionaryStore is the persistence contract consumed by StoreSink.
// All methods use only domain types; implemented by dictentry.Repo.
type DictionaryStore interface {
	CreateDictionary(ctx context.Context, d *domain.Dictionary) error
	DeleteDictionariesBySource(ctx context.Context, sourcePath string) (int, error)
	// BulkInsertEntries skips rows that already exist (ON CONFLICT DO NOTHING)
	// and returns the number actually inserted.
	BulkInsertEntries(ctx context.Context, entries []domain.StoredEntry) (int, error)
}

// TxRunner runs fn in one transaction carried by the ctx passed to fn.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
