package dictionary

import (
	"context"

	"github.com/at-ishikawa/jisho/internal/dictionary/jisho"
)

//go:generate mockgen -source=dictionary.go -destination=../mocks/dictionary/mock_dictionary.go -package=mock_dictionary

// Dictionary is the lookup surface of a Japanese dictionary service.
type Dictionary interface {
	Lookup(ctx context.Context, term string, common bool) ([]jisho.Record, error)
	LookupCommon(ctx context.Context, term string) ([]jisho.Record, error)
	LookupPrefix(ctx context.Context, term string, common bool) ([]jisho.Record, error)
	LookupSuffix(ctx context.Context, term string, common bool) ([]jisho.Record, error)
	LookupByJLPT(ctx context.Context, term string, level any) ([]jisho.Record, error)
	LookupWasei(ctx context.Context, term string, common bool) ([]jisho.Record, error)
	LookupKanjiByGrade(ctx context.Context, grade int) ([]jisho.Record, error)
}

var _ Dictionary = (*jisho.Client)(nil)
