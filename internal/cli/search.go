package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/at-ishikawa/jisho/internal/dictionary"
	"github.com/at-ishikawa/jisho/internal/dictionary/jisho"
)

type SearchKind string

const (
	SearchWord   SearchKind = "word"
	SearchCommon SearchKind = "common"
	SearchPrefix SearchKind = "prefix"
	SearchSuffix SearchKind = "suffix"
	SearchJLPT   SearchKind = "jlpt"
	SearchWasei  SearchKind = "wasei"
)

// Search is one lookup requested from the command line.
type Search struct {
	Kind      SearchKind
	Term      string
	Common    bool
	JLPTLevel string
}

// Run dispatches the search to the matching dictionary operation.
func (s Search) Run(ctx context.Context, dict dictionary.Dictionary) ([]jisho.Record, error) {
	switch s.Kind {
	case SearchWord:
		return dict.Lookup(ctx, s.Term, s.Common)
	case SearchCommon:
		return dict.LookupCommon(ctx, s.Term)
	case SearchPrefix:
		return dict.LookupPrefix(ctx, s.Term, s.Common)
	case SearchSuffix:
		return dict.LookupSuffix(ctx, s.Term, s.Common)
	case SearchJLPT:
		return dict.LookupByJLPT(ctx, s.Term, s.JLPTLevel)
	case SearchWasei:
		return dict.LookupWasei(ctx, s.Term, s.Common)
	}
	return nil, fmt.Errorf("unknown search kind: %s", s.Kind)
}

// Query returns the query string the search sends to Jisho.
func (s Search) Query() (string, error) {
	var (
		q   jisho.Query
		err error
	)
	switch s.Kind {
	case SearchWord:
		q, err = jisho.LookupQuery(s.Term, s.Common)
	case SearchCommon:
		q, err = jisho.LookupQuery(s.Term, true)
	case SearchPrefix:
		q, err = jisho.PrefixQuery(s.Term, s.Common)
	case SearchSuffix:
		q, err = jisho.SuffixQuery(s.Term, s.Common)
	case SearchJLPT:
		q, err = jisho.JLPTQuery(s.Term, s.JLPTLevel)
	case SearchWasei:
		q, err = jisho.WaseiQuery(s.Term, s.Common)
	default:
		return "", fmt.Errorf("unknown search kind: %s", s.Kind)
	}
	if err != nil {
		return "", err
	}
	return q.String(), nil
}

// Title is a human readable name of the search, used as the sheet heading.
func (s Search) Title() string {
	parts := []string{s.Term}
	switch s.Kind {
	case SearchPrefix:
		parts = append(parts, "(starting with)")
	case SearchSuffix:
		parts = append(parts, "(ending with)")
	case SearchJLPT:
		level := s.JLPTLevel
		if normalized, err := jisho.NormalizeJLPT(level); err == nil {
			level = normalized
		}
		parts = append(parts, "(JLPT "+strings.ToUpper(level)+")")
	case SearchWasei:
		parts = append(parts, "(wasei-eigo)")
	}
	if s.Common || s.Kind == SearchCommon {
		parts = append(parts, "(common)")
	}
	return strings.Join(parts, " ")
}
