package jisho

import (
	"fmt"
	"net/url"
	"strings"
)

// Filter is a search token understood by the Jisho search syntax.
type Filter string

const (
	FilterCommon Filter = "#common"
	FilterWasei  Filter = "#wasei"
)

// FilterJLPT returns the #jlpt-nX filter for the given level. See NormalizeJLPT for accepted inputs.
func FilterJLPT(level any) (Filter, error) {
	normalized, err := NormalizeJLPT(level)
	if err != nil {
		return "", err
	}
	return Filter("#jlpt-" + normalized), nil
}

// Query is an ordered list of search tokens: filters first, the term last.
type Query struct {
	tokens []string
}

// NewQuery builds a query for term. #common is always placed first; the other
// filters keep the order they were given in.
func NewQuery(term string, filters ...Filter) (Query, error) {
	if err := validateTerm(term); err != nil {
		return Query{}, err
	}

	tokens := make([]string, 0, len(filters)+1)
	common := false
	for _, filter := range filters {
		if filter == "" {
			return Query{}, fmt.Errorf("%w: filter value '%s' is empty", ErrInvalidArgument, filter)
		}
		if filter == FilterCommon {
			common = true
			continue
		}
		tokens = append(tokens, string(filter))
	}
	tokens = append(tokens, term)
	if common {
		tokens = append([]string{string(FilterCommon)}, tokens...)
	}
	return Query{tokens: tokens}, nil
}

// Tokens returns a copy of the query tokens.
func (q Query) Tokens() []string {
	return append([]string(nil), q.tokens...)
}

// String returns the literal query, tokens joined by a single space.
func (q Query) String() string {
	return strings.Join(q.tokens, " ")
}

// Keyword percent-encodes each token on its own and joins them with a single space.
func (q Query) Keyword() string {
	encoded := make([]string, 0, len(q.tokens))
	for _, token := range q.tokens {
		encoded = append(encoded, encodeToken(token))
	}
	return strings.Join(encoded, " ")
}

// URL appends the keyword parameter to baseURL.
func (q Query) URL(baseURL string) string {
	return baseURL + "?keyword=" + q.Keyword()
}

// requestURL is URL with the separating spaces escaped, as sent on the wire.
func (q Query) requestURL(baseURL string) string {
	return baseURL + "?keyword=" + strings.ReplaceAll(q.Keyword(), " ", "%20")
}

// LookupQuery is the query of a plain lookup, restricted to common words when common is set.
func LookupQuery(term string, common bool) (Query, error) {
	var filters []Filter
	if common {
		filters = append(filters, FilterCommon)
	}
	return NewQuery(term, filters...)
}

// PrefixQuery matches words starting with term.
func PrefixQuery(term string, common bool) (Query, error) {
	if err := validateTerm(term); err != nil {
		return Query{}, err
	}
	return LookupQuery(term+"*", common)
}

// SuffixQuery matches words ending with term.
func SuffixQuery(term string, common bool) (Query, error) {
	if err := validateTerm(term); err != nil {
		return Query{}, err
	}
	return LookupQuery("*"+term, common)
}

// JLPTQuery restricts term to the words of a JLPT level. See NormalizeJLPT for accepted levels.
func JLPTQuery(term string, level any) (Query, error) {
	if err := validateTerm(term); err != nil {
		return Query{}, err
	}
	filter, err := FilterJLPT(level)
	if err != nil {
		return Query{}, err
	}
	return NewQuery(term, filter)
}

// WaseiQuery matches wasei-eigo words.
func WaseiQuery(term string, common bool) (Query, error) {
	filters := []Filter{FilterWasei}
	if common {
		filters = append(filters, FilterCommon)
	}
	return NewQuery(term, filters...)
}

// BuildQuery returns the request URL for term and filters without performing any I/O.
func BuildQuery(baseURL, term string, filters ...Filter) (string, error) {
	q, err := NewQuery(term, filters...)
	if err != nil {
		return "", err
	}
	return q.URL(baseURL), nil
}

// encodeToken escapes every reserved character, spaces included, as %XX.
func encodeToken(token string) string {
	return strings.ReplaceAll(url.QueryEscape(token), "+", "%20")
}
