package jisho

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseURL   = "https://jisho.org/api/v1/search/words"
	DefaultUserAgent = "jisho-go"
)

type Config struct {
	BaseURL   string
	UserAgent string
}

// Client looks words up through the Jisho search API.
// It keeps no state between calls and is safe for concurrent use.
type Client struct {
	httpClient *resty.Client
	config     Config
}

func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}

	httpClient := resty.New()
	httpClient.SetHeader("Content-Type", "application/json")
	httpClient.SetHeader("Accept", "application/json")
	httpClient.SetHeader("User-Agent", config.UserAgent)

	return &Client{
		httpClient: httpClient,
		config:     config,
	}
}

// Lookup searches for term, optionally restricted to common words.
func (c *Client) Lookup(ctx context.Context, term string, common bool) ([]Record, error) {
	query, err := LookupQuery(term, common)
	if err != nil {
		return nil, err
	}
	return c.search(ctx, query)
}

func (c *Client) LookupCommon(ctx context.Context, term string) ([]Record, error) {
	return c.Lookup(ctx, term, true)
}

// LookupPrefix searches for words starting with term.
func (c *Client) LookupPrefix(ctx context.Context, term string, common bool) ([]Record, error) {
	query, err := PrefixQuery(term, common)
	if err != nil {
		return nil, err
	}
	return c.search(ctx, query)
}

// LookupSuffix searches for words ending with term.
func (c *Client) LookupSuffix(ctx context.Context, term string, common bool) ([]Record, error) {
	query, err := SuffixQuery(term, common)
	if err != nil {
		return nil, err
	}
	return c.search(ctx, query)
}

// LookupByJLPT searches for term among the words of a JLPT level. See NormalizeJLPT for accepted levels.
func (c *Client) LookupByJLPT(ctx context.Context, term string, level any) ([]Record, error) {
	query, err := JLPTQuery(term, level)
	if err != nil {
		return nil, err
	}
	return c.search(ctx, query)
}

// LookupWasei searches for wasei-eigo words matching term.
func (c *Client) LookupWasei(ctx context.Context, term string, common bool) ([]Record, error) {
	query, err := WaseiQuery(term, common)
	if err != nil {
		return nil, err
	}
	return c.search(ctx, query)
}

// LookupKanjiByGrade always fails: only the jisho.org web pages can list kanji by school grade.
func (c *Client) LookupKanjiByGrade(_ context.Context, grade int) ([]Record, error) {
	return nil, fmt.Errorf("%w: kanji lookup by grade %d is only available on the jisho.org web pages", ErrUnsupported, grade)
}

func (c *Client) search(ctx context.Context, query Query) ([]Record, error) {
	slog.Default().Debug("Executing Jisho API call",
		slog.String("url", query.URL(c.config.BaseURL)),
	)
	res, err := c.httpClient.R().
		SetContext(ctx).
		Get(query.requestURL(c.config.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, &RequestError{
			StatusCode: res.StatusCode(),
			Query:      query.String(),
		}
	}

	records, err := NormalizeJSON(res.Body())
	if err != nil {
		return nil, fmt.Errorf("NormalizeJSON(%s) > %w", query.String(), err)
	}
	slog.Default().Debug("Response received",
		slog.String("query", query.String()),
		slog.Int("records", len(records)),
	)
	return records, nil
}

func validateTerm(term string) error {
	if term == "" {
		return fmt.Errorf("%w: query value '%s' is incompatible. It must be a non-empty string", ErrInvalidArgument, term)
	}
	return nil
}
