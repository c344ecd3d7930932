package jisho

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const toolResponse = `{
	"meta": {"status": 200},
	"data": [{
		"slug": "道具",
		"is_common": true,
		"tags": ["wanikani8"],
		"jlpt": ["jlpt-n4"],
		"japanese": [{"word": "道具", "reading": "どうぐ"}],
		"senses": [{"english_definitions": ["tool", "implement"], "parts_of_speech": ["Noun"]}],
		"attribution": {"jmdict": true, "jmnedict": false, "dbpedia": false}
	}]
}`

var toolRecord = Record{
	Slug:          "道具",
	IsCommon:      true,
	JLPTLevel:     "N4",
	WaniKaniLevel: "8",
	Reading:       "どうぐ",
	Meanings:      []string{"tool", "implement"},
	WordTypes:     []string{"noun"},
}

func newTestServer(t *testing.T, status int, body string, gotKeyword *string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "jisho-test", r.Header.Get("User-Agent"))
		if gotKeyword != nil {
			*gotKeyword = r.URL.Query().Get("keyword")
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, &calls
}

func newTestClient(server *httptest.Server) *Client {
	return NewClient(Config{
		BaseURL:   server.URL,
		UserAgent: "jisho-test",
	})
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(Config{})
	assert.Equal(t, DefaultBaseURL, client.config.BaseURL)
	assert.Equal(t, DefaultUserAgent, client.config.UserAgent)
	assert.NotNil(t, client.httpClient)
}

func TestClient_Lookups(t *testing.T) {
	tests := []struct {
		name        string
		lookup      func(ctx context.Context, c *Client) ([]Record, error)
		wantKeyword string
	}{
		{
			name: "Lookup",
			lookup: func(ctx context.Context, c *Client) ([]Record, error) {
				return c.Lookup(ctx, "道具", false)
			},
			wantKeyword: "道具",
		},
		{
			name: "Lookup common",
			lookup: func(ctx context.Context, c *Client) ([]Record, error) {
				return c.Lookup(ctx, "道具", true)
			},
			wantKeyword: "#common 道具",
		},
		{
			name: "LookupCommon",
			lookup: func(ctx context.Context, c *Client) ([]Record, error) {
				return c.LookupCommon(ctx, "道具")
			},
			wantKeyword: "#common 道具",
		},
		{
			name: "LookupPrefix",
			lookup: func(ctx context.Context, c *Client) ([]Record, error) {
				return c.LookupPrefix(ctx, "同", false)
			},
			wantKeyword: "同*",
		},
		{
			name: "LookupPrefix common",
			lookup: func(ctx context.Context, c *Client) ([]Record, error) {
				return c.LookupPrefix(ctx, "同", true)
			},
			wantKeyword: "#common 同*",
		},
		{
			name: "LookupSuffix",
			lookup: func(ctx context.Context, c *Client) ([]Record, error) {
				return c.LookupSuffix(ctx, "同", false)
			},
			wantKeyword: "*同",
		},
		{
			name: "LookupByJLPT",
			lookup: func(ctx context.Context, c *Client) ([]Record, error) {
				return c.LookupByJLPT(ctx, "地", "N3")
			},
			wantKeyword: "#jlpt-n3 地",
		},
		{
			name: "LookupByJLPT with a number",
			lookup: func(ctx context.Context, c *Client) ([]Record, error) {
				return c.LookupByJLPT(ctx, "地", 3)
			},
			wantKeyword: "#jlpt-n3 地",
		},
		{
			name: "LookupWasei",
			lookup: func(ctx context.Context, c *Client) ([]Record, error) {
				return c.LookupWasei(ctx, "ボ", false)
			},
			wantKeyword: "#wasei ボ",
		},
		{
			name: "LookupWasei common",
			lookup: func(ctx context.Context, c *Client) ([]Record, error) {
				return c.LookupWasei(ctx, "ボ", true)
			},
			wantKeyword: "#common #wasei ボ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotKeyword string
			server, calls := newTestServer(t, http.StatusOK, toolResponse, &gotKeyword)

			got, err := tt.lookup(context.Background(), newTestClient(server))
			require.NoError(t, err)
			assert.Equal(t, []Record{toolRecord}, got)
			assert.Equal(t, tt.wantKeyword, gotKeyword)
			assert.Equal(t, int32(1), calls.Load())
		})
	}
}

func TestClient_Lookup_RequestFailed(t *testing.T) {
	server, calls := newTestServer(t, http.StatusInternalServerError, `{"meta":{"status":500}}`, nil)

	got, err := newTestClient(server).Lookup(context.Background(), "道具", true)
	assert.Nil(t, got)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteRequestFailed)

	var requestErr *RequestError
	require.True(t, errors.As(err, &requestErr))
	assert.Equal(t, http.StatusInternalServerError, requestErr.StatusCode)
	assert.Equal(t, "#common 道具", requestErr.Query)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "#common 道具")
	assert.Equal(t, int32(1), calls.Load(), "failed requests must not be retried")
}

func TestClient_Lookup_UnexpectedShape(t *testing.T) {
	server, _ := newTestServer(t, http.StatusOK, `{"data":[{"slug":"broken","japanese":[]}]}`, nil)

	got, err := newTestClient(server).Lookup(context.Background(), "broken", false)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrUnexpectedShape)
}

func TestClient_InvalidArguments(t *testing.T) {
	server, calls := newTestServer(t, http.StatusOK, toolResponse, nil)
	client := newTestClient(server)
	ctx := context.Background()

	lookups := map[string]func() ([]Record, error){
		"Lookup":        func() ([]Record, error) { return client.Lookup(ctx, "", false) },
		"LookupCommon":  func() ([]Record, error) { return client.LookupCommon(ctx, "") },
		"LookupPrefix":  func() ([]Record, error) { return client.LookupPrefix(ctx, "", false) },
		"LookupSuffix":  func() ([]Record, error) { return client.LookupSuffix(ctx, "", true) },
		"LookupWasei":   func() ([]Record, error) { return client.LookupWasei(ctx, "", true) },
		"LookupByJLPT":  func() ([]Record, error) { return client.LookupByJLPT(ctx, "", "N3") },
		"invalid level": func() ([]Record, error) { return client.LookupByJLPT(ctx, "地", "level 3") },
	}
	for name, lookup := range lookups {
		t.Run(name, func(t *testing.T) {
			got, err := lookup()
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
	assert.Equal(t, int32(0), calls.Load())
}

func TestClient_LookupKanjiByGrade(t *testing.T) {
	server, calls := newTestServer(t, http.StatusOK, toolResponse, nil)

	got, err := newTestClient(server).LookupKanjiByGrade(context.Background(), 1)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Equal(t, int32(0), calls.Load())
}

func TestClient_Lookup_CanceledContext(t *testing.T) {
	server, _ := newTestServer(t, http.StatusOK, toolResponse, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(server).Lookup(ctx, "道具", false)
	assert.ErrorIs(t, err, context.Canceled)
}
