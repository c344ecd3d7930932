// Package testutil provides shared test helpers for creating config files and a fake Jisho API.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// SampleResponse is a Jisho API body with a single common word.
const SampleResponse = `{
  "meta": {"status": 200},
  "data": [
    {
      "slug": "道具",
      "is_common": true,
      "tags": ["wanikani8"],
      "jlpt": ["jlpt-n4"],
      "japanese": [{"word": "道具", "reading": "どうぐ"}],
      "senses": [
        {"english_definitions": ["Tool", "implement"], "parts_of_speech": ["Noun"]}
      ],
      "attribution": {"jmdict": true, "jmnedict": false, "dbpedia": false}
    }
  ]
}`

// PDFFontPath returns the path of a UTF-8 TrueType font for rendering PDFs in tests.
// DejaVu has no CJK glyphs, but it is embedded the same way as a Japanese font.
func PDFFontPath(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Join(filepath.Dir(file), "testdata", "DejaVuSansCondensed.ttf")
}

// SetupTestConfig creates a config file pointing the Jisho client at baseURL,
// a sheet directory under tmpDir and the test PDF font. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, baseURL string) string {
	t.Helper()

	sheetDirectory := filepath.Join(tmpDir, "sheets")
	require.NoError(t, os.MkdirAll(sheetDirectory, 0755))

	configContent := fmt.Sprintf(`dictionaries:
  jisho:
    base_url: %s
    user_agent: jisho-test
outputs:
  format: json
  sheet_directory: %s
  pdf_font: %s
`,
		baseURL,
		sheetDirectory,
		PDFFontPath(t),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// JishoServer is a fake Jisho search API recording the keywords it receives.
type JishoServer struct {
	*httptest.Server

	mu       sync.Mutex
	keywords []string
}

// JishoServerOption configures the response of a JishoServer.
type JishoServerOption func(*jishoServerConfig)

type jishoServerConfig struct {
	status int
	body   string
}

// WithStatus sets the HTTP status code of every response.
func WithStatus(status int) JishoServerOption {
	return func(cfg *jishoServerConfig) {
		cfg.status = status
	}
}

// WithBody sets the body of every response.
func WithBody(body string) JishoServerOption {
	return func(cfg *jishoServerConfig) {
		cfg.body = body
	}
}

// NewJishoServer starts a server answering every request with SampleResponse and status 200
// unless overridden. It is closed when the test finishes.
func NewJishoServer(t *testing.T, opts ...JishoServerOption) *JishoServer {
	t.Helper()

	cfg := jishoServerConfig{
		status: http.StatusOK,
		body:   SampleResponse,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	server := &JishoServer{}
	server.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		server.mu.Lock()
		server.keywords = append(server.keywords, r.URL.Query().Get("keyword"))
		server.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(cfg.status)
		_, _ = w.Write([]byte(cfg.body))
	}))
	t.Cleanup(server.Close)
	return server
}

// Keywords returns the decoded keyword parameters received so far, in order.
func (s *JishoServer) Keywords() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.keywords...)
}
