package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/jisho/internal/dictionary/jisho"
	mock_dictionary "github.com/at-ishikawa/jisho/internal/mocks/dictionary"
	"github.com/at-ishikawa/jisho/internal/testutil"
)

var testRecords = []jisho.Record{
	{
		Slug:          "道具",
		IsCommon:      true,
		JLPTLevel:     "N4",
		WaniKaniLevel: "8",
		Reading:       "どうぐ",
		Meanings:      []string{"tool", "implement"},
		WordTypes:     []string{"noun"},
	},
	{
		Slug:      "道具立て",
		Reading:   "どうぐだて",
		Meanings:  []string{"preparations"},
		WordTypes: []string{},
	},
}

func newTestLookupCLI(t *testing.T, dict *mock_dictionary.MockDictionary, format Format) (*LookupCLI, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	var buf bytes.Buffer
	cli := NewLookupCLI(dict, format, "", testutil.PDFFontPath(t))
	cli.stdoutWriter = &buf
	return cli, &buf
}

func TestLookupCLI_Run(t *testing.T) {
	search := Search{Kind: SearchWord, Term: "道具", Common: true}

	tests := []struct {
		name   string
		format Format
		check  func(t *testing.T, output string)
	}{
		{
			name:   "table",
			format: FormatTable,
			check: func(t *testing.T, output string) {
				assert.Equal(t, "1: 道具 [どうぐ] (common, JLPT N4, WaniKani 8)\n"+
					"\tnoun\n"+
					"\ttool; implement\n"+
					"2: 道具立て [どうぐだて]\n"+
					"\tpreparations\n", output)
			},
		},
		{
			name:   "json",
			format: FormatJSON,
			check: func(t *testing.T, output string) {
				var got []jisho.Record
				require.NoError(t, json.Unmarshal([]byte(output), &got))
				assert.Equal(t, testRecords, got)
				assert.Contains(t, output, `"slug": "道具"`)
				assert.Contains(t, output, `"wanikani_level": "8"`)
			},
		},
		{
			name:   "yaml",
			format: FormatYAML,
			check: func(t *testing.T, output string) {
				var got []jisho.Record
				require.NoError(t, yaml.Unmarshal([]byte(output), &got))
				assert.Equal(t, testRecords, got)
				assert.Contains(t, output, `wanikani_level: "8"`)
			},
		},
		{
			name:   "markdown",
			format: FormatMarkdown,
			check: func(t *testing.T, output string) {
				assert.Contains(t, output, "# 道具 (common)\n\nSearch: `#common 道具`\n")
				assert.Contains(t, output, "## 道具立て (どうぐだて)\n\n- Meanings: preparations\n")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			dict := mock_dictionary.NewMockDictionary(ctrl)
			dict.EXPECT().Lookup(gomock.Any(), "道具", true).Return(testRecords, nil)

			cli, buf := newTestLookupCLI(t, dict, tt.format)
			got, err := cli.Run(context.Background(), search)
			require.NoError(t, err)
			assert.Equal(t, testRecords, got)
			tt.check(t, buf.String())
		})
	}
}

func TestLookupCLI_Run_NoResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	dict := mock_dictionary.NewMockDictionary(ctrl)
	dict.EXPECT().LookupWasei(gomock.Any(), "xyz", false).Return([]jisho.Record{}, nil)

	cli, buf := newTestLookupCLI(t, dict, FormatTable)
	_, err := cli.Run(context.Background(), Search{Kind: SearchWasei, Term: "xyz"})
	require.NoError(t, err)
	assert.Equal(t, "No results\n", buf.String())
}

func TestLookupCLI_Run_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	dict := mock_dictionary.NewMockDictionary(ctrl)
	requestErr := &jisho.RequestError{StatusCode: 500, Query: "#common 道具"}
	dict.EXPECT().Lookup(gomock.Any(), "道具", true).Return(nil, requestErr)

	cli, buf := newTestLookupCLI(t, dict, FormatTable)
	got, err := cli.Run(context.Background(), Search{Kind: SearchWord, Term: "道具", Common: true})
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, jisho.ErrRemoteRequestFailed))
	assert.Empty(t, buf.String())
}

func TestLookupCLI_ExportSheet(t *testing.T) {
	ctrl := gomock.NewController(t)
	cli, _ := newTestLookupCLI(t, mock_dictionary.NewMockDictionary(ctrl), FormatTable)
	search := Search{Kind: SearchPrefix, Term: "道"}
	records := []jisho.Record{{Slug: "道具", Reading: "どうぐ", Meanings: []string{"tool"}, WordTypes: []string{"noun"}}}

	t.Run("writes markdown and pdf", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "sheets")
		markdownPath, pdfPath, err := cli.ExportSheet(dir, "tools", search, records)
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(dir, "tools.md"), markdownPath)
		content, err := os.ReadFile(markdownPath)
		require.NoError(t, err)
		assert.Equal(t, "# 道 (starting with)\n\nSearch: `道*`\n\n## 道具 (どうぐ)\n\n- Type: noun\n- Meanings: tool\n", string(content))

		assert.Equal(t, filepath.Join(dir, "tools.pdf"), pdfPath)
		pdfContent, err := os.ReadFile(pdfPath)
		require.NoError(t, err)
		assert.Contains(t, string(pdfContent), "/Encoding /Identity-H")
	})

	t.Run("name with md extension", func(t *testing.T) {
		dir := t.TempDir()
		markdownPath, _, err := cli.ExportSheet(dir, "tools.md", search, records)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "tools.md"), markdownPath)
	})

	t.Run("markdown only without a pdf font", func(t *testing.T) {
		markdownOnly := NewLookupCLI(mock_dictionary.NewMockDictionary(ctrl), FormatTable, "", "")
		dir := t.TempDir()
		markdownPath, pdfPath, err := markdownOnly.ExportSheet(dir, "tools", search, records)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "tools.md"), markdownPath)
		assert.Empty(t, pdfPath)
		assert.NoFileExists(t, filepath.Join(dir, "tools.pdf"))
	})

	t.Run("invalid name", func(t *testing.T) {
		for _, name := range []string{"", "../tools", `a\b`} {
			_, _, err := cli.ExportSheet(t.TempDir(), name, search, records)
			assert.Error(t, err, name)
		}
	})
}
