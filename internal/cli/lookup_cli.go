package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/jisho/internal/assets"
	"github.com/at-ishikawa/jisho/internal/dictionary"
	"github.com/at-ishikawa/jisho/internal/dictionary/jisho"
	"github.com/at-ishikawa/jisho/internal/pdf"
)

// LookupCLI runs searches against a dictionary and prints the results.
type LookupCLI struct {
	dictionary   dictionary.Dictionary
	format       Format
	templatePath string
	pdfFont      string
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
	tag          *color.Color
}

// NewLookupCLI creates a LookupCLI. pdfFont is the TrueType font used for sheet PDFs; without it
// sheets are exported as markdown only.
func NewLookupCLI(dict dictionary.Dictionary, format Format, templatePath string, pdfFont string) *LookupCLI {
	return &LookupCLI{
		dictionary:   dict,
		format:       format,
		templatePath: templatePath,
		pdfFont:      pdfFont,
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		tag:          color.New(color.FgCyan),
	}
}

// Run performs the search and writes the records in the configured format.
func (cli *LookupCLI) Run(ctx context.Context, search Search) ([]jisho.Record, error) {
	records, err := search.Run(ctx, cli.dictionary)
	if err != nil {
		return nil, fmt.Errorf("search.Run(%s) > %w", search.Kind, err)
	}
	if err := cli.Write(search, records); err != nil {
		return nil, err
	}
	return records, nil
}

func (cli *LookupCLI) Write(search Search, records []jisho.Record) error {
	switch cli.format {
	case FormatJSON:
		encoder := json.NewEncoder(cli.stdoutWriter)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)
		if err := encoder.Encode(records); err != nil {
			return fmt.Errorf("encoder.Encode > %w", err)
		}
	case FormatYAML:
		encoder := yaml.NewEncoder(cli.stdoutWriter)
		encoder.SetIndent(2)
		if err := encoder.Encode(records); err != nil {
			return fmt.Errorf("yaml.Encoder.Encode > %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("yaml.Encoder.Close > %w", err)
		}
	case FormatMarkdown:
		if err := assets.WriteVocabularySheet(cli.stdoutWriter, cli.templatePath, cli.sheet(search, records)); err != nil {
			return fmt.Errorf("assets.WriteVocabularySheet > %w", err)
		}
	case FormatTable:
		fallthrough
	default:
		return cli.writeTable(records)
	}
	return nil
}

func (cli *LookupCLI) writeTable(records []jisho.Record) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(cli.stdoutWriter, "No results")
		return err
	}
	for i, record := range records {
		var tags []string
		if record.IsCommon {
			tags = append(tags, "common")
		}
		if record.JLPTLevel != "" {
			tags = append(tags, "JLPT "+record.JLPTLevel)
		}
		if record.WaniKaniLevel != "" {
			tags = append(tags, "WaniKani "+record.WaniKaniLevel)
		}

		line := fmt.Sprintf("%d: %s", i+1, cli.bold.Sprint(record.Slug))
		if record.Reading != "" {
			line += fmt.Sprintf(" [%s]", record.Reading)
		}
		if len(tags) > 0 {
			line += " " + cli.tag.Sprintf("(%s)", strings.Join(tags, ", "))
		}
		if _, err := fmt.Fprintln(cli.stdoutWriter, line); err != nil {
			return err
		}
		if len(record.WordTypes) > 0 {
			if _, err := fmt.Fprintf(cli.stdoutWriter, "\t%s\n", cli.italic.Sprint(strings.Join(record.WordTypes, ", "))); err != nil {
				return err
			}
		}
		if len(record.Meanings) > 0 {
			if _, err := fmt.Fprintf(cli.stdoutWriter, "\t%s\n", strings.Join(record.Meanings, "; ")); err != nil {
				return err
			}
		}
	}
	return nil
}

func (cli *LookupCLI) sheet(search Search, records []jisho.Record) assets.VocabularySheet {
	query, err := search.Query()
	if err != nil {
		query = ""
	}
	return assets.VocabularySheet{
		Title: search.Title(),
		Query: query,
		Words: records,
	}
}

// ExportSheet writes the records as <directory>/<name>.md and renders it to a PDF next to it.
// It returns the paths of both files. The PDF path is empty when no PDF font is configured.
func (cli *LookupCLI) ExportSheet(directory, name string, search Search, records []jisho.Record) (string, string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", "", fmt.Errorf("invalid sheet name: %q", name)
	}
	if err := os.MkdirAll(directory, 0755); err != nil {
		return "", "", fmt.Errorf("os.MkdirAll(%s) > %w", directory, err)
	}

	markdownPath := filepath.Join(directory, strings.TrimSuffix(name, ".md")+".md")
	file, err := os.Create(markdownPath)
	if err != nil {
		return "", "", fmt.Errorf("os.Create(%s) > %w", markdownPath, err)
	}
	defer func() {
		_ = file.Close()
	}()
	if err := assets.WriteVocabularySheet(file, cli.templatePath, cli.sheet(search, records)); err != nil {
		return "", "", fmt.Errorf("assets.WriteVocabularySheet > %w", err)
	}
	if err := file.Close(); err != nil {
		return "", "", fmt.Errorf("file.Close > %w", err)
	}

	if cli.pdfFont == "" {
		slog.Default().Warn("skipped the PDF of a vocabulary sheet. Set outputs.pdf_font to a TrueType font with Japanese glyphs",
			slog.String("markdown", markdownPath),
		)
		return markdownPath, "", nil
	}
	pdfPath, err := pdf.ConvertMarkdownToPDF(markdownPath, cli.pdfFont)
	if err != nil {
		return markdownPath, "", fmt.Errorf("pdf.ConvertMarkdownToPDF > %w", err)
	}
	return markdownPath, pdfPath, nil
}
