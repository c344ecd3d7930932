package assets

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/at-ishikawa/jisho/internal/dictionary/jisho"
)

const vocabularySheetTemplateName = "vocabulary-sheet.md.go.tmpl"

//go:embed templates/vocabulary-sheet.md.go.tmpl
var fallbackVocabularySheetTemplate string

// VocabularySheet is the data passed to the vocabulary sheet template
type VocabularySheet struct {
	Title string
	Query string
	Words []jisho.Record
}

// WriteVocabularySheet renders sheet as markdown. The embedded template is used when
// templatePath is empty or cannot be parsed.
func WriteVocabularySheet(output io.Writer, templatePath string, sheet VocabularySheet) error {
	tmpl, err := parseTemplateWithFallback(templatePath, vocabularySheetTemplateName, fallbackVocabularySheetTemplate)
	if err != nil {
		return fmt.Errorf("parseTemplateWithFallback() > %w", err)
	}
	if err := tmpl.Execute(output, sheet); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
