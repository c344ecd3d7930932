package pdf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"
)

// ErrFontRequired is returned when no UTF-8 font is given. The PDF core fonts cannot draw kana or kanji.
var ErrFontRequired = errors.New("a UTF-8 TrueType font is required to render Japanese text")

// mdtopdf stylers name these families, including the copies the renderer keeps
// internally, so the UTF-8 font is registered under them.
var rendererFonts = []struct {
	family string
	style  string
}{
	{family: "Arial", style: ""},
	{family: "Arial", style: "B"},
	{family: "Arial", style: "I"},
	{family: "Arial", style: "BI"},
	{family: "Courier", style: ""},
}

// ConvertMarkdownToPDF renders the markdown file at markdownPath into a PDF next to it
// and returns the absolute path of the PDF. fontPath is a TrueType font with Japanese glyphs.
func ConvertMarkdownToPDF(markdownPath string, fontPath string) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"
	if err := Render(content, pdfPath, fontPath); err != nil {
		return "", err
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}
	return absPath, nil
}

// Render writes markdown content as an A4 portrait PDF to pdfPath, drawing all text with the font at fontPath.
func Render(markdown []byte, pdfPath string, fontPath string) error {
	if fontPath == "" {
		return ErrFontRequired
	}
	font, err := os.ReadFile(fontPath)
	if err != nil {
		return fmt.Errorf("os.ReadFile(%s) > %w", fontPath, err)
	}

	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	for _, f := range rendererFonts {
		renderer.Pdf.AddUTF8FontFromBytes(f.family, f.style, font)
	}
	if err := renderer.Pdf.Error(); err != nil {
		return fmt.Errorf("AddUTF8FontFromBytes(%s) > %w", fontPath, err)
	}

	if err := renderer.Process(markdown); err != nil {
		return fmt.Errorf("renderer.Process(%s) > %w", pdfPath, err)
	}
	return nil
}
