package report

import (
	"bytes"
	"fmt"

	"codeberg.org/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"

	"github.com/hariscats/azure-doc-intelligence/pkg/handwriting"
)

// PDFConfig holds font settings for transcript PDF rendering
type PDFConfig struct {
	FontName  string  // Font name (e.g., "Helvetica")
	FontSize  float64 // Body font size
	TitleSize float64 // Page heading font size
}

// DefaultPDFConfig returns a config with sensible defaults
func DefaultPDFConfig() PDFConfig {
	return PDFConfig{
		FontName:  "Helvetica",
		FontSize:  11,
		TitleSize: 14,
	}
}

// TranscriptPDF renders the handwritten transcript of a classified
// document as a PDF, one document page per PDF page. Pages without
// handwritten words are skipped. Returns nil bytes when the document
// has no handwritten content at all.
func TranscriptPDF(res *handwriting.Result, cfg PDFConfig) ([]byte, error) {
	if res.Stats.HandwrittenWords == 0 {
		return nil, nil
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(54, 54, 54)

	for _, pr := range res.Pages {
		if len(pr.Transcript) == 0 {
			continue
		}

		pdf.AddPage()
		pdf.SetFont(cfg.FontName, "B", cfg.TitleSize)
		pdf.CellFormat(0, cfg.TitleSize*1.4,
			fmt.Sprintf("Page %d: handwritten transcript (%d words)", pr.PageNumber, pr.Stats.HandwrittenWords),
			"", 1, "L", false, 0, "")
		pdf.Ln(cfg.FontSize)

		pdf.SetFont(cfg.FontName, "", cfg.FontSize)
		for _, line := range pr.Transcript {
			pdf.CellFormat(0, cfg.FontSize*1.5, latin1(line), "", 1, "L", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate transcript PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// latin1 converts text to ISO-8859-1 to avoid PDF encoding issues with
// the core fonts, falling back to the raw text when conversion fails
func latin1(text string) string {
	converted, err := charmap.ISO8859_1.NewEncoder().String(text)
	if err != nil {
		return text
	}
	return converted
}
