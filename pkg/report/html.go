package report

import (
	"bytes"
	"embed"
	"fmt"
	"html"
	"text/template"

	"github.com/hariscats/azure-doc-intelligence/pkg/handwriting"
)

//go:embed templates/report.tmpl
var templateFS embed.FS

// Document is the structural form of an HTML report: what GenerateHTML
// writes and ParseHTML reads back
type Document struct {
	Title string
	Pages []DocumentPage
}

// DocumentPage is one page of the report
type DocumentPage struct {
	Number int
	Lines  []DocumentLine
}

// DocumentLine is a tagged line of the report
type DocumentLine struct {
	Tag        string // "handwritten" or "printed"
	Confidence float64
	Words      []DocumentWord
}

// DocumentWord is a single word with its verdict class
type DocumentWord struct {
	Text       string
	Verdict    string // "handwritten", "printed", or "unknown"
	Confidence float64
}

// BuildDocument assembles the report structure from a classified
// document. Lines carry their aggregated tag; every word carries its
// own verdict and confidence.
func BuildDocument(doc *handwriting.Document, res *handwriting.Result) Document {
	report := Document{Title: "Handwriting Classification Report"}

	for i, page := range doc.Pages {
		pr := res.Pages[i]
		reportPage := DocumentPage{Number: page.Number}

		for j, line := range page.Lines {
			lr := pr.Lines[j]
			reportLine := DocumentLine{
				Tag:        lr.Tag.String(),
				Confidence: lr.Confidence,
			}
			for _, w := range line.Words {
				reportLine.Words = append(reportLine.Words, DocumentWord{
					Text:       w.Content,
					Verdict:    res.WordVerdicts[w].String(),
					Confidence: w.Confidence,
				})
			}
			reportPage.Lines = append(reportPage.Lines, reportLine)
		}

		report.Pages = append(report.Pages, reportPage)
	}

	return report
}

// GenerateHTML renders a classified document as an annotated HTML
// report using the embedded template
func GenerateHTML(doc *handwriting.Document, res *handwriting.Result) (string, error) {
	tmpl, err := template.New("report.tmpl").Funcs(template.FuncMap{
		"escape": html.EscapeString,
	}).ParseFS(templateFS, "templates/report.tmpl")
	if err != nil {
		return "", fmt.Errorf("error parsing report template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, BuildDocument(doc, res)); err != nil {
		return "", fmt.Errorf("error rendering report template: %w", err)
	}

	return buf.String(), nil
}
