package adocint

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hariscats/azure-doc-intelligence/pkg/handwriting"
)

// A trimmed prebuilt-read response: one page, one handwritten and one
// printed region, a style with no handwriting determination, and a
// detected language.
const sampleAnalyzeResult = `{
  "apiVersion": "2024-11-30",
  "modelId": "prebuilt-read",
  "stringIndexType": "textElements",
  "content": "Dear diary INVOICE",
  "pages": [
    {
      "pageNumber": 1,
      "angle": 0.3,
      "width": 8.5,
      "height": 11,
      "unit": "inch",
      "words": [
        {"content": "Dear", "confidence": 0.95, "span": {"offset": 0, "length": 4}},
        {"content": "diary", "confidence": 0.92, "span": {"offset": 5, "length": 5}},
        {"content": "INVOICE", "confidence": 0.99, "span": {"offset": 11, "length": 7}}
      ],
      "lines": [
        {"content": "Dear diary", "spans": [{"offset": 0, "length": 10}]},
        {"content": "INVOICE", "spans": [{"offset": 11, "length": 7}]}
      ],
      "spans": [{"offset": 0, "length": 18}]
    }
  ],
  "styles": [
    {"isHandwritten": true, "spans": [{"offset": 0, "length": 10}], "confidence": 0.9},
    {"isHandwritten": false, "spans": [{"offset": 11, "length": 7}], "confidence": 0.95},
    {"similarFontFamily": "Arial", "fontWeight": "bold", "spans": [{"offset": 11, "length": 7}], "confidence": 0.8}
  ],
  "languages": [
    {"locale": "en", "spans": [{"offset": 0, "length": 18}], "confidence": 0.99}
  ]
}`

func TestDocumentFromResult(t *testing.T) {
	var result AnalyzeResult
	require.NoError(t, json.Unmarshal([]byte(sampleAnalyzeResult), &result))

	doc := DocumentFromResult(&result)
	require.Len(t, doc.Pages, 1)

	page := doc.Pages[0]
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 8.5, page.Width)
	assert.Equal(t, "inch", page.Unit)
	require.Len(t, page.Words, 3)
	require.Len(t, page.Lines, 2)

	// Word-to-line association by span coverage
	require.Len(t, page.Lines[0].Words, 2)
	assert.Equal(t, "Dear", page.Lines[0].Words[0].Content)
	assert.Equal(t, "diary", page.Lines[0].Words[1].Content)
	require.Len(t, page.Lines[1].Words, 1)
	assert.Equal(t, "INVOICE", page.Lines[1].Words[0].Content)

	// Styles: handwritten, printed, and no-determination → Unknown
	require.Len(t, doc.Styles, 3)
	assert.Equal(t, handwriting.Handwritten, doc.Styles[0].Classification)
	assert.Equal(t, handwriting.Printed, doc.Styles[1].Classification)
	assert.Equal(t, handwriting.Unknown, doc.Styles[2].Classification)
}

func TestDocumentFromResultClassifiesEndToEnd(t *testing.T) {
	var result AnalyzeResult
	require.NoError(t, json.Unmarshal([]byte(sampleAnalyzeResult), &result))

	doc := DocumentFromResult(&result)
	classified, err := handwriting.ClassifyDocument(doc, handwriting.DefaultConfig())
	require.NoError(t, err)

	stats := classified.Pages[0].Stats
	assert.Equal(t, 2, stats.HandwrittenWords)
	assert.Equal(t, 1, stats.PrintedWords)

	assert.Equal(t, handwriting.Handwritten, classified.Pages[0].Lines[0].Tag)
	assert.Equal(t, handwriting.Printed, classified.Pages[0].Lines[1].Tag)
	assert.Equal(t, []string{"Dear diary"}, classified.Pages[0].Transcript)
}

func TestDocumentFromResultNil(t *testing.T) {
	doc := DocumentFromResult(nil)
	require.NotNil(t, doc)
	assert.Empty(t, doc.Pages)
	assert.Empty(t, doc.Styles)
}

func TestDocumentFromResultWordWithoutSpan(t *testing.T) {
	result := &AnalyzeResult{
		Pages: []Page{{
			PageNumber: 1,
			Words:      []Word{{Content: "floating", Confidence: 0.5}},
			Lines:      []Line{{Content: "floating", Spans: []Span{{0, 8}}}},
		}},
	}
	doc := DocumentFromResult(result)
	require.Len(t, doc.Pages[0].Words, 1)
	assert.Nil(t, doc.Pages[0].Words[0].Span)
	// A span-less word cannot be associated to a line
	assert.Empty(t, doc.Pages[0].Lines[0].Words)
}

func TestSummarizeLanguages(t *testing.T) {
	languages := []Language{
		{Locale: "en", Spans: []Span{{0, 5}, {6, 5}}, Confidence: 0.9},
		{Locale: "is", Spans: []Span{{12, 5}}, Confidence: 0.8},
		{Locale: "en", Spans: []Span{{20, 5}}, Confidence: 0.95},
	}

	stats := SummarizeLanguages(languages)
	require.Len(t, stats, 2)

	assert.Equal(t, "en", stats[0].Locale)
	assert.Equal(t, "English", stats[0].Name)
	assert.Equal(t, 3, stats[0].Spans)
	assert.Equal(t, 0.95, stats[0].BestConfidence)

	assert.Equal(t, "is", stats[1].Locale)
	assert.Equal(t, "Icelandic", stats[1].Name)
	assert.Equal(t, 1, stats[1].Spans)
}

func TestDistinctFontStyles(t *testing.T) {
	bold := "bold"
	styles := []Style{
		{SimilarFontFamily: "Arial", FontWeight: bold, Confidence: 0.8, Spans: []Span{{0, 5}}},
		{SimilarFontFamily: "Arial", FontWeight: bold, Confidence: 0.7, Spans: []Span{{6, 5}}},
		{FontStyle: "italic", Confidence: 0.6, Spans: []Span{{12, 5}}},
		{IsHandwritten: new(bool), Spans: []Span{{20, 5}}, Confidence: 0.9},
	}

	fonts := DistinctFontStyles(styles)
	require.Len(t, fonts, 2)
	assert.Equal(t, FontStyle{Family: "Arial", Weight: "bold", Style: "normal", Confidence: 0.8}, fonts[0])
	assert.Equal(t, FontStyle{Family: "unknown", Weight: "normal", Style: "italic", Confidence: 0.6}, fonts[1])
}
