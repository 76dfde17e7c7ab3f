package adocint

import (
	"github.com/hariscats/azure-doc-intelligence/pkg/handwriting"
)

// DocumentFromResult converts an analyze result into the classifier's
// document model. Words are attached to the lines whose spans cover
// their start offset, mirroring how the service anchors both to the
// same flattened text content.
func DocumentFromResult(result *AnalyzeResult) *handwriting.Document {
	if result == nil {
		return &handwriting.Document{}
	}

	doc := &handwriting.Document{
		Styles: stylesFromResult(result.Styles),
	}

	for i := range result.Pages {
		page := &result.Pages[i]
		hwPage := &handwriting.Page{
			Number: page.PageNumber,
			Width:  page.Width,
			Height: page.Height,
			Unit:   page.Unit,
		}

		hwPage.Words = make([]*handwriting.Word, 0, len(page.Words))
		for _, w := range page.Words {
			hwWord := &handwriting.Word{
				Content:    w.Content,
				Confidence: w.Confidence,
			}
			if w.Span != nil {
				span := handwriting.Span{Offset: w.Span.Offset, Length: w.Span.Length}
				hwWord.Span = &span
			}
			hwPage.Words = append(hwPage.Words, hwWord)
		}

		hwPage.Lines = make([]*handwriting.Line, 0, len(page.Lines))
		for _, line := range page.Lines {
			hwLine := &handwriting.Line{
				Content: line.Content,
				Spans:   spansFromResult(line.Spans),
			}
			for _, w := range hwPage.Words {
				if w.Span != nil && spanCoversOffset(line.Spans, w.Span.Offset) {
					hwLine.Words = append(hwLine.Words, w)
				}
			}
			hwPage.Lines = append(hwPage.Lines, hwLine)
		}

		doc.Pages = append(doc.Pages, hwPage)
	}

	return doc
}

// stylesFromResult maps the service's optional isHandwritten flag onto
// the classifier's tri-state annotation
func stylesFromResult(styles []Style) []handwriting.StyleAnnotation {
	result := make([]handwriting.StyleAnnotation, 0, len(styles))
	for _, s := range styles {
		classification := handwriting.Unknown
		if s.IsHandwritten != nil {
			if *s.IsHandwritten {
				classification = handwriting.Handwritten
			} else {
				classification = handwriting.Printed
			}
		}
		result = append(result, handwriting.StyleAnnotation{
			Classification: classification,
			Spans:          spansFromResult(s.Spans),
			Confidence:     s.Confidence,
		})
	}
	return result
}

func spansFromResult(spans []Span) []handwriting.Span {
	result := make([]handwriting.Span, len(spans))
	for i, s := range spans {
		result[i] = handwriting.Span{Offset: s.Offset, Length: s.Length}
	}
	return result
}

func spanCoversOffset(spans []Span, offset int) bool {
	for _, s := range spans {
		if offset >= s.Offset && offset < s.Offset+s.Length {
			return true
		}
	}
	return false
}
