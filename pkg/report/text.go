// Package report renders handwriting classification results for human
// consumption: a console text report, an annotated HTML document that
// can be parsed back into a structural form, and a PDF of the
// handwritten transcript.
package report

import (
	"fmt"
	"strings"

	"github.com/hariscats/azure-doc-intelligence/pkg/handwriting"
)

const lineDisplayLimit = 90

// ConfidenceBar renders a score in [0,1] as a fixed-width bar,
// e.g. "███████░░░" for 0.7 at width 10
func ConfidenceBar(score float64, width int) string {
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	filled := int(score * float64(width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// RenderText produces the full console report for a classified
// document: detection summary, per-page statistics with tagged lines,
// the extracted handwritten text, and document totals.
func RenderText(doc *handwriting.Document, res *handwriting.Result) string {
	var b strings.Builder

	renderDetectionSummary(&b, doc, res)
	renderPages(&b, doc, res)
	renderHandwrittenText(&b, res)
	renderSummary(&b, res)

	return b.String()
}

func renderDetectionSummary(b *strings.Builder, doc *handwriting.Document, res *handwriting.Result) {
	fmt.Fprintf(b, "--- HANDWRITING vs. PRINTED DETECTION ---\n\n")

	if len(doc.Styles) == 0 {
		fmt.Fprintf(b, "  No style information available.\n\n")
		return
	}

	hwRegions, prRegions := 0, 0
	for _, s := range doc.Styles {
		switch s.Classification {
		case handwriting.Handwritten:
			hwRegions++
		case handwriting.Printed:
			prRegions++
		}
	}

	hwChars := res.Stats.HandwrittenChars
	prChars := res.Stats.PrintedChars
	totalChars := max(hwChars+prChars, 1)

	fmt.Fprintf(b, "  Handwritten regions: %d\n", hwRegions)
	fmt.Fprintf(b, "  Printed regions:     %d\n", prRegions)
	fmt.Fprintf(b, "  Handwritten chars:   %d (%.0f%%)\n", hwChars, 100*float64(hwChars)/float64(totalChars))
	fmt.Fprintf(b, "  Printed chars:       %d (%.0f%%)\n", prChars, 100*float64(prChars)/float64(totalChars))

	if hwChars > 0 {
		fmt.Fprintf(b, "\n  [ %s ]\n\n", center("HANDWRITING DETECTED", 40))
	} else {
		fmt.Fprintf(b, "\n  [ %s ]\n\n", center("NO HANDWRITING — all printed", 40))
	}
}

func renderPages(b *strings.Builder, doc *handwriting.Document, res *handwriting.Result) {
	fmt.Fprintf(b, "--- PER-PAGE RESULTS (%d pages) ---\n\n", len(doc.Pages))

	for i, page := range doc.Pages {
		pr := res.Pages[i]
		fmt.Fprintf(b, "  Page %d\n", page.Number)
		if page.Width > 0 || page.Height > 0 {
			fmt.Fprintf(b, "    Dimensions:  %g x %g %s\n", page.Width, page.Height, page.Unit)
		}
		fmt.Fprintf(b, "    Lines:       %d\n", len(page.Lines))
		fmt.Fprintf(b, "    Words:       %d\n", pr.Stats.Words)
		fmt.Fprintf(b, "    Avg conf:    %.1f%%  %s\n", 100*pr.Stats.MeanConfidence, ConfidenceBar(pr.Stats.MeanConfidence, 20))
		fmt.Fprintf(b, "    Handwritten: %d word(s)\n", pr.Stats.HandwrittenWords)
		fmt.Fprintf(b, "    Printed:     %d word(s)\n", pr.Stats.PrintedWords)
		if pr.Stats.UnknownWords > 0 {
			fmt.Fprintf(b, "    Unclassified: %d word(s)\n", pr.Stats.UnknownWords)
		}

		if len(page.Lines) > 0 {
			fmt.Fprintf(b, "\n    --- Lines (page %d) ---\n\n", page.Number)
			for j, line := range page.Lines {
				lr := pr.Lines[j]
				tag := "  PR"
				if lr.Tag == handwriting.Handwritten {
					tag = "✍ HW"
				}
				fmt.Fprintf(b, "    %s %.0f%% │ %s\n", tag, 100*lr.Confidence, truncate(line.Content, lineDisplayLimit))
			}
		}
		fmt.Fprintf(b, "\n")
	}
}

func renderHandwrittenText(b *strings.Builder, res *handwriting.Result) {
	if res.Stats.HandwrittenWords == 0 {
		return
	}

	fmt.Fprintf(b, "--- HANDWRITTEN TEXT (extracted) ---\n\n")
	for _, pr := range res.Pages {
		if len(pr.Transcript) == 0 {
			continue
		}
		fmt.Fprintf(b, "  Page %d (%d word(s)):\n", pr.PageNumber, pr.Stats.HandwrittenWords)
		for _, line := range pr.Transcript {
			fmt.Fprintf(b, "    %s\n", line)
		}
		fmt.Fprintf(b, "\n")
	}
}

func renderSummary(b *strings.Builder, res *handwriting.Result) {
	fmt.Fprintf(b, "--- SUMMARY ---\n\n")
	fmt.Fprintf(b, "  Pages:             %d\n", res.Stats.Pages)
	fmt.Fprintf(b, "  Total words:       %d\n", res.Stats.Words)
	fmt.Fprintf(b, "  Handwritten words: %d\n", res.Stats.HandwrittenWords)
	fmt.Fprintf(b, "  Printed words:     %d\n", res.Stats.PrintedWords)
	fmt.Fprintf(b, "  Unclassified:      %d\n", res.Stats.UnknownWords)
	fmt.Fprintf(b, "  Avg word conf:     %.1f%%  %s\n", 100*res.Stats.MeanConfidence, ConfidenceBar(res.Stats.MeanConfidence, 20))
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + " …"
}

func center(s string, width int) string {
	pad := width - len([]rune(s))
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
