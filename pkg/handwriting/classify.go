// Package handwriting classifies recognized document text into
// handwritten and printed portions using the style annotations returned
// by a text recognizer.
//
// The recognizer reports styles as character-offset spans over the
// document's flattened text, tagged handwritten or printed. This package
// indexes those spans into queryable sets, assigns each word a tri-state
// verdict by overlap counting, derives line tags by majority vote, rolls
// word verdicts up to page and document statistics, and reconstructs a
// wrapped transcript of just the handwritten words.
//
// All operations are pure and side-effect free over immutable inputs.
// The package performs no network or file I/O; the caller supplies an
// already-parsed Document and renders the results itself.
//
// Main Functions:
//
// - ClassifyDocument: Runs the full pipeline over a Document
// - IndexStyles: Builds handwritten and printed coverage sets
// - ClassifyWord: Assigns a verdict to a single word
// - AggregateLine: Derives a line tag and confidence from word verdicts
// - BuildTranscript: Reconstructs wrapped handwritten-only page text
package handwriting

import (
	"fmt"
	"sync"
)

// Config holds user options for document classification
type Config struct {
	MaxLineWidth int // Transcript wrap width in characters
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() Config {
	return Config{
		MaxLineWidth: 80,
	}
}

// ClassifyWord assigns a verdict to one word by counting how many of its
// offsets fall in handwritten versus printed coverage. A word without a
// span cannot be classified. A tie, including zero evidence on both
// sides, yields Unknown rather than an arbitrary pick.
func ClassifyWord(word *Word, handwritten, printed SpanSet) Verdict {
	if word.Span == nil {
		return Unknown
	}
	hw := handwritten.CountOverlap(*word.Span)
	pr := printed.CountOverlap(*word.Span)
	switch {
	case hw > pr:
		return Handwritten
	case pr > hw:
		return Printed
	default:
		return Unknown
	}
}

// AggregateLine derives a line-level tag by majority vote over the
// line's words, and averages their confidences. Words without a span
// still count toward the denominator as Unknown contributors. The tag
// is Handwritten only when strictly more than half the words are
// handwritten; an exact 50/50 split resolves to Printed.
func AggregateLine(line *Line, verdicts map[*Word]Verdict) LineResult {
	n := len(line.Words)
	hwCount := 0
	confSum := 0.0
	for _, w := range line.Words {
		if verdicts[w] == Handwritten {
			hwCount++
		}
		confSum += w.Confidence
	}

	tag := Printed
	if float64(hwCount)/float64(max(n, 1)) > 0.5 {
		tag = Handwritten
	}

	confidence := 0.0
	if n > 0 {
		confidence = confSum / float64(n)
	}
	return LineResult{Tag: tag, Confidence: confidence}
}

// classifyPage classifies every word and line on one page. The span
// sets are shared read-only state; no locking is needed.
func classifyPage(page *Page, handwritten, printed SpanSet, cfg Config) PageResult {
	verdicts := make(map[*Word]Verdict, len(page.Words))
	ordered := make([]Verdict, len(page.Words))
	for i, w := range page.Words {
		v := ClassifyWord(w, handwritten, printed)
		verdicts[w] = v
		ordered[i] = v
	}

	lines := make([]LineResult, len(page.Lines))
	for i, line := range page.Lines {
		lines[i] = AggregateLine(line, verdicts)
	}

	return PageResult{
		PageNumber: page.Number,
		Verdicts:   ordered,
		Lines:      lines,
		Stats:      summarizePage(page, ordered),
		Transcript: BuildTranscript(page, verdicts, cfg.MaxLineWidth),
	}
}

// ClassifyDocument runs the full classification pipeline: style
// indexing, per-word verdicts, line aggregation, page and document
// statistics, and transcript reconstruction. Pages are classified
// concurrently and recombined in page order. The input document is
// never mutated; the only failure mode is a malformed style span.
func ClassifyDocument(doc *Document, cfg Config) (*Result, error) {
	if cfg.MaxLineWidth <= 0 {
		cfg.MaxLineWidth = DefaultConfig().MaxLineWidth
	}

	handwritten, printed, err := IndexStyles(doc.Styles)
	if err != nil {
		return nil, fmt.Errorf("failed to index styles: %w", err)
	}

	pageResults := make([]PageResult, len(doc.Pages))
	var wg sync.WaitGroup
	for i, page := range doc.Pages {
		wg.Add(1)
		go func(i int, page *Page) {
			defer wg.Done()
			pageResults[i] = classifyPage(page, handwritten, printed, cfg)
		}(i, page)
	}
	wg.Wait()

	// Recombine per-page verdicts into a single document-wide map
	wordVerdicts := make(map[*Word]Verdict)
	for i, page := range doc.Pages {
		for j, w := range page.Words {
			wordVerdicts[w] = pageResults[i].Verdicts[j]
		}
	}

	stats := summarizeDocument(doc, pageResults)
	stats.HandwrittenChars = handwritten.Covered()
	stats.PrintedChars = printed.Covered()

	return &Result{
		WordVerdicts: wordVerdicts,
		Pages:        pageResults,
		Stats:        stats,
	}, nil
}
