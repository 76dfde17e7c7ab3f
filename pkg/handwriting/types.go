package handwriting

// Verdict is the tri-state classification assigned to a style annotation,
// a word, or a line. Unknown means "no evidence either way", never
// "evidence of both".
type Verdict int

const (
	Unknown Verdict = iota
	Handwritten
	Printed
)

// String returns the human-readable name of the verdict
func (v Verdict) String() string {
	switch v {
	case Handwritten:
		return "handwritten"
	case Printed:
		return "printed"
	default:
		return "unknown"
	}
}

// Span identifies a half-open character range [Offset, Offset+Length)
// in the document's flattened text content
type Span struct {
	Offset int // Start offset in the document text
	Length int // Number of characters covered
}

// End returns the exclusive end offset of the span
func (s Span) End() int { return s.Offset + s.Length }

// StyleAnnotation is one style observation from the recognizer,
// covering one or more spans of the document text
type StyleAnnotation struct {
	Classification Verdict // Handwritten, Printed, or Unknown
	Spans          []Span  // Covered text ranges, may be empty
	Confidence     float64 // Recognizer confidence in [0,1]
}

// Word is a single recognized word
type Word struct {
	Content    string  // The word text
	Span       *Span   // Position in the document text, nil if unanchored
	Confidence float64 // Recognition confidence in [0,1]
}

// Line is a line of text with references to its constituent words
type Line struct {
	Content string  // The line text
	Spans   []Span  // Positions in the document text
	Words   []*Word // Words belonging to this line, in reading order
}

// Page is a single page of the document
type Page struct {
	Number int     // Page number (1-based)
	Width  float64 // Page width in Unit
	Height float64 // Page height in Unit
	Unit   string  // Dimension unit reported by the recognizer
	Words  []*Word // All words on the page, in reading order
	Lines  []*Line // All lines on the page, in reading order
}

// Document is the read-only input to classification: the page structure
// plus the style annotations produced by the recognizer
type Document struct {
	Pages  []*Page
	Styles []StyleAnnotation
}

// LineResult is the aggregated tag and confidence for one line.
// Tag is always Handwritten or Printed, never Unknown.
type LineResult struct {
	Tag        Verdict
	Confidence float64
}

// PageResult holds the classification outcome for one page
type PageResult struct {
	PageNumber int
	Verdicts   []Verdict  // Parallel to Page.Words
	Lines      []LineResult
	Stats      PageStats
	Transcript []string // Wrapped handwritten-only text lines
}

// PageStats summarizes word classification for one page
type PageStats struct {
	PageNumber       int
	Words            int
	HandwrittenWords int
	PrintedWords     int
	UnknownWords     int
	MeanConfidence   float64
}

// DocumentStats summarizes word classification for the whole document.
// MeanConfidence is computed over the flattened word list, not as a
// mean of page means.
type DocumentStats struct {
	Pages            int
	Words            int
	HandwrittenWords int
	PrintedWords     int
	UnknownWords     int
	MeanConfidence   float64
	HandwrittenChars int // Distinct offsets covered by handwritten styles
	PrintedChars     int // Distinct offsets covered by printed styles
}

// Result is the immutable outcome of classifying a Document.
// The input document is never modified.
type Result struct {
	WordVerdicts map[*Word]Verdict // Verdict for every word in the document
	Pages        []PageResult      // Per-page results in page order
	Stats        DocumentStats
}
