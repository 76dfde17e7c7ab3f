package adocint

import "time"

// AnalyzeOperation is the polling envelope returned while an analysis
// or classification operation is in flight
type AnalyzeOperation struct {
	Status              string         `json:"status"`
	CreatedDateTime     time.Time      `json:"createdDateTime"`
	LastUpdatedDateTime time.Time      `json:"lastUpdatedDateTime"`
	Error               *ResponseError `json:"error,omitempty"`
	AnalyzeResult       *AnalyzeResult `json:"analyzeResult,omitempty"`
}

// Operation status values reported by the service
const (
	StatusNotStarted = "notStarted"
	StatusRunning    = "running"
	StatusSucceeded  = "succeeded"
	StatusFailed     = "failed"
)

// ResponseError is the error payload of a failed operation
type ResponseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AnalyzeResult is the root result of a Document Intelligence analyze
// or classify call
type AnalyzeResult struct {
	APIVersion      string             `json:"apiVersion"`
	ModelID         string             `json:"modelId"`
	StringIndexType string             `json:"stringIndexType"`
	Content         string             `json:"content"`
	Pages           []Page             `json:"pages"`
	Paragraphs      []Paragraph        `json:"paragraphs,omitempty"`
	Styles          []Style            `json:"styles,omitempty"`
	Languages       []Language         `json:"languages,omitempty"`
	Documents       []AnalyzedDocument `json:"documents,omitempty"`
}

// Span is a character-offset range into AnalyzeResult.Content
type Span struct {
	Offset int `json:"offset"`
	Length int `json:"length"`
}

// Page is a single page in the analyzed document
type Page struct {
	PageNumber int     `json:"pageNumber"`
	Angle      float64 `json:"angle"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Unit       string  `json:"unit"`
	Words      []Word  `json:"words"`
	Lines      []Line  `json:"lines"`
	Spans      []Span  `json:"spans"`
}

// Word is a single recognized word with its position and confidence
type Word struct {
	Content    string    `json:"content"`
	Polygon    []float64 `json:"polygon,omitempty"`
	Confidence float64   `json:"confidence"`
	Span       *Span     `json:"span,omitempty"`
}

// Line is a recognized line of text
type Line struct {
	Content string    `json:"content"`
	Polygon []float64 `json:"polygon,omitempty"`
	Spans   []Span    `json:"spans"`
}

// Paragraph is a recognized paragraph with an optional semantic role
type Paragraph struct {
	Role            string           `json:"role,omitempty"`
	Content         string           `json:"content"`
	Spans           []Span           `json:"spans"`
	BoundingRegions []BoundingRegion `json:"boundingRegions,omitempty"`
}

// Style describes a visual style observed over one or more text spans.
// IsHandwritten is a tri-state: nil means the service made no
// handwriting determination for these spans.
type Style struct {
	IsHandwritten     *bool   `json:"isHandwritten,omitempty"`
	SimilarFontFamily string  `json:"similarFontFamily,omitempty"`
	FontStyle         string  `json:"fontStyle,omitempty"`
	FontWeight        string  `json:"fontWeight,omitempty"`
	Color             string  `json:"color,omitempty"`
	BackgroundColor   string  `json:"backgroundColor,omitempty"`
	Spans             []Span  `json:"spans"`
	Confidence        float64 `json:"confidence"`
}

// Language is a detected language over one or more text spans
type Language struct {
	Locale     string  `json:"locale"`
	Spans      []Span  `json:"spans"`
	Confidence float64 `json:"confidence"`
}

// AnalyzedDocument is one classified document segment returned by a
// custom classifier
type AnalyzedDocument struct {
	DocType         string           `json:"docType"`
	BoundingRegions []BoundingRegion `json:"boundingRegions,omitempty"`
	Spans           []Span           `json:"spans,omitempty"`
	Confidence      float64          `json:"confidence"`
}

// BoundingRegion locates content on a specific page
type BoundingRegion struct {
	PageNumber int       `json:"pageNumber"`
	Polygon    []float64 `json:"polygon,omitempty"`
}
