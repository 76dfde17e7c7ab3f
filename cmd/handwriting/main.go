// handwriting is a command-line tool for separating handwritten from printed
// text in scanned documents using Azure Document Intelligence.
//
// The tool analyzes an image or PDF with the prebuilt-read model (with the
// style and language add-ons enabled), classifies every recognized word as
// handwritten or printed from the returned style spans, and writes the
// results in one or more formats.
//
// Configuration:
//
// The tool requires a YAML configuration file with Document Intelligence settings:
//
//	endpoint: "https://your-resource.cognitiveservices.azure.com"
//	model: "prebuilt-read"
//	api_version: "2024-11-30"
//
// Usage:
//
//	handwriting -config config.yml -file input.pdf [options]
//
// Required flags:
//
//	-config string  Path to the YAML configuration file
//	-file string    Path to the input image or PDF file
//
// Output options (at least one required):
//
//	-report string      Path to save the text report
//	-html string        Path to save the annotated HTML report
//	-transcript string  Path to save the handwritten transcript as plain text
//	-pdf string         Path to save the handwritten transcript as PDF
//	-json string        Path to save the classification result as JSON
//	-debug-api string   Path to save the raw API response as JSON
//
// Other options:
//
//	-width int  Transcript wrap width in characters (default 80)
//	-verbose    Enable structured client logging
//
// Authentication:
//
// The tool uses the AZURE_DOCUMENT_INTELLIGENCE_KEY environment variable
// for authentication with the Document Intelligence resource.
//
// Example:
//
//	export AZURE_DOCUMENT_INTELLIGENCE_KEY=your-key
//	handwriting -config config.yml -file scan.jpg -report scan.txt -pdf scan_transcript.pdf

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/hariscats/azure-doc-intelligence/pkg/adocint"
	"github.com/hariscats/azure-doc-intelligence/pkg/handwriting"
	"github.com/hariscats/azure-doc-intelligence/pkg/report"
)

const keyEnvVar = "AZURE_DOCUMENT_INTELLIGENCE_KEY"

type yamlConfig struct {
	Endpoint   string `yaml:"endpoint"`
	Model      string `yaml:"model"`
	APIVersion string `yaml:"api_version"`
}

// loadConfig reads the YAML configuration file
func loadConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, err
	}
	if yc.Model == "" {
		yc.Model = "prebuilt-read"
	}
	return &yc, nil
}

func main() {
	// Required flags.
	configPath := flag.String("config", "", "Path to the config YAML file (required)")
	filePath := flag.String("file", "", "Path to the input image or PDF file (required)")

	// Output flags
	reportPath := flag.String("report", "", "Path to save the text report")
	htmlPath := flag.String("html", "", "Path to save the annotated HTML report")
	transcriptPath := flag.String("transcript", "", "Path to save the handwritten transcript as plain text")
	pdfPath := flag.String("pdf", "", "Path to save the handwritten transcript as PDF")
	jsonPath := flag.String("json", "", "Path to save the classification result as JSON")
	debugAPIPath := flag.String("debug-api", "", "Path to save the raw API response as JSON")

	wrapWidth := flag.Int("width", handwriting.DefaultConfig().MaxLineWidth, "Transcript wrap width in characters")
	verbose := flag.Bool("verbose", false, "Enable structured client logging")

	flag.Parse()

	// Create a map of provided flags to validate
	providedFlags := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		providedFlags[f.Name] = true
	})

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -config flag is required")
		fmt.Fprintln(os.Stderr, "Usage:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "Error: -file flag is required")
		fmt.Fprintln(os.Stderr, "Usage:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Validate that provided output flags have values
	hasError := false
	validateFlag := func(name string, value string) {
		if providedFlags[name] && value == "" {
			fmt.Fprintf(os.Stderr, "Error: -%s flag requires a value\n", name)
			hasError = true
		}
	}

	validateFlag("report", *reportPath)
	validateFlag("html", *htmlPath)
	validateFlag("transcript", *transcriptPath)
	validateFlag("pdf", *pdfPath)
	validateFlag("json", *jsonPath)
	validateFlag("debug-api", *debugAPIPath)

	if hasError {
		fmt.Fprintln(os.Stderr, "Usage:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Check if at least one output flag is provided
	hasOutputFlag := providedFlags["report"] || providedFlags["html"] ||
		providedFlags["transcript"] || providedFlags["pdf"] ||
		providedFlags["json"] || providedFlags["debug-api"]

	if !hasOutputFlag {
		fmt.Fprintln(os.Stderr, "Error: At least one output flag must be provided (-report, -html, -transcript, -pdf, -json, or -debug-api)")
		fmt.Fprintln(os.Stderr, "Usage:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	key := os.Getenv(keyEnvVar)
	if key == "" {
		log.Fatalf("Missing %s environment variable", keyEnvVar)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	fileBytes, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatalf("Failed to read input file: %v", err)
	}

	opts := []adocint.Option{}
	if cfg.APIVersion != "" {
		opts = append(opts, adocint.WithAPIVersion(cfg.APIVersion))
	}
	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			log.Fatalf("Failed to create logger: %v", err)
		}
		defer logger.Sync()
		opts = append(opts, adocint.WithLogger(logger))
	}

	client, err := adocint.NewClient(cfg.Endpoint, key, opts...)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	fmt.Printf("Analyzing %s with model %s\n", *filePath, cfg.Model)

	ctx := context.Background()
	result, err := client.AnalyzeDocument(ctx, cfg.Model, fileBytes,
		adocint.FeatureStyleFont, adocint.FeatureLanguages)
	if err != nil {
		log.Fatalf("Error analyzing document: %v", err)
	}

	doc := adocint.DocumentFromResult(result)
	classified, err := handwriting.ClassifyDocument(doc, handwriting.Config{MaxLineWidth: *wrapWidth})
	if err != nil {
		log.Fatalf("Error classifying document: %v", err)
	}

	// Write the text report if flag is provided.
	if *reportPath != "" {
		text := report.RenderText(doc, classified)
		text += renderExtras(result)
		if err := os.WriteFile(*reportPath, []byte(text), 0644); err != nil {
			log.Fatalf("Failed to write report: %v", err)
		}
		fmt.Println("Text report saved to:", *reportPath)
	}

	// Write the HTML report if flag is provided.
	if *htmlPath != "" {
		rendered, err := report.GenerateHTML(doc, classified)
		if err != nil {
			log.Fatalf("Failed to generate HTML report: %v", err)
		}
		if err := os.WriteFile(*htmlPath, []byte(rendered), 0644); err != nil {
			log.Fatalf("Failed to write HTML report: %v", err)
		}
		fmt.Println("HTML report saved to:", *htmlPath)
	}

	// Write the plain-text transcript if flag is provided.
	if *transcriptPath != "" {
		var b strings.Builder
		for _, pr := range classified.Pages {
			if len(pr.Transcript) == 0 {
				continue
			}
			fmt.Fprintf(&b, "Page %d:\n", pr.PageNumber)
			for _, line := range pr.Transcript {
				fmt.Fprintf(&b, "%s\n", line)
			}
			fmt.Fprintln(&b)
		}
		if err := os.WriteFile(*transcriptPath, []byte(b.String()), 0644); err != nil {
			log.Fatalf("Failed to write transcript: %v", err)
		}
		fmt.Println("Transcript saved to:", *transcriptPath)
	}

	// Write the transcript PDF if flag is provided.
	if *pdfPath != "" {
		pdfBytes, err := report.TranscriptPDF(classified, report.DefaultPDFConfig())
		if err != nil {
			log.Fatalf("Failed to generate transcript PDF: %v", err)
		}
		if pdfBytes == nil {
			fmt.Println("Warning: No handwritten content found, skipping transcript PDF")
		} else {
			if err := os.WriteFile(*pdfPath, pdfBytes, 0644); err != nil {
				log.Fatalf("Failed to write transcript PDF: %v", err)
			}
			fmt.Println("Transcript PDF saved to:", *pdfPath)
		}
	}

	// Write the classification result JSON if flag is provided.
	if *jsonPath != "" {
		resultJSON, err := adocint.ToJSON(report.BuildDocument(doc, classified))
		if err != nil {
			log.Fatalf("Failed to convert classification result to JSON: %v", err)
		}
		if err := os.WriteFile(*jsonPath, []byte(resultJSON), 0644); err != nil {
			log.Fatalf("Failed to write classification result JSON: %v", err)
		}
		fmt.Println("Classification result JSON saved to:", *jsonPath)
	}

	// Write the raw API response if flag is provided.
	if *debugAPIPath != "" {
		apiJSON, err := adocint.ToJSON(result)
		if err != nil {
			log.Fatalf("Failed to convert API response to JSON: %v", err)
		}
		if err := os.WriteFile(*debugAPIPath, []byte(apiJSON), 0644); err != nil {
			log.Fatalf("Failed to write API response JSON: %v", err)
		}
		fmt.Println("API response JSON saved to:", *debugAPIPath)
	}

	stats := classified.Stats
	fmt.Printf("Done: %d pages, %d words (%d handwritten, %d printed)\n",
		stats.Pages, stats.Words, stats.HandwrittenWords, stats.PrintedWords)
}

// renderExtras appends the font style and language sections, which come
// from the raw analyze result rather than the classification
func renderExtras(result *adocint.AnalyzeResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n--- FONT STYLE DETAILS ---\n\n")
	fonts := adocint.DistinctFontStyles(result.Styles)
	if len(fonts) == 0 {
		fmt.Fprintf(&b, "  No detailed font styles detected.\n")
	}
	for _, f := range fonts {
		fmt.Fprintf(&b, "  Font: %s, Weight: %s, Style: %s, Confidence: %.0f%%\n",
			f.Family, f.Weight, f.Style, 100*f.Confidence)
	}

	fmt.Fprintf(&b, "\n--- DETECTED LANGUAGES ---\n\n")
	languages := adocint.SummarizeLanguages(result.Languages)
	if len(languages) == 0 {
		fmt.Fprintf(&b, "  No language information detected.\n")
	}
	for _, lang := range languages {
		fmt.Fprintf(&b, "  %s (%s): %d span(s), best confidence: %.0f%%\n",
			lang.Locale, lang.Name, lang.Spans, 100*lang.BestConfidence)
	}

	fmt.Fprintf(&b, "\n  Model: %s (API %s)\n", result.ModelID, result.APIVersion)
	return b.String()
}
