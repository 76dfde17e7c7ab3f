// classify is a command-line tool for classifying documents with a custom
// Azure Document Intelligence classifier.
//
// The tool submits an image or PDF to a custom classifier and prints the
// classified document segments with their types, confidence scores, page
// ranges, and text spans, followed by a per-type summary.
//
// Configuration:
//
// The tool requires a YAML configuration file with Document Intelligence settings:
//
//	endpoint: "https://your-resource.cognitiveservices.azure.com"
//	classifier_id: "your-classifier-id"
//	api_version: "2024-11-30"
//
// Usage:
//
//	classify -config config.yml -file input.pdf [-json output.json]
//
// Authentication:
//
// The tool uses the AZURE_DOCUMENT_INTELLIGENCE_KEY environment variable
// for authentication with the Document Intelligence resource.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/hariscats/azure-doc-intelligence/pkg/adocint"
	"github.com/hariscats/azure-doc-intelligence/pkg/report"
)

const keyEnvVar = "AZURE_DOCUMENT_INTELLIGENCE_KEY"

type yamlConfig struct {
	Endpoint     string `yaml:"endpoint"`
	ClassifierID string `yaml:"classifier_id"`
	APIVersion   string `yaml:"api_version"`
}

func loadConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, err
	}
	return &yc, nil
}

func main() {
	configPath := flag.String("config", "", "Path to the config YAML file (required)")
	filePath := flag.String("file", "", "Path to the input image or PDF file (required)")
	jsonPath := flag.String("json", "", "Path to save the raw classification response as JSON")
	flag.Parse()

	if *configPath == "" || *filePath == "" {
		fmt.Fprintln(os.Stderr, "Error: -config and -file flags are required")
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
	if cfg.ClassifierID == "" {
		log.Fatalf("Missing classifier_id in config. Build a custom classifier in Document Intelligence Studio first.")
	}

	fileBytes, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatalf("Failed to read input file: %v", err)
	}

	opts := []adocint.Option{}
	if cfg.APIVersion != "" {
		opts = append(opts, adocint.WithAPIVersion(cfg.APIVersion))
	}
	client, err := adocint.NewClient(cfg.Endpoint, key, opts...)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	fmt.Printf("Classifier ID: %s\n", cfg.ClassifierID)
	fmt.Printf("Analyzing:     %s\n\n", *filePath)

	result, err := client.ClassifyDocument(context.Background(), cfg.ClassifierID, fileBytes)
	if err != nil {
		log.Fatalf("Error classifying document: %v", err)
	}

	fmt.Println("--- CLASSIFICATION RESULTS ---")
	fmt.Println()

	if len(result.Documents) == 0 {
		fmt.Println("  No documents were classified.")
	}
	for i, document := range result.Documents {
		docType := document.DocType
		if docType == "" {
			docType = "Unknown"
		}

		fmt.Printf("  Document #%d\n", i+1)
		fmt.Printf("    Type:       %s\n", docType)
		fmt.Printf("    Confidence: %.2f%%  [%s]\n", 100*document.Confidence, report.ConfidenceBar(document.Confidence, 30))

		if pages := pageRange(document.BoundingRegions); pages != "" {
			fmt.Printf("    Pages:      %s\n", pages)
		}
		for _, span := range document.Spans {
			fmt.Printf("    Span:       offset=%d, length=%d\n", span.Offset, span.Length)
		}
		fmt.Println()
	}

	fmt.Println("--- SUMMARY ---")
	fmt.Println()
	fmt.Printf("  Classifier:       %s\n", cfg.ClassifierID)
	fmt.Printf("  Documents found:  %d\n", len(result.Documents))

	if len(result.Documents) > 0 {
		typeCounts := make(map[string]int)
		confSum := 0.0
		for _, d := range result.Documents {
			docType := d.DocType
			if docType == "" {
				docType = "Unknown"
			}
			typeCounts[docType]++
			confSum += d.Confidence
		}

		types := make([]string, 0, len(typeCounts))
		for docType := range typeCounts {
			types = append(types, docType)
		}
		sort.Strings(types)

		fmt.Println("  Document types:")
		for _, docType := range types {
			fmt.Printf("    - %s: %d\n", docType, typeCounts[docType])
		}
		fmt.Printf("  Avg confidence:   %.2f%%\n", 100*confSum/float64(len(result.Documents)))
	}

	fmt.Printf("  Model:            %s (API %s)\n", result.ModelID, result.APIVersion)

	if *jsonPath != "" {
		resultJSON, err := adocint.ToJSON(result)
		if err != nil {
			log.Fatalf("Failed to convert response to JSON: %v", err)
		}
		if err := os.WriteFile(*jsonPath, []byte(resultJSON), 0644); err != nil {
			log.Fatalf("Failed to write response JSON: %v", err)
		}
		fmt.Println("\nResponse JSON saved to:", *jsonPath)
	}
}

// pageRange formats the distinct page numbers covered by the regions,
// collapsing a contiguous-looking set into "first–last"
func pageRange(regions []adocint.BoundingRegion) string {
	if len(regions) == 0 {
		return ""
	}
	seen := make(map[int]bool)
	var pages []int
	for _, r := range regions {
		if !seen[r.PageNumber] {
			seen[r.PageNumber] = true
			pages = append(pages, r.PageNumber)
		}
	}
	sort.Ints(pages)
	if len(pages) == 1 {
		return fmt.Sprintf("%d", pages[0])
	}
	return fmt.Sprintf("%d–%d (%d pages)", pages[0], pages[len(pages)-1], len(pages))
}
