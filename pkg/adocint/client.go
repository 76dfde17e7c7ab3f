// Package adocint integrates with the Azure Document Intelligence REST API
// for document analysis and classification.
//
// The package submits documents to the prebuilt-read model (or a custom
// classifier), polls the asynchronous operation to completion, and converts
// the JSON result into the classifier's document model. Style and language
// add-on features can be enabled per request.
//
// Main Functions:
//
// - NewClient: Creates a client for a Document Intelligence resource
// - Client.AnalyzeDocument: Runs a model over raw document bytes
// - Client.ClassifyDocument: Runs a custom classifier over raw document bytes
// - DocumentFromResult: Converts an analyze result to a handwriting.Document
// - SummarizeLanguages: Aggregates per-span language detections by locale
// - DistinctFontStyles: Collects the unique font appearances in a document
//
// Usage Requirements:
//
// - An Azure Document Intelligence resource endpoint
// - Authentication via the AZURE_DOCUMENT_INTELLIGENCE_KEY environment variable
package adocint

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultAPIVersion is the Document Intelligence REST API version used
// when none is configured
const DefaultAPIVersion = "2024-11-30"

// Feature is an analysis add-on capability
type Feature string

// Add-on features relevant to handwriting classification
const (
	FeatureStyleFont         Feature = "styleFont"
	FeatureLanguages         Feature = "languages"
	FeatureOCRHighResolution Feature = "ocrHighResolution"
)

// Client talks to the Azure Document Intelligence REST API.
// Analysis is asynchronous: the service returns an Operation-Location
// URL which the client polls until the operation completes.
type Client struct {
	endpoint     string
	key          string
	apiVersion   string
	httpClient   *http.Client
	pollInterval time.Duration
	logger       *zap.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithAPIVersion overrides the REST API version
func WithAPIVersion(version string) Option {
	return func(c *Client) { c.apiVersion = version }
}

// WithPollInterval sets the delay between operation status checks
func WithPollInterval(d time.Duration) Option {
	return func(c *Client) { c.pollInterval = d }
}

// WithLogger attaches a structured logger for operational events
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a Document Intelligence client for the given
// resource endpoint and subscription key
func NewClient(endpoint, key string, opts ...Option) (*Client, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("endpoint is required")
	}
	if key == "" {
		return nil, fmt.Errorf("subscription key is required")
	}

	c := &Client{
		endpoint:     strings.TrimRight(endpoint, "/"),
		key:          key,
		apiVersion:   DefaultAPIVersion,
		httpClient:   &http.Client{Timeout: 60 * time.Second},
		pollInterval: 2 * time.Second,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// AnalyzeDocument runs the given model over raw document bytes and
// returns the completed analysis result. Features enable service
// add-ons such as font style detection and language detection.
func (c *Client) AnalyzeDocument(ctx context.Context, modelID string, content []byte, features ...Feature) (*AnalyzeResult, error) {
	if modelID == "" {
		return nil, fmt.Errorf("model ID is required")
	}
	analyzeURL := fmt.Sprintf("%s/documentintelligence/documentModels/%s:analyze", c.endpoint, url.PathEscape(modelID))
	return c.analyze(ctx, analyzeURL, content, features)
}

// ClassifyDocument runs a custom classifier over raw document bytes and
// returns the completed result, including the classified document
// segments with their types and confidences
func (c *Client) ClassifyDocument(ctx context.Context, classifierID string, content []byte) (*AnalyzeResult, error) {
	if classifierID == "" {
		return nil, fmt.Errorf("classifier ID is required")
	}
	classifyURL := fmt.Sprintf("%s/documentintelligence/documentClassifiers/%s:analyze", c.endpoint, url.PathEscape(classifierID))
	return c.analyze(ctx, classifyURL, content, nil)
}

// analyze submits the operation and polls it to completion
func (c *Client) analyze(ctx context.Context, operationURL string, content []byte, features []Feature) (*AnalyzeResult, error) {
	query := url.Values{}
	query.Set("api-version", c.apiVersion)
	if len(features) > 0 {
		names := make([]string, len(features))
		for i, f := range features {
			names[i] = string(f)
		}
		query.Set("features", strings.Join(names, ","))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, operationURL+"?"+query.Encode(), bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to build analyze request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.key)
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("analyze request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		return nil, serviceError(resp)
	}

	opLocation := resp.Header.Get("Operation-Location")
	if opLocation == "" {
		return nil, fmt.Errorf("service accepted the request but returned no Operation-Location header")
	}

	c.logger.Info("analysis operation submitted",
		zap.String("url", operationURL),
		zap.Int("bytes", len(content)))

	return c.pollOperation(ctx, opLocation)
}

// pollOperation checks the operation status until it succeeds or fails
func (c *Client) pollOperation(ctx context.Context, opLocation string) (*AnalyzeResult, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.pollInterval):
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, opLocation, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to build poll request: %w", err)
		}
		req.Header.Set("Ocp-Apim-Subscription-Key", c.key)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("poll request failed: %w", err)
		}

		var op AnalyzeOperation
		err = json.NewDecoder(resp.Body).Decode(&op)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to decode operation status: %w", err)
		}

		c.logger.Debug("operation status", zap.String("status", op.Status))

		switch op.Status {
		case StatusSucceeded:
			if op.AnalyzeResult == nil {
				return nil, fmt.Errorf("operation succeeded but carried no analyze result")
			}
			return op.AnalyzeResult, nil
		case StatusFailed:
			if op.Error != nil {
				return nil, fmt.Errorf("operation failed: %s: %s", op.Error.Code, op.Error.Message)
			}
			return nil, fmt.Errorf("operation failed without error detail")
		case StatusRunning, StatusNotStarted:
			// keep polling
		default:
			return nil, fmt.Errorf("unexpected operation status %q", op.Status)
		}
	}
}

// serviceError turns a non-202 submission response into an error,
// surfacing the service's error payload when one is present
func serviceError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var envelope struct {
		Error *ResponseError `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
		return fmt.Errorf("service returned %s: %s: %s", resp.Status, envelope.Error.Code, envelope.Error.Message)
	}
	return fmt.Errorf("service returned %s: %s", resp.Status, strings.TrimSpace(string(body)))
}
